package handler

import (
	"context"
	"net/http"

	"hosted-checkout/internal/adapter/http/dto"
	"hosted-checkout/internal/core/ports"
	"hosted-checkout/pkg/apperror"
	"hosted-checkout/pkg/response"

	"github.com/gin-gonic/gin"
)

// ForwardHandler exposes the webhook forwarder to automation callers.
type ForwardHandler struct {
	forwarder ports.Forwarder
}

// NewForwardHandler creates a new ForwardHandler.
func NewForwardHandler(forwarder ports.Forwarder) *ForwardHandler {
	return &ForwardHandler{forwarder: forwarder}
}

// Forward handles POST /api/automation/webhook.
func (h *ForwardHandler) Forward(c *gin.Context) {
	var req dto.ForwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidJSON())
		return
	}

	// The delivery runs to completion even if the caller disconnects.
	ctx := context.WithoutCancel(c.Request.Context())
	out, err := h.forwarder.Forward(ctx, ports.ForwardRequest{
		PaymentID: req.PaymentID,
		CompanyID: req.CompanyID,
		Event:     req.Event,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if !out.OK {
		c.JSON(http.StatusBadGateway, dto.ForwardResponse{OK: false, Status: out.Status})
		return
	}
	response.OK(c, dto.ForwardResponse{OK: true})
}
