package handler

import (
	"context"
	"net/http"

	"hosted-checkout/internal/adapter/http/dto"
	"hosted-checkout/internal/core/ports"
	"hosted-checkout/internal/service"
	"hosted-checkout/pkg/apperror"
	"hosted-checkout/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PlatformWebhookHandler receives signed events from the commerce platform.
type PlatformWebhookHandler struct {
	verifier ports.PlatformWebhookVerifier
	events   ports.PlatformEventService
	log      zerolog.Logger
}

// NewPlatformWebhookHandler creates a new PlatformWebhookHandler.
func NewPlatformWebhookHandler(
	verifier ports.PlatformWebhookVerifier,
	events ports.PlatformEventService,
	log zerolog.Logger,
) *PlatformWebhookHandler {
	return &PlatformWebhookHandler{verifier: verifier, events: events, log: log}
}

// Receive handles POST /api/webhooks.
func (h *PlatformWebhookHandler) Receive(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	event, err := h.verifier.Unwrap(
		c.GetHeader(service.HeaderWebhookID),
		c.GetHeader(service.HeaderWebhookTimestamp),
		c.GetHeader(service.HeaderWebhookSignature),
		body,
	)
	if err != nil {
		h.log.Warn().Err(err).Str("request_id", response.RequestID(c)).Msg("platform webhook: verification failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	// The platform hanging up must not cut a merchant delivery short.
	out, err := h.events.Handle(context.WithoutCancel(c.Request.Context()), *event)
	if err != nil {
		response.Error(c, err)
		return
	}

	// A failed forward is answered with 502 so the platform redelivers.
	if out != nil && !out.OK {
		c.JSON(http.StatusBadGateway, dto.ForwardResponse{OK: false, Status: out.Status})
		return
	}
	response.OK(c, gin.H{"ok": true})
}
