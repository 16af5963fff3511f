package handler

import (
	"hosted-checkout/internal/adapter/http/dto"
	"hosted-checkout/internal/core/ports"
	"hosted-checkout/pkg/apperror"
	"hosted-checkout/pkg/response"

	"github.com/gin-gonic/gin"
)

// ConfigHandler serves and stores company checkout configuration.
type ConfigHandler struct {
	configSvc ports.CompanyConfigService
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(configSvc ports.CompanyConfigService) *ConfigHandler {
	return &ConfigHandler{configSvc: configSvc}
}

// GetPublic handles GET /api/company/:companyId.
func (h *ConfigHandler) GetPublic(c *gin.Context) {
	cfg, err := h.configSvc.GetPublic(c.Request.Context(), c.Param("companyId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cfg)
}

// Save handles POST /api/company/:companyId/save.
func (h *ConfigHandler) Save(c *gin.Context) {
	var req dto.CompanyConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := dto.ValidationFields(err); fields != nil {
			response.Error(c, apperror.ErrValidationFailed(fields))
			return
		}
		response.Error(c, apperror.ErrInvalidJSON())
		return
	}

	saved, err := h.configSvc.Save(c.Request.Context(), req.ToDomain(c.Param("companyId")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SavedConfigResponse{
		CompanyConfig:     saved.Config,
		CheckoutURL:       saved.CheckoutURL,
		WebhookSigningKey: saved.WebhookSigningKey,
	})
}
