package service

import (
	"context"

	"hosted-checkout/internal/core/domain"
	"hosted-checkout/internal/core/ports"

	"github.com/rs/zerolog"
)

// Platform event types this service reacts to.
const (
	EventPaymentSucceeded    = "payment.succeeded"
	EventMembershipActivated = "membership.activated"
)

// PlatformEventHandler implements ports.PlatformEventService.
type PlatformEventHandler struct {
	forwarder ports.Forwarder
	log       zerolog.Logger
}

// NewPlatformEventHandler creates a new PlatformEventHandler.
func NewPlatformEventHandler(forwarder ports.Forwarder, log zerolog.Logger) *PlatformEventHandler {
	return &PlatformEventHandler{forwarder: forwarder, log: log}
}

// Handle logs the event and forwards successful payments to the merchant.
// The returned outcome is nil unless a forward was attempted.
func (h *PlatformEventHandler) Handle(ctx context.Context, ev ports.PlatformEvent) (*domain.DeliveryOutcome, error) {
	log := h.log.With().
		Str("webhook_id", ev.ID).
		Str("event_type", ev.Type).
		Str("user_id", ev.UserID).
		Logger()

	switch ev.Type {
	case EventPaymentSucceeded:
		log.Info().Str("payment_id", ev.DataID).Str("company_id", ev.CompanyID).Msg("platform: payment succeeded")
		if ev.CompanyID == "" || ev.DataID == "" {
			return nil, nil
		}
		return h.forwarder.Forward(ctx, ports.ForwardRequest{
			PaymentID: ev.DataID,
			CompanyID: ev.CompanyID,
			Event:     EventPaymentSucceeded,
		})
	case EventMembershipActivated:
		log.Info().Str("membership_id", ev.DataID).Msg("platform: membership activated")
	default:
		log.Info().Msg("platform: event received")
	}
	return nil, nil
}
