package ports

import (
	"context"
	"time"

	"hosted-checkout/internal/core/domain"
)

// ForwardRequest is the raw input of a forward invocation.
type ForwardRequest struct {
	PaymentID string
	CompanyID string
	Event     string
}

// Forwarder delivers payment events to a merchant's webhook URL.
// Only input errors are returned as errors; delivery failures are outcomes.
type Forwarder interface {
	Forward(ctx context.Context, req ForwardRequest) (*domain.DeliveryOutcome, error)
}

// SavedCompanyConfig is returned to the dashboard after a save.
type SavedCompanyConfig struct {
	Config            *domain.CompanyConfig
	CheckoutURL       string
	WebhookSigningKey string // empty when outbound signing is disabled
}

// CompanyConfigService validates, sanitises and stores checkout configuration.
type CompanyConfigService interface {
	GetPublic(ctx context.Context, companyID string) (*domain.CompanyConfig, error)
	Save(ctx context.Context, cfg *domain.CompanyConfig) (*SavedCompanyConfig, error)
}

// SignatureService handles HMAC-SHA256 signing and per-company key derivation.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	DeriveKey(masterSecret string, companyID string) (string, error)
}

// DeliveryLocker is a cross-process lease on a delivery key.
type DeliveryLocker interface {
	// Acquire returns a release token and true when the lease was taken.
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	Release(ctx context.Context, key string, token string) error
}

// UserClaims is the verified identity behind a dashboard request.
type UserClaims struct {
	UserID string
}

// UserTokenVerifier validates platform-issued dashboard user tokens.
type UserTokenVerifier interface {
	Verify(token string) (*UserClaims, error)
}

// PlatformEvent is a verified inbound event from the commerce platform.
type PlatformEvent struct {
	ID        string
	Type      string
	DataID    string
	UserID    string
	CompanyID string
}

// PlatformEventService reacts to verified platform webhooks.
// A non-nil outcome is returned for events that were forwarded.
type PlatformEventService interface {
	Handle(ctx context.Context, event PlatformEvent) (*domain.DeliveryOutcome, error)
}

// ForwardMetrics records forwarder activity. Implementations must not block.
type ForwardMetrics interface {
	AttemptCompleted(attempt int, statusClass string, duration time.Duration)
	Outcome(outcome string)
}

// PlatformWebhookVerifier authenticates and decodes signed platform webhooks.
type PlatformWebhookVerifier interface {
	Unwrap(msgID, timestamp, signature string, body []byte) (*PlatformEvent, error)
}
