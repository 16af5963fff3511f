package ports

import (
	"context"

	"hosted-checkout/internal/core/domain"
)

// WebhookConfigReader resolves a merchant's forwarding settings.
// Returns nil, nil when the company has no configuration.
type WebhookConfigReader interface {
	GetWebhookConfig(ctx context.Context, companyID string) (*domain.MerchantWebhookConfig, error)
}

// DeliveryLedger persists delivery records keyed by (payment, company, event).
type DeliveryLedger interface {
	// Get returns nil, nil when no record exists for the key.
	Get(ctx context.Context, key domain.DeliveryKey) (*domain.DeliveryRecord, error)
	// Upsert creates or updates the record for its key. A stored "success"
	// must never be overwritten and attempts must never decrease.
	Upsert(ctx context.Context, record *domain.DeliveryRecord) error
}

// CompanyConfigRepository defines persistence operations for checkout configuration.
type CompanyConfigRepository interface {
	WebhookConfigReader
	GetByCompanyID(ctx context.Context, companyID string) (*domain.CompanyConfig, error)
	// Save upserts the configuration and replaces its bumps in one transaction,
	// returning the stored state.
	Save(ctx context.Context, cfg *domain.CompanyConfig) (*domain.CompanyConfig, error)
}
