package postgres

import (
	"context"
	"errors"
	"fmt"

	"hosted-checkout/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// DeliveryRepo implements ports.DeliveryLedger.
type DeliveryRepo struct {
	pool Pool
}

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(pool Pool) *DeliveryRepo {
	return &DeliveryRepo{pool: pool}
}

// Get fetches the record for a delivery key. Returns nil, nil if absent.
func (r *DeliveryRepo) Get(ctx context.Context, key domain.DeliveryKey) (*domain.DeliveryRecord, error) {
	query := `SELECT payment_id, company_id, event, status, attempts, created_at, updated_at
		FROM delivery_records WHERE payment_id = $1 AND company_id = $2 AND event = $3`

	rec := &domain.DeliveryRecord{}
	err := r.pool.QueryRow(ctx, query, key.PaymentID, key.CompanyID, key.Event).Scan(
		&rec.PaymentID, &rec.CompanyID, &rec.Event, &rec.Status, &rec.Attempts,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery record: %w", err)
	}
	return rec, nil
}

// Upsert writes the record. A stored success is left untouched and attempts
// never decrease, whatever the caller passes.
func (r *DeliveryRepo) Upsert(ctx context.Context, rec *domain.DeliveryRecord) error {
	query := `INSERT INTO delivery_records (payment_id, company_id, event, status, attempts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (payment_id, company_id, event) DO UPDATE
		SET status = EXCLUDED.status,
			attempts = GREATEST(delivery_records.attempts, EXCLUDED.attempts),
			updated_at = EXCLUDED.updated_at
		WHERE delivery_records.status <> 'success'`

	_, err := r.pool.Exec(ctx, query,
		rec.PaymentID, rec.CompanyID, rec.Event, rec.Status, rec.Attempts,
		rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert delivery record: %w", err)
	}
	return nil
}
