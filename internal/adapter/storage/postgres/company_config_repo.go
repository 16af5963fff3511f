package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hosted-checkout/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const companyConfigColumns = `id, company_id, headline, subheadline, cta_text, base_plan_id, redirect_url,
	webhook_url, allow_prefill, theme, accent, show_badges, created_at, updated_at`

const orderBumpColumns = `id, title, description, price_label, plan_id, badge, highlight_color,
	position, default_selected, sort_index`

// CompanyConfigRepo implements ports.CompanyConfigRepository.
type CompanyConfigRepo struct {
	pool Pool
	tx   *Transactor
}

// NewCompanyConfigRepo creates a new CompanyConfigRepo.
func NewCompanyConfigRepo(pool Pool) *CompanyConfigRepo {
	return &CompanyConfigRepo{pool: pool, tx: NewTransactor(pool)}
}

// GetWebhookConfig reads only the forwarding URL. Returns nil, nil when the
// company has no configuration.
func (r *CompanyConfigRepo) GetWebhookConfig(ctx context.Context, companyID string) (*domain.MerchantWebhookConfig, error) {
	cfg := &domain.MerchantWebhookConfig{}
	err := r.pool.QueryRow(ctx,
		`SELECT company_id, webhook_url FROM company_configs WHERE company_id = $1`, companyID,
	).Scan(&cfg.CompanyID, &cfg.WebhookURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webhook config: %w", err)
	}
	return cfg, nil
}

// GetByCompanyID fetches a configuration with its bumps ordered by sort index.
func (r *CompanyConfigRepo) GetByCompanyID(ctx context.Context, companyID string) (*domain.CompanyConfig, error) {
	query := `SELECT ` + companyConfigColumns + ` FROM company_configs WHERE company_id = $1`

	c := &domain.CompanyConfig{}
	err := r.pool.QueryRow(ctx, query, companyID).Scan(
		&c.ID, &c.CompanyID, &c.Headline, &c.Subheadline, &c.CTAText, &c.BasePlanID, &c.RedirectURL,
		&c.WebhookURL, &c.AllowPrefill, &c.Theme, &c.Accent, &c.ShowBadges, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company config: %w", err)
	}

	bumps, err := r.listBumps(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Bumps = bumps
	return c, nil
}

func (r *CompanyConfigRepo) listBumps(ctx context.Context, configID uuid.UUID) ([]domain.Bump, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+orderBumpColumns+` FROM order_bumps WHERE company_config_id = $1 ORDER BY sort_index ASC`, configID)
	if err != nil {
		return nil, fmt.Errorf("list order bumps: %w", err)
	}
	defer rows.Close()

	bumps := []domain.Bump{}
	for rows.Next() {
		var b domain.Bump
		var id uuid.UUID
		if err := rows.Scan(
			&id, &b.Title, &b.Description, &b.PriceLabel, &b.PlanID, &b.Badge, &b.HighlightColor,
			&b.Position, &b.DefaultSelected, &b.SortIndex,
		); err != nil {
			return nil, fmt.Errorf("scan order bump: %w", err)
		}
		b.ID = id.String()
		bumps = append(bumps, b)
	}
	return bumps, rows.Err()
}

// Save upserts the configuration and reconciles its bumps in one transaction:
// known bump ids are updated, unknown ids get a fresh UUID, and bumps missing
// from cfg are deleted.
func (r *CompanyConfigRepo) Save(ctx context.Context, cfg *domain.CompanyConfig) (*domain.CompanyConfig, error) {
	err := r.tx.InTx(ctx, func(tx pgx.Tx) error {
		now := time.Now().UTC()

		var configID uuid.UUID
		err := tx.QueryRow(ctx,
			`INSERT INTO company_configs (`+companyConfigColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
			ON CONFLICT (company_id) DO UPDATE
			SET headline = EXCLUDED.headline,
				subheadline = EXCLUDED.subheadline,
				cta_text = EXCLUDED.cta_text,
				base_plan_id = EXCLUDED.base_plan_id,
				redirect_url = EXCLUDED.redirect_url,
				webhook_url = EXCLUDED.webhook_url,
				allow_prefill = EXCLUDED.allow_prefill,
				theme = EXCLUDED.theme,
				accent = EXCLUDED.accent,
				show_badges = EXCLUDED.show_badges,
				updated_at = EXCLUDED.updated_at
			RETURNING id`,
			uuid.New(), cfg.CompanyID, cfg.Headline, cfg.Subheadline, cfg.CTAText, cfg.BasePlanID, cfg.RedirectURL,
			cfg.WebhookURL, cfg.AllowPrefill, cfg.Theme, cfg.Accent, cfg.ShowBadges, now,
		).Scan(&configID)
		if err != nil {
			return fmt.Errorf("upsert company config: %w", err)
		}

		existing, err := existingBumpIDs(ctx, tx, configID)
		if err != nil {
			return err
		}

		keep := make([]uuid.UUID, 0, len(cfg.Bumps))
		for _, b := range cfg.Bumps {
			id, err := uuid.Parse(b.ID)
			if err != nil || !existing[id] {
				id = uuid.New()
			}
			keep = append(keep, id)

			_, err = tx.Exec(ctx,
				`INSERT INTO order_bumps (id, company_config_id, title, description, price_label, plan_id, badge,
					highlight_color, position, default_selected, sort_index, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
				ON CONFLICT (id) DO UPDATE
				SET title = EXCLUDED.title,
					description = EXCLUDED.description,
					price_label = EXCLUDED.price_label,
					plan_id = EXCLUDED.plan_id,
					badge = EXCLUDED.badge,
					highlight_color = EXCLUDED.highlight_color,
					position = EXCLUDED.position,
					default_selected = EXCLUDED.default_selected,
					sort_index = EXCLUDED.sort_index,
					updated_at = EXCLUDED.updated_at
				WHERE order_bumps.company_config_id = EXCLUDED.company_config_id`,
				id, configID, b.Title, b.Description, b.PriceLabel, b.PlanID, b.Badge,
				b.HighlightColor, b.Position, b.DefaultSelected, b.SortIndex, now,
			)
			if err != nil {
				return fmt.Errorf("upsert order bump: %w", err)
			}
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM order_bumps WHERE company_config_id = $1 AND NOT (id = ANY($2))`,
			configID, keep,
		); err != nil {
			return fmt.Errorf("delete stale order bumps: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByCompanyID(ctx, cfg.CompanyID)
}

func existingBumpIDs(ctx context.Context, tx pgx.Tx, configID uuid.UUID) (map[uuid.UUID]bool, error) {
	rows, err := tx.Query(ctx, `SELECT id FROM order_bumps WHERE company_config_id = $1`, configID)
	if err != nil {
		return nil, fmt.Errorf("list order bump ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[uuid.UUID]bool)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan order bump id: %w", err)
		}
		ids[id] = true
	}
	return ids, rows.Err()
}
