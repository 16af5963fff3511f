package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"hosted-checkout/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestCompanyConfig() *domain.CompanyConfig {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.CompanyConfig{
		ID:           uuid.New(),
		CompanyID:    "biz_456",
		Headline:     "Upgrade",
		Subheadline:  "Now",
		CTAText:      "Checkout",
		BasePlanID:   "plan_abcdef",
		WebhookURL:   strPtr("https://merchant.example.com/hook"),
		AllowPrefill: true,
		Theme:        domain.ThemeDark,
		Accent:       domain.AccentSky,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func configColumns() []string {
	return []string{"id", "company_id", "headline", "subheadline", "cta_text", "base_plan_id", "redirect_url",
		"webhook_url", "allow_prefill", "theme", "accent", "show_badges", "created_at", "updated_at"}
}

func configRow(c *domain.CompanyConfig) *pgxmock.Rows {
	return pgxmock.NewRows(configColumns()).AddRow(
		c.ID, c.CompanyID, c.Headline, c.Subheadline, c.CTAText, c.BasePlanID, c.RedirectURL,
		c.WebhookURL, c.AllowPrefill, c.Theme, c.Accent, c.ShowBadges, c.CreatedAt, c.UpdatedAt,
	)
}

func bumpColumns() []string {
	return []string{"id", "title", "description", "price_label", "plan_id", "badge", "highlight_color",
		"position", "default_selected", "sort_index"}
}

func TestCompanyConfigRepo_GetWebhookConfig(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCompanyConfigRepo(mock)

	mock.ExpectQuery("SELECT company_id, webhook_url FROM company_configs").
		WithArgs("biz_456").
		WillReturnRows(pgxmock.NewRows([]string{"company_id", "webhook_url"}).
			AddRow("biz_456", strPtr("https://merchant.example.com/hook")))

	cfg, err := repo.GetWebhookConfig(context.Background(), "biz_456")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, cfg.Enabled())
	assert.Equal(t, "https://merchant.example.com/hook", *cfg.WebhookURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyConfigRepo_GetWebhookConfig_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCompanyConfigRepo(mock)

	mock.ExpectQuery("SELECT company_id, webhook_url FROM company_configs").
		WithArgs("biz_missing").
		WillReturnError(pgx.ErrNoRows)

	cfg, err := repo.GetWebhookConfig(context.Background(), "biz_missing")
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestCompanyConfigRepo_GetByCompanyID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCompanyConfigRepo(mock)
	c := newTestCompanyConfig()
	bumpID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM company_configs WHERE company_id").
		WithArgs(c.CompanyID).
		WillReturnRows(configRow(c))
	mock.ExpectQuery("SELECT .+ FROM order_bumps WHERE company_config_id .+ ORDER BY sort_index").
		WithArgs(c.ID).
		WillReturnRows(pgxmock.NewRows(bumpColumns()).AddRow(
			bumpID, "Add-on", "Extra", "$5", "plan_bump001", strPtr("Hot"), (*string)(nil),
			domain.BumpPositionBelow, true, 0,
		))

	got, err := repo.GetByCompanyID(context.Background(), c.CompanyID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, domain.ThemeDark, got.Theme)
	require.Len(t, got.Bumps, 1)
	assert.Equal(t, bumpID.String(), got.Bumps[0].ID)
	assert.Equal(t, "Hot", *got.Bumps[0].Badge)
	assert.Nil(t, got.Bumps[0].HighlightColor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyConfigRepo_GetByCompanyID_NoBumps(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCompanyConfigRepo(mock)
	c := newTestCompanyConfig()

	mock.ExpectQuery("SELECT .+ FROM company_configs").WithArgs(c.CompanyID).WillReturnRows(configRow(c))
	mock.ExpectQuery("SELECT .+ FROM order_bumps").WithArgs(c.ID).WillReturnRows(pgxmock.NewRows(bumpColumns()))

	got, err := repo.GetByCompanyID(context.Background(), c.CompanyID)
	require.NoError(t, err)
	assert.NotNil(t, got.Bumps, "empty bumps must serialise as []")
	assert.Empty(t, got.Bumps)
}

func TestCompanyConfigRepo_GetByCompanyID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCompanyConfigRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM company_configs").
		WithArgs("biz_missing").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByCompanyID(context.Background(), "biz_missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyConfigRepo_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCompanyConfigRepo(mock)
	c := newTestCompanyConfig()
	keptID := uuid.New()
	c.Bumps = []domain.Bump{
		{ID: keptID.String(), Title: "Kept", Description: "d", PriceLabel: "$1", PlanID: "plan_bump001", Position: domain.BumpPositionAbove, SortIndex: 0},
		{ID: "client-temp-id", Title: "New", Description: "d", PriceLabel: "$2", PlanID: "plan_bump002", Position: domain.BumpPositionBelow, SortIndex: 1},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO company_configs .+ ON CONFLICT \\(company_id\\) DO UPDATE .+ RETURNING id").
		WithArgs(pgxmock.AnyArg(), c.CompanyID, c.Headline, c.Subheadline, c.CTAText, c.BasePlanID, c.RedirectURL,
			c.WebhookURL, c.AllowPrefill, c.Theme, c.Accent, c.ShowBadges, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(c.ID))
	mock.ExpectQuery("SELECT id FROM order_bumps WHERE company_config_id").
		WithArgs(c.ID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(keptID).AddRow(uuid.New()))
	mock.ExpectExec("INSERT INTO order_bumps").
		WithArgs(keptID, c.ID, "Kept", "d", "$1", "plan_bump001", (*string)(nil), (*string)(nil),
			domain.BumpPositionAbove, false, 0, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_bumps").
		WithArgs(pgxmock.AnyArg(), c.ID, "New", "d", "$2", "plan_bump002", (*string)(nil), (*string)(nil),
			domain.BumpPositionBelow, false, 1, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("DELETE FROM order_bumps WHERE company_config_id").
		WithArgs(c.ID, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT .+ FROM company_configs WHERE company_id").
		WithArgs(c.CompanyID).
		WillReturnRows(configRow(c))
	mock.ExpectQuery("SELECT .+ FROM order_bumps WHERE company_config_id").
		WithArgs(c.ID).
		WillReturnRows(pgxmock.NewRows(bumpColumns()).
			AddRow(keptID, "Kept", "d", "$1", "plan_bump001", (*string)(nil), (*string)(nil), domain.BumpPositionAbove, false, 0).
			AddRow(uuid.New(), "New", "d", "$2", "plan_bump002", (*string)(nil), (*string)(nil), domain.BumpPositionBelow, false, 1))

	saved, err := repo.Save(context.Background(), c)
	require.NoError(t, err)
	require.Len(t, saved.Bumps, 2)
	assert.Equal(t, keptID.String(), saved.Bumps[0].ID)
	assert.NotEqual(t, "client-temp-id", saved.Bumps[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyConfigRepo_Save_RollsBackOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCompanyConfigRepo(mock)
	c := newTestCompanyConfig()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO company_configs").
		WillReturnError(errors.New("unique violation"))
	mock.ExpectRollback()

	_, err = repo.Save(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert company config")
	assert.NoError(t, mock.ExpectationsWereMet())
}
