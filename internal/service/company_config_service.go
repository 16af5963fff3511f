package service

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"hosted-checkout/internal/core/domain"
	"hosted-checkout/internal/core/ports"
	"hosted-checkout/pkg/apperror"
	"hosted-checkout/pkg/sanitize"

	"github.com/rs/zerolog"
)

// PlanIDPattern is the shape of a platform plan identifier.
var PlanIDPattern = regexp.MustCompile(`^plan_[a-zA-Z0-9_-]{6,64}$`)

const maxSortIndex = 10

var (
	validThemes          = map[domain.Theme]bool{domain.ThemeLight: true, domain.ThemeDark: true, domain.ThemeSystem: true}
	validAccents         = map[domain.Accent]bool{domain.AccentSky: true, domain.AccentBlue: true, domain.AccentGreen: true, domain.AccentPurple: true, domain.AccentAmber: true}
	validPositions       = map[domain.BumpPosition]bool{domain.BumpPositionAbove: true, domain.BumpPositionBelow: true, domain.BumpPositionSidebar: true}
	validHighlightColors = map[string]bool{"rose": true, "amber": true, "emerald": true, "sky": true, "violet": true, "slate": true}
)

// CompanyConfigManager implements ports.CompanyConfigService.
type CompanyConfigManager struct {
	repo          ports.CompanyConfigRepository
	sigSvc        ports.SignatureService
	publicBaseURL string
	signingSecret string
	log           zerolog.Logger
}

// NewCompanyConfigManager creates a new CompanyConfigManager. An empty
// signingSecret means no signing key is issued on save.
func NewCompanyConfigManager(
	repo ports.CompanyConfigRepository,
	sigSvc ports.SignatureService,
	publicBaseURL string,
	signingSecret string,
	log zerolog.Logger,
) *CompanyConfigManager {
	return &CompanyConfigManager{
		repo:          repo,
		sigSvc:        sigSvc,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		signingSecret: signingSecret,
		log:           log,
	}
}

// GetPublic returns the configuration served to the checkout page.
func (s *CompanyConfigManager) GetPublic(ctx context.Context, companyID string) (*domain.CompanyConfig, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, apperror.ErrNotFound()
	}

	cfg, err := s.repo.GetByCompanyID(ctx, companyID)
	if err != nil {
		s.log.Error().Err(err).Str("company_id", companyID).Msg("config: failed to load")
		return nil, apperror.ErrDatabaseError(err)
	}
	if cfg == nil {
		return nil, apperror.ErrNotFound()
	}

	pub := cfg.Public()
	return &pub, nil
}

// Save validates, sanitises and stores a configuration.
func (s *CompanyConfigManager) Save(ctx context.Context, cfg *domain.CompanyConfig) (*ports.SavedCompanyConfig, error) {
	cfg.CompanyID = strings.TrimSpace(cfg.CompanyID)
	if cfg.CompanyID == "" {
		return nil, apperror.Validation("companyId is required")
	}

	if fields := ValidateCompanyConfig(cfg); len(fields) > 0 {
		return nil, apperror.ErrValidationFailed(fields)
	}

	saved, err := s.repo.Save(ctx, NormalizeCompanyConfig(cfg))
	if err != nil {
		s.log.Error().Err(err).Str("company_id", cfg.CompanyID).Msg("config: save failed")
		return nil, apperror.ErrSaveFailed(err)
	}

	out := &ports.SavedCompanyConfig{
		Config:      saved,
		CheckoutURL: s.CheckoutLink(saved.CompanyID),
	}
	if s.signingSecret != "" {
		key, err := s.sigSvc.DeriveKey(s.signingSecret, saved.CompanyID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("derive signing key: %w", err))
		}
		out.WebhookSigningKey = key
	}

	s.log.Info().
		Str("company_id", saved.CompanyID).
		Int("bumps", len(saved.Bumps)).
		Bool("forwarding", saved.WebhookConfig().Enabled()).
		Msg("config: saved")
	return out, nil
}

// CheckoutLink is the hosted checkout URL for a company.
func (s *CompanyConfigManager) CheckoutLink(companyID string) string {
	return s.publicBaseURL + "/checkout/" + url.PathEscape(companyID)
}

// ValidateCompanyConfig checks raw input and returns messages keyed by JSON
// path. An empty map means the input is acceptable.
func ValidateCompanyConfig(cfg *domain.CompanyConfig) map[string]string {
	fields := make(map[string]string)

	maxLen(fields, "headline", cfg.Headline, domain.MaxHeadlineLen)
	maxLen(fields, "subheadline", cfg.Subheadline, domain.MaxSubheadLen)
	maxLen(fields, "ctaText", cfg.CTAText, domain.MaxCTATextLen)
	planID(fields, "basePlanId", cfg.BasePlanID)

	if !validThemes[cfg.Theme] {
		fields["theme"] = "Invalid theme"
	}
	if !validAccents[cfg.Accent] {
		fields["accent"] = "Invalid accent"
	}
	httpsURL(fields, "redirectUrl", cfg.RedirectURL)
	httpsURL(fields, "webhookUrl", cfg.WebhookURL)

	if len(cfg.Bumps) > domain.MaxBumps {
		fields["bumps"] = fmt.Sprintf("At most %d bumps are allowed", domain.MaxBumps)
		return fields
	}

	seen := make(map[int]bool, len(cfg.Bumps))
	defaults := 0
	for i, b := range cfg.Bumps {
		prefix := fmt.Sprintf("bumps.%d.", i)
		lenRange(fields, prefix+"title", b.Title, domain.MaxBumpTitleLen)
		lenRange(fields, prefix+"description", b.Description, domain.MaxBumpDescLen)
		lenRange(fields, prefix+"priceLabel", b.PriceLabel, domain.MaxPriceLabelLen)
		planID(fields, prefix+"planId", b.PlanID)
		if b.Badge != nil {
			maxLen(fields, prefix+"badge", *b.Badge, domain.MaxBadgeLen)
		}
		if b.HighlightColor != nil && !validHighlightColors[*b.HighlightColor] {
			fields[prefix+"highlightColor"] = "Invalid highlight color"
		}
		if !validPositions[b.Position] {
			fields[prefix+"position"] = "Invalid position"
		}

		sortKey := fmt.Sprintf("bumps.%d.sortIndex", b.SortIndex)
		if b.SortIndex < 0 || b.SortIndex > maxSortIndex || b.SortIndex >= len(cfg.Bumps) {
			fields[sortKey] = "sortIndex is out of range"
		}
		if seen[b.SortIndex] {
			fields[sortKey] = "Duplicate sortIndex detected"
		}
		seen[b.SortIndex] = true
		if b.DefaultSelected {
			defaults++
		}
	}
	if defaults > 1 {
		fields["bumps"] = "Only one bump can be selected by default"
	}

	return fields
}

// NormalizeCompanyConfig returns a sanitised copy ready to store. Bumps are
// ordered by sortIndex and re-indexed from zero.
func NormalizeCompanyConfig(cfg *domain.CompanyConfig) *domain.CompanyConfig {
	out := *cfg
	out.Headline = sanitize.Text(cfg.Headline, domain.MaxHeadlineLen)
	out.Subheadline = sanitize.Text(cfg.Subheadline, domain.MaxSubheadLen)
	out.CTAText = sanitize.Text(cfg.CTAText, domain.MaxCTATextLen)
	if out.CTAText == "" {
		out.CTAText = domain.DefaultCTAText
	}
	out.BasePlanID = strings.TrimSpace(cfg.BasePlanID)
	out.RedirectURL = sanitize.URL(cfg.RedirectURL)
	out.WebhookURL = sanitize.URL(cfg.WebhookURL)

	bumps := make([]domain.Bump, len(cfg.Bumps))
	copy(bumps, cfg.Bumps)
	sort.SliceStable(bumps, func(i, j int) bool { return bumps[i].SortIndex < bumps[j].SortIndex })
	for i := range bumps {
		b := &bumps[i]
		b.ID = strings.TrimSpace(b.ID)
		b.Title = sanitize.Text(b.Title, domain.MaxBumpTitleLen)
		b.Description = sanitize.Text(b.Description, domain.MaxBumpDescLen)
		b.PriceLabel = sanitize.Text(b.PriceLabel, domain.MaxPriceLabelLen)
		b.PlanID = strings.TrimSpace(b.PlanID)
		b.Badge = sanitize.NullableText(b.Badge, domain.MaxBadgeLen)
		b.SortIndex = i
	}
	out.Bumps = bumps
	return &out
}

func maxLen(fields map[string]string, key, v string, limit int) {
	if utf8.RuneCountInString(v) > limit {
		fields[key] = fmt.Sprintf("Must be at most %d characters", limit)
	}
}

func lenRange(fields map[string]string, key, v string, limit int) {
	if v == "" {
		fields[key] = "Required"
		return
	}
	maxLen(fields, key, v, limit)
}

func planID(fields map[string]string, key, v string) {
	if !PlanIDPattern.MatchString(strings.TrimSpace(v)) {
		fields[key] = "Plan ID must start with plan_ and contain 6-64 characters"
	}
}

func httpsURL(fields map[string]string, key string, v *string) {
	if v == nil || *v == "" {
		return
	}
	if !IsHTTPSURL(*v) {
		fields[key] = "URL must start with https://"
	}
}

// IsHTTPSURL reports whether raw is an absolute https URL with a host.
func IsHTTPSURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "https://") {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "https" && u.Host != ""
}
