package dto

import "hosted-checkout/internal/core/domain"

// ForwardRequest is the request body for POST /api/automation/webhook.
// Identifier presence is checked by the forwarder so that blank and
// whitespace-only values are rejected the same way.
type ForwardRequest struct {
	PaymentID string `json:"payment_id"`
	CompanyID string `json:"companyId"`
	Event     string `json:"event"`
}

// ForwardResponse is the body of 200 and 502 forward responses.
type ForwardResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status,omitempty"`
}

// CompanyConfigRequest is the request body for the dashboard save.
type CompanyConfigRequest struct {
	Headline     string        `json:"headline" binding:"max=160"`
	Subheadline  string        `json:"subheadline" binding:"max=200"`
	CTAText      string        `json:"ctaText" binding:"max=60"`
	BasePlanID   string        `json:"basePlanId" binding:"required,plan_id"`
	RedirectURL  *string       `json:"redirectUrl" binding:"omitempty,https_url"`
	WebhookURL   *string       `json:"webhookUrl" binding:"omitempty,https_url"`
	AllowPrefill *bool         `json:"allowPrefill"`
	Theme        string        `json:"theme" binding:"omitempty,oneof=light dark system"`
	Accent       string        `json:"accent" binding:"omitempty,oneof=sky blue green purple amber"`
	ShowBadges   *bool         `json:"showBadges"`
	Bumps        []BumpRequest `json:"bumps" binding:"max=3,dive"`
}

// BumpRequest is one order bump inside CompanyConfigRequest.
type BumpRequest struct {
	ID              string  `json:"id"`
	Title           string  `json:"title" binding:"required,max=80"`
	Description     string  `json:"description" binding:"required,max=240"`
	PriceLabel      string  `json:"priceLabel" binding:"required,max=80"`
	PlanID          string  `json:"planId" binding:"required,plan_id"`
	Badge           *string `json:"badge" binding:"omitempty,max=40"`
	HighlightColor  *string `json:"highlightColor" binding:"omitempty,oneof=rose amber emerald sky violet slate"`
	Position        string  `json:"position" binding:"omitempty,oneof=above below sidebar"`
	DefaultSelected bool    `json:"defaultSelected"`
	SortIndex       int     `json:"sortIndex" binding:"min=0,max=10"`
}

// ToDomain fills in defaults and converts the request for companyID.
func (r *CompanyConfigRequest) ToDomain(companyID string) *domain.CompanyConfig {
	cfg := &domain.CompanyConfig{
		CompanyID:    companyID,
		Headline:     r.Headline,
		Subheadline:  r.Subheadline,
		CTAText:      r.CTAText,
		BasePlanID:   r.BasePlanID,
		RedirectURL:  r.RedirectURL,
		WebhookURL:   r.WebhookURL,
		AllowPrefill: true,
		Theme:        domain.ThemeSystem,
		Accent:       domain.AccentSky,
		Bumps:        make([]domain.Bump, 0, len(r.Bumps)),
	}
	if r.AllowPrefill != nil {
		cfg.AllowPrefill = *r.AllowPrefill
	}
	if r.ShowBadges != nil {
		cfg.ShowBadges = *r.ShowBadges
	}
	if r.Theme != "" {
		cfg.Theme = domain.Theme(r.Theme)
	}
	if r.Accent != "" {
		cfg.Accent = domain.Accent(r.Accent)
	}

	// A payload without sortIndex values keeps its array order.
	ordered := hasSortIndexes(r.Bumps)
	for i, b := range r.Bumps {
		bump := domain.Bump{
			ID:              b.ID,
			Title:           b.Title,
			Description:     b.Description,
			PriceLabel:      b.PriceLabel,
			PlanID:          b.PlanID,
			Badge:           b.Badge,
			HighlightColor:  b.HighlightColor,
			Position:        domain.BumpPositionBelow,
			DefaultSelected: b.DefaultSelected,
			SortIndex:       b.SortIndex,
		}
		if b.Position != "" {
			bump.Position = domain.BumpPosition(b.Position)
		}
		if !ordered {
			bump.SortIndex = i
		}
		cfg.Bumps = append(cfg.Bumps, bump)
	}
	return cfg
}

func hasSortIndexes(bumps []BumpRequest) bool {
	for _, b := range bumps {
		if b.SortIndex != 0 {
			return true
		}
	}
	return false
}

// SavedConfigResponse is the flat saved config plus dashboard-only fields.
type SavedConfigResponse struct {
	*domain.CompanyConfig
	CheckoutURL       string `json:"checkoutUrl"`
	WebhookSigningKey string `json:"webhookSigningKey,omitempty"`
}
