package domain

import (
	"time"

	"github.com/google/uuid"
)

// Theme is the checkout colour scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Accent is the checkout accent colour.
type Accent string

const (
	AccentSky    Accent = "sky"
	AccentBlue   Accent = "blue"
	AccentGreen  Accent = "green"
	AccentPurple Accent = "purple"
	AccentAmber  Accent = "amber"
)

// BumpPosition places an order bump relative to the embed.
type BumpPosition string

const (
	BumpPositionAbove   BumpPosition = "above"
	BumpPositionBelow   BumpPosition = "below"
	BumpPositionSidebar BumpPosition = "sidebar"
)

const (
	MaxBumps         = 3
	DefaultCTAText   = "Checkout"
	MaxHeadlineLen   = 160
	MaxSubheadLen    = 200
	MaxCTATextLen    = 60
	MaxBumpTitleLen  = 80
	MaxBumpDescLen   = 240
	MaxPriceLabelLen = 80
	MaxBadgeLen      = 40
)

// CompanyConfig is a merchant's checkout configuration.
type CompanyConfig struct {
	ID           uuid.UUID `json:"-"`
	CompanyID    string    `json:"companyId"`
	Headline     string    `json:"headline"`
	Subheadline  string    `json:"subheadline"`
	CTAText      string    `json:"ctaText"`
	BasePlanID   string    `json:"basePlanId"`
	RedirectURL  *string   `json:"redirectUrl"`
	WebhookURL   *string   `json:"webhookUrl,omitempty"`
	AllowPrefill bool      `json:"allowPrefill"`
	Theme        Theme     `json:"theme"`
	Accent       Accent    `json:"accent"`
	ShowBadges   bool      `json:"showBadges"`
	Bumps        []Bump    `json:"bumps"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// Bump is an order-bump upsell shown next to the checkout embed.
type Bump struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	PriceLabel      string       `json:"priceLabel"`
	PlanID          string       `json:"planId"`
	Badge           *string      `json:"badge"`
	HighlightColor  *string      `json:"highlightColor"`
	Position        BumpPosition `json:"position"`
	DefaultSelected bool         `json:"defaultSelected"`
	SortIndex       int          `json:"sortIndex"`
}

// WebhookConfig extracts the forwarding settings.
func (c *CompanyConfig) WebhookConfig() *MerchantWebhookConfig {
	return &MerchantWebhookConfig{CompanyID: c.CompanyID, WebhookURL: c.WebhookURL}
}

// Public returns a copy safe to serve on the checkout page.
func (c *CompanyConfig) Public() CompanyConfig {
	pub := *c
	pub.WebhookURL = nil
	pub.Bumps = make([]Bump, len(c.Bumps))
	copy(pub.Bumps, c.Bumps)
	return pub
}
