package domain

import (
	"strconv"
	"time"
)

// DefaultEvent is used when a forward request carries no event name.
const DefaultEvent = "payment.succeeded"

// Delivery status values. Any other value is an HTTP status code rendered as a string.
const (
	DeliveryStatusPending = "pending"
	DeliveryStatusSuccess = "success"
	DeliveryStatusError   = "error"
)

// DeliveryKey identifies one forwarding obligation.
type DeliveryKey struct {
	PaymentID string
	CompanyID string
	Event     string
}

// String renders the key for logs and lock names. The IDs are length-prefixed
// so distinct keys never render the same, whatever characters they contain.
func (k DeliveryKey) String() string {
	return strconv.Itoa(len(k.CompanyID)) + ":" + k.CompanyID + ":" +
		strconv.Itoa(len(k.PaymentID)) + ":" + k.PaymentID + ":" + k.Event
}

// DeliveryRecord is the ledger row for a delivery obligation.
// Once Status is "success" the row is terminal.
type DeliveryRecord struct {
	PaymentID string    `json:"payment_id"`
	CompanyID string    `json:"company_id"`
	Event     string    `json:"event"`
	Status    string    `json:"status"`
	Attempts  int       `json:"attempts"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Key returns the composite key of the record.
func (r *DeliveryRecord) Key() DeliveryKey {
	return DeliveryKey{PaymentID: r.PaymentID, CompanyID: r.CompanyID, Event: r.Event}
}

// IsDelivered reports whether the obligation has been fulfilled.
func (r *DeliveryRecord) IsDelivered() bool {
	return r != nil && r.Status == DeliveryStatusSuccess
}

// HTTPStatusString renders a response code the way it is stored in the ledger.
func HTTPStatusString(code int) string {
	return strconv.Itoa(code)
}

// DeliveryOutcome is what a forward invocation reports to its caller.
type DeliveryOutcome struct {
	OK       bool   `json:"ok"`
	Status   string `json:"status,omitempty"`
	Attempts int    `json:"-"`
	// Skipped is set when no outbound call was needed (not configured or already delivered).
	Skipped bool `json:"-"`
}

// MerchantWebhookConfig is the forwarding slice of a company's configuration.
type MerchantWebhookConfig struct {
	CompanyID  string
	WebhookURL *string
}

// Enabled reports whether the merchant opted in to forwarding.
func (c *MerchantWebhookConfig) Enabled() bool {
	return c != nil && c.WebhookURL != nil && *c.WebhookURL != ""
}
