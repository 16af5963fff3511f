package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"hosted-checkout/internal/core/ports"
)

// Standard Webhooks header names.
const (
	HeaderWebhookID        = "webhook-id"
	HeaderWebhookTimestamp = "webhook-timestamp"
	HeaderWebhookSignature = "webhook-signature"
)

const (
	webhookSecretPrefix     = "whsec_"
	webhookSignatureVersion = "v1"
	DefaultWebhookTolerance = 5 * time.Minute
)

var (
	ErrWebhookMissingHeaders = errors.New("webhook: missing signature headers")
	ErrWebhookTimestamp      = errors.New("webhook: timestamp outside tolerance")
	ErrWebhookSignature      = errors.New("webhook: no matching signature")
	ErrWebhookPayload        = errors.New("webhook: malformed payload")
)

// platformEnvelope is the subset of a platform event this service reads.
type platformEnvelope struct {
	Type string `json:"type"`
	Data struct {
		ID        string `json:"id"`
		CompanyID string `json:"company_id"`
		Company   *struct {
			ID string `json:"id"`
		} `json:"company"`
		User *struct {
			ID string `json:"id"`
		} `json:"user"`
	} `json:"data"`
}

// StandardWebhookVerifier implements ports.PlatformWebhookVerifier for the
// Standard Webhooks signing scheme (HMAC-SHA256 over "<id>.<timestamp>.<body>").
type StandardWebhookVerifier struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewStandardWebhookVerifier accepts either a "whsec_"-prefixed base64 secret
// or a raw shared secret.
func NewStandardWebhookVerifier(secret string) (*StandardWebhookVerifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("webhook secret is empty")
	}
	key := []byte(secret)
	if strings.HasPrefix(secret, webhookSecretPrefix) {
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, webhookSecretPrefix))
		if err != nil {
			return nil, fmt.Errorf("decoding webhook secret: %w", err)
		}
		key = decoded
	}
	return &StandardWebhookVerifier{
		secret:    key,
		tolerance: DefaultWebhookTolerance,
		now:       time.Now,
	}, nil
}

// Sign produces the v1 signature for a message. Used by tests and tooling.
func (v *StandardWebhookVerifier) Sign(msgID string, ts time.Time, body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(msgID + "." + strconv.FormatInt(ts.Unix(), 10) + "."))
	mac.Write(body)
	return webhookSignatureVersion + "," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Unwrap verifies the signature headers and decodes the event.
func (v *StandardWebhookVerifier) Unwrap(msgID, timestamp, signature string, body []byte) (*ports.PlatformEvent, error) {
	if msgID == "" || timestamp == "" || signature == "" {
		return nil, ErrWebhookMissingHeaders
	}

	sec, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return nil, ErrWebhookTimestamp
	}
	skew := v.now().Sub(time.Unix(sec, 0))
	if math.Abs(float64(skew)) > float64(v.tolerance) {
		return nil, ErrWebhookTimestamp
	}

	expected := v.Sign(msgID, time.Unix(sec, 0), body)
	matched := false
	for _, candidate := range strings.Fields(signature) {
		if hmac.Equal([]byte(candidate), []byte(expected)) {
			matched = true
			break
		}
	}
	if !matched {
		return nil, ErrWebhookSignature
	}

	var env platformEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWebhookPayload, err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("%w: missing type", ErrWebhookPayload)
	}

	ev := &ports.PlatformEvent{
		ID:        msgID,
		Type:      env.Type,
		DataID:    env.Data.ID,
		CompanyID: env.Data.CompanyID,
	}
	if ev.CompanyID == "" && env.Data.Company != nil {
		ev.CompanyID = env.Data.Company.ID
	}
	if env.Data.User != nil {
		ev.UserID = env.Data.User.ID
	}
	return ev, nil
}
