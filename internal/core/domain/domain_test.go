package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestDeliveryRecord_IsDelivered(t *testing.T) {
	tests := []struct {
		name   string
		record *DeliveryRecord
		want   bool
	}{
		{"nil", nil, false},
		{"pending", &DeliveryRecord{Status: DeliveryStatusPending}, false},
		{"error", &DeliveryRecord{Status: DeliveryStatusError}, false},
		{"http status", &DeliveryRecord{Status: "500"}, false},
		{"success", &DeliveryRecord{Status: DeliveryStatusSuccess}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.IsDelivered())
		})
	}
}

func TestDeliveryKey(t *testing.T) {
	r := &DeliveryRecord{PaymentID: "pay_1", CompanyID: "biz_1", Event: DefaultEvent}

	assert.Equal(t, DeliveryKey{PaymentID: "pay_1", CompanyID: "biz_1", Event: "payment.succeeded"}, r.Key())
	assert.Equal(t, "5:biz_1:5:pay_1:payment.succeeded", r.Key().String())
}

func TestDeliveryKey_StringIsUnambiguous(t *testing.T) {
	keys := []DeliveryKey{
		{CompanyID: "a:b", PaymentID: "c", Event: "e"},
		{CompanyID: "a", PaymentID: "b:c", Event: "e"},
		{CompanyID: "a", PaymentID: "b", Event: "c:e"},
		{CompanyID: "1:a", PaymentID: "b", Event: "e"},
		{CompanyID: "1", PaymentID: "a:1:b", Event: "e"},
	}

	seen := make(map[string]DeliveryKey, len(keys))
	for _, k := range keys {
		s := k.String()
		prev, dup := seen[s]
		assert.False(t, dup, "%+v and %+v both render as %q", prev, k, s)
		seen[s] = k
	}
}

func TestHTTPStatusString(t *testing.T) {
	assert.Equal(t, "200", HTTPStatusString(200))
	assert.Equal(t, "503", HTTPStatusString(503))
}

func TestMerchantWebhookConfig_Enabled(t *testing.T) {
	var nilCfg *MerchantWebhookConfig
	assert.False(t, nilCfg.Enabled())
	assert.False(t, (&MerchantWebhookConfig{CompanyID: "biz_1"}).Enabled())
	assert.False(t, (&MerchantWebhookConfig{CompanyID: "biz_1", WebhookURL: strPtr("")}).Enabled())
	assert.True(t, (&MerchantWebhookConfig{CompanyID: "biz_1", WebhookURL: strPtr("https://merchant.example/hook")}).Enabled())
}

func TestDeliveryOutcome_JSON(t *testing.T) {
	ok, err := json.Marshal(DeliveryOutcome{OK: true, Attempts: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(ok))

	failed, err := json.Marshal(DeliveryOutcome{OK: false, Status: "500", Attempts: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":false,"status":"500"}`, string(failed))
}

func TestCompanyConfig_PublicHidesWebhookURL(t *testing.T) {
	cfg := &CompanyConfig{
		CompanyID:  "biz_1",
		WebhookURL: strPtr("https://merchant.example/hook"),
		Bumps:      []Bump{{ID: "b1", Title: "Extra"}},
	}

	pub := cfg.Public()
	assert.Nil(t, pub.WebhookURL)
	assert.Len(t, pub.Bumps, 1)

	pub.Bumps[0].Title = "changed"
	assert.Equal(t, "Extra", cfg.Bumps[0].Title, "public copy must not alias bumps")

	body, err := json.Marshal(pub)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "webhookUrl")

	wh := cfg.WebhookConfig()
	assert.True(t, wh.Enabled())
	assert.Equal(t, "biz_1", wh.CompanyID)
}

func TestCompanyConfig_PublicEmptyBumpsIsArray(t *testing.T) {
	body, err := json.Marshal((&CompanyConfig{CompanyID: "biz_1"}).Public())
	require.NoError(t, err)
	assert.Contains(t, string(body), `"bumps":[]`)
}
