package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hosted-checkout/internal/adapter/http/handler"
	"hosted-checkout/internal/adapter/http/middleware"
	redisStore "hosted-checkout/internal/adapter/storage/redis"
	"hosted-checkout/internal/core/domain"
	"hosted-checkout/internal/metrics"
	"hosted-checkout/internal/service"
	"hosted-checkout/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookSecret = "platform-shared-secret"

type testApp struct {
	router   *gin.Engine
	configs  *testutil.MemoryConfigStore
	ledger   *testutil.MemoryLedger
	verifier *service.StandardWebhookVerifier
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zerolog.Nop()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	configs := testutil.NewMemoryConfigStore()
	ledger := testutil.NewMemoryLedger()
	sigSvc := service.NewHMACSignatureService()
	reg := prometheus.NewRegistry()
	sink := metrics.NewPrometheusSink(reg, log)

	fwd := service.NewForwarder(configs, ledger, sigSvc, &http.Client{}, log, service.ForwarderOptions{
		BaseDelay:      time.Millisecond,
		RequestTimeout: 2 * time.Second,
	}).
		WithLocker(redisStore.NewDeliveryLock(rdb)).
		WithMetrics(sink)

	verifier, err := service.NewStandardWebhookVerifier(webhookSecret)
	require.NoError(t, err)

	router := handler.SetupRouter(handler.RouterDeps{
		Forwarder:       fwd,
		ConfigSvc:       service.NewCompanyConfigManager(configs, sigSvc, "https://checkout.example.com", "", log),
		WebhookVerifier: verifier,
		PlatformEvents:  service.NewPlatformEventHandler(fwd, log),
		RateLimitStore:  redisStore.NewRateLimitStore(rdb),
		RateLimits: handler.RateLimits{
			Forward: middleware.RateLimitRule{Limit: 10, Window: time.Minute},
			Save:    middleware.RateLimitRule{Limit: 10, Window: time.Minute},
		},
		RequestMetrics: sink,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Logger:         log,
	})

	return &testApp{router: router, configs: configs, ledger: ledger, verifier: verifier}
}

func (a *testApp) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.9:40000"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// merchant counts calls and answers with the scripted status codes, then 200.
type merchant struct {
	*httptest.Server
	calls atomic.Int32
}

func newMerchant(t *testing.T, codes ...int) *merchant {
	t.Helper()
	m := &merchant{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		n := int(m.calls.Add(1))
		if n <= len(codes) {
			w.WriteHeader(codes[n-1])
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(m.Close)
	return m
}

const forwardBody = `{"payment_id":"pay_1","companyId":"biz_1","event":"payment.succeeded"}`

var forwardKey = domain.DeliveryKey{PaymentID: "pay_1", CompanyID: "biz_1", Event: "payment.succeeded"}

func TestAPI_ForwardNotConfigured(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodPost, "/api/automation/webhook", forwardBody, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Empty(t, app.ledger.Writes())
}

func TestAPI_ForwardRetriesThenDelivers(t *testing.T) {
	app := newTestApp(t)
	m := newMerchant(t, http.StatusServiceUnavailable)
	app.configs.SetWebhookURL("biz_1", m.URL)

	w := app.do(http.MethodPost, "/api/automation/webhook", forwardBody, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int32(2), m.calls.Load())
	rec := app.ledger.Record(forwardKey)
	require.NotNil(t, rec)
	assert.Equal(t, domain.DeliveryStatusSuccess, rec.Status)
	assert.Equal(t, 2, rec.Attempts)

	// A second trigger is answered from the ledger.
	w = app.do(http.MethodPost, "/api/automation/webhook", forwardBody, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int32(2), m.calls.Load())
}

func TestAPI_ForwardExhausted(t *testing.T) {
	app := newTestApp(t)
	m := newMerchant(t, 500, 500, 500)
	app.configs.SetWebhookURL("biz_1", m.URL)

	w := app.do(http.MethodPost, "/api/automation/webhook", forwardBody, nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"ok":false,"status":"500"}`, w.Body.String())
	assert.Equal(t, int32(3), m.calls.Load())
	assert.Equal(t, 3, app.ledger.Record(forwardKey).Attempts)
}

func TestAPI_ForwardMissingIdentifiers(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodPost, "/api/automation/webhook", `{"companyId":"biz_1"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(http.MethodPost, "/api/automation/webhook", `{`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_ForwardRateLimited(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusOK, app.do(http.MethodPost, "/api/automation/webhook", forwardBody, nil).Code)
	}
	w := app.do(http.MethodPost, "/api/automation/webhook", forwardBody, nil)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestAPI_ConcurrentForwardsDeliverOnce(t *testing.T) {
	app := newTestApp(t)
	m := newMerchant(t)
	app.configs.SetWebhookURL("biz_1", m.URL)

	var wg sync.WaitGroup
	codes := make([]int, 8)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = app.do(http.MethodPost, "/api/automation/webhook", forwardBody, nil).Code
		}(i)
	}
	wg.Wait()

	// Callers share the in-flight delivery or read it from the ledger.
	assert.Equal(t, int32(1), m.calls.Load())
	for _, code := range codes {
		assert.Contains(t, []int{http.StatusOK, http.StatusBadGateway}, code)
	}
	assert.Equal(t, domain.DeliveryStatusSuccess, app.ledger.Record(forwardKey).Status)
}

func TestAPI_SaveAndGetConfig(t *testing.T) {
	app := newTestApp(t)
	body := `{
		"headline": "  <b>Upgrade</b> now ",
		"basePlanId": "plan_abcdef",
		"webhookUrl": "https://merchant.example.com/hook",
		"bumps": [
			{"title":"Second","description":"d","priceLabel":"$2","planId":"plan_bump02","sortIndex":1},
			{"title":"First","description":"d","priceLabel":"$1","planId":"plan_bump01","sortIndex":0}
		]
	}`

	w := app.do(http.MethodPost, "/api/company/biz_1/save", body, map[string]string{middleware.HeaderCompanyID: "biz_1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var saved map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Equal(t, "Upgrade now", saved["headline"])
	assert.Equal(t, "https://merchant.example.com/hook", saved["webhookUrl"])
	assert.Equal(t, "https://checkout.example.com/checkout/biz_1", saved["checkoutUrl"])

	w = app.do(http.MethodGet, "/api/company/biz_1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var pub map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pub))
	assert.NotContains(t, pub, "webhookUrl")
	bumps := pub["bumps"].([]interface{})
	require.Len(t, bumps, 2)
	assert.Equal(t, "First", bumps[0].(map[string]interface{})["title"])
}

func TestAPI_SaveForbidden(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodPost, "/api/company/biz_1/save", `{"basePlanId":"plan_abcdef"}`,
		map[string]string{middleware.HeaderCompanyID: "biz_2"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAPI_GetConfigNotFound(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/api/company/biz_unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not found")
}

func TestAPI_PlatformWebhookForwardsPayment(t *testing.T) {
	app := newTestApp(t)
	m := newMerchant(t)
	app.configs.SetWebhookURL("biz_1", m.URL)

	body := []byte(`{"type":"payment.succeeded","data":{"id":"pay_1","company_id":"biz_1"}}`)
	now := time.Now()
	w := app.do(http.MethodPost, "/api/webhooks", string(body), map[string]string{
		service.HeaderWebhookID:        "msg_1",
		service.HeaderWebhookTimestamp: strconv.FormatInt(now.Unix(), 10),
		service.HeaderWebhookSignature: app.verifier.Sign("msg_1", now, body),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int32(1), m.calls.Load())
	assert.Equal(t, domain.DeliveryStatusSuccess, app.ledger.Record(forwardKey).Status)
}

func TestAPI_PlatformWebhookBadSignature(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodPost, "/api/webhooks", `{"type":"payment.succeeded"}`, map[string]string{
		service.HeaderWebhookID:        "msg_1",
		service.HeaderWebhookTimestamp: strconv.FormatInt(time.Now().Unix(), 10),
		service.HeaderWebhookSignature: "v1,Zm9yZ2Vk",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid signature"}`, w.Body.String())
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	app := newTestApp(t)
	app.do(http.MethodPost, "/api/automation/webhook", forwardBody, nil)

	w := app.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `hosted_checkout_forward_outcomes_total{outcome="not_configured"} 1`)
	assert.Contains(t, w.Body.String(), `hosted_checkout_http_requests_total{code="200",method="POST",route="/api/automation/webhook"} 1`)
}
