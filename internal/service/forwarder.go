package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hosted-checkout/internal/core/domain"
	"hosted-checkout/internal/core/ports"
	"hosted-checkout/pkg/apperror"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Delivery policy defaults.
const (
	DefaultMaxAttempts    = 3
	DefaultBaseDelay      = 300 * time.Millisecond
	DefaultRequestTimeout = 10 * time.Second
	DefaultLockTTL        = 45 * time.Second
)

// Headers set on outbound requests when signing is enabled.
const (
	HeaderForwardTimestamp = "X-Checkout-Timestamp"
	HeaderForwardSignature = "X-Checkout-Signature"
)

// Forward outcomes reported to metrics.
const (
	OutcomeDelivered        = "delivered"
	OutcomeExhausted        = "exhausted"
	OutcomeNotConfigured    = "not_configured"
	OutcomeAlreadyDelivered = "already_delivered"
	OutcomeBusy             = "busy"
	OutcomeInterrupted      = "interrupted"
)

const (
	maxBackoffShift  = 16
	maxDrainBodySize = 64 << 10
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ForwarderOptions tunes a Forwarder. Zero values fall back to the defaults.
type ForwarderOptions struct {
	MaxAttempts    int
	BaseDelay      time.Duration
	RequestTimeout time.Duration
	LockTTL        time.Duration
	SigningSecret  string
}

func (o ForwarderOptions) withDefaults() ForwarderOptions {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.BaseDelay < 0 {
		o.BaseDelay = DefaultBaseDelay
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = DefaultRequestTimeout
	}
	if o.LockTTL <= 0 {
		o.LockTTL = DefaultLockTTL
	}
	return o
}

// forwardPayload is the JSON body posted to the merchant.
type forwardPayload struct {
	PaymentID string `json:"payment_id"`
	CompanyID string `json:"companyId"`
	Event     string `json:"event"`
}

// Forwarder implements ports.Forwarder.
//
// A call either short-circuits (not configured, already delivered, key busy)
// or runs the retry loop and performs exactly one terminal ledger write.
type Forwarder struct {
	configs    ports.WebhookConfigReader
	ledger     ports.DeliveryLedger
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	locker     ports.DeliveryLocker // nil = in-process exclusion only
	metrics    ports.ForwardMetrics
	opts       ForwarderOptions
	group      singleflight.Group
	sleep      func(ctx context.Context, d time.Duration) error
	now        func() time.Time
	log        zerolog.Logger
}

// NewForwarder creates a new Forwarder.
func NewForwarder(
	configs ports.WebhookConfigReader,
	ledger ports.DeliveryLedger,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	log zerolog.Logger,
	opts ForwarderOptions,
) *Forwarder {
	return &Forwarder{
		configs:    configs,
		ledger:     ledger,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		metrics:    nopForwardMetrics{},
		opts:       opts.withDefaults(),
		sleep:      sleepContext,
		now:        time.Now,
		log:        log,
	}
}

// WithLocker attaches a cross-process lease on delivery keys.
func (f *Forwarder) WithLocker(locker ports.DeliveryLocker) *Forwarder {
	f.locker = locker
	return f
}

// WithMetrics attaches a metrics sink.
func (f *Forwarder) WithMetrics(metrics ports.ForwardMetrics) *Forwarder {
	if metrics != nil {
		f.metrics = metrics
	}
	return f
}

// Forward delivers one payment event to the merchant's webhook URL.
// Concurrent calls for the same key share a single execution.
func (f *Forwarder) Forward(ctx context.Context, req ports.ForwardRequest) (*domain.DeliveryOutcome, error) {
	key, err := normalizeForwardRequest(req)
	if err != nil {
		return nil, err
	}

	v, err, shared := f.group.Do(key.String(), func() (interface{}, error) {
		return f.forward(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		f.log.Debug().Str("delivery_key", key.String()).Msg("forward: joined in-flight delivery")
	}

	outcome := *v.(*domain.DeliveryOutcome)
	return &outcome, nil
}

func normalizeForwardRequest(req ports.ForwardRequest) (domain.DeliveryKey, error) {
	key := domain.DeliveryKey{
		PaymentID: strings.TrimSpace(req.PaymentID),
		CompanyID: strings.TrimSpace(req.CompanyID),
		Event:     strings.TrimSpace(req.Event),
	}
	if key.PaymentID == "" || key.CompanyID == "" {
		return key, apperror.ErrMissingIdentifiers()
	}
	if key.Event == "" {
		key.Event = domain.DefaultEvent
	}
	return key, nil
}

func (f *Forwarder) forward(ctx context.Context, key domain.DeliveryKey) (*domain.DeliveryOutcome, error) {
	log := f.log.With().
		Str("payment_id", key.PaymentID).
		Str("company_id", key.CompanyID).
		Str("event", key.Event).
		Logger()

	cfg, err := f.configs.GetWebhookConfig(ctx, key.CompanyID)
	if err != nil {
		log.Error().Err(err).Msg("forward: failed to load webhook config")
		return nil, apperror.ErrDatabaseError(err)
	}
	if !cfg.Enabled() {
		log.Debug().Msg("forward: no webhook URL configured, skipping")
		f.metrics.Outcome(OutcomeNotConfigured)
		return &domain.DeliveryOutcome{OK: true, Skipped: true}, nil
	}

	if f.locker != nil {
		token, acquired, err := f.locker.Acquire(ctx, key.String(), f.opts.LockTTL)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("forward: delivery lock unavailable, continuing without it (degraded mode)")
		case !acquired:
			return f.busyOutcome(ctx, key, log)
		default:
			defer func() {
				if err := f.locker.Release(context.WithoutCancel(ctx), key.String(), token); err != nil {
					log.Warn().Err(err).Msg("forward: failed to release delivery lock")
				}
			}()
		}
	}

	existing, err := f.ledger.Get(ctx, key)
	if err != nil {
		log.Error().Err(err).Msg("forward: failed to load delivery record")
		return nil, apperror.ErrDatabaseError(err)
	}
	if existing.IsDelivered() {
		log.Debug().Int("attempts", existing.Attempts).Msg("forward: already delivered, skipping")
		f.metrics.Outcome(OutcomeAlreadyDelivered)
		return &domain.DeliveryOutcome{OK: true, Attempts: existing.Attempts, Skipped: true}, nil
	}

	return f.deliver(ctx, key, *cfg.WebhookURL, existing, log), nil
}

// busyOutcome reports the ledger state while another process owns the key.
func (f *Forwarder) busyOutcome(ctx context.Context, key domain.DeliveryKey, log zerolog.Logger) (*domain.DeliveryOutcome, error) {
	existing, err := f.ledger.Get(ctx, key)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if existing.IsDelivered() {
		f.metrics.Outcome(OutcomeAlreadyDelivered)
		return &domain.DeliveryOutcome{OK: true, Attempts: existing.Attempts, Skipped: true}, nil
	}

	status := domain.DeliveryStatusPending
	attempts := 0
	if existing != nil {
		status = existing.Status
		attempts = existing.Attempts
	}
	log.Info().Str("status", status).Msg("forward: delivery in progress elsewhere, skipping")
	f.metrics.Outcome(OutcomeBusy)
	return &domain.DeliveryOutcome{OK: false, Status: status, Attempts: attempts, Skipped: true}, nil
}

// deliver runs the retry loop, resuming from the ledger's attempt count.
func (f *Forwarder) deliver(
	ctx context.Context,
	key domain.DeliveryKey,
	url string,
	existing *domain.DeliveryRecord,
	log zerolog.Logger,
) *domain.DeliveryOutcome {
	attempts := 0
	lastStatus := domain.DeliveryStatusPending
	if existing != nil {
		attempts = existing.Attempts
		lastStatus = existing.Status
	}

	body, err := json.Marshal(forwardPayload{
		PaymentID: key.PaymentID,
		CompanyID: key.CompanyID,
		Event:     key.Event,
	})
	if err != nil {
		// Ledger is left untouched.
		log.Error().Err(err).Msg("forward: failed to marshal payload")
		return &domain.DeliveryOutcome{OK: false, Status: domain.DeliveryStatusError, Attempts: attempts}
	}

	for ; attempts < f.opts.MaxAttempts; attempts++ {
		if delay := f.backoff(attempts); delay > 0 {
			if err := f.sleep(ctx, delay); err != nil {
				log.Warn().Err(err).Int("attempt", attempts+1).Msg("forward: interrupted while waiting to retry")
				f.record(ctx, key, lastStatus, attempts, log)
				f.metrics.Outcome(OutcomeInterrupted)
				return &domain.DeliveryOutcome{OK: false, Status: lastStatus, Attempts: attempts}
			}
		}

		start := time.Now()
		code, err := f.attempt(ctx, url, key.CompanyID, body)
		if err != nil {
			lastStatus = domain.DeliveryStatusError
			f.metrics.AttemptCompleted(attempts+1, "error", time.Since(start))
			log.Error().Err(err).
				Int("attempt", attempts+1).
				Str("webhook_url", url).
				Msg("forward: delivery failed")
			continue
		}

		lastStatus = domain.HTTPStatusString(code)
		f.metrics.AttemptCompleted(attempts+1, statusClass(code), time.Since(start))

		if code >= 200 && code < 300 {
			f.record(ctx, key, domain.DeliveryStatusSuccess, attempts+1, log)
			f.metrics.Outcome(OutcomeDelivered)
			log.Info().Int("attempt", attempts+1).Int("status", code).Msg("forward: delivered")
			return &domain.DeliveryOutcome{OK: true, Attempts: attempts + 1}
		}

		log.Warn().Int("attempt", attempts+1).Int("status", code).Msg("forward: non-2xx response")
	}

	f.record(ctx, key, lastStatus, attempts, log)
	f.metrics.Outcome(OutcomeExhausted)
	log.Error().Int("attempts", attempts).Str("status", lastStatus).Msg("forward: all attempts exhausted")
	return &domain.DeliveryOutcome{OK: false, Status: lastStatus, Attempts: attempts}
}

// backoff returns the wait before attempt index i (0-based, across invocations).
func (f *Forwarder) backoff(i int) time.Duration {
	if i <= 0 {
		return 0
	}
	shift := i - 1
	if shift > maxBackoffShift {
		shift = maxBackoffShift
	}
	return f.opts.BaseDelay << shift
}

// attempt performs one POST and returns the response status code.
func (f *Forwarder) attempt(ctx context.Context, url, companyID string, body []byte) (int, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.opts.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := f.sign(req, companyID, body); err != nil {
		return 0, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("send: %w", err)
	}
	if resp.Body != nil {
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBodySize))
	}
	return resp.StatusCode, nil
}

// sign adds the timestamped HMAC headers when a signing secret is configured.
func (f *Forwarder) sign(req *http.Request, companyID string, body []byte) error {
	if f.opts.SigningSecret == "" || f.sigSvc == nil {
		return nil
	}
	key, err := f.sigSvc.DeriveKey(f.opts.SigningSecret, companyID)
	if err != nil {
		return fmt.Errorf("derive signing key: %w", err)
	}
	ts := strconv.FormatInt(f.now().Unix(), 10)
	req.Header.Set(HeaderForwardTimestamp, ts)
	req.Header.Set(HeaderForwardSignature, "sha256="+f.sigSvc.Sign(key, ts+"."+string(body)))
	return nil
}

// record upserts the terminal state of this invocation. Write failures are
// logged only: the caller still gets the delivery result.
func (f *Forwarder) record(ctx context.Context, key domain.DeliveryKey, status string, attempts int, log zerolog.Logger) {
	now := f.now().UTC()
	err := f.ledger.Upsert(context.WithoutCancel(ctx), &domain.DeliveryRecord{
		PaymentID: key.PaymentID,
		CompanyID: key.CompanyID,
		Event:     key.Event,
		Status:    status,
		Attempts:  attempts,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Error().Err(err).Str("status", status).Int("attempts", attempts).Msg("forward: failed to persist delivery record")
	}
}

func statusClass(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type nopForwardMetrics struct{}

func (nopForwardMetrics) AttemptCompleted(int, string, time.Duration) {}
func (nopForwardMetrics) Outcome(string)                              {}
