package metrics

import (
	"testing"
	"time"

	"hosted-checkout/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

var (
	_ ports.ForwardMetrics = (*PrometheusSink)(nil)
	_ ports.ForwardMetrics = NoopSink{}
)

func newTestSink(t *testing.T) (*PrometheusSink, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewPrometheusSink(reg, zerolog.Nop()), reg
}

func TestPrometheusSink_Attempts(t *testing.T) {
	sink, reg := newTestSink(t)

	sink.AttemptCompleted(1, "5xx", 120*time.Millisecond)
	sink.AttemptCompleted(2, "2xx", 80*time.Millisecond)
	sink.AttemptCompleted(2, "2xx", 80*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(sink.deliveryAttemptsTotal.WithLabelValues("1", "5xx")))
	assert.Equal(t, 2.0, testutil.ToFloat64(sink.deliveryAttemptsTotal.WithLabelValues("2", "2xx")))
	assert.Equal(t, 1, testutil.CollectAndCount(sink.webhookDuration))

	n, err := testutil.GatherAndCount(reg, "hosted_checkout_forward_attempts_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPrometheusSink_Outcomes(t *testing.T) {
	sink, _ := newTestSink(t)

	sink.Outcome("delivered")
	sink.Outcome("delivered")
	sink.Outcome("exhausted")

	assert.Equal(t, 2.0, testutil.ToFloat64(sink.deliveryOutcomesTotal.WithLabelValues("delivered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.deliveryOutcomesTotal.WithLabelValues("exhausted")))
}

func TestPrometheusSink_Requests(t *testing.T) {
	sink, _ := newTestSink(t)

	sink.RequestObserved("POST", "/api/automation/webhook", 200, 10*time.Millisecond)
	sink.RequestObserved("GET", "", 404, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(sink.httpRequestsTotal.WithLabelValues("POST", "/api/automation/webhook", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.httpRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestPrometheusSink_DuplicateRegistrationIsTolerated(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = NewPrometheusSink(reg, zerolog.Nop())

	assert.NotPanics(t, func() {
		second := NewPrometheusSink(reg, zerolog.Nop())
		second.Outcome("delivered")
	})
}

func TestNoopSink(t *testing.T) {
	assert.NotPanics(t, func() {
		var s NoopSink
		s.AttemptCompleted(1, "2xx", time.Second)
		s.Outcome("delivered")
		s.RequestObserved("GET", "/", 200, time.Second)
	})
}
