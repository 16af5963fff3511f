// Package metrics exposes forwarder and HTTP activity to Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

const namespace = "hosted_checkout"

// PrometheusSink implements ports.ForwardMetrics and the HTTP request
// observer used by the router. Methods never block and never fail.
type PrometheusSink struct {
	deliveryAttemptsTotal *prometheus.CounterVec
	deliveryOutcomesTotal *prometheus.CounterVec
	webhookDuration       prometheus.Histogram

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	log zerolog.Logger
}

// NewPrometheusSink creates the collectors and registers them on reg.
// Registration failures are logged and the sink stays usable.
func NewPrometheusSink(reg prometheus.Registerer, log zerolog.Logger) *PrometheusSink {
	s := &PrometheusSink{log: log}
	s.initForwarderMetrics(reg)
	s.initHTTPMetrics(reg)
	return s
}

func (s *PrometheusSink) initForwarderMetrics(reg prometheus.Registerer) {
	s.deliveryAttemptsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forward_attempts_total",
		Help:      "Total number of outbound merchant webhook attempts.",
	}, []string{"attempt", "status_class"})

	s.deliveryOutcomesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forward_outcomes_total",
		Help:      "Total number of forward invocations by outcome.",
	}, []string{"outcome"})

	s.webhookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "forward_attempt_duration_seconds",
		Help:      "Merchant webhook request latency in seconds (excludes backoff wait).",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	s.register(reg, s.deliveryAttemptsTotal, "forward_attempts_total")
	s.register(reg, s.deliveryOutcomesTotal, "forward_outcomes_total")
	s.register(reg, s.webhookDuration, "forward_attempt_duration_seconds")
}

func (s *PrometheusSink) initHTTPMetrics(reg prometheus.Registerer) {
	s.httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by route and status code.",
	}, []string{"method", "route", "code"})

	s.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	s.register(reg, s.httpRequestsTotal, "http_requests_total")
	s.register(reg, s.httpRequestDuration, "http_request_duration_seconds")
}

func (s *PrometheusSink) register(reg prometheus.Registerer, c prometheus.Collector, name string) {
	if err := reg.Register(c); err != nil {
		s.log.Warn().Err(err).Str("metric", name).Msg("metrics: failed to register collector")
	}
}

// AttemptCompleted records one outbound attempt.
func (s *PrometheusSink) AttemptCompleted(attempt int, statusClass string, duration time.Duration) {
	s.deliveryAttemptsTotal.WithLabelValues(strconv.Itoa(attempt), statusClass).Inc()
	s.webhookDuration.Observe(duration.Seconds())
}

// Outcome records how a forward invocation ended.
func (s *PrometheusSink) Outcome(outcome string) {
	s.deliveryOutcomesTotal.WithLabelValues(outcome).Inc()
}

// RequestObserved records a served HTTP request. route is the matched route
// template, not the raw path, to keep label cardinality bounded.
func (s *PrometheusSink) RequestObserved(method, route string, code int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	s.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	s.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
