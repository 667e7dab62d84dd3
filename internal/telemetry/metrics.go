package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	QuoteFallbacks  *prometheus.CounterVec
	QuotesReturned  *prometheus.HistogramVec
}

// NewMetrics creates and registers Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipping_requests_total",
				Help: "Total number of requests by operation and status",
			},
			[]string{"operation", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shipping_request_duration_seconds",
				Help:    "Request duration in seconds by operation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		QuoteFallbacks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipping_quote_fallbacks_total",
				Help: "Total standard-rate fallbacks by gateway",
			},
			[]string{"gateway"},
		),
		QuotesReturned: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shipping_quotes_returned",
				Help:    "Number of shipping options returned per request",
				Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
			},
			[]string{"gateway"},
		),
	}
}

// RecordRequest records a request metric.
func (m *Metrics) RecordRequest(operation, status string, duration float64) {
	m.RequestsTotal.WithLabelValues(operation, status).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(duration)
}

// RecordFallback records a standard-rate fallback.
func (m *Metrics) RecordFallback(gateway string) {
	m.QuoteFallbacks.WithLabelValues(gateway).Inc()
}

// RecordQuotesReturned records how many options a request produced.
func (m *Metrics) RecordQuotesReturned(gateway string, count int) {
	m.QuotesReturned.WithLabelValues(gateway).Observe(float64(count))
}
