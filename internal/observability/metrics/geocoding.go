package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// GeocodingMetrics contains all Prometheus metrics related to reverse geocoding.
type GeocodingMetrics struct {
	RequestsTotal   prometheus.Counter
	RequestErrors   prometheus.Counter
	RequestDuration prometheus.Histogram

	registry *prometheus.Registry
}

// NewGeocodingMetrics creates a new instance of GeocodingMetrics.
func NewGeocodingMetrics(registry *prometheus.Registry) (*GeocodingMetrics, error) {
	m := &GeocodingMetrics{registry: registry}
	if err := m.initMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize geocoding metrics: %w", err)
	}
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register geocoding metrics: %w", err)
	}
	return m, nil
}

func (m *GeocodingMetrics) initMetrics() error {
	m.RequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geocoding_requests_total",
		Help: "Total number of reverse geocoding requests",
	})

	m.RequestErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geocoding_request_errors_total",
		Help: "Total number of failed reverse geocoding requests",
	})

	m.RequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "geocoding_request_duration_seconds",
		Help:    "Time taken for reverse geocoding requests",
		Buckets: prometheus.DefBuckets,
	})

	return nil
}

// IncrementRequests increments the reverse geocoding request counter.
func (m *GeocodingMetrics) IncrementRequests() {
	m.RequestsTotal.Inc()
}

// IncrementErrors increments the failed request counter.
func (m *GeocodingMetrics) IncrementErrors() {
	m.RequestErrors.Inc()
}

// ObserveRequestDuration records the duration of a reverse geocoding request.
func (m *GeocodingMetrics) ObserveRequestDuration(seconds float64) {
	m.RequestDuration.Observe(seconds)
}

// Collect implements the prometheus.Collector interface.
func (m *GeocodingMetrics) Collect(ch chan<- prometheus.Metric) {
	ch <- m.RequestsTotal
	ch <- m.RequestErrors
	ch <- m.RequestDuration
}

// Describe implements the prometheus.Collector interface.
func (m *GeocodingMetrics) Describe(ch chan<- *prometheus.Desc) {
	ch <- m.RequestsTotal.Desc()
	ch <- m.RequestErrors.Desc()
	ch <- m.RequestDuration.Desc()
}
