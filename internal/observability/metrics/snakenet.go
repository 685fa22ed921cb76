// Package metrics provides custom Prometheus metrics for the SnakeID-Go application.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// SnakeNetMetrics contains all Prometheus metrics related to image classification.
type SnakeNetMetrics struct {
	IdentificationCounter *prometheus.CounterVec
	PredictionDuration    prometheus.Histogram
	PredictionErrors      prometheus.Counter
	FallbackTotal         prometheus.Counter
	NoMatchTotal          prometheus.Counter
	ModelLoadedGauge      prometheus.Gauge

	registry *prometheus.Registry
}

// NewSnakeNetMetrics creates a new instance of SnakeNetMetrics.
// It requires a Prometheus registry to register the metrics.
func NewSnakeNetMetrics(registry *prometheus.Registry) (*SnakeNetMetrics, error) {
	m := &SnakeNetMetrics{registry: registry}
	if err := m.initMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize SnakeNet metrics: %w", err)
	}
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register SnakeNet metrics: %w", err)
	}
	return m, nil
}

func (m *SnakeNetMetrics) initMetrics() error {
	m.IdentificationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snakenet_identifications_total",
			Help: "Total number of snake identifications partitioned by species name.",
		},
		[]string{"species"},
	)

	m.PredictionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "snakenet_prediction_duration_seconds",
		Help:    "Time taken to classify an image",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
	})

	m.PredictionErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "snakenet_prediction_errors_total",
		Help: "Total number of failed classification attempts",
	})

	m.FallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "snakenet_fallback_total",
		Help: "Total number of identifications resolved by the conservative fallback",
	})

	m.NoMatchTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "snakenet_no_match_total",
		Help: "Total number of images judged to not contain a snake",
	})

	m.ModelLoadedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "snakenet_model_loaded",
		Help: "Whether the classification model is loaded (1) or not (0)",
	})

	return nil
}

// RecordIdentification increments the identification counter for a species.
func (m *SnakeNetMetrics) RecordIdentification(species string) {
	m.IdentificationCounter.WithLabelValues(species).Inc()
}

// ObservePredictionDuration records the duration of a classification.
func (m *SnakeNetMetrics) ObservePredictionDuration(seconds float64) {
	m.PredictionDuration.Observe(seconds)
}

// IncrementPredictionErrors increments the failed classification counter.
func (m *SnakeNetMetrics) IncrementPredictionErrors() {
	m.PredictionErrors.Inc()
}

// IncrementFallback increments the conservative fallback counter.
func (m *SnakeNetMetrics) IncrementFallback() {
	m.FallbackTotal.Inc()
}

// IncrementNoMatch increments the no-snake-detected counter.
func (m *SnakeNetMetrics) IncrementNoMatch() {
	m.NoMatchTotal.Inc()
}

// SetModelLoaded updates the model loaded gauge.
func (m *SnakeNetMetrics) SetModelLoaded(loaded bool) {
	if loaded {
		m.ModelLoadedGauge.Set(1)
	} else {
		m.ModelLoadedGauge.Set(0)
	}
}

// Collect implements the prometheus.Collector interface.
func (m *SnakeNetMetrics) Collect(ch chan<- prometheus.Metric) {
	m.IdentificationCounter.Collect(ch)
	ch <- m.PredictionDuration
	ch <- m.PredictionErrors
	ch <- m.FallbackTotal
	ch <- m.NoMatchTotal
	ch <- m.ModelLoadedGauge
}

// Describe implements the prometheus.Collector interface.
func (m *SnakeNetMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.IdentificationCounter.Describe(ch)
	ch <- m.PredictionDuration.Desc()
	ch <- m.PredictionErrors.Desc()
	ch <- m.FallbackTotal.Desc()
	ch <- m.NoMatchTotal.Desc()
	ch <- m.ModelLoadedGauge.Desc()
}
