// Package metrics provides Prometheus metrics for kata query evaluation.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Microsecond buckets for pipeline evaluation: the queries run over tiny
// in-memory datasets, so DefBuckets (seconds) would put everything in one bucket.
var defaultQueryBuckets = []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000, 5000}

// Manager owns the kata metrics and the registry they live on.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      prometheus.Labels
	registry         *prometheus.Registry

	queriesEvaluated *prometheus.CounterVec
	queryErrors      *prometheus.CounterVec
	queryDuration    *prometheus.HistogramVec
	runs             prometheus.Counter
	runDuration      prometheus.Histogram
	catalogSize      prometheus.Gauge
}

// Global metrics manager instance.
var globalManager = NewManager() //nolint:gochecknoglobals // intentional global for singleton metrics manager

// NewManager creates a metrics manager. Without WithPrometheusRegistry it
// registers on a fresh private registry, never on the default one.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "streamkata",
		subsystem:        "kata",
		histogramBuckets: defaultQueryBuckets,
		enabled:          true,
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

// Default returns the process-wide manager.
func Default() *Manager {
	return globalManager
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.queriesEvaluated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "queries_evaluated_total",
		Help:        "Total number of successfully evaluated queries by kata and query",
		ConstLabels: m.constLabels,
	}, []string{"kata", "query"})

	m.queryErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "query_errors_total",
		Help:        "Total number of failed query evaluations by kata and error kind",
		ConstLabels: m.constLabels,
	}, []string{"kata", "kind"})

	m.queryDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "query_duration_microseconds",
		Help:        "Histogram of query evaluation time in microseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"kata"})

	m.runs = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "runs_total",
		Help:        "Total number of catalog runs",
		ConstLabels: m.constLabels,
	})

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "run_duration_milliseconds",
		Help:        "Histogram of catalog run time in milliseconds",
		Buckets:     []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250},
		ConstLabels: m.constLabels,
	})

	m.catalogSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "catalog_size",
		Help:        "Number of queries registered in the catalog",
		ConstLabels: m.constLabels,
	})
}

// ObserveQuery records one successful evaluation of kata/query.
func (m *Manager) ObserveQuery(kata, query string, took time.Duration) {
	if !m.enabled {
		return
	}
	m.queriesEvaluated.WithLabelValues(kata, query).Inc()
	m.queryDuration.WithLabelValues(kata).Observe(float64(took) / float64(time.Microsecond))
}

// RecordQueryError records a failed evaluation. kind is a short error class
// such as "unknown" or "not_implemented".
func (m *Manager) RecordQueryError(kata, kind string) {
	if !m.enabled {
		return
	}
	m.queryErrors.WithLabelValues(kata, kind).Inc()
}

// ObserveRun records one complete catalog run.
func (m *Manager) ObserveRun(took time.Duration) {
	if !m.enabled {
		return
	}
	m.runs.Inc()
	m.runDuration.Observe(float64(took) / float64(time.Millisecond))
}

// SetCatalogSize sets the number of registered queries.
func (m *Manager) SetCatalogSize(n int) {
	if !m.enabled {
		return
	}
	m.catalogSize.Set(float64(n))
}

// Registry returns the registry the manager's metrics live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Snapshot gathers the registry and flattens it to one value per metric
// family: the summed value for counters and gauges, the summed observation
// count for histograms.
func (m *Manager) Snapshot() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrObserveFailed, err)
	}
	out := make(map[string]float64, len(families))
	for _, mf := range families {
		var total float64
		for _, metric := range mf.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				total += metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				total += metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				total += float64(metric.GetHistogram().GetSampleCount())
			}
		}
		out[mf.GetName()] = total
	}
	return out, nil
}
