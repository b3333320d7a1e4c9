// Package metrics provides Prometheus metrics for the squad tools.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP timeouts for the optional /metrics listener.
const (
	readHeaderTimeout = 5 * time.Second
)

// Manager manages all Prometheus metrics for the squad tools.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Ingest metrics.
	playersParsed prometheus.Counter
	rowsSkipped   prometheus.Counter
	parseWarnings prometheus.Counter

	// Selection metrics.
	selectionsTotal   prometheus.Counter
	slotsUnfilled     prometheus.Counter
	selectionDuration prometheus.Histogram

	// Pool metrics.
	poolSize prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gaffer",
		subsystem:        "squad",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.playersParsed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_parsed_total",
		Help:      "Players successfully parsed from tables.",
	})
	m.rowsSkipped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_skipped_total",
		Help:      "Table rows skipped during parsing.",
	})
	m.parseWarnings = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "parse_warnings_total",
		Help:      "Soft warnings emitted while parsing tables.",
	})
	m.selectionsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "selections_total",
		Help:      "Team selections run.",
	})
	m.slotsUnfilled = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "slots_unfilled_total",
		Help:      "Formation slots left unfilled by selections.",
	})
	m.selectionDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "selection_duration_ms",
		Help:      "Wall time of one selection in milliseconds.",
		Buckets:   m.histogramBuckets,
	})
	m.poolSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pool_size",
		Help:      "Players currently held in the pool store.",
	})
}

// Package-level recording helpers on the global manager.

// RecordPlayersParsed counts players parsed from a table.
func RecordPlayersParsed(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.playersParsed.Add(float64(n))
	}
}

// RecordRowSkipped counts one skipped table row.
func RecordRowSkipped() {
	if globalManager.enabled {
		globalManager.rowsSkipped.Inc()
	}
}

// RecordParseWarning counts one parse warning.
func RecordParseWarning() {
	if globalManager.enabled {
		globalManager.parseWarnings.Inc()
	}
}

// RecordSelection counts a selection run and its duration.
func RecordSelection(durationMS float64) {
	if globalManager.enabled {
		globalManager.selectionsTotal.Inc()
		globalManager.selectionDuration.Observe(durationMS)
	}
}

// RecordSlotUnfilled counts one unfilled formation slot.
func RecordSlotUnfilled() {
	if globalManager.enabled {
		globalManager.slotsUnfilled.Inc()
	}
}

// UpdatePoolSize sets the pool-size gauge.
func UpdatePoolSize(n int) {
	if globalManager.enabled {
		globalManager.poolSize.Set(float64(n))
	}
}

// Handler returns an http.Handler serving the custom registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled. Intended for
// long batch runs; one-shot invocations simply never call it.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
