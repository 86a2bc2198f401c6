package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the coverage engine
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBQueryDuration prometheus.HistogramVec

	// Coverage Metrics
	CoverageComputationsTotal prometheus.Counter
	SnapshotsWrittenTotal     prometheus.Counter
	SnapshotFailuresTotal     prometheus.Counter
	AlertsGeneratedTotal      prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coverage_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coverage_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "coverage_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coverage_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		CoverageComputationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "coverage_computations_total",
				Help: "Total event-route coverage records computed",
			},
		),
		SnapshotsWrittenTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "coverage_snapshots_written_total",
				Help: "Total coverage snapshots persisted to cobertura_real",
			},
		),
		SnapshotFailuresTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "coverage_snapshot_failures_total",
				Help: "Snapshot or alert writes that failed and were skipped",
			},
		),
		AlertsGeneratedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coverage_alerts_generated_total",
				Help: "Coverage alerts persisted, by alert kind",
			},
			[]string{"kind"},
		),
	}
}
