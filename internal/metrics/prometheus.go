package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Worker metrics
	WorkerExecutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "athena_worker_executions_total",
			Help: "Total number of worker executions",
		},
		[]string{"worker", "status"}, // status: success|error
	)

	WorkerDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "athena_worker_duration_seconds",
			Help:    "Worker execution duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"worker"},
	)

	// Derivation metrics
	FramesComputed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "athena_frames_computed_total",
			Help: "Total derived indicator frames computed",
		},
		[]string{"status"}, // status: success|error
	)

	FrameRowsWritten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "athena_frame_rows_written_total",
			Help: "Total derived rows persisted",
		},
	)

	PatternRunsComputed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "athena_pattern_runs_total",
			Help: "Total pattern classification runs",
		},
		[]string{"status"},
	)

	ClassifierFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "athena_classifier_failures_total",
			Help: "Pattern classifier failures, isolated per classifier",
		},
		[]string{"classifier"},
	)
)

// Init registers all metrics with the default registry
func Init() {
	prometheus.MustRegister(
		WorkerExecutions,
		WorkerDuration,
		FramesComputed,
		FrameRowsWritten,
		PatternRunsComputed,
		ClassifierFailures,
	)
}

// Handler returns the Prometheus scrape handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordWorkerExecution records one worker iteration
func RecordWorkerExecution(worker string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	WorkerExecutions.WithLabelValues(worker, status).Inc()
	WorkerDuration.WithLabelValues(worker).Observe(duration.Seconds())
}
