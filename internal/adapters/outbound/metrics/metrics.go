// Package metrics exposes Prometheus instrumentation for the validation
// endpoint and the validator process.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Validator run statuses.
const (
	RunOK          = "ok"
	RunNonZeroExit = "non_zero_exit"
	RunTimeout     = "timeout"
	RunSpawnError  = "spawn_error"
)

var (
	namespace = "cssbridge"

	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "validation_requests_total",
			Help:      "Validation requests by outcome",
		},
		[]string{"outcome"},
	)

	validatorRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "validator",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of validator process runs",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 3, 5, 7.5, 10, 15},
		},
		[]string{"status"},
	)

	tempFileCleanupErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "validator",
			Name:      "temp_file_cleanup_errors_total",
			Help:      "Temporary CSS files that could not be removed",
		},
	)
)

// RecordOutcome counts one finished validation request.
func RecordOutcome(outcome string) {
	requestsTotal.WithLabelValues(outcome).Inc()
}

// ObserveValidatorRun records the duration of one validator run.
func ObserveValidatorRun(status string, d time.Duration) {
	validatorRunDuration.WithLabelValues(status).Observe(d.Seconds())
}

// IncTempFileCleanupErrors counts a failed temp file removal.
func IncTempFileCleanupErrors() {
	tempFileCleanupErrors.Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
