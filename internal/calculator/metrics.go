package calculator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Evaluation outcomes used as the status label.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusCanceled = "canceled"
)

// unknownOperationLabel keeps arbitrary client input out of label values.
const unknownOperationLabel = "unknown"

var (
	evaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "digitcalc_evaluations_total",
			Help: "Number of evaluations by operation and outcome",
		},
		[]string{"operation", "status"},
	)
	evaluationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "digitcalc_evaluation_duration_seconds",
			Help:    "Evaluation latency by operation",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"operation"},
	)
)

func observe(operation, status string, d time.Duration) {
	evaluationsTotal.WithLabelValues(operation, status).Inc()
	if status == StatusOK {
		evaluationDuration.WithLabelValues(operation).Observe(d.Seconds())
	}
}
