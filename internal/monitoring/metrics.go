package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ReasonModelUnavailable = "model_unavailable"
	ReasonInferenceFailed  = "inference_failed"
	ReasonInvalidInput     = "invalid_input"
)

var (
	predictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "predictions_total",
		Help: "Successful predictions by sentiment bucket.",
	}, []string{"sentiment"})

	predictionFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prediction_failures_total",
		Help: "Failed predictions by reason.",
	}, []string{"reason"})

	predictionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "prediction_duration_seconds",
		Help:    "Time spent producing a successful prediction.",
		Buckets: prometheus.DefBuckets,
	})
)

func RecordPrediction(sentiment string, elapsed time.Duration) {
	predictionsTotal.WithLabelValues(sentiment).Inc()
	predictionDuration.Observe(elapsed.Seconds())
}

func RecordFailure(reason string) {
	predictionFailuresTotal.WithLabelValues(reason).Inc()
}
