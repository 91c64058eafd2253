package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordPrediction(t *testing.T) {
	before := testutil.ToFloat64(predictionsTotal.WithLabelValues("positive"))

	RecordPrediction("positive", 15*time.Millisecond)
	RecordPrediction("positive", 20*time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(predictionsTotal.WithLabelValues("positive")))
	assert.Equal(t, 1, testutil.CollectAndCount(predictionDuration, "prediction_duration_seconds"))
}

func TestRecordFailure(t *testing.T) {
	beforeUnavailable := testutil.ToFloat64(predictionFailuresTotal.WithLabelValues(ReasonModelUnavailable))
	beforeInvalid := testutil.ToFloat64(predictionFailuresTotal.WithLabelValues(ReasonInvalidInput))

	RecordFailure(ReasonModelUnavailable)

	assert.Equal(t, beforeUnavailable+1, testutil.ToFloat64(predictionFailuresTotal.WithLabelValues(ReasonModelUnavailable)))
	assert.Equal(t, beforeInvalid, testutil.ToFloat64(predictionFailuresTotal.WithLabelValues(ReasonInvalidInput)))
}
