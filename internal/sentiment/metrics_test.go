package sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spacesedan/review-analyzer/internal/models"
	"github.com/spacesedan/review-analyzer/internal/monitoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue reads a labelled counter from the default registry, 0 when the
// series does not exist yet.
func counterValue(t *testing.T, name, label, value string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if pair.GetName() == label && pair.GetValue() == value {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestPredict_RecordsMetrics(t *testing.T) {
	positive := counterValue(t, "predictions_total", "sentiment", SentimentPositive)
	unavailable := counterValue(t, "prediction_failures_total", "reason", monitoring.ReasonModelUnavailable)
	failed := counterValue(t, "prediction_failures_total", "reason", monitoring.ReasonInferenceFailed)

	ok := NewPredictor(&fakeClassifier{ranked: []models.Classification{{Label: "joy", Score: 0.9}}}, nil)
	_, err := ok.Predict(context.Background(), "yay")
	require.NoError(t, err)

	_, err = NewPredictor(nil, errors.New("no model")).Predict(context.Background(), "x")
	require.Error(t, err)

	_, err = NewPredictor(&fakeClassifier{err: errors.New("boom")}, nil).Predict(context.Background(), "x")
	require.Error(t, err)

	assert.Equal(t, positive+1, counterValue(t, "predictions_total", "sentiment", SentimentPositive))
	assert.Equal(t, unavailable+1, counterValue(t, "prediction_failures_total", "reason", monitoring.ReasonModelUnavailable))
	assert.Equal(t, failed+1, counterValue(t, "prediction_failures_total", "reason", monitoring.ReasonInferenceFailed))
}
