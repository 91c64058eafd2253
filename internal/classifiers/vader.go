package classifiers

import (
	"context"
	"math"

	"github.com/jonreiter/govader"
	"github.com/spacesedan/review-analyzer/internal/models"
	"github.com/spacesedan/review-analyzer/internal/sentiment"
)

const vaderThreshold = 0.20

// VaderClassifier is a lexicon-based fallback that needs no model download.
// It only ever emits joy, sadness or neutral.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderClassifier) Classify(ctx context.Context, text string, _ int) ([]models.Classification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	score := v.analyzer.PolarityScores(sentiment.PlainText(text)).Compound

	var result models.Classification
	switch {
	case score >= vaderThreshold:
		result = models.Classification{Label: "joy", Score: math.Abs(score)}
	case score <= -vaderThreshold:
		result = models.Classification{Label: "sadness", Score: math.Abs(score)}
	default:
		result = models.Classification{Label: "neutral", Score: 1 - math.Abs(score)}
	}

	return []models.Classification{result}, nil
}
