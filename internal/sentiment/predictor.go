package sentiment

import (
	"context"
	"crypto/sha256"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spacesedan/review-analyzer/internal/models"
	"github.com/spacesedan/review-analyzer/internal/monitoring"
)

// TopK is the number of labels requested from the classifier per review.
const TopK = 1

// Classifier is the inference contract every backend implements: given text,
// return at least one (label, score) pair ranked by descending score.
type Classifier interface {
	Classify(ctx context.Context, text string, topK int) ([]models.Classification, error)
}

type Cache interface {
	Get(ctx context.Context, key string) (models.PredictionResult, bool)
	Set(ctx context.Context, key string, result models.PredictionResult)
}

type Option func(*Predictor)

func WithLabelGroups(groups LabelGroups) Option {
	return func(p *Predictor) { p.groups = groups }
}

// WithCache enables result caching. namespace should identify the model so
// switching models never serves stale labels.
func WithCache(cache Cache, namespace string) Option {
	return func(p *Predictor) {
		p.cache = cache
		p.cacheNamespace = namespace
	}
}

func WithPreprocessor(fn func(string) string) Option {
	return func(p *Predictor) { p.preprocess = fn }
}

// Predictor turns a review into a bucketed sentiment. The classifier handle is
// set once at construction and may be nil when the model failed to load.
type Predictor struct {
	classifier     Classifier
	loadErr        error
	groups         LabelGroups
	cache          Cache
	cacheNamespace string
	preprocess     func(string) string
}

func NewPredictor(classifier Classifier, loadErr error, opts ...Option) *Predictor {
	p := &Predictor{
		classifier: classifier,
		loadErr:    loadErr,
		groups:     DefaultLabelGroups,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Predictor) Ready() bool {
	return p.classifier != nil
}

func (p *Predictor) Predict(ctx context.Context, text string) (models.PredictionResult, error) {
	start := time.Now()

	if p.classifier == nil {
		monitoring.RecordFailure(monitoring.ReasonModelUnavailable)
		if p.loadErr != nil {
			return models.PredictionResult{}, fmt.Errorf("%w: %w", ErrModelUnavailable, p.loadErr)
		}
		return models.PredictionResult{}, ErrModelUnavailable
	}

	key := p.cacheKey(text)
	if p.cache != nil {
		if cached, ok := p.cache.Get(ctx, key); ok {
			monitoring.RecordPrediction(cached.Sentiment, time.Since(start))
			return cached, nil
		}
	}

	input := text
	if p.preprocess != nil {
		input = p.preprocess(text)
	}

	ranked, err := p.classifier.Classify(ctx, input, TopK)
	if err != nil {
		monitoring.RecordFailure(monitoring.ReasonInferenceFailed)
		return models.PredictionResult{}, fmt.Errorf("%w: %w", ErrInferenceFailed, err)
	}
	if len(ranked) == 0 {
		monitoring.RecordFailure(monitoring.ReasonInferenceFailed)
		return models.PredictionResult{}, fmt.Errorf("%w: classifier returned no labels", ErrInferenceFailed)
	}

	top := lo.MaxBy(ranked, func(a, b models.Classification) bool {
		return a.Score > b.Score
	})
	if math.IsNaN(top.Score) || math.IsInf(top.Score, 0) {
		monitoring.RecordFailure(monitoring.ReasonInferenceFailed)
		return models.PredictionResult{}, fmt.Errorf("%w: invalid score %v for label %q", ErrInferenceFailed, top.Score, top.Label)
	}

	label := strings.ToLower(top.Label)
	result := models.PredictionResult{
		Sentiment:  p.groups.SentimentFor(label),
		Label:      label,
		Confidence: RoundConfidence(top.Score),
	}

	if p.cache != nil {
		p.cache.Set(ctx, key, result)
	}

	monitoring.RecordPrediction(result.Sentiment, time.Since(start))
	return result, nil
}

func (p *Predictor) cacheKey(text string) string {
	return fmt.Sprintf("prediction:%s:%x", p.cacheNamespace, sha256.Sum256([]byte(text)))
}
