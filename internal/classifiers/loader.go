package classifiers

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/spacesedan/review-analyzer/config"
	"github.com/spacesedan/review-analyzer/internal/models"
	"github.com/spacesedan/review-analyzer/internal/sentiment"
)

// Load builds the classifier selected by cfg.Backend. It never panics: any
// failure, including a panic inside a native runtime, is logged and returned
// so the caller can keep serving in a degraded state.
func Load(ctx context.Context, cfg config.Classifier) (classifier sentiment.Classifier, err error) {
	slog.Info("[ModelLoader] Loading model...",
		slog.String("backend", cfg.Backend),
		slog.String("model", cfg.ModelName))
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			classifier = nil
			err = fmt.Errorf("model loader panicked: %v", r)
		}
		if err != nil {
			slog.Error("[ModelLoader] Failed to load model",
				slog.String("backend", cfg.Backend),
				slog.String("model", cfg.ModelName),
				slog.String("error", err.Error()))
		}
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	classifier, err = newClassifier(cfg)
	if err != nil {
		return nil, err
	}

	slog.Info("[ModelLoader] Model loaded",
		slog.String("backend", cfg.Backend),
		slog.Duration("elapsed", time.Since(start)))
	return classifier, nil
}

func newClassifier(cfg config.Classifier) (sentiment.Classifier, error) {
	switch cfg.Backend {
	case config.BackendHugot:
		c, err := NewHugotClassifier(cfg.ModelName, cfg.ModelDir, cfg.OnnxFilename)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.BackendHuggingFace:
		return NewRemoteClassifier(cfg), nil
	case config.BackendOpenAI:
		c, err := NewOpenAIClassifier(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.BackendVader:
		return NewVaderClassifier(), nil
	default:
		return nil, fmt.Errorf("unknown classifier backend %q", cfg.Backend)
	}
}

// rankTopK sorts by descending score and keeps at most topK entries.
func rankTopK(ranked []models.Classification, topK int) []models.Classification {
	slices.SortStableFunc(ranked, func(a, b models.Classification) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}
