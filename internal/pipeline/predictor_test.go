package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spacesedan/review-analyzer/config"
	"github.com/spacesedan/review-analyzer/internal/sentiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vaderConfig() config.Config {
	return config.Config{
		Classifier: config.Classifier{Backend: config.BackendVader, ModelName: config.DefaultModelName},
		Cache:      config.Cache{Backend: config.CacheNone, TTL: time.Minute},
	}
}

func TestNewPredictor_Vader(t *testing.T) {
	p, err := NewPredictor(context.Background(), vaderConfig())
	require.NoError(t, err)
	defer p.Close()

	assert.True(t, p.Ready())
	result, err := p.Predict(context.Background(), "I love this, it is wonderful and amazing!")
	require.NoError(t, err)
	assert.Equal(t, sentiment.SentimentPositive, result.Sentiment)
	assert.Equal(t, "joy", result.Label)
}

func TestNewPredictor_MemoryCacheAndMarkdown(t *testing.T) {
	cfg := vaderConfig()
	cfg.Cache.Backend = config.CacheMemory
	cfg.Classifier.StripMarkdown = true

	p, err := NewPredictor(context.Background(), cfg)
	require.NoError(t, err)
	defer p.Close()

	first, err := p.Predict(context.Background(), "**Terrible**, awful and horrible service.")
	require.NoError(t, err)
	second, err := p.Predict(context.Background(), "**Terrible**, awful and horrible service.")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, sentiment.SentimentNegative, first.Sentiment)
}

func TestNewPredictor_LoadFailureDegrades(t *testing.T) {
	cfg := vaderConfig()
	cfg.Classifier.Backend = "unknown"

	p, err := NewPredictor(context.Background(), cfg)
	require.NoError(t, err)
	defer p.Close()

	assert.False(t, p.Ready())
	_, err = p.Predict(context.Background(), "anything")
	assert.ErrorIs(t, err, sentiment.ErrModelUnavailable)
}

func TestNewPredictor_BadLabelGroupsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groups.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o600))

	cfg := vaderConfig()
	cfg.Classifier.LabelGroupsFile = path

	_, err := NewPredictor(context.Background(), cfg)
	assert.Error(t, err)
}
