package cache

import (
	"context"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spacesedan/review-analyzer/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type valkeyStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// ValkeyCache shares predictions between replicas. Store errors are logged
// and treated as a miss.
type ValkeyCache struct {
	store valkeyStore
	ttl   time.Duration
}

func NewValkeyCache(store valkeyStore, ttl time.Duration) *ValkeyCache {
	return &ValkeyCache{store: store, ttl: ttl}
}

func (v *ValkeyCache) Get(ctx context.Context, key string) (models.PredictionResult, bool) {
	raw, found, err := v.store.Get(ctx, key)
	if err != nil {
		slog.Warn("[ValkeyCache] Lookup failed", slog.String("error", err.Error()))
		return models.PredictionResult{}, false
	}
	if !found {
		return models.PredictionResult{}, false
	}

	var result models.PredictionResult
	if err := json.UnmarshalFromString(raw, &result); err != nil {
		slog.Warn("[ValkeyCache] Dropping undecodable entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return models.PredictionResult{}, false
	}
	return result, true
}

func (v *ValkeyCache) Set(ctx context.Context, key string, result models.PredictionResult) {
	raw, err := json.MarshalToString(result)
	if err != nil {
		return
	}
	if err := v.store.Set(ctx, key, raw, v.ttl); err != nil {
		slog.Warn("[ValkeyCache] Store failed", slog.String("error", err.Error()))
	}
}
