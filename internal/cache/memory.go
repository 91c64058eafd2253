package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/spacesedan/review-analyzer/internal/models"
)

// MemoryCache keeps predictions in process memory.
type MemoryCache struct {
	items *gocache.Cache
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{items: gocache.New(ttl, 2*ttl)}
}

func (m *MemoryCache) Get(_ context.Context, key string) (models.PredictionResult, bool) {
	v, ok := m.items.Get(key)
	if !ok {
		return models.PredictionResult{}, false
	}
	result, ok := v.(models.PredictionResult)
	return result, ok
}

func (m *MemoryCache) Set(_ context.Context, key string, result models.PredictionResult) {
	m.items.Set(key, result, gocache.DefaultExpiration)
}
