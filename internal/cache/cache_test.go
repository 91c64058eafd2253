package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spacesedan/review-analyzer/internal/models"
	"github.com/stretchr/testify/assert"
)

var sample = models.PredictionResult{Sentiment: "positive", Label: "joy", Confidence: 0.9123}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	c.Set(ctx, "k", sample)
	got, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, sample, got)
}

func TestMemoryCache_Expires(t *testing.T) {
	c := NewMemoryCache(10 * time.Millisecond)
	c.Set(context.Background(), "k", sample)

	assert.Eventually(t, func() bool {
		_, ok := c.Get(context.Background(), "k")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

type fakeStore struct {
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	f.ttls[key] = ttl
	return nil
}

func TestValkeyCache_RoundTrip(t *testing.T) {
	store := newFakeStore()
	c := NewValkeyCache(store, time.Hour)
	ctx := context.Background()

	c.Set(ctx, "k", sample)
	got, ok := c.Get(ctx, "k")

	assert.True(t, ok)
	assert.Equal(t, sample, got)
	assert.JSONEq(t, `{"sentiment":"positive","label":"joy","confidence":0.9123}`, store.data["k"])
	assert.Equal(t, time.Hour, store.ttls["k"])
}

func TestValkeyCache_FailuresAreMisses(t *testing.T) {
	store := newFakeStore()
	store.data["bad"] = "not json"
	c := NewValkeyCache(store, time.Hour)
	ctx := context.Background()

	_, ok := c.Get(ctx, "bad")
	assert.False(t, ok)

	store.getErr = errors.New("connection refused")
	_, ok = c.Get(ctx, "bad")
	assert.False(t, ok)

	store.setErr = errors.New("connection refused")
	c.Set(ctx, "k", sample)
	assert.NotContains(t, store.data, "k")
}
