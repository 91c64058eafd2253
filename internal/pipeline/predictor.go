package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spacesedan/review-analyzer/config"
	"github.com/spacesedan/review-analyzer/internal/cache"
	"github.com/spacesedan/review-analyzer/internal/classifiers"
	"github.com/spacesedan/review-analyzer/internal/clients"
	"github.com/spacesedan/review-analyzer/internal/sentiment"
)

// Predictor bundles the prediction pipeline shared by the HTTP service and
// the Kafka worker with the resources it holds.
type Predictor struct {
	*sentiment.Predictor
	Classifier sentiment.Classifier

	closers []func()
}

// NewPredictor loads the configured classifier. A classifier that fails to
// load does not fail startup; only a bad label table or cache setup does.
func NewPredictor(ctx context.Context, cfg config.Config) (*Predictor, error) {
	var opts []sentiment.Option
	p := &Predictor{}

	if cfg.Classifier.LabelGroupsFile != "" {
		groups, err := sentiment.LoadLabelGroups(cfg.Classifier.LabelGroupsFile)
		if err != nil {
			return nil, err
		}
		slog.Info("[Pipeline] Using custom label groups",
			slog.String("file", cfg.Classifier.LabelGroupsFile))
		opts = append(opts, sentiment.WithLabelGroups(groups))
	}

	if cfg.Classifier.StripMarkdown {
		opts = append(opts, sentiment.WithPreprocessor(sentiment.PlainText))
	}

	resultCache, err := p.newCache(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}
	if resultCache != nil {
		opts = append(opts, sentiment.WithCache(resultCache, cfg.Classifier.Backend+":"+cfg.Classifier.ModelName))
	}

	classifier, loadErr := classifiers.Load(ctx, cfg.Classifier)
	if closer, ok := classifier.(io.Closer); ok {
		p.closers = append(p.closers, func() {
			if err := closer.Close(); err != nil {
				slog.Warn("[Pipeline] Failed to close classifier", slog.String("error", err.Error()))
			}
		})
	}

	p.Classifier = classifier
	p.Predictor = sentiment.NewPredictor(classifier, loadErr, opts...)
	return p, nil
}

func (p *Predictor) newCache(ctx context.Context, cfg config.Cache) (sentiment.Cache, error) {
	switch cfg.Backend {
	case config.CacheMemory:
		slog.Info("[Pipeline] Using in-memory result cache", slog.Duration("ttl", cfg.TTL))
		return cache.NewMemoryCache(cfg.TTL), nil
	case config.CacheValkey:
		client, err := clients.NewValkeyClient(ctx, cfg.ValkeyAddress, cfg.ValkeyPassword, cfg.ValkeyTLS)
		if err != nil {
			return nil, fmt.Errorf("failed to connect result cache: %w", err)
		}
		p.closers = append(p.closers, client.Close)
		slog.Info("[Pipeline] Using valkey result cache", slog.Duration("ttl", cfg.TTL))
		return cache.NewValkeyCache(client, cfg.TTL), nil
	default:
		return nil, nil
	}
}

func (p *Predictor) Close() {
	for i := len(p.closers) - 1; i >= 0; i-- {
		p.closers[i]()
	}
}
