package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spacesedan/review-analyzer/config"
	"github.com/spacesedan/review-analyzer/internal/clients/kafka_client"
	"github.com/spacesedan/review-analyzer/internal/consumers"
	"github.com/spacesedan/review-analyzer/internal/logging"
	"github.com/spacesedan/review-analyzer/internal/monitoring"
	"github.com/spacesedan/review-analyzer/internal/pipeline"
	"golang.org/x/sync/errgroup"
)

const producerInitDelay = 5 * time.Second

func main() {
	config.LoadEnv(config.Environment())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.InitLogger(cfg.LogLevel, cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	predictor, err := pipeline.NewPredictor(ctx, cfg)
	if err != nil {
		slog.Error("[Main] Failed to build predictor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer predictor.Close()

	producer, err := newProducer(ctx, cfg.Kafka)
	if err != nil {
		slog.Error("[Main] Kafka producer unavailable", slog.String("error", err.Error()))
		return
	}
	defer producer.Close()

	consumer, err := kafka_client.NewConsumer(cfg.Kafka)
	if err != nil {
		slog.Error("[Main] Failed to start consumer", slog.String("error", err.Error()))
		return
	}
	defer consumer.Close()

	healthy := &atomic.Bool{}
	healthy.Store(true)

	g, ctx := errgroup.WithContext(ctx)
	if checker, ok := predictor.Classifier.(monitoring.HealthChecker); ok {
		g.Go(func() error {
			monitoring.MonitorClassifierHealth(ctx, checker, healthy)
			return nil
		})
	}
	if cfg.MetricsAddress != "" {
		g.Go(func() error {
			return monitoring.NewMetricsServer(cfg.MetricsAddress).Run(ctx)
		})
	}
	g.Go(func() error {
		return consumers.NewPredictionConsumer(
			kafka_client.NewKafkaMessageIterator(consumer),
			kafka_client.NewCommitHandler(consumer),
			producer,
			predictor,
			cfg.Kafka.ResultTopic,
			healthy,
		).Run(ctx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("[Main] Worker stopped with error", slog.String("error", err.Error()))
	}
}

// newProducer keeps retrying until the broker accepts the producer or ctx ends.
func newProducer(ctx context.Context, cfg config.Kafka) (*kafka_client.Producer, error) {
	for {
		p, err := kafka_client.NewProducer(cfg)
		if err == nil {
			return p, nil
		}

		slog.Warn("[Main] Kafka init failed, retrying...", slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(producerInitDelay):
		}
	}
}
