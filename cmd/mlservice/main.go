package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/review-analyzer/config"
	"github.com/spacesedan/review-analyzer/internal/logging"
	"github.com/spacesedan/review-analyzer/internal/monitoring"
	"github.com/spacesedan/review-analyzer/internal/pipeline"
	"github.com/spacesedan/review-analyzer/internal/server"
	"golang.org/x/sync/errgroup"
)

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

	if !predictor.Ready() {
		slog.Warn("[Main] Serving without a model, /predict will fail until restart")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.NewServer("MLService", ":"+cfg.Port,
			server.NewPredictRouter(predictor)).Run(ctx)
	})
	if cfg.MetricsAddress != "" {
		g.Go(func() error {
			return monitoring.NewMetricsServer(cfg.MetricsAddress).Run(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("[Main] Service stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
