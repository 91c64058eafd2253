package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/review-analyzer/config"
	"github.com/spacesedan/review-analyzer/internal/clients"
	"github.com/spacesedan/review-analyzer/internal/logging"
	"github.com/spacesedan/review-analyzer/internal/server"
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

	ml := clients.NewMLServiceClient(cfg.Gateway.MLServiceURL)
	router := server.NewGatewayRouter(ml, cfg.Gateway.CORSAllowedOrigins)

	if err := server.NewServer("Gateway", ":"+cfg.GatewayPort, router).Run(ctx); err != nil {
		slog.Error("[Main] Gateway stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
