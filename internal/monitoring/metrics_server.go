package monitoring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const httpServerReadHeaderTimeout = 5 * time.Second

// MetricsServer exposes /metrics on its own listener so the API keeps a
// single route.
type MetricsServer struct {
	listenAddress string
}

func NewMetricsServer(listenAddress string) MetricsServer {
	return MetricsServer{listenAddress: listenAddress}
}

func (m MetricsServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	httpServer := &http.Server{
		Addr:              m.listenAddress,
		Handler:           mux,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()
		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			slog.Error("[MetricsServer] Shutdown failed", slog.String("error", err.Error()))
		}
	}()

	slog.Info("[MetricsServer] Started", slog.String("address", m.listenAddress))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}

	slog.Info("[MetricsServer] Stopped")
	return nil
}
