package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const HEALTHCHECK_TIMER = 15

type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

// MonitorClassifierHealth probes checker every HEALTHCHECK_TIMER seconds and
// stores the outcome in healthy until ctx is done.
func MonitorClassifierHealth(ctx context.Context, checker HealthChecker, healthy *atomic.Bool) {
	monitorHealth(ctx, checker, healthy, time.Second*HEALTHCHECK_TIMER)
}

func monitorHealth(ctx context.Context, checker HealthChecker, healthy *atomic.Bool, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			isHealthy := checker.HealthCheck(ctx)
			wasHealthy := healthy.Swap(isHealthy)
			if !isHealthy {
				slog.Warn("[HealthCheck] Classifier is unhealthy")
			} else if !wasHealthy {
				slog.Info("[HealthCheck] Classifier recovered")
			}
		}
	}
}
