package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server runs handler on address until the context passed to Run is done.
type Server struct {
	name    string
	address string
	handler http.Handler
}

func NewServer(name, address string, handler http.Handler) *Server {
	return &Server{name: name, address: address, handler: handler}
}

func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.address,
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("["+s.name+"] Shutdown failed", slog.String("error", err.Error()))
		}
	}()

	slog.Info("["+s.name+"] Listening", slog.String("address", s.address))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", s.name, err)
	}

	slog.Info("[" + s.name + "] Stopped")
	return nil
}
