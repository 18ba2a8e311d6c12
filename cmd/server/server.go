package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// run serves the API, and the metrics endpoint when enabled, until ctx is
// cancelled or a listener fails, then shuts every listener down.
func (app *application) run(ctx context.Context) error {
	srvCfg := app.config.Server
	readHeaderTimeout := time.Duration(srvCfg.ReadHeaderTimeoutSeconds) * time.Second

	servers := []*http.Server{{
		Addr:              fmt.Sprintf(":%d", srvCfg.Port),
		Handler:           app.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}}

	if srvCfg.MetricsPort > 0 {
		servers = append(servers, &http.Server{
			Addr:              fmt.Sprintf(":%d", srvCfg.MetricsPort),
			Handler:           app.metricsHandler(),
			ReadHeaderTimeout: readHeaderTimeout,
		})
	}

	shutdownTimeout := time.Duration(srvCfg.ShutdownTimeoutSeconds) * time.Second
	return serveUntilDone(ctx, app.logger, shutdownTimeout, servers...)
}

func (app *application) metricsHandler() http.Handler {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{
		Registry: app.registry,
	}))
	return r
}

// serveUntilDone starts each server in its own goroutine. It returns nil
// after a clean shutdown triggered by ctx, or the first listener error.
func serveUntilDone(ctx context.Context, logger *slog.Logger, shutdownTimeout time.Duration, servers ...*http.Server) error {
	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		go func(srv *http.Server) {
			logger.Info("starting listener", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("listener %s failed: %w", srv.Addr, err)
			}
		}(srv)
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down server")
	case runErr = <-errCh:
		logger.Error("server failed, shutting down", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			runErr = errors.Join(runErr, fmt.Errorf("shutdown of %s failed: %w", srv.Addr, err))
		}
	}

	if runErr == nil {
		logger.Info("server shutdown completed")
	}
	return runErr
}
