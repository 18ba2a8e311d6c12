package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/phrazzld/classifieds-api/internal/config"
	"github.com/phrazzld/classifieds-api/internal/redact"
	"github.com/sethvargo/go-retry"
)

const (
	pingTimeout     = 2 * time.Second
	retryBaseDelay  = 100 * time.Millisecond
	retryMaxBackoff = 2 * time.Second
)

// pinger is the part of *sql.DB the readiness wait needs.
type pinger interface {
	PingContext(ctx context.Context) error
}

// setupAppDatabase opens the connection pool, applies the pool limits and
// blocks until the database answers a ping or the startup timeout elapses.
func setupAppDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	timeout := time.Duration(cfg.StartupTimeoutSeconds) * time.Second
	if err := waitForDatabase(ctx, db, timeout, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("database connection established",
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns))
	return db, nil
}

// waitForDatabase pings db with capped exponential backoff until it succeeds
// or timeout passes.
func waitForDatabase(ctx context.Context, db pinger, timeout time.Duration, logger *slog.Logger) error {
	backoff := retry.NewExponential(retryBaseDelay)
	backoff = retry.WithCappedDuration(retryMaxBackoff, backoff)
	backoff = retry.WithMaxDuration(timeout, backoff)

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		if err := db.PingContext(pingCtx); err != nil {
			logger.Warn("database not ready",
				slog.Int("attempt", attempt),
				slog.String("error", redact.Error(err)))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("database not reachable after %d attempts: %w", attempt, err)
	}
	return nil
}
