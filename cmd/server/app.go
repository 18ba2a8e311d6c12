package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/classifieds-api/internal/api/middleware"
	"github.com/phrazzld/classifieds-api/internal/config"
	"github.com/phrazzld/classifieds-api/internal/platform/postgres"
	"github.com/phrazzld/classifieds-api/internal/service"
	"github.com/phrazzld/classifieds-api/internal/service/auth"
	"github.com/phrazzld/classifieds-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// dbStatsName is the db_name label on the connection pool metrics.
const dbStatsName = "classifieds"

// application holds the wired dependencies of a running server.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	db       *sql.DB
	registry *prometheus.Registry
	handler  http.Handler
}

// newApplication builds stores, services and the router on top of an open
// database pool. The application owns db from here on.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	adStore := postgres.NewPostgresAdStore(db, logger)
	transactor := store.NewSQLTransactor(db)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, dbStatsName),
	)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.LoginPerSecond > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.LoginPerSecond, cfg.RateLimit.LoginBurst)
	}

	handler := newRouter(routerDeps{
		Logger:        logger,
		UserService:   service.NewUserService(userStore, transactor, hasher, hasher, logger),
		AdService:     service.NewAdService(adStore, transactor, logger),
		JWTService:    jwtService,
		HealthChecker: postgres.NewPostgresHealthChecker(db),
		Metrics:       middleware.NewMetrics(registry),
		LoginLimiter:  limiter,
	})

	return &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		registry: registry,
		handler:  handler,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
		return
	}
	app.logger.Info("database connection closed")
}
