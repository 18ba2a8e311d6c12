package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/classifieds-api/internal/api"
	"github.com/phrazzld/classifieds-api/internal/api/middleware"
	"github.com/phrazzld/classifieds-api/internal/api/shared"
	"github.com/phrazzld/classifieds-api/internal/service"
	"github.com/phrazzld/classifieds-api/internal/service/auth"
	"github.com/phrazzld/classifieds-api/internal/store"
)

// Messages for requests no route accepts.
const (
	msgNotFound         = "not found"
	msgMethodNotAllowed = "method not allowed"
)

// adPath only matches numeric ids; anything else falls through to 404.
const adPath = "/ads/{" + api.AdIDParam + ":[0-9]+}"

// routerDeps holds everything the HTTP surface needs. Metrics and
// LoginLimiter are optional.
type routerDeps struct {
	Logger        *slog.Logger
	UserService   service.UserService
	AdService     service.AdService
	JWTService    auth.JWTService
	HealthChecker store.HealthChecker
	Metrics       *middleware.Metrics
	LoginLimiter  *middleware.RateLimiter
}

// newRouter builds the chi router. The auth gate sits at the root so every
// path outside middleware.PublicPaths, unknown ones included, needs a token.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.TraceMiddleware(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Handler)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.NewAuthMiddleware(d.JWTService).Authenticate)

	healthHandler := api.NewHealthHandler(d.HealthChecker)
	authHandler := api.NewAuthHandler(d.UserService, d.JWTService)
	adHandler := api.NewAdHandler(d.AdService)

	r.Get("/health", healthHandler.Check)
	r.Post("/register", authHandler.Register)
	if d.LoginLimiter != nil {
		r.With(d.LoginLimiter.Middleware).Post("/login", authHandler.Login)
	} else {
		r.Post("/login", authHandler.Login)
	}

	r.Post("/ads", adHandler.CreateAd)
	r.Get(adPath, adHandler.GetAd)
	r.Delete(adPath, adHandler.DeleteAd)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, msgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	return r
}
