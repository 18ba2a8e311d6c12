package api

import (
	"net/http"

	"github.com/phrazzld/classifieds-api/internal/api/shared"
	"github.com/phrazzld/classifieds-api/internal/platform/logger"
	"github.com/phrazzld/classifieds-api/internal/redact"
	"github.com/phrazzld/classifieds-api/internal/store"
)

// Health statuses.
const (
	StatusHealthy       = "healthy"
	StatusUnhealthy     = "unhealthy"
	DatabaseConnected   = "connected"
	DatabaseUnreachable = "no connection"
)

// HealthHandler reports service and database health.
type HealthHandler struct {
	checker store.HealthChecker
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(checker store.HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Check handles GET /health. The endpoint is public, so any error text is
// redacted before it is returned.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ok, err := h.checker.CheckConnection(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("health check failed", "error", redact.Error(err))
		shared.RespondWithJSON(w, r, http.StatusInternalServerError, HealthResponse{
			Status: StatusUnhealthy,
			Error:  redact.Error(err),
		})
		return
	}

	database := DatabaseConnected
	if !ok {
		database = DatabaseUnreachable
	}
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: StatusHealthy, Database: database})
}
