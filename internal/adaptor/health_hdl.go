package adaptor

import (
	"context"
	"net/http"
	"time"

	"movie-social/pkg/utils"

	"go.uber.org/zap"
)

// Pinger is a store that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checks map[string]Pinger
	log    *zap.Logger
}

func NewHealthHandler(checks map[string]Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		log:    log.With(zap.String("handler", "health")),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			h.log.Warn("Health check failed", zap.String("store", name), zap.Error(err))
			utils.ResponseError(w, http.StatusServiceUnavailable, "API is unhealthy")
			return
		}
	}

	utils.ResponseMessage(w, http.StatusOK, "API is healthy")
}

// NotFound answers unknown routes
func (h *HealthHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	utils.ResponseNotFound(w, "Not Found")
}

// MethodNotAllowed answers known routes called with the wrong method
func (h *HealthHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.ResponseError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
