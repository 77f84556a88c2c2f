package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/suhailre/suhail/internal/domain/port"
)

// HealthHandler serves liveness and readiness probes over HTTP.
type HealthHandler struct {
	catalog port.Catalog
	logger  *slog.Logger
}

// NewHealthHandler creates a health check HTTP handler. Readiness requires
// the catalog to answer.
func NewHealthHandler(catalog port.Catalog, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{catalog: catalog, logger: logger}
}

// RegisterRoutes attaches health-check routes to the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.liveness)
	mux.HandleFunc("GET /readyz", h.readiness)
}

func (h *HealthHandler) liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "suhail",
	})
}

func (h *HealthHandler) readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	neighborhoods, err := h.catalog.Neighborhoods(ctx)
	if err != nil || len(neighborhoods) == 0 {
		h.logger.WarnContext(ctx, "readiness check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "unavailable",
			"service": "suhail",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ready",
		"service": "suhail",
	})
}
