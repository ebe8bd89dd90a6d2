// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-health-aggregator/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with the health routes registered.
// Middleware is applied globally in the order given. metrics, when non-nil,
// is served at /metrics for Prometheus scraping.
//
// /health reports liveness checks followed by readiness checks.
func NewRouter(
	healthHandler *handlers.HealthHandler,
	configHandler *handlers.HealthConfigHandler,
	metrics http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/", healthHandler.Health)
		r.Get("/live", healthHandler.Liveness)
		r.Get("/ready", healthHandler.Readiness)

		// Reporter policy administration.
		r.Get("/config", configHandler.GetConfig)
		r.Put("/config", configHandler.UpdateConfig)
	})

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	return r
}
