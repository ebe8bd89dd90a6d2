package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/go-health-aggregator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-health-aggregator/internal/ports"
)

// HealthHandler serves health reports built by a reporter from the liveness
// and readiness registries.
type HealthHandler struct {
	reporter  ports.HealthReporter
	liveness  ports.HealthRegistry
	readiness ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(reporter ports.HealthReporter, liveness, readiness ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{
		reporter:  reporter,
		liveness:  liveness,
		readiness: readiness,
	}
}

// Health handles GET /health. Liveness checks are listed before readiness
// checks.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.liveness, h.readiness)
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.liveness)
}

// Readiness handles GET /health/ready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.readiness)
}

// serve builds a report over registries and writes it with 200 when UP or
// 503 when DOWN. The body is rendered before the status line is sent so a
// rendering failure can still become a 500.
func (h *HealthHandler) serve(w http.ResponseWriter, r *http.Request, registries ...ports.HealthRegistry) {
	ctx := r.Context()
	report := h.reporter.GetHealth(ctx, registries...)

	var body bytes.Buffer
	if err := h.reporter.Report(ctx, &body, report); err != nil {
		dto.WriteErrorResponse(w, r, fmt.Errorf("rendering health report: %w", err))
		return
	}

	code := http.StatusOK
	if report.IsDown() {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_, _ = w.Write(body.Bytes())
}
