package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-health-aggregator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/logging"
	"github.com/jsamuelsen11/go-health-aggregator/internal/ports"
)

// HealthConfigHandler exposes the reporter policy for inspection and change
// at runtime.
type HealthConfigHandler struct {
	settings ports.ReporterSettings
}

// NewHealthConfigHandler creates a new HealthConfigHandler.
func NewHealthConfigHandler(settings ports.ReporterSettings) *HealthConfigHandler {
	return &HealthConfigHandler{settings: settings}
}

// GetConfig handles GET /health/config.
func (h *HealthConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToHealthConfigResponse(h.settings))
}

// UpdateConfig handles PUT /health/config. Only the settings present in the
// body are changed. The request is validated as a whole before anything is
// applied.
func (h *HealthConfigHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req dto.HealthConfigRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if req.EmptyChecksOutcome != nil {
		if err := h.settings.SetEmptyChecksOutcome(*req.EmptyChecksOutcome); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}
	if req.UncheckedExceptionDataStyle != nil {
		if err := h.settings.SetUncheckedExceptionDataStyle(*req.UncheckedExceptionDataStyle); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}

	resp := dto.ToHealthConfigResponse(h.settings)
	logging.FromContext(r.Context()).InfoContext(r.Context(), "health reporter policy updated",
		slog.String("empty_checks_outcome", resp.EmptyChecksOutcome),
		slog.String("unchecked_exception_data_style", resp.UncheckedExceptionDataStyle),
	)

	writeJSON(w, r, http.StatusOK, resp)
}
