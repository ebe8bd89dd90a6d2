// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
//
// Health reports themselves are not DTOs: they are rendered by the reporter
// so the HTTP body and the diagnostic log line are the same bytes.
package dto

import (
	"github.com/jsamuelsen11/go-health-aggregator/internal/ports"
)

// HealthConfigResponse represents the reporter policy in HTTP responses.
type HealthConfigResponse struct {
	EmptyChecksOutcome          string `json:"emptyChecksOutcome"`
	UncheckedExceptionDataStyle string `json:"uncheckedExceptionDataStyle"`
}

// ToHealthConfigResponse reads the current policy from settings.
func ToHealthConfigResponse(settings ports.ReporterSettings) HealthConfigResponse {
	return HealthConfigResponse{
		EmptyChecksOutcome:          settings.EmptyChecksOutcome().String(),
		UncheckedExceptionDataStyle: settings.UncheckedExceptionDataStyle().String(),
	}
}
