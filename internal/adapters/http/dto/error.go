package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/logging"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrValidation     = errors.New("validation error")
	ErrRequestTimeout = errors.New("request timed out")
)

// problemContentType is the RFC 9457 media type for problem details.
const problemContentType = "application/problem+json"

// problemStatuses maps sentinel errors to response statuses. The first match
// wins; anything unmatched is a 500.
var problemStatuses = []struct {
	target error
	status int
}{
	{ErrValidation, http.StatusBadRequest},
	{health.ErrInvalidConfiguration, http.StatusBadRequest},
	{ErrRequestTimeout, http.StatusGatewayTimeout},
}

// ValidationError carries field-level request validation failures, keyed by
// field name. It matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	b.WriteString(": ")
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", field, e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ErrorResponse represents an RFC 9457 Problem Details response. RequestID is
// an extension member echoing the X-Request-ID response header.
type ErrorResponse struct {
	Type      string        `json:"type"`
	Title     string        `json:"title"`
	Status    int           `json:"status"`
	Detail    string        `json:"detail,omitempty"`
	Instance  string        `json:"instance,omitempty"`
	RequestID string        `json:"requestId,omitempty"`
	Errors    []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field-level failure within an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// NewErrorResponse builds the problem document for err. Instance is the
// request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusFor(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes the problem document for err with its status
// code. A request id already set on the response is copied into the body.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	resp.RequestID = w.Header().Get("X-Request-ID")

	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode problem response",
			slog.Int("status", resp.Status),
			slog.Any("error", encErr),
		)
	}
}

func statusFor(err error) int {
	for _, p := range problemStatuses {
		if errors.Is(err, p.target) {
			return p.status
		}
	}
	return http.StatusInternalServerError
}

// fieldDetails converts validation fields to details sorted by location.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		details = append(details, ErrorDetail{Location: "body." + field, Message: fields[field]})
	}
	return details
}
