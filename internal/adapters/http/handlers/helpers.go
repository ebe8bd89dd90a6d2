package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-health-aggregator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies. Config updates are a few dozen bytes.
const maxJSONBodyBytes = 64 << 10

// writeJSON writes v as JSON with the given status. Responses describe live
// state and are never cached.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

// decodeJSONBody decodes exactly one JSON object into dst. Unknown fields are
// rejected so a misspelled setting is not silently ignored. On failure it
// writes a 400 problem response naming what was wrong and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errTrailingData
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, &dto.ValidationError{
			Fields: map[string]string{"body": bodyProblem(err)},
		})
		return false
	}
	return true
}

var errTrailingData = errors.New("trailing data")

// bodyProblem describes a decode failure without echoing decoder internals.
func bodyProblem(err error) string {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return fmt.Sprintf("must not exceed %d bytes", maxErr.Limit)
	case errors.Is(err, io.EOF):
		return "must not be empty"
	case errors.Is(err, errTrailingData):
		return "must contain a single JSON object"
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		return strings.TrimPrefix(err.Error(), "json: ")
	default:
		return "invalid JSON"
	}
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the body into dst and validates it, writing the
// error response itself on failure.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
