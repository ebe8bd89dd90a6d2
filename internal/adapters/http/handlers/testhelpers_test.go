package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/go-health-aggregator/internal/adapters/http/dto"
)

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		t.Fatalf("encoding request body: %v", err)
	}
	return &buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return v
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// requireProblem checks for an RFC 9457 response with the given status and
// returns the decoded document.
func requireProblem(t *testing.T, rec *httptest.ResponseRecorder, want int) dto.ErrorResponse {
	t.Helper()

	requireStatus(t, rec, want)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("Content-Type = %q, want application/problem+json", ct)
	}
	problem := decodeJSON[dto.ErrorResponse](t, rec)
	if problem.Status != want {
		t.Errorf("problem status = %d, want %d", problem.Status, want)
	}
	return problem
}
