package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-health-aggregator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-health-aggregator/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
	platformhealth "github.com/jsamuelsen11/go-health-aggregator/internal/platform/health"
	"github.com/jsamuelsen11/go-health-aggregator/mocks"
)

func newReporter(t *testing.T) *platformhealth.Reporter {
	t.Helper()
	r, err := platformhealth.NewReporter(nil, platformhealth.DefaultConfig(), nil, nil)
	if err != nil {
		t.Fatalf("NewReporter() error = %v", err)
	}
	return r
}

func TestGetConfig(t *testing.T) {
	t.Parallel()

	settings := mocks.NewMockReporterSettings(t)
	settings.EXPECT().EmptyChecksOutcome().Return(health.StatusUp)
	settings.EXPECT().UncheckedExceptionDataStyle().Return(health.DataStyleRootCause)

	h := handlers.NewHealthConfigHandler(settings)

	rec := httptest.NewRecorder()
	h.GetConfig(rec, httptest.NewRequest(http.MethodGet, "/health/config", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	got := decodeJSON[dto.HealthConfigResponse](t, rec)
	want := dto.HealthConfigResponse{EmptyChecksOutcome: "UP", UncheckedExceptionDataStyle: "ROOT_CAUSE"}
	if got != want {
		t.Errorf("response = %+v, want %+v", got, want)
	}
}

func TestUpdateConfig_AppliesPresentSettings(t *testing.T) {
	t.Parallel()

	reporter := newReporter(t)
	h := handlers.NewHealthConfigHandler(reporter)

	body := jsonBody(t, map[string]string{"emptyChecksOutcome": "down"})
	rec := httptest.NewRecorder()
	h.UpdateConfig(rec, httptest.NewRequest(http.MethodPut, "/health/config", body))

	requireStatus(t, rec, http.StatusOK)
	got := decodeJSON[dto.HealthConfigResponse](t, rec)
	if got.EmptyChecksOutcome != "DOWN" {
		t.Errorf("EmptyChecksOutcome = %q, want %q", got.EmptyChecksOutcome, "DOWN")
	}
	if got.UncheckedExceptionDataStyle != "ROOT_CAUSE" {
		t.Errorf("UncheckedExceptionDataStyle = %q, want unchanged %q", got.UncheckedExceptionDataStyle, "ROOT_CAUSE")
	}
	if reporter.EmptyChecksOutcome() != health.StatusDown {
		t.Errorf("reporter EmptyChecksOutcome = %q, want %q", reporter.EmptyChecksOutcome(), health.StatusDown)
	}
}

func TestUpdateConfig_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"emptyChecksOutcome":`},
		{"unknown field", `{"emptyCheckOutcome":"DOWN"}`},
		{"empty object", `{}`},
		{"unknown outcome", `{"emptyChecksOutcome":"MAYBE"}`},
		{"one invalid setting", `{"emptyChecksOutcome":"DOWN","uncheckedExceptionDataStyle":"VERBOSE"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reporter := newReporter(t)
			h := handlers.NewHealthConfigHandler(reporter)

			rec := httptest.NewRecorder()
			h.UpdateConfig(rec, httptest.NewRequest(http.MethodPut, "/health/config", strings.NewReader(tt.body)))

			requireProblem(t, rec, http.StatusBadRequest)
			if reporter.EmptyChecksOutcome() != health.StatusUp {
				t.Errorf("EmptyChecksOutcome = %q, want unchanged %q", reporter.EmptyChecksOutcome(), health.StatusUp)
			}
			if reporter.UncheckedExceptionDataStyle() != health.DataStyleRootCause {
				t.Errorf("UncheckedExceptionDataStyle = %q, want unchanged %q",
					reporter.UncheckedExceptionDataStyle(), health.DataStyleRootCause)
			}
		})
	}
}

func TestUpdateConfig_BodyProblems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty body", ``, "must not be empty"},
		{"malformed", `{"emptyChecksOutcome":`, "invalid JSON"},
		{"unknown field", `{"dataStyle":"NONE"}`, `unknown field "dataStyle"`},
		{"two objects", `{"emptyChecksOutcome":"UP"}{"emptyChecksOutcome":"DOWN"}`, "must contain a single JSON object"},
		{"too large", `{"emptyChecksOutcome":"` + strings.Repeat("U", 70<<10) + `"}`, "must not exceed 65536 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewHealthConfigHandler(mocks.NewMockReporterSettings(t))

			rec := httptest.NewRecorder()
			h.UpdateConfig(rec, httptest.NewRequest(http.MethodPut, "/health/config", strings.NewReader(tt.body)))

			problem := requireProblem(t, rec, http.StatusBadRequest)
			if len(problem.Errors) != 1 || problem.Errors[0].Message != tt.want {
				t.Errorf("errors = %+v, want one body error %q", problem.Errors, tt.want)
			}
		})
	}
}

func TestGetConfig_NotCached(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	handlers.NewHealthConfigHandler(newReporter(t)).GetConfig(rec, httptest.NewRequest(http.MethodGet, "/health/config", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", cc)
	}
}

func TestUpdateConfig_SetterError(t *testing.T) {
	t.Parallel()

	settings := mocks.NewMockReporterSettings(t)
	settings.EXPECT().SetUncheckedExceptionDataStyle("NONE").Return(health.ErrInvalidConfiguration)

	h := handlers.NewHealthConfigHandler(settings)

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"uncheckedExceptionDataStyle":"NONE"}`)
	h.UpdateConfig(rec, httptest.NewRequest(http.MethodPut, "/health/config", body))

	requireStatus(t, rec, http.StatusBadRequest)
}
