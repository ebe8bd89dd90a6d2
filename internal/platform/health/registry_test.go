package health_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	domain "github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/health"
	"github.com/jsamuelsen11/go-health-aggregator/internal/ports"
	"github.com/jsamuelsen11/go-health-aggregator/mocks"
)

func upProbe(name string) ports.Probe {
	return ports.ProbeFunc(func(context.Context) (domain.Response, error) {
		return domain.Up(name), nil
	})
}

func ids(entries []ports.ProbeEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestRegistry_Empty(t *testing.T) {
	t.Parallel()

	r := health.NewRegistry("liveness")

	if r.Name() != "liveness" {
		t.Errorf("Name() = %q, want %q", r.Name(), "liveness")
	}
	entries := r.List()
	if entries == nil {
		t.Fatal("expected non-nil slice, got nil")
	}
	if len(entries) != 0 {
		t.Errorf("expected empty list, got %d entries", len(entries))
	}
}

func TestRegistry_RegisterKeepsOrder(t *testing.T) {
	t.Parallel()

	r := health.NewRegistry("readiness")
	for _, id := range []string{"up", "failing", "down"} {
		if !r.Register(id, upProbe(id)) {
			t.Fatalf("Register(%q) = false, want true", id)
		}
	}

	got := strings.Join(ids(r.List()), ",")
	if got != "up,failing,down" {
		t.Errorf("List() ids = %q, want %q", got, "up,failing,down")
	}
}

func TestRegistry_ReplaceKeepsPosition(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockProbe(t)
	second := mocks.NewMockProbe(t)

	r := health.NewRegistry("readiness")
	r.Register("a", first)
	r.Register("b", upProbe("b"))
	r.Register("a", second)

	entries := r.List()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "a" {
		t.Errorf("entries[0].ID = %q, want %q", entries[0].ID, "a")
	}
	if entries[0].Probe != second {
		t.Error("entries[0].Probe is not the last registered probe")
	}
}

func TestRegistry_Remove(t *testing.T) {
	t.Parallel()

	r := health.NewRegistry("readiness")
	r.Register("a", upProbe("a"))
	r.Register("b", upProbe("b"))
	r.Register("c", upProbe("c"))

	if !r.Remove("b") {
		t.Error("Remove(b) = false, want true")
	}
	if r.Remove("b") {
		t.Error("second Remove(b) = true, want false")
	}
	if r.Remove("missing") {
		t.Error("Remove(missing) = true, want false")
	}

	got := strings.Join(ids(r.List()), ",")
	if got != "a,c" {
		t.Errorf("List() ids = %q, want %q", got, "a,c")
	}

	// Re-adding a removed id appends it at the end.
	r.Register("b", upProbe("b"))
	got = strings.Join(ids(r.List()), ",")
	if got != "a,c,b" {
		t.Errorf("List() ids = %q, want %q", got, "a,c,b")
	}
}

func TestRegistry_RejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		id    string
		probe ports.Probe
	}{
		{name: "empty id", id: "", probe: upProbe("x")},
		{name: "nil probe", id: "x", probe: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.NewRegistry("liveness")
			if r.Register(tt.id, tt.probe) {
				t.Error("Register() = true, want false")
			}
			if n := len(r.List()); n != 0 {
				t.Errorf("expected empty registry, got %d entries", n)
			}
		})
	}
}

func TestRegistry_RejectionIsLoggedWithReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		register func(r *health.Registry) bool
		want     string
	}{
		{
			name:     "empty id",
			register: func(r *health.Registry) bool { return r.Register("", upProbe("x")) },
			want:     "probe id must not be empty",
		},
		{
			name:     "nil probe",
			register: func(r *health.Registry) bool { return r.Register("x", nil) },
			want:     "probe must not be nil",
		},
		{
			name:     "nil probe by type name",
			register: func(r *health.Registry) bool { return r.RegisterProbe(nil) },
			want:     "probe must not be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			r := health.NewRegistry("liveness",
				health.WithRegistryLogger(slog.New(slog.NewJSONHandler(&logs, nil))))

			if tt.register(r) {
				t.Fatal("registration accepted, want rejection")
			}
			if !strings.Contains(logs.String(), tt.want) {
				t.Errorf("log = %s, want reason %q", logs.String(), tt.want)
			}
		})
	}
}

type pingProbe struct{}

func (pingProbe) Call(context.Context) (domain.Response, error) {
	return domain.Up("ping"), nil
}

func TestRegistry_RegisterProbeUsesTypeName(t *testing.T) {
	t.Parallel()

	r := health.NewRegistry("liveness")
	if !r.RegisterProbe(pingProbe{}) {
		t.Fatal("RegisterProbe() = false, want true")
	}
	if r.RegisterProbe(nil) {
		t.Error("RegisterProbe(nil) = true, want false")
	}

	entries := r.List()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ID != "health_test.pingProbe" {
		t.Errorf("ID = %q, want %q", entries[0].ID, "health_test.pingProbe")
	}
}

func TestRegistry_ListIsSnapshot(t *testing.T) {
	t.Parallel()

	r := health.NewRegistry("liveness")
	r.Register("a", upProbe("a"))

	snapshot := r.List()
	r.Register("b", upProbe("b"))
	snapshot[0].ID = "mutated"

	if len(snapshot) != 1 {
		t.Errorf("snapshot grew to %d entries", len(snapshot))
	}
	if got := r.List()[0].ID; got != "a" {
		t.Errorf("registry entry changed through snapshot: %q", got)
	}
}

func TestRegistry_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.NewRegistry("readiness")

	var wg sync.WaitGroup
	const goroutines = 50

	// A third register, a third remove, a third list.
	for i := range goroutines {
		wg.Add(1)
		id := fmt.Sprintf("probe-%d", i%5)
		switch i % 3 {
		case 0:
			go func() {
				defer wg.Done()
				r.Register(id, upProbe(id))
			}()
		case 1:
			go func() {
				defer wg.Done()
				r.Remove(id)
			}()
		default:
			go func() {
				defer wg.Done()
				r.List()
			}()
		}
	}

	wg.Wait()

	seen := make(map[string]bool)
	for _, e := range r.List() {
		if seen[e.ID] {
			t.Errorf("duplicate id %q in registry", e.ID)
		}
		seen[e.ID] = true
	}
}
