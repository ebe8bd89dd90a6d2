package probes

import (
	"context"
	"runtime"
	"strconv"

	"github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
	"github.com/jsamuelsen11/go-health-aggregator/internal/ports"
)

var _ ports.Probe = (*RuntimeProbe)(nil)

// RuntimeProbe reports process health from the Go runtime: goroutine count,
// live heap, and completed GC cycles. It is DOWN when the goroutine count
// exceeds maxGoroutines, which usually indicates a leak.
type RuntimeProbe struct {
	maxGoroutines int
	numGoroutine  func() int
}

// NewRuntimeProbe creates a probe named "runtime". A maxGoroutines of zero
// disables the bound.
func NewRuntimeProbe(maxGoroutines int) *RuntimeProbe {
	return &RuntimeProbe{maxGoroutines: maxGoroutines, numGoroutine: runtime.NumGoroutine}
}

// Call implements ports.Probe.
func (p *RuntimeProbe) Call(context.Context) (health.Response, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	n := p.numGoroutine()

	return health.Named("runtime").
		State(p.maxGoroutines <= 0 || n <= p.maxGoroutines).
		WithData("goroutines", strconv.Itoa(n)).
		WithData("heapAlloc", strconv.FormatUint(ms.HeapAlloc, 10)).
		WithData("numGC", strconv.FormatUint(uint64(ms.NumGC), 10)).
		Build(), nil
}
