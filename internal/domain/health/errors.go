package health

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for errors.Is() checking.
var (
	// ErrRegistration is reported when a probe cannot be added to or removed
	// from a registry. Duplicate and missing ids are not registration errors.
	ErrRegistration = errors.New("health: registration failed")

	// ErrInvalidConfiguration is returned by reporter setters and parsers for
	// values outside the enumerated option set.
	ErrInvalidConfiguration = errors.New("health: invalid configuration")

	// ErrProbeExecution marks an abnormal probe termination. The aggregator
	// always converts it into a DOWN check result.
	ErrProbeExecution = errors.New("health: probe execution failed")

	// ErrProbeTimeout indicates a probe did not return within the configured
	// per-probe timeout.
	ErrProbeTimeout = errors.New("health: probe timed out")

	// ErrInvalidResponse indicates a probe returned a response whose status is
	// neither UP nor DOWN.
	ErrInvalidResponse = errors.New("health: probe returned an invalid response")
)

// ProbeError describes an abnormal probe termination: a panic, a returned
// error, an invalid response, or a timeout.
// Use errors.Is(err, ErrProbeExecution) for simple checks, or errors.As to
// reach the probe id and captured stack.
type ProbeError struct {
	// ID is the registry id of the failed probe.
	ID string
	// Cause is the underlying failure. Recovered panic values that are not
	// errors are wrapped so their text is preserved.
	Cause error
	// Stack is the probe goroutine's stack at a panic or returned failure.
	// It is empty for timeouts: the hung goroutine cannot be inspected from
	// the aggregator.
	Stack []byte
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %q: %v", e.ID, e.Cause)
}

func (e *ProbeError) Unwrap() error {
	return e.Cause
}

// Is reports ErrProbeExecution as a match so callers need not know the cause.
func (e *ProbeError) Is(target error) bool {
	return target == ErrProbeExecution
}

// RootCause returns the message of the innermost error in the cause chain.
// For joined errors the first branch is followed.
func (e *ProbeError) RootCause() string {
	err := e.Cause
	for err != nil {
		next := unwrapOne(err)
		if next == nil {
			break
		}
		err = next
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// Trace renders the full failure as text: the error, each wrapped cause on its
// own line, then the captured stack.
func (e *ProbeError) Trace() string {
	var b strings.Builder
	b.WriteString(e.Error())
	for err := unwrapOne(e.Cause); err != nil; err = unwrapOne(err) {
		b.WriteString("\ncaused by: ")
		b.WriteString(err.Error())
	}
	if len(e.Stack) > 0 {
		b.WriteString("\n\n")
		b.Write(e.Stack)
	}
	return b.String()
}

// TimeoutError is the cause recorded for a probe that did not return within
// the per-probe timeout. It matches ErrProbeTimeout under errors.Is.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s after %s", ErrProbeTimeout, e.After)
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrProbeTimeout
}

// InvalidStatusError is the cause recorded for a probe whose response status
// is neither UP nor DOWN. It matches ErrInvalidResponse under errors.Is.
type InvalidStatusError struct {
	Status Status
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("%s: status %q", ErrInvalidResponse, string(e.Status))
}

func (e *InvalidStatusError) Is(target error) bool {
	return target == ErrInvalidResponse
}

// PanicError wraps a recovered panic value that does not implement error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}

// unwrapOne returns the next error in the chain, following the first branch
// of multi-errors.
func unwrapOne(err error) error {
	switch u := err.(type) { //nolint:errorlint // walking the chain manually
	case interface{ Unwrap() error }:
		return u.Unwrap()
	case interface{ Unwrap() []error }:
		if errs := u.Unwrap(); len(errs) > 0 {
			return errs[0]
		}
	}
	return nil
}
