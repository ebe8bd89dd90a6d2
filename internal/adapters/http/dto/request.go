package dto

import (
	"github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
)

const msgAtLeastOne = "at least one setting is required"

// HealthConfigRequest represents the JSON body for changing the reporter
// policy. All fields are optional; nil means "do not change this setting".
type HealthConfigRequest struct {
	EmptyChecksOutcome          *string `json:"emptyChecksOutcome,omitempty"`
	UncheckedExceptionDataStyle *string `json:"uncheckedExceptionDataStyle,omitempty"`
}

// Validate checks that at least one setting is present and that every
// present setting names a known option. Returns a *ValidationError if any
// check fails, so a rejected request changes nothing.
func (r *HealthConfigRequest) Validate() error {
	fields := make(map[string]string)

	if r.EmptyChecksOutcome == nil && r.UncheckedExceptionDataStyle == nil {
		fields["body"] = msgAtLeastOne
	}
	if r.EmptyChecksOutcome != nil {
		if _, err := health.ParseStatus(*r.EmptyChecksOutcome); err != nil {
			fields["emptyChecksOutcome"] = "must be one of UP, DOWN"
		}
	}
	if r.UncheckedExceptionDataStyle != nil {
		if _, err := health.ParseDataStyle(*r.UncheckedExceptionDataStyle); err != nil {
			fields["uncheckedExceptionDataStyle"] = "must be one of NONE, ROOT_CAUSE, STACK_TRACE"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
