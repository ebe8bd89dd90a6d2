package health

import (
	"fmt"
	"strings"
)

// Status is the UP/DOWN verdict of a single check or of a whole report.
type Status string

const (
	StatusUp   Status = "UP"
	StatusDown Status = "DOWN"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusUp, StatusDown:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a configuration value to a Status. Matching is case
// insensitive and ignores surrounding whitespace.
func ParseStatus(v string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(v)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: status must be one of UP, DOWN; got %q", ErrInvalidConfiguration, v)
	}
	return s, nil
}

// DataStyle selects what diagnostic data is attached to the check result of a
// probe that failed abnormally.
type DataStyle string

const (
	// DataStyleNone attaches no data.
	DataStyleNone DataStyle = "NONE"
	// DataStyleRootCause attaches the innermost error message under "rootCause".
	DataStyleRootCause DataStyle = "ROOT_CAUSE"
	// DataStyleStackTrace attaches the full failure trace under "stackTrace".
	DataStyleStackTrace DataStyle = "STACK_TRACE"
)

// Data keys written for abnormal probe failures.
const (
	DataKeyRootCause  = "rootCause"
	DataKeyStackTrace = "stackTrace"
)

// IsValid returns true if the style is one of the defined constants.
func (d DataStyle) IsValid() bool {
	switch d {
	case DataStyleNone, DataStyleRootCause, DataStyleStackTrace:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (d DataStyle) String() string {
	return string(d)
}

// ParseDataStyle converts a configuration value to a DataStyle. Besides the
// canonical names it accepts the camel-case spellings used in older
// configuration files ("rootCause", "stackTrace"), in any letter case.
func ParseDataStyle(v string) (DataStyle, error) {
	norm := strings.ToUpper(strings.TrimSpace(v))
	norm = strings.NewReplacer("_", "", "-", "").Replace(norm)

	switch norm {
	case "NONE":
		return DataStyleNone, nil
	case "ROOTCAUSE":
		return DataStyleRootCause, nil
	case "STACKTRACE":
		return DataStyleStackTrace, nil
	default:
		return "", fmt.Errorf("%w: data style must be one of NONE, ROOT_CAUSE, STACK_TRACE; got %q",
			ErrInvalidConfiguration, v)
	}
}
