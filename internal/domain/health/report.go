package health

import "encoding/json"

// CheckResult is one entry of a Health report. Unlike a Response it exists
// for every executed probe, including probes that failed abnormally.
type CheckResult struct {
	Name   string
	Status Status
	Data   *Data
}

// ResultFromResponse copies a probe Response into a CheckResult.
func ResultFromResponse(r Response) CheckResult {
	return CheckResult{
		Name:   r.Name,
		Status: r.Status,
		Data:   r.Data.Clone(),
	}
}

// IsDown reports whether the check is DOWN.
func (c CheckResult) IsDown() bool {
	return c.Status == StatusDown
}

// checkJSON fixes the wire field order: name, status, data.
type checkJSON struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Data   *Data  `json:"data,omitempty"`
}

// MarshalJSON omits data when it is nil or empty.
func (c CheckResult) MarshalJSON() ([]byte, error) {
	w := checkJSON{Name: c.Name, Status: c.Status}
	if c.Data.Len() > 0 {
		w.Data = c.Data
	}
	return json.Marshal(w)
}

// UnmarshalJSON reads the wire form written by MarshalJSON.
func (c *CheckResult) UnmarshalJSON(b []byte) error {
	var w checkJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*c = CheckResult(w)
	return nil
}

// Health is the overall report: one status reduced from all checks, plus the
// checks in execution order. A Health is never modified after NewHealth
// returns it.
type Health struct {
	status Status
	checks []CheckResult
}

// NewHealth builds a report. The checks slice is copied.
func NewHealth(status Status, checks []CheckResult) *Health {
	c := make([]CheckResult, len(checks))
	copy(c, checks)
	return &Health{status: status, checks: c}
}

// Status returns the overall status.
func (h *Health) Status() Status {
	return h.status
}

// IsDown reports whether the overall status is DOWN.
func (h *Health) IsDown() bool {
	return h.status == StatusDown
}

// Checks returns a copy of the checks in execution order.
func (h *Health) Checks() []CheckResult {
	c := make([]CheckResult, len(h.checks))
	copy(c, h.checks)
	return c
}

// healthJSON fixes the wire field order: status, checks.
type healthJSON struct {
	Status Status        `json:"status"`
	Checks []CheckResult `json:"checks"`
}

// MarshalJSON writes {"status":...,"checks":[...]}. checks is always an
// array, never null.
func (h *Health) MarshalJSON() ([]byte, error) {
	checks := h.checks
	if checks == nil {
		checks = []CheckResult{}
	}
	return json.Marshal(healthJSON{Status: h.status, Checks: checks})
}

// UnmarshalJSON reads the wire form written by MarshalJSON.
func (h *Health) UnmarshalJSON(b []byte) error {
	var w healthJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	h.status = w.Status
	h.checks = w.Checks
	if h.checks == nil {
		h.checks = []CheckResult{}
	}
	return nil
}
