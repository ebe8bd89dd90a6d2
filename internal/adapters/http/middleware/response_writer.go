// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The middleware chain processes requests in this order:
//
//	Recovery → RequestID → OpenTelemetry → Logging → Timeout → Handler
//
// Timeout runs innermost so its deadline bounds the probes a health report
// runs, while the outer middleware still observes the 504 it writes.
//
// Each middleware is a func(http.Handler) http.Handler and can be composed
// using the Chain helper.
package middleware

import "net/http"

// statusRecorder wraps an http.ResponseWriter and records what the handler
// sent: the status line and the number of body bytes.
type statusRecorder struct {
	http.ResponseWriter
	status    int
	committed bool
	bytes     int64
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w}
}

// WriteHeader records the first status code; later calls are dropped as
// net/http would.
func (sr *statusRecorder) WriteHeader(code int) {
	if sr.committed {
		return
	}
	sr.status = code
	sr.committed = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.committed {
		sr.status = http.StatusOK
		sr.committed = true
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

// Status is the status sent to the client, or 200 when the handler wrote
// nothing (net/http sends 200 in that case).
func (sr *statusRecorder) Status() int {
	if sr.status == 0 {
		return http.StatusOK
	}
	return sr.status
}

// Committed reports whether the status line has been sent.
func (sr *statusRecorder) Committed() bool { return sr.committed }

// BytesWritten is the number of body bytes passed through.
func (sr *statusRecorder) BytesWritten() int64 { return sr.bytes }

// Unwrap lets http.ResponseController reach the underlying writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
