// Package probes provides ready-made health probes for the dependencies the
// service commonly checks: Redis, MongoDB, downstream HTTP services, and the
// Go runtime itself.
//
// A probe reports an unreachable dependency as a DOWN response carrying an
// "error" data entry. It returns an error only when it cannot run at all, so
// the aggregator's failure diagnostics are reserved for real faults.
package probes

// Data keys shared by the probes in this package.
const (
	keyAddr  = "addr"
	keyError = "error"
)
