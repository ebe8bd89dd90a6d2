// Package ports defines the interfaces between the health engine and the code
// around it. Probes are implemented by outbound adapters and application code.
// Registries and the reporter are implemented by the platform/health package
// and consumed by inbound adapters (HTTP handlers, the server entry point).
package ports
