// Package tracing wraps OpenTelemetry so that the launcher can record one span
// per spawn request and one per trampoline run. Applications that never call
// Init get the no-op global provider and pay nothing.
package tracing
