// Package telemetry defines the narrow Logger and Recorder interfaces used
// across fieldlattice for the ambient observability concerns the core
// decode contract itself has no opinion about (§5, §7 of the spec: soft
// failures never become errors, they become flags and, optionally, log
// lines and metric increments).
//
// Call sites depend only on the interfaces in this package; the concrete
// go.uber.org/zap and github.com/prometheus/client_golang backed
// implementations live here too, so no other package imports either
// library directly. Every constructor defaults to a no-op implementation,
// so wiring telemetry in is always opt-in.
package telemetry
