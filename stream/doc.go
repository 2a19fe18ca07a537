// Package stream implements the windowed streaming driver (§4.7): a
// lookahead-bounded loop over lattice.Decode that advances to the first
// decoded record boundary, threads a beam between windows, and wires in
// the feedback context builder (§4.8) and caller-supplied dynamic
// features ahead of the one-time cache build.
//
// Decode currently runs the loop to completion and returns every emitted
// WindowRecord, rather than a lazy iterator; the spec's "lazy, finite,
// restartable sequence... by repeated invocation" framing is satisfied
// by calling Decode again with a narrower opts.LookaheadLines and a
// line-sliced input, which is how a caller restarts the driver.
package stream
