// Package feature implements the Feature registry described in §4.1 of
// the spec: a narrow interface (stable string ID, pure Apply(Context)
// function) with two flavours of built-in implementation — line features
// that read only the line index and document lines, and span features
// that additionally read a candidate span's text.
//
// All default features are pure functions of their Context: the same
// Context always yields the same value, and an unrecognized Context field
// (e.g. a line feature asked to evaluate a Context with no Span) simply
// ignores it rather than failing.
package feature
