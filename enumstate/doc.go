// Package enumstate enumerates the candidate joint states for a single
// line's span set (§4.3): boundary (Begin/Continuation) crossed with a
// per-span field-label assignment, subject to cardinality caps, a safe
// prefix beyond which spans are forced to the schema's noise label, and
// caller-supplied forcing (whitespace-only spans, feedback assertions).
//
// Enumeration is a depth-first backtracking search over label choices
// per span position, pruned by FieldConfig cardinality and a document-
// wide unique-field-per-line cap, and bounded by a hard MaxStates cap
// whose truncation the cache package records as a capacity-exhausted
// signal rather than an error.
package enumstate
