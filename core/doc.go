// Package core defines the data model shared by every fieldlattice
// subpackage: lines and candidate spans, the field schema, the per-line
// joint decoding state, the decoded record/entity/field tree, and the
// feedback assertions a caller can feed back into a decode.
//
// Nothing in this package performs a decode; it only declares the shapes
// that the enumstate, cache, lattice, feedback, entitytype, assemble and
// stream packages operate on, plus the sentinel errors raised at the API
// boundary (ErrInvalidSchema, ErrInvalidSpans, ErrInvalidFeedback).
package core
