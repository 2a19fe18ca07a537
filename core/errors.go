package core

import "errors"

// Sentinel errors for the three hard input-validation failure kinds (§7 of
// the spec). Each is raised at the API boundary, before any DecodeCaches are
// built, and wrapped with fmt.Errorf("%w: ...", ErrXxx, detail) so callers
// can still errors.Is against the bare sentinel.
var (
	// ErrInvalidSchema indicates a duplicate field name, or a NoiseLabel
	// that collides with a declared field name.
	ErrInvalidSchema = errors.New("core: invalid field schema")

	// ErrInvalidSpans indicates end <= start, an out-of-range offset, or a
	// spansPerLine length mismatch against the line count.
	ErrInvalidSpans = errors.New("core: invalid line spans")

	// ErrInvalidFeedback indicates a field assertion with start >= end, a
	// lineIndex out of range, or an entity assertion whose file offsets do
	// not intersect any line.
	ErrInvalidFeedback = errors.New("core: invalid feedback")
)
