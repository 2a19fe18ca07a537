package core

// FieldAction distinguishes asserting a label onto a span (Add) from
// forbidding one (Remove, forcing the noise label).
type FieldAction uint8

const (
	// FieldActionAdd forces FieldType onto the asserted span.
	FieldActionAdd FieldAction = iota
	// FieldActionRemove forces the schema's noise label onto the
	// asserted span, regardless of any feature signal.
	FieldActionRemove
)

// RecordFeedback asserts that lines [StartLine, EndLine] form a single
// record, forcing a Begin boundary at StartLine and Continuation at every
// subsequent line in the range.
type RecordFeedback struct {
	StartLine, EndLine int
}

// EntityFeedback asserts that the lines whose file offsets fall within
// [FileStart, FileEnd] form a single entity of EntityType, forcing a
// Begin boundary on the first such line and Continuation on the rest.
type EntityFeedback struct {
	FileStart, FileEnd int
	EntityType         EntityType
}

// FieldFeedback asserts (Action == FieldActionAdd) or forbids
// (FieldActionRemove) a field label on the line-relative span
// [Start, End) of line LineIndex.
type FieldFeedback struct {
	Action    FieldAction
	LineIndex int
	Start, End int
	FieldType string
	// Confidence is an optional caller-supplied hint, stored verbatim on
	// the entry for round-tripping; the decoder never reads it back (the
	// assembler always recomputes confidence via softmax, §4.9).
	Confidence *float64
}

// FeedbackEntry is the tagged-variant sum type accepted by the feedback
// context builder: exactly one of Record, Entity, or Field is non-nil.
type FeedbackEntry struct {
	Record *RecordFeedback
	Entity *EntityFeedback
	Field  *FieldFeedback
}

// Feedback is an ordered batch of user assertions. Entries are applied in
// order; when two entries conflict on the same span key, the later entry
// wins (§4.8 ambiguity policy).
type Feedback struct {
	Entries []FeedbackEntry
}
