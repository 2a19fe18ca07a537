package core

// Boundary is a per-line boundary label: Begin starts a new record,
// Continuation continues the current one.
type Boundary uint8

const (
	// Continuation ('C') continues the current record.
	Continuation Boundary = iota
	// Begin ('B') starts a new record.
	Begin
)

// String renders the boundary using the single-letter convention from the
// spec ("B" or "C").
func (b Boundary) String() string {
	if b == Begin {
		return "B"
	}
	return "C"
}

// EntityType classifies a Begin line's role within its record.
type EntityType uint8

const (
	// EntityTypeNone is the zero value: no classification has run yet.
	// It is never emitted by the entity-type annotator.
	EntityTypeNone EntityType = iota
	// Primary is the principal entity of a record.
	Primary
	// Guardian is a secondary entity associated with a preceding Primary.
	Guardian
	// Unknown is a Begin line that the annotator could not classify.
	Unknown
)

// String renders the entity type's canonical name.
func (e EntityType) String() string {
	switch e {
	case Primary:
		return "Primary"
	case Guardian:
		return "Guardian"
	case Unknown:
		return "Unknown"
	default:
		return "None"
	}
}

// JointState is the decoded (or candidate) state of a single line: its
// boundary, one label per candidate span (including the schema's noise
// label), and an optional entity type (see the EntityType field).
type JointState struct {
	Boundary Boundary
	// Fields holds exactly one label per span of the line this state
	// belongs to (len(Fields) == len(spans for that line)).
	Fields []string
	// EntityType is EntityTypeNone until the entity-type annotator (or a
	// forced constraint) sets it. The annotator scores Begin lines and
	// copies each result onto the following Continuation lines, which the
	// record assembler groups on.
	EntityType EntityType
}

// JointSequence is the decoded path: one JointState per document line, in
// line order.
type JointSequence []JointState

// HasEntityTypes reports whether any Begin line in seq already carries a
// classified (non-None) entity type, e.g. one forced by feedback ahead of
// entitytype.Annotate running.
func (seq JointSequence) HasEntityTypes() bool {
	for _, st := range seq {
		if st.Boundary == Begin && st.EntityType != EntityTypeNone {
			return true
		}
	}
	return false
}
