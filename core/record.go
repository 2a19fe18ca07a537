package core

// FieldSpan is a single labelled span emitted by the record assembler.
type FieldSpan struct {
	LineIndex int
	// Start, End are line-relative offsets into the owning line's text.
	Start, End int
	// FileStart, FileEnd are document-relative byte offsets:
	// FileStart = lineFileOffset + Start.
	FileStart, FileEnd int
	// EntityStart, EntityEnd are offsets relative to the owning record's
	// FileStart: EntityStart = FileStart - record.FileStart.
	EntityStart, EntityEnd int
	// FieldType is the assigned label (a schema field name, or the
	// schema's noise label).
	FieldType string
	// Confidence is the softmax-normalised score of FieldType among all
	// candidate labels for this span, in [0, 1].
	Confidence float64
}

// EntitySpan groups a contiguous run of lines sharing one EntityType
// within a single record.
type EntitySpan struct {
	// ID uniquely identifies this entity across a single Assemble call;
	// purely a correlation aid for callers, not part of any decode
	// invariant.
	ID string

	StartLine, EndLine int
	FileStart, FileEnd int
	EntityType         EntityType
	// Fields are ordered by FileStart.
	Fields []FieldSpan
}

// RecordSpan groups one or more contiguous EntitySpans that together form
// one extracted record.
type RecordSpan struct {
	// ID uniquely identifies this record across a single Assemble call.
	ID string

	StartLine, EndLine int
	FileStart, FileEnd int
	// Entities are ordered by StartLine.
	Entities []EntitySpan
}
