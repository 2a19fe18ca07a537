package feedback

import "github.com/katalvlaran/fieldlattice/core"

// Context is the output of Build: the forced constraints and cloned,
// assertion-aligned spans that the enumerator and streaming driver
// consume for one decode (§4.8).
type Context struct {
	// Spans is a deep copy of the input spans with one additional span
	// inserted per assertion whose (start,end) did not already align
	// with a candidate span.
	Spans []core.LineSpans

	// ForcedLabelsByLine[lineIndex][span.Key()] is the label the
	// enumerator must generate at that position (the schema's noise
	// label for a FieldActionRemove assertion).
	ForcedLabelsByLine map[int]map[string]string

	// ForcedBoundariesByLine[lineIndex] is the boundary the enumerator
	// must generate for that line.
	ForcedBoundariesByLine map[int]core.Boundary

	// ForcedEntityTypeByLine[lineIndex] is the entity type stamped onto
	// every state generated for that line; an entity assertion stamps its
	// Begin line and every Continuation line it spans alike, so the
	// forced classification survives contiguous-run grouping in the
	// assembler without waiting on the entity-type annotator.
	ForcedEntityTypeByLine map[int]core.EntityType

	// MaxAssertedSpanIdx is the maximum span index, within its line,
	// touched by any assertion; callers raise the enumerator's
	// SafePrefix to at least MaxAssertedSpanIdx+1.
	MaxAssertedSpanIdx int
}
