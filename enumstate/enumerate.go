package enumstate

import (
	"github.com/katalvlaran/fieldlattice/core"
)

// Enumerate generates the candidate JointStates for one line's spans
// (§4.3). spans, spanText, and spanIsWhitespace are parallel slices: the
// i-th entry of each describes the same span. lineIndex addresses opts'
// per-line forcing maps.
//
// It returns the emitted states and whether MaxStates truncated the
// search before every valid combination could be explored; a truncated
// result is never wrong (every emitted state is still valid), only
// possibly incomplete.
func Enumerate(lineIndex int, spans []core.Span, spanText []string, spanIsWhitespace []bool, schema core.FieldSchema, opts Options) ([]core.JointState, bool) {
	opts = opts.resolved()

	n := len(spans)
	e := &enumerator{
		lineIndex:      lineIndex,
		spans:          spans,
		spanText:       spanText,
		spanIsWS:       spanIsWhitespace,
		schema:         schema,
		opts:           opts,
		forcedLabels:   opts.ForcedLabelsByLine[lineIndex],
		assignment:     make([]string, n),
		counts:         make(map[string]int),
	}
	e.forcedBoundary, e.hasForcedBoundary = opts.ForcedBoundariesByLine[lineIndex]
	e.forcedEntityType, e.hasForcedEntityType = opts.ForcedEntityTypeByLine[lineIndex]

	e.dfs(0)

	return e.states, e.truncated
}

// enumerator carries the mutable search state for one Enumerate call.
type enumerator struct {
	lineIndex int
	spans     []core.Span
	spanText  []string
	spanIsWS  []bool
	schema    core.FieldSchema
	opts      Options

	forcedLabels         map[string]string
	forcedBoundary       core.Boundary
	hasForcedBoundary    bool
	forcedEntityType     core.EntityType
	hasForcedEntityType  bool

	assignment []string
	counts     map[string]int
	uniqueUsed int

	states    []core.JointState
	truncated bool
}

// dfs assigns a label to position pos and recurses; at pos == len(spans)
// it emits the completed assignment as one or two JointStates.
func (e *enumerator) dfs(pos int) {
	if len(e.states) >= e.opts.MaxStates {
		e.truncated = true
		return
	}
	if pos == len(e.spans) {
		e.emit()
		return
	}

	// Whitespace-only spans are always noise, regardless of any forced
	// label for the position.
	if pos < len(e.spanIsWS) && e.spanIsWS[pos] {
		e.assignment[pos] = e.schema.NoiseLabel
		e.dfs(pos + 1)
		return
	}

	// Beyond the safe prefix, the tail is forced to noise.
	if pos >= e.opts.SafePrefix {
		e.assignment[pos] = e.schema.NoiseLabel
		e.dfs(pos + 1)
		return
	}

	if e.forcedLabels != nil {
		if forced, ok := e.forcedLabels[e.spans[pos].Key()]; ok {
			label := forced
			if label != e.schema.NoiseLabel && !e.canAssign(label) {
				label = e.schema.NoiseLabel
			}
			e.assignment[pos] = label
			e.applyAssign(label)
			e.dfs(pos + 1)
			e.undoAssign(label)
			return
		}
	}

	// Noise is always a candidate.
	e.assignment[pos] = e.schema.NoiseLabel
	e.dfs(pos + 1)
	if len(e.states) >= e.opts.MaxStates {
		e.truncated = true
		return
	}

	for _, name := range e.schema.Names() {
		if !e.canAssign(name) {
			continue
		}
		if !e.schema.Accepts(name, e.spanText[pos]) {
			continue
		}
		e.assignment[pos] = name
		e.applyAssign(name)
		e.dfs(pos + 1)
		e.undoAssign(name)
		if len(e.states) >= e.opts.MaxStates {
			e.truncated = true
			return
		}
	}
}

// canAssign reports whether label can receive one more occurrence in the
// current partial assignment, honouring the schema's per-label cap, any
// MaxStatesPerField override, and the MaxUniqueFields cap.
func (e *enumerator) canAssign(label string) bool {
	limit := e.schema.MaxAllowed(label)
	if override, ok := e.opts.MaxStatesPerField[label]; ok && override < limit {
		limit = override
	}
	if e.counts[label] >= limit {
		return false
	}
	if e.counts[label] == 0 && e.uniqueUsed >= e.opts.MaxUniqueFields {
		return false
	}
	return true
}

func (e *enumerator) applyAssign(label string) {
	if label == e.schema.NoiseLabel {
		return
	}
	if e.counts[label] == 0 {
		e.uniqueUsed++
	}
	e.counts[label]++
}

func (e *enumerator) undoAssign(label string) {
	if label == e.schema.NoiseLabel {
		return
	}
	e.counts[label]--
	if e.counts[label] == 0 {
		e.uniqueUsed--
	}
}

// emit copies the completed assignment into one or two JointStates.
func (e *enumerator) emit() {
	fields := make([]string, len(e.assignment))
	copy(fields, e.assignment)

	add := func(b core.Boundary) {
		if len(e.states) >= e.opts.MaxStates {
			e.truncated = true
			return
		}
		st := core.JointState{Boundary: b, Fields: fields}
		if e.hasForcedEntityType {
			st.EntityType = e.forcedEntityType
		}
		e.states = append(e.states, st)
	}

	if e.hasForcedBoundary {
		add(e.forcedBoundary)
		return
	}
	add(core.Begin)
	add(core.Continuation)
}
