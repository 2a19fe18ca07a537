package feedback

import (
	"fmt"

	"github.com/katalvlaran/fieldlattice/core"
	"github.com/katalvlaran/fieldlattice/telemetry"
)

// Build turns fb into a Context for one document (§4.8). noiseLabel is
// the schema's noise label, used for FieldActionRemove assertions.
// logger may be nil, in which case a telemetry.NopLogger is used.
//
// Build returns a wrapped core.ErrInvalidFeedback for a malformed entry
// (§7 InvalidFeedback); everything else degrades rather than aborts, per
// the "latest wins" ambiguity policy.
func Build(lines []core.Line, spansPerLine []core.LineSpans, fb core.Feedback, noiseLabel string, logger telemetry.Logger) (Context, error) {
	if logger == nil {
		logger = telemetry.NopLogger{}
	}

	cloned := make([]core.LineSpans, len(spansPerLine))
	for i, ls := range spansPerLine {
		spansCopy := make([]core.Span, len(ls.Spans))
		copy(spansCopy, ls.Spans)
		cloned[i] = core.LineSpans{LineIndex: ls.LineIndex, Spans: spansCopy}
	}

	ctx := Context{
		Spans:                  cloned,
		ForcedLabelsByLine:     make(map[int]map[string]string),
		ForcedBoundariesByLine: make(map[int]core.Boundary),
		ForcedEntityTypeByLine: make(map[int]core.EntityType),
	}

	offsets := core.LineFileOffsets(lines)

	for _, entry := range fb.Entries {
		switch {
		case entry.Record != nil:
			if err := applyRecord(&ctx, lines, entry.Record, logger); err != nil {
				return Context{}, err
			}
		case entry.Entity != nil:
			if err := applyEntity(&ctx, lines, offsets, entry.Entity); err != nil {
				return Context{}, err
			}
		case entry.Field != nil:
			if err := applyField(&ctx, lines, entry.Field, noiseLabel, logger); err != nil {
				return Context{}, err
			}
		default:
			return Context{}, fmt.Errorf("%w: feedback entry carries no record/entity/field", core.ErrInvalidFeedback)
		}
	}

	return ctx, nil
}

func applyRecord(ctx *Context, lines []core.Line, r *core.RecordFeedback, logger telemetry.Logger) error {
	if r.StartLine < 0 || r.EndLine >= len(lines) || r.StartLine > r.EndLine {
		return fmt.Errorf("%w: record feedback lines [%d,%d] out of range for %d lines", core.ErrInvalidFeedback, r.StartLine, r.EndLine, len(lines))
	}
	if prev, ok := ctx.ForcedBoundariesByLine[r.StartLine]; ok && prev != core.Begin {
		logger.Warn("feedback ambiguity resolved latest-wins", telemetry.Int("line", r.StartLine))
	}
	ctx.ForcedBoundariesByLine[r.StartLine] = core.Begin
	for l := r.StartLine + 1; l <= r.EndLine; l++ {
		ctx.ForcedBoundariesByLine[l] = core.Continuation
	}
	return nil
}

func applyEntity(ctx *Context, lines []core.Line, offsets []int, e *core.EntityFeedback) error {
	if e.FileStart >= e.FileEnd {
		return fmt.Errorf("%w: entity feedback fileStart %d >= fileEnd %d", core.ErrInvalidFeedback, e.FileStart, e.FileEnd)
	}

	first := -1
	for i, line := range lines {
		lineStart := offsets[i]
		lineEnd := lineStart + len(line.Text)
		overlapStart := max(e.FileStart, lineStart)
		overlapEnd := min(e.FileEnd, lineEnd)
		if overlapStart >= overlapEnd {
			continue
		}

		if first == -1 {
			first = i
		}
		fragStart, fragEnd := overlapStart-lineStart, overlapEnd-lineStart
		newSpans, idx := insertSpan(ctx.Spans[i].Spans, core.Span{Start: fragStart, End: fragEnd})
		ctx.Spans[i].Spans = newSpans
		if idx > ctx.MaxAssertedSpanIdx {
			ctx.MaxAssertedSpanIdx = idx
		}
		if i == first {
			ctx.ForcedBoundariesByLine[i] = core.Begin
		} else {
			ctx.ForcedBoundariesByLine[i] = core.Continuation
		}
		ctx.ForcedEntityTypeByLine[i] = e.EntityType
	}
	if first == -1 {
		return fmt.Errorf("%w: entity feedback [%d,%d) does not intersect any line", core.ErrInvalidFeedback, e.FileStart, e.FileEnd)
	}
	return nil
}

func applyField(ctx *Context, lines []core.Line, f *core.FieldFeedback, noiseLabel string, logger telemetry.Logger) error {
	if f.LineIndex < 0 || f.LineIndex >= len(lines) {
		return fmt.Errorf("%w: field feedback lineIndex %d out of range for %d lines", core.ErrInvalidFeedback, f.LineIndex, len(lines))
	}
	if f.Start >= f.End {
		return fmt.Errorf("%w: field feedback start %d >= end %d", core.ErrInvalidFeedback, f.Start, f.End)
	}

	newSpans, idx := insertSpan(ctx.Spans[f.LineIndex].Spans, core.Span{Start: f.Start, End: f.End})
	ctx.Spans[f.LineIndex].Spans = newSpans
	if idx > ctx.MaxAssertedSpanIdx {
		ctx.MaxAssertedSpanIdx = idx
	}

	label := f.FieldType
	if f.Action == core.FieldActionRemove {
		label = noiseLabel
	}
	key := core.Span{Start: f.Start, End: f.End}.Key()
	if ctx.ForcedLabelsByLine[f.LineIndex] == nil {
		ctx.ForcedLabelsByLine[f.LineIndex] = make(map[string]string)
	}
	if prev, ok := ctx.ForcedLabelsByLine[f.LineIndex][key]; ok && prev != label {
		logger.Warn("feedback ambiguity resolved latest-wins", telemetry.Int("line", f.LineIndex), telemetry.String("key", key))
	}
	ctx.ForcedLabelsByLine[f.LineIndex][key] = label
	return nil
}

// insertSpan returns spans with sp inserted in (start,end) order,
// de-duplicated, and the index sp occupies in the result.
func insertSpan(spans []core.Span, sp core.Span) ([]core.Span, int) {
	for i, existing := range spans {
		if existing.Start == sp.Start && existing.End == sp.End {
			return spans, i
		}
		if existing.Start > sp.Start || (existing.Start == sp.Start && existing.End > sp.End) {
			out := make([]core.Span, 0, len(spans)+1)
			out = append(out, spans[:i]...)
			out = append(out, sp)
			out = append(out, spans[i:]...)
			return out, i
		}
	}
	return append(spans, sp), len(spans)
}
