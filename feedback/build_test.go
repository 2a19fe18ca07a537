package feedback_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldlattice/core"
	"github.com/katalvlaran/fieldlattice/feedback"
)

func TestBuildFieldAssertionInsertsSpanAndForcesLabel(t *testing.T) {
	lines := []core.Line{{Index: 0, Text: "Foo Bar"}}
	spans := []core.LineSpans{{LineIndex: 0, Spans: []core.Span{{Start: 0, End: 3}, {Start: 4, End: 7}}}}
	fb := core.Feedback{Entries: []core.FeedbackEntry{
		{Field: &core.FieldFeedback{Action: core.FieldActionAdd, LineIndex: 0, Start: 0, End: 3, FieldType: "Name"}},
	}}

	ctx, err := feedback.Build(lines, spans, fb, "NOISE", nil)
	require.NoError(t, err)
	require.Equal(t, "Name", ctx.ForcedLabelsByLine[0][core.Span{Start: 0, End: 3}.Key()])
	require.Len(t, ctx.Spans[0].Spans, 2)
}

func TestBuildFieldAssertionInsertsMissingSpan(t *testing.T) {
	lines := []core.Line{{Index: 0, Text: "Foo Bar"}}
	spans := []core.LineSpans{{LineIndex: 0, Spans: []core.Span{{Start: 4, End: 7}}}}
	fb := core.Feedback{Entries: []core.FeedbackEntry{
		{Field: &core.FieldFeedback{Action: core.FieldActionAdd, LineIndex: 0, Start: 0, End: 3, FieldType: "Name"}},
	}}

	ctx, err := feedback.Build(lines, spans, fb, "NOISE", nil)
	require.NoError(t, err)
	require.Len(t, ctx.Spans[0].Spans, 2)
	require.Equal(t, core.Span{Start: 0, End: 3}, ctx.Spans[0].Spans[0])
}

func TestBuildFieldRemoveForcesNoise(t *testing.T) {
	lines := []core.Line{{Index: 0, Text: "5551234567"}}
	spans := []core.LineSpans{{LineIndex: 0, Spans: []core.Span{{Start: 0, End: 10}}}}
	fb := core.Feedback{Entries: []core.FeedbackEntry{
		{Field: &core.FieldFeedback{Action: core.FieldActionRemove, LineIndex: 0, Start: 0, End: 10, FieldType: "Phone"}},
	}}

	ctx, err := feedback.Build(lines, spans, fb, "NOISE", nil)
	require.NoError(t, err)
	require.Equal(t, "NOISE", ctx.ForcedLabelsByLine[0][core.Span{Start: 0, End: 10}.Key()])
}

func TestBuildFieldInvalidRangeErrors(t *testing.T) {
	lines := []core.Line{{Index: 0, Text: "Foo"}}
	spans := []core.LineSpans{{LineIndex: 0, Spans: nil}}
	fb := core.Feedback{Entries: []core.FeedbackEntry{
		{Field: &core.FieldFeedback{LineIndex: 0, Start: 3, End: 1}},
	}}

	_, err := feedback.Build(lines, spans, fb, "NOISE", nil)
	require.ErrorIs(t, err, core.ErrInvalidFeedback)
}

func TestBuildRecordAssertionForcesBoundaries(t *testing.T) {
	lines := []core.Line{{Index: 0, Text: "a"}, {Index: 1, Text: "b"}, {Index: 2, Text: "c"}}
	spans := make([]core.LineSpans, 3)
	for i := range spans {
		spans[i] = core.LineSpans{LineIndex: i}
	}
	fb := core.Feedback{Entries: []core.FeedbackEntry{
		{Record: &core.RecordFeedback{StartLine: 0, EndLine: 2}},
	}}

	ctx, err := feedback.Build(lines, spans, fb, "NOISE", nil)
	require.NoError(t, err)
	require.Equal(t, core.Begin, ctx.ForcedBoundariesByLine[0])
	require.Equal(t, core.Continuation, ctx.ForcedBoundariesByLine[1])
	require.Equal(t, core.Continuation, ctx.ForcedBoundariesByLine[2])
}

func TestBuildEntityAssertionSpansMultipleLines(t *testing.T) {
	lines := []core.Line{{Index: 0, Text: "Guardian: Jane Doe"}, {Index: 1, Text: "  555-1234"}}
	spans := make([]core.LineSpans, 2)
	for i := range spans {
		spans[i] = core.LineSpans{LineIndex: i}
	}
	// line0 occupies [0,18), newline at 18, line1 starts at 19 and spans [19,29).
	fb := core.Feedback{Entries: []core.FeedbackEntry{
		{Entity: &core.EntityFeedback{FileStart: 0, FileEnd: 29, EntityType: core.Guardian}},
	}}

	ctx, err := feedback.Build(lines, spans, fb, "NOISE", nil)
	require.NoError(t, err)
	require.Equal(t, core.Begin, ctx.ForcedBoundariesByLine[0])
	require.Equal(t, core.Continuation, ctx.ForcedBoundariesByLine[1])
	require.Equal(t, core.Guardian, ctx.ForcedEntityTypeByLine[0])
	require.Equal(t, core.Guardian, ctx.ForcedEntityTypeByLine[1])
}

func TestBuildEntityAssertionNoIntersectionErrors(t *testing.T) {
	lines := []core.Line{{Index: 0, Text: "short"}}
	spans := []core.LineSpans{{LineIndex: 0}}
	fb := core.Feedback{Entries: []core.FeedbackEntry{
		{Entity: &core.EntityFeedback{FileStart: 100, FileEnd: 200, EntityType: core.Primary}},
	}}

	_, err := feedback.Build(lines, spans, fb, "NOISE", nil)
	require.ErrorIs(t, err, core.ErrInvalidFeedback)
}

func TestBuildLatestEntryWinsOnConflict(t *testing.T) {
	lines := []core.Line{{Index: 0, Text: "Foo"}}
	spans := []core.LineSpans{{LineIndex: 0, Spans: []core.Span{{Start: 0, End: 3}}}}
	fb := core.Feedback{Entries: []core.FeedbackEntry{
		{Field: &core.FieldFeedback{Action: core.FieldActionAdd, LineIndex: 0, Start: 0, End: 3, FieldType: "Name"}},
		{Field: &core.FieldFeedback{Action: core.FieldActionAdd, LineIndex: 0, Start: 0, End: 3, FieldType: "ExtID"}},
	}}

	ctx, err := feedback.Build(lines, spans, fb, "NOISE", nil)
	require.NoError(t, err)
	require.Equal(t, "ExtID", ctx.ForcedLabelsByLine[0][core.Span{Start: 0, End: 3}.Key()])
}

func TestBuildDoesNotMutateInputSpans(t *testing.T) {
	lines := []core.Line{{Index: 0, Text: "Foo Bar"}}
	original := []core.LineSpans{{LineIndex: 0, Spans: []core.Span{{Start: 4, End: 7}}}}
	fb := core.Feedback{Entries: []core.FeedbackEntry{
		{Field: &core.FieldFeedback{Action: core.FieldActionAdd, LineIndex: 0, Start: 0, End: 3, FieldType: "Name"}},
	}}

	_, err := feedback.Build(lines, original, fb, "NOISE", nil)
	require.NoError(t, err)
	require.Len(t, original[0].Spans, 1)
}
