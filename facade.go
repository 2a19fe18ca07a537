package fieldlattice

import (
	"github.com/katalvlaran/fieldlattice/assemble"
	"github.com/katalvlaran/fieldlattice/core"
	"github.com/katalvlaran/fieldlattice/enumstate"
	"github.com/katalvlaran/fieldlattice/feature"
	"github.com/katalvlaran/fieldlattice/label"
	"github.com/katalvlaran/fieldlattice/stream"
	"github.com/katalvlaran/fieldlattice/telemetry"
)

// Options bundles every optional input a decode needs, beyond the
// document itself, its spans, its schema, and its weights. Decode and
// DecodeFullViaStreaming pass these fields through as given: a nil Logger
// or Recorder becomes a no-op, and zero enumeration caps, lookahead and
// beam fall back to their defaults inside the subpackages, but nil
// feature sets stay empty and a nil Model is not replaced. Callers
// typically start from DefaultOptions() and override only what they need.
type Options struct {
	LineFeatures  []feature.Feature
	SpanFeatures  []feature.Feature
	EnumOptions   enumstate.Options
	StreamOptions stream.Options
	Model         label.Model
	Logger        telemetry.Logger
	Recorder      telemetry.Recorder
}

// DefaultOptions returns the module's default feature sets, enumeration
// caps, streaming caps, and label model.
func DefaultOptions() Options {
	return Options{
		LineFeatures:  feature.DefaultLineFeatures(),
		SpanFeatures:  feature.DefaultSpanFeatures(),
		EnumOptions:   enumstate.DefaultOptions(),
		StreamOptions: stream.DefaultOptions(),
		Model:         label.DefaultModel{},
	}
}

// Decode runs the windowed streaming driver (§4.7) over the document and
// returns its emitted windows without assembling them into records; this
// is the thin passthrough to stream.Decode for callers who want window-
// level granularity (confidence per window, beam state, etc).
func Decode(
	lines []core.Line,
	spansPerLine []core.LineSpans,
	schema core.FieldSchema,
	weights map[string]float64,
	opts Options,
) ([]stream.WindowRecord, error) {
	return stream.Decode(lines, spansPerLine, schema, weights, opts.LineFeatures, opts.SpanFeatures, opts.EnumOptions, opts.StreamOptions, opts.Model, opts.Logger, opts.Recorder)
}

// DecodeFullViaStreaming decodes the entire document with the streaming
// driver's lookahead widened to cover it (§4.7), then assembles the
// concatenated decoded windows into RecordSpans (§4.9) — the module's
// single-call "decode this document" entrypoint.
func DecodeFullViaStreaming(
	lines []core.Line,
	spansPerLine []core.LineSpans,
	schema core.FieldSchema,
	weights map[string]float64,
	opts Options,
) ([]core.RecordSpan, error) {
	opts.StreamOptions.LookaheadLines = len(lines)

	windows, err := stream.Decode(lines, spansPerLine, schema, weights, opts.LineFeatures, opts.SpanFeatures, opts.EnumOptions, opts.StreamOptions, opts.Model, opts.Logger, opts.Recorder)
	if err != nil {
		return nil, err
	}

	// Re-derive the one set of caches (feedback-rewritten spans, dynamic
	// features folded in) that windows was decoded against, so Assemble
	// scores confidence against the exact same spans and weights.
	prepared, err := stream.PrepareCaches(lines, spansPerLine, schema, weights, opts.LineFeatures, opts.SpanFeatures, opts.EnumOptions, opts.StreamOptions, opts.Logger)
	if err != nil {
		return nil, err
	}

	jointSeq := make(core.JointSequence, 0, len(lines))
	for _, w := range windows {
		jointSeq = append(jointSeq, w.Pred...)
	}

	return assemble.Assemble(lines, jointSeq, prepared.SpansPerLine, prepared.Caches, schema, prepared.Weights, opts.Model, opts.LineFeatures, opts.Recorder), nil
}
