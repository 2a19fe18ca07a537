package stream

import (
	"sort"

	"github.com/katalvlaran/fieldlattice/cache"
	"github.com/katalvlaran/fieldlattice/core"
	"github.com/katalvlaran/fieldlattice/enumstate"
	"github.com/katalvlaran/fieldlattice/feature"
	"github.com/katalvlaran/fieldlattice/feedback"
	"github.com/katalvlaran/fieldlattice/label"
	"github.com/katalvlaran/fieldlattice/lattice"
	"github.com/katalvlaran/fieldlattice/telemetry"
)

// Decode runs the windowed streaming driver over the whole document
// (§4.7). lineFeatures and spanFeatures are the caller's base feature
// sets; opts.DynamicCandidates are appended to them before the one-time
// cache build. logger and recorder may be nil, in which case no-op
// implementations are used.
//
// Decode returns a wrapped core.ErrInvalidSchema, core.ErrInvalidSpans or
// core.ErrInvalidFeedback for an invalid schema, invalid spans, or
// malformed opts.Feedback (§7), before any caches are built; the soft
// conditions (CapacityExhausted, NonProgress) are surfaced via recorder
// (one IncCapacityExhausted per truncated line) rather than as an error.
func Decode(
	lines []core.Line,
	spansPerLine []core.LineSpans,
	schema core.FieldSchema,
	weights map[string]float64,
	lineFeatures []feature.Feature,
	spanFeatures []feature.Feature,
	enumOpts enumstate.Options,
	opts Options,
	model label.Model,
	logger telemetry.Logger,
	recorder telemetry.Recorder,
) ([]WindowRecord, error) {
	if logger == nil {
		logger = telemetry.NopLogger{}
	}
	if recorder == nil {
		recorder = telemetry.NopRecorder{}
	}
	lookahead := opts.LookaheadLines
	if lookahead <= 0 {
		lookahead = 32
	}
	beamSize := opts.Beam
	if beamSize <= 0 {
		beamSize = 1
	}

	prepared, err := PrepareCaches(lines, spansPerLine, schema, weights, lineFeatures, spanFeatures, enumOpts, opts, logger)
	if err != nil {
		return nil, err
	}
	caches := prepared.Caches
	for range caches.TruncatedLines {
		recorder.IncCapacityExhausted()
	}
	spansPerLine = prepared.SpansPerLine
	weights = prepared.Weights

	var records []WindowRecord
	var carryBeam lattice.Beam
	pos := 0

	for pos < len(lines) {
		endExclusive := pos + lookahead
		if endExclusive > len(lines) {
			endExclusive = len(lines)
		}
		if endExclusive <= pos {
			recorder.IncNonProgress()
			break
		}

		path, outgoing := lattice.Decode(lines, caches, schema, weights, model, pos, endExclusive, carryBeam, beamSize)

		i := endExclusive - pos
		foundBoundary := false
		for k := 1; k < len(path); k++ {
			if path[k].Boundary == core.Begin {
				i = k
				foundBoundary = true
				break
			}
		}

		confidence := 0.5
		if foundBoundary {
			confidence = 1.0
		}

		records = append(records, WindowRecord{
			Pred:         path[:i],
			SpansPerLine: spansPerLine[pos : pos+i],
			StartLine:    pos,
			EndLine:      pos + i - 1,
			Confidence:   confidence,
		})
		recorder.ObserveWindow(i)

		if opts.Carryover && beamSize > 1 {
			carryBeam = outgoing
		} else {
			carryBeam = nil
		}

		pos += i
	}

	return records, nil
}

// DecodeFullViaStreaming runs Decode with opts.LookaheadLines widened to
// cover the entire document, so every window is decoded against the rest
// of the document; the driver still ends a window at the first decoded
// Begin boundary after its first line, so a document with several
// records yields several windows.
func DecodeFullViaStreaming(
	lines []core.Line,
	spansPerLine []core.LineSpans,
	schema core.FieldSchema,
	weights map[string]float64,
	lineFeatures []feature.Feature,
	spanFeatures []feature.Feature,
	enumOpts enumstate.Options,
	opts Options,
	model label.Model,
	logger telemetry.Logger,
	recorder telemetry.Recorder,
) ([]WindowRecord, error) {
	opts.LookaheadLines = len(lines)
	return Decode(lines, spansPerLine, schema, weights, lineFeatures, spanFeatures, enumOpts, opts, model, logger, recorder)
}

// Prepared is the output of PrepareCaches: the document-wide caches and
// the inputs they were built from, after feedback and dynamic-feature
// materialisation (§4.7 steps 1-3). Exported so callers that need the
// full document's decode inputs in one pass (e.g. the root facade's
// DecodeFullViaStreaming, which must assemble every emitted window's
// states against one consistent set of caches) do not have to
// reimplement steps 1-3 themselves.
type Prepared struct {
	Caches       cache.DecodeCaches
	SpansPerLine []core.LineSpans
	Weights      map[string]float64
}

// PrepareCaches validates schema and spansPerLine, applies feedback (if
// opts.Feedback is set), materialises opts.DynamicCandidates into
// lineFeatures/spanFeatures and seeds their weights, then builds the
// document's DecodeCaches exactly once (§4.7 steps 1-3). It never mutates
// the caller's weights map.
func PrepareCaches(
	lines []core.Line,
	spansPerLine []core.LineSpans,
	schema core.FieldSchema,
	weights map[string]float64,
	lineFeatures []feature.Feature,
	spanFeatures []feature.Feature,
	enumOpts enumstate.Options,
	opts Options,
	logger telemetry.Logger,
) (Prepared, error) {
	if logger == nil {
		logger = telemetry.NopLogger{}
	}

	if err := schema.Validate(); err != nil {
		return Prepared{}, err
	}
	if err := core.ValidateSpansPerLine(lines, spansPerLine); err != nil {
		return Prepared{}, err
	}

	weights = cloneWeights(weights)

	if opts.Feedback != nil {
		fbCtx, err := feedback.Build(lines, spansPerLine, *opts.Feedback, schema.NoiseLabel, logger)
		if err != nil {
			return Prepared{}, err
		}
		spansPerLine = fbCtx.Spans
		enumOpts.ForcedLabelsByLine = fbCtx.ForcedLabelsByLine
		enumOpts.ForcedBoundariesByLine = fbCtx.ForcedBoundariesByLine
		enumOpts.ForcedEntityTypeByLine = fbCtx.ForcedEntityTypeByLine
		if fbCtx.MaxAssertedSpanIdx+1 > enumOpts.SafePrefix {
			enumOpts.SafePrefix = fbCtx.MaxAssertedSpanIdx + 1
		}
	}

	lineFeatures, spanFeatures = materializeDynamicFeatures(lineFeatures, spanFeatures, opts, weights)

	caches := cache.BuildCaches(lines, spansPerLine, schema, weights, lineFeatures, spanFeatures, enumOpts, logger)

	return Prepared{Caches: caches, SpansPerLine: spansPerLine, Weights: weights}, nil
}

// cloneWeights returns a shallow copy of weights so PrepareCaches' dynamic
// weight seeding never mutates the caller's map.
func cloneWeights(weights map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(weights))
	for k, v := range weights {
		out[k] = v
	}
	return out
}

// materializeDynamicFeatures implements §4.7 step 2: rank
// opts.DynamicCandidates by (count * salience) descending, keep the top
// opts.DynamicCandidateLimit, and append each as a "dyn:"-prefixed
// feature.Func to the matching (line or span) feature set. It also seeds
// weights for every provided DynamicInitialWeights entry whose key is
// still absent.
func materializeDynamicFeatures(
	lineFeatures, spanFeatures []feature.Feature,
	opts Options,
	weights map[string]float64,
) ([]feature.Feature, []feature.Feature) {
	if len(opts.DynamicCandidates) == 0 {
		return lineFeatures, spanFeatures
	}

	limit := opts.DynamicCandidateLimit
	if limit <= 0 {
		limit = 50
	}

	candidates := make([]DynamicCandidate, len(opts.DynamicCandidates))
	copy(candidates, opts.DynamicCandidates)
	sort.SliceStable(candidates, func(i, j int) bool {
		return float64(candidates[i].Count)*candidates[i].Salience > float64(candidates[j].Count)*candidates[j].Salience
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	for _, c := range candidates {
		id := "dyn:" + c.Key
		f := feature.New(id, c.Apply)
		switch c.Scope {
		case SpanScope:
			spanFeatures = append(spanFeatures, f)
		default:
			lineFeatures = append(lineFeatures, f)
		}
		if w, provided := opts.DynamicInitialWeights[c.Key]; provided {
			if _, has := weights[id]; !has {
				weights[id] = w
			}
		}
	}

	return lineFeatures, spanFeatures
}
