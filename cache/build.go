package cache

import (
	"github.com/katalvlaran/fieldlattice/core"
	"github.com/katalvlaran/fieldlattice/enumstate"
	"github.com/katalvlaran/fieldlattice/feature"
	"github.com/katalvlaran/fieldlattice/telemetry"
)

// BuildCaches precomputes DecodeCaches for one document (§4.5). lines and
// spansPerLine must already be validated by the caller (core.
// ValidateSpansPerLine); BuildCaches does not re-validate them.
//
// logger may be nil, in which case a telemetry.NopLogger is used.
func BuildCaches(
	lines []core.Line,
	spansPerLine []core.LineSpans,
	schema core.FieldSchema,
	weights map[string]float64,
	lineFeatures []feature.Feature,
	spanFeatures []feature.Feature,
	enumOpts enumstate.Options,
	logger telemetry.Logger,
) DecodeCaches {
	if logger == nil {
		logger = telemetry.NopLogger{}
	}

	lineTexts := make([]string, len(lines))
	for i, l := range lines {
		lineTexts[i] = l.Text
	}

	caches := DecodeCaches{
		BoundaryBase: make([]float64, len(lines)),
		SpanFeatures: make([][]map[string]float64, len(lines)),
		SpanText:     make([][]string, len(lines)),
		StateSpaces:  make([][]core.JointState, len(lines)),
	}

	for t, line := range lines {
		lineCtx := feature.Context{LineIndex: t, Lines: lineTexts}
		caches.BoundaryBase[t] = weightedSum(lineFeatures, lineCtx, weights)

		spans := spansPerLine[t].Spans
		spanTexts := make([]string, len(spans))
		spanFeats := make([]map[string]float64, len(spans))
		isWhitespace := make([]bool, len(spans))

		for k, sp := range spans {
			text := sp.Text(line.Text)
			spanTexts[k] = text
			isWhitespace[k] = core.IsWhitespaceOnly(text)

			spanCtx := feature.Context{LineIndex: t, Lines: lineTexts, Span: sp, SpanText: text}
			feats := make(map[string]float64, len(spanFeatures))
			for _, f := range spanFeatures {
				feats[f.ID()] = f.Apply(spanCtx)
			}
			spanFeats[k] = feats
		}

		caches.SpanText[t] = spanTexts
		caches.SpanFeatures[t] = spanFeats

		states, truncated := enumstate.Enumerate(t, spans, spanTexts, isWhitespace, schema, enumOpts)
		caches.StateSpaces[t] = states
		if truncated {
			caches.CapacityExhausted = true
			caches.TruncatedLines = append(caches.TruncatedLines, t)
			logger.Warn("enumeration capacity exhausted", telemetry.Int("line", t), telemetry.Int("states", len(states)))
		}
	}

	return caches
}

// weightedSum sums weights[fid] * f.Apply(ctx) over feats, skipping
// absent or zero weights.
func weightedSum(feats []feature.Feature, ctx feature.Context, weights map[string]float64) float64 {
	var total float64
	for _, f := range feats {
		w, ok := weights[f.ID()]
		if !ok || w == 0 {
			continue
		}
		total += w * f.Apply(ctx)
	}
	return total
}
