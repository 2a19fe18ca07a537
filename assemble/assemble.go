package assemble

import (
	"math"

	"github.com/google/uuid"

	"github.com/katalvlaran/fieldlattice/cache"
	"github.com/katalvlaran/fieldlattice/core"
	"github.com/katalvlaran/fieldlattice/entitytype"
	"github.com/katalvlaran/fieldlattice/feature"
	"github.com/katalvlaran/fieldlattice/label"
	"github.com/katalvlaran/fieldlattice/telemetry"
)

// Assemble folds jointSeq and its backing caches into the document's
// RecordSpans (§4.9). lines, spansPerLine, and caches must all be
// index-aligned to jointSeq (one entry per document line); callers
// normally obtain caches from cache.BuildCaches and jointSeq from
// lattice.Decode (or the streaming driver).
//
// model scores every candidate label for the softmax confidence of step
// 5; entitytype.Annotate always runs first to classify any line still at
// EntityTypeNone (lineFeatures feeds its scoring), leaving any entity type
// feedback already forced onto a line untouched. recorder may be nil, in
// which case a telemetry.NopRecorder is used.
func Assemble(
	lines []core.Line,
	jointSeq core.JointSequence,
	spansPerLine []core.LineSpans,
	caches cache.DecodeCaches,
	schema core.FieldSchema,
	weights map[string]float64,
	model label.Model,
	lineFeatures []feature.Feature,
	recorder telemetry.Recorder,
) []core.RecordSpan {
	if recorder == nil {
		recorder = telemetry.NopRecorder{}
	}
	jointSeq = entitytype.Annotate(lines, jointSeq, lineFeatures)

	offsets := core.LineFileOffsets(lines)
	candidateLabels := append(append([]string{}, schema.Names()...), schema.NoiseLabel)

	var records []core.RecordSpan
	for start := 0; start < len(jointSeq); {
		end := start
		for end+1 < len(jointSeq) && jointSeq[end+1].Boundary != core.Begin {
			end++
		}

		recordFileStart := offsets[start]
		entities := assembleEntities(lines, jointSeq, spansPerLine, caches, schema, weights, model, candidateLabels, offsets, start, end, recordFileStart)
		if len(entities) > 0 {
			records = append(records, core.RecordSpan{
				ID:        uuid.NewString(),
				StartLine: start,
				EndLine:   end,
				FileStart: recordFileStart,
				FileEnd:   offsets[end] + len(lines[end].Text),
				Entities:  entities,
			})
			recorder.ObserveRecord(len(entities))
		}

		start = end + 1
	}

	return records
}

// assembleEntities groups [start,end] (a single record's line range) into
// EntitySpans on contiguous EntityType runs (§4.9 step 4).
func assembleEntities(
	lines []core.Line,
	jointSeq core.JointSequence,
	spansPerLine []core.LineSpans,
	caches cache.DecodeCaches,
	schema core.FieldSchema,
	weights map[string]float64,
	model label.Model,
	candidateLabels []string,
	offsets []int,
	start, end int,
	recordFileStart int,
) []core.EntitySpan {
	var entities []core.EntitySpan

	for i := start; i <= end; {
		j := i
		etype := jointSeq[i].EntityType
		for j+1 <= end && jointSeq[j+1].EntityType == etype {
			j++
		}

		var included []int
		for line := i; line <= j; line++ {
			if etype == core.Unknown && lineIsAllNoise(jointSeq[line], schema) {
				continue
			}
			included = append(included, line)
		}

		if len(included) > 0 {
			entityStart := offsets[included[0]]
			entitySpan := core.EntitySpan{
				ID:         uuid.NewString(),
				StartLine:  included[0],
				EndLine:    included[len(included)-1],
				FileStart:  entityStart,
				FileEnd:    offsets[included[len(included)-1]] + len(lines[included[len(included)-1]].Text),
				EntityType: etype,
			}
			for _, line := range included {
				entitySpan.Fields = append(entitySpan.Fields, fieldSpansForLine(line, jointSeq, spansPerLine, caches, schema, weights, model, candidateLabels, offsets, recordFileStart)...)
			}
			entities = append(entities, entitySpan)
		}

		i = j + 1
	}

	return entities
}

// lineIsAllNoise reports whether every span on the line carries the
// schema's noise label (§4.9 step 4, "Unknown lines with only noise
// labels are dropped").
func lineIsAllNoise(state core.JointState, schema core.FieldSchema) bool {
	for _, fieldLabel := range state.Fields {
		if fieldLabel != schema.NoiseLabel {
			return false
		}
	}
	return true
}

// fieldSpansForLine emits one FieldSpan per span of line, with its
// assigned label's softmax confidence among candidateLabels (§4.9 step 5).
func fieldSpansForLine(
	line int,
	jointSeq core.JointSequence,
	spansPerLine []core.LineSpans,
	caches cache.DecodeCaches,
	schema core.FieldSchema,
	weights map[string]float64,
	model label.Model,
	candidateLabels []string,
	offsets []int,
	recordFileStart int,
) []core.FieldSpan {
	spans := spansPerLine[line].Spans
	state := jointSeq[line]

	fields := make([]core.FieldSpan, 0, len(spans))
	for k, sp := range spans {
		spanText := caches.SpanText[line][k]
		spanFeats := caches.SpanFeatures[line][k]
		assigned := state.Fields[k]

		fileStart := offsets[line] + sp.Start
		fileEnd := offsets[line] + sp.End

		fields = append(fields, core.FieldSpan{
			LineIndex:   line,
			Start:       sp.Start,
			End:         sp.End,
			FileStart:   fileStart,
			FileEnd:     fileEnd,
			EntityStart: fileStart - recordFileStart,
			EntityEnd:   fileEnd - recordFileStart,
			FieldType:   assigned,
			Confidence:  softmaxConfidence(assigned, spanText, spanFeats, weights, schema, model, candidateLabels),
		})
	}
	return fields
}

// softmaxConfidence computes the softmax-normalised score of assigned
// among candidateLabels' scoreSpanLabel values, stabilised by subtracting
// the max score before exponentiation (§4.9 step 5).
func softmaxConfidence(
	assigned, spanText string,
	spanFeats map[string]float64,
	weights map[string]float64,
	schema core.FieldSchema,
	model label.Model,
	candidateLabels []string,
) float64 {
	scores := make([]float64, len(candidateLabels))
	maxScore := math.Inf(-1)
	for i, lbl := range candidateLabels {
		scores[i] = model.ScoreSpanLabel(lbl, spanText, spanFeats, weights, schema)
		if scores[i] > maxScore {
			maxScore = scores[i]
		}
	}

	var sum, assignedExp float64
	for i, lbl := range candidateLabels {
		e := math.Exp(scores[i] - maxScore)
		sum += e
		if lbl == assigned {
			assignedExp = e
		}
	}
	if sum == 0 {
		return 0
	}
	return assignedExp / sum
}
