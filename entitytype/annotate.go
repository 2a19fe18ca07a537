package entitytype

import (
	"github.com/katalvlaran/fieldlattice/core"
	"github.com/katalvlaran/fieldlattice/feature"
)

// guardianBackwardWindow, guardianForwardWindow bound the post-pass
// search for a preceding (or following) Primary (§4.10 post-pass).
const (
	guardianBackwardWindow = 3
	guardianForwardWindow  = 1
)

// Annotate classifies every Begin line of seq still at EntityTypeNone as
// Primary, Guardian, or Unknown (§4.10); a Begin line that already carries
// a classification (typically one forced by feedback) is left untouched
// but still participates in the Guardian-promotion post-pass and
// continuation propagation below. It propagates each Begin line's final
// classification forward onto the Continuation lines that follow it
// within the same record, and runs the Guardian-promotion post-pass. It
// returns a new JointSequence; seq is not mutated.
//
// lineFeatures supplies the boundary-feature values the scoring tables
// read; callers typically pass feature.DefaultLineFeatures().
func Annotate(lines []core.Line, seq core.JointSequence, lineFeatures []feature.Feature) core.JointSequence {
	out := make(core.JointSequence, len(seq))
	copy(out, seq)

	lineTexts := make([]string, len(lines))
	for i, l := range lines {
		lineTexts[i] = l.Text
	}

	var boundaryLines []int
	forced := make(map[int]bool)
	for i, st := range out {
		if st.Boundary != core.Begin {
			continue
		}
		boundaryLines = append(boundaryLines, i)

		if st.EntityType != core.EntityTypeNone {
			forced[i] = true
			continue
		}

		ctx := feature.Context{LineIndex: i, Lines: lineTexts}
		values := make(map[string]float64, len(lineFeatures))
		for _, f := range lineFeatures {
			values[f.ID()] = f.Apply(ctx)
		}

		pScore := weightedScore(primaryWeights, values)
		if values["line.has_name"] > 0 {
			pScore += hasNameBoost
		}
		gScore := weightedScore(guardianWeights, values)

		switch {
		case pScore >= primaryThreshold && pScore > gScore:
			out[i].EntityType = core.Primary
		case gScore >= guardianThreshold && gScore >= pScore:
			out[i].EntityType = core.Guardian
		default:
			out[i].EntityType = core.Unknown
		}
	}

	promoteOrDemoteGuardians(out, boundaryLines, forced)
	propagateToContinuations(out)

	return out
}

// promoteOrDemoteGuardians enforces that every Guardian Begin line has a
// preceding Primary within guardianBackwardWindow boundary lines (or,
// failing that, the very next boundary line is Primary); otherwise the
// Guardian is demoted to Unknown. The scan walks the ordered list of
// Begin-line indices directly — Continuation lines are not in that list,
// so they never interrupt the count, even when feedback has forced an
// entity type onto them.
// forced lines (typically feedback-forced entity types) are exempt from
// demotion: a forced classification is authoritative.
func promoteOrDemoteGuardians(out core.JointSequence, boundaryLines []int, forced map[int]bool) {
	for pos, lineIdx := range boundaryLines {
		if out[lineIdx].EntityType != core.Guardian || forced[lineIdx] {
			continue
		}

		found := false
		for back := 1; back <= guardianBackwardWindow && pos-back >= 0; back++ {
			if out[boundaryLines[pos-back]].EntityType == core.Primary {
				found = true
				break
			}
		}
		if !found {
			for fwd := 1; fwd <= guardianForwardWindow && pos+fwd < len(boundaryLines); fwd++ {
				if out[boundaryLines[pos+fwd]].EntityType == core.Primary {
					found = true
					break
				}
			}
		}
		if !found {
			out[lineIdx].EntityType = core.Unknown
		}
	}
}

// propagateToContinuations sets every Continuation line's EntityType to
// the most recently seen anchor's (possibly post-pass-demoted)
// classification, so the record assembler can group contiguous runs of
// identical EntityType across an entire record (§4.9 step 4). A Begin
// line always starts a new anchor. A Continuation line that already
// carries a classification (typically forced by an entity assertion
// spanning a sub-range of the record, §4.8) also starts a new anchor
// instead of being overwritten, so a record can hold more than one
// contiguous entity without every sub-entity needing its own record
// boundary.
func propagateToContinuations(out core.JointSequence) {
	current := core.EntityTypeNone
	for i := range out {
		switch {
		case out[i].Boundary == core.Begin:
			current = out[i].EntityType
		case out[i].EntityType != core.EntityTypeNone:
			current = out[i].EntityType
		default:
			out[i].EntityType = current
		}
	}
}
