package lattice

import (
	"math"

	"github.com/katalvlaran/fieldlattice/cache"
	"github.com/katalvlaran/fieldlattice/core"
	"github.com/katalvlaran/fieldlattice/label"
)

// Decode runs the windowed Viterbi decoder over [start, endExclusive)
// (§4.6). incomingBeam may be nil or empty, meaning "no incoming beam".
// beamSize controls the outgoing beam width; values < 1 are treated as 1.
//
// lines, caches, and schema must describe the same document; caches must
// have been built with the same spans and schema.
func Decode(
	lines []core.Line,
	caches cache.DecodeCaches,
	schema core.FieldSchema,
	weights map[string]float64,
	model label.Model,
	start, endExclusive int,
	incomingBeam Beam,
	beamSize int,
) ([]core.JointState, Beam) {
	n := endExclusive - start
	if n <= 0 {
		return nil, nil
	}

	cell := make([][]float64, n)
	back := make([][]int, n)

	states0 := caches.StateSpaces[start]
	cell[0] = make([]float64, len(states0))
	back[0] = make([]int, len(states0))
	for i, st := range states0 {
		e := Emission(caches.BoundaryBase[start], st, caches.SpanFeatures[start], caches.SpanText[start], weights, schema, model)
		back[0][i] = -1
		if len(incomingBeam) > 0 {
			best := math.Inf(-1)
			for _, b := range incomingBeam {
				sc := b.Score + Transition(b.State, st, weights) + e
				if sc > best {
					best = sc
				}
			}
			cell[0][i] = best
			continue
		}
		bias := 0.0
		if st.Boundary == core.Begin && !core.IsWhitespaceOnly(lines[start].Text) {
			bias = FirstLineBias
		}
		cell[0][i] = e + bias
	}

	for t := 1; t < n; t++ {
		line := start + t
		prevStates := caches.StateSpaces[line-1]
		curStates := caches.StateSpaces[line]
		cell[t] = make([]float64, len(curStates))
		back[t] = make([]int, len(curStates))

		for i, cur := range curStates {
			e := Emission(caches.BoundaryBase[line], cur, caches.SpanFeatures[line], caches.SpanText[line], weights, schema, model)
			bestScore := math.Inf(-1)
			bestJ := 0
			for j, prev := range prevStates {
				sc := cell[t-1][j] + Transition(prev, cur, weights)
				if sc > bestScore {
					bestScore = sc
					bestJ = j
				}
			}
			cell[t][i] = e + bestScore
			back[t][i] = bestJ
		}
	}

	lastCol := cell[n-1]
	bestLast, bestScore := 0, math.Inf(-1)
	for i, v := range lastCol {
		if v > bestScore {
			bestScore = v
			bestLast = i
		}
	}

	path := make([]core.JointState, n)
	idx := bestLast
	for t := n - 1; t >= 0; t-- {
		path[t] = caches.StateSpaces[start+t][idx]
		if t > 0 {
			idx = back[t][idx]
		}
	}

	outgoingEntries := make(Beam, 0, len(lastCol))
	lastStates := caches.StateSpaces[start+n-1]
	for i, v := range lastCol {
		outgoingEntries = append(outgoingEntries, BeamEntry{State: lastStates[i], Score: v})
	}

	return path, topK(outgoingEntries, beamSize)
}
