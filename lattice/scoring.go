package lattice

import (
	"github.com/katalvlaran/fieldlattice/core"
	"github.com/katalvlaran/fieldlattice/label"
)

// Weight ids and their defaults for the three transition terms (§4.4).
const (
	WeightBtoB   = "transition.B_to_B"
	WeightCtoC   = "transition.C_to_C"
	WeightAnyToB = "transition.any_to_B"

	defaultBtoB   = -0.5
	defaultCtoC   = 0.3
	defaultAnyToB = 0.4

	// FirstLineBias is added to every B candidate at a window's column 0
	// when there is no incoming beam and the line has non-whitespace
	// content (§4.4 "start with a boundary" prior).
	FirstLineBias = 0.75
)

func weightOrDefault(weights map[string]float64, key string, def float64) float64 {
	if w, ok := weights[key]; ok {
		return w
	}
	return def
}

// Transition scores the move from prev to cur (§4.4). B->B and C->C are
// additive with any->B: a C->B transition receives only any->B, a B->C
// transition receives nothing — the asymmetry is intentional.
func Transition(prev, cur core.JointState, weights map[string]float64) float64 {
	var total float64
	if prev.Boundary == core.Begin && cur.Boundary == core.Begin {
		total += weightOrDefault(weights, WeightBtoB, defaultBtoB)
	}
	if prev.Boundary == core.Continuation && cur.Boundary == core.Continuation {
		total += weightOrDefault(weights, WeightCtoC, defaultCtoC)
	}
	if cur.Boundary == core.Begin {
		total += weightOrDefault(weights, WeightAnyToB, defaultAnyToB)
	}
	return total
}

// Emission scores candidate state s for line t (§4.4): the signed
// boundary base contribution plus the summed field contribution over
// every span's assigned label.
func Emission(boundaryBase float64, s core.JointState, spanFeatures []map[string]float64, spanText []string, weights map[string]float64, schema core.FieldSchema, model label.Model) float64 {
	sign := -1.0
	if s.Boundary == core.Begin {
		sign = 1.0
	}
	total := sign * boundaryBase

	for k, fieldLabel := range s.Fields {
		if fieldLabel == schema.NoiseLabel {
			continue
		}
		if k >= len(spanFeatures) || k >= len(spanText) {
			continue
		}
		total += model.ScoreSpanLabel(fieldLabel, spanText[k], spanFeatures[k], weights, schema)
	}
	return total
}
