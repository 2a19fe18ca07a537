package lattice

import "github.com/katalvlaran/fieldlattice/core"

// BeamEntry is one carried-over (state, score) pair (§9 "Beam").
type BeamEntry struct {
	State core.JointState
	Score float64
}

// Beam is a small, score-ordered (descending) vector of BeamEntry. An
// empty or nil Beam is treated identically: "no incoming beam" (open
// question resolved in §9 of the design notes).
type Beam []BeamEntry

// topK returns the K entries of cell with the highest score, K =
// max(1, beamSize). Ties break by the lower state index (stable sort on
// the original, ascending-by-index order).
func topK(entries Beam, beamSize int) Beam {
	if beamSize < 1 {
		beamSize = 1
	}
	sorted := make(Beam, len(entries))
	copy(sorted, entries)
	// simple stable insertion sort descending by score: beams are small
	// (typically <= 8), so this avoids pulling in sort for a tiny slice.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Score > sorted[j-1].Score; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	if beamSize < len(sorted) {
		sorted = sorted[:beamSize]
	}
	return sorted
}
