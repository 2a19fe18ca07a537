package cache

import "github.com/katalvlaran/fieldlattice/core"

// DecodeCaches holds the per-document precomputation the lattice decoder
// reads on every window. Every slice is indexed first by line, matching
// the document's line order.
type DecodeCaches struct {
	// BoundaryBase[t] is the un-signed sum of weighted line-feature values
	// for line t; the lattice applies the boundary sign per candidate.
	BoundaryBase []float64

	// SpanFeatures[t][k] is the feature-id -> value map for line t's k-th
	// span.
	SpanFeatures [][]map[string]float64

	// SpanText[t][k] is line t's k-th span's text.
	SpanText [][]string

	// StateSpaces[t] is the enumerated JointState candidates for line t.
	StateSpaces [][]core.JointState

	// CapacityExhausted is true if any line's enumeration was truncated by
	// enumstate's MaxStates cap (§7 CapacityExhausted, a soft signal).
	CapacityExhausted bool

	// TruncatedLines lists the indices of lines whose enumeration was
	// truncated, for diagnostics.
	TruncatedLines []int
}
