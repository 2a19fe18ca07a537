// Package label implements the §4.2 label model contract: turning a raw
// feature value into a per-label contribution (asymmetric — a
// segment.is_X feature favours label X and penalises every other
// non-noise label), and summing weighted contributions into a span's
// score for one candidate label.
//
// The model is replaceable: callers that want different shaping than
// DefaultModel need only implement the Model interface.
package label
