package stream

import (
	"github.com/katalvlaran/fieldlattice/core"
	"github.com/katalvlaran/fieldlattice/feature"
)

// FeatureScope selects whether a DynamicCandidate materialises into a
// boundary (line-level) or segment (span-level) feature (§4.7 step 2).
type FeatureScope uint8

const (
	// LineScope materialises the candidate as a boundary feature,
	// evaluated once per line.
	LineScope FeatureScope = iota
	// SpanScope materialises the candidate as a segment feature,
	// evaluated once per candidate span.
	SpanScope
)

// DynamicCandidate is one caller-supplied dynamic feature produced by the
// (out-of-scope) file-level analysis pipeline (§9 glossary "Dynamic
// feature"). The driver only consumes candidates; it never discovers or
// scores them itself.
type DynamicCandidate struct {
	// Key becomes the feature id "dyn:"+Key once materialised.
	Key string
	// Count and Salience rank candidates for truncation to
	// Options.DynamicCandidateLimit (sorted by Count*Salience descending).
	Count    int
	Salience float64
	// Scope selects whether this candidate is a line or span feature.
	Scope FeatureScope
	// Apply is the candidate's value function, already produced by the
	// upstream pipeline.
	Apply func(feature.Context) float64
}

// Options configures one call to Decode (§4.7, §6 "Streaming options").
type Options struct {
	// LookaheadLines bounds how many lines ahead of pos the decoder
	// considers per window. <= 0 falls back to the default (32).
	LookaheadLines int
	// Beam is the outgoing/incoming beam width. <= 0 falls back to 1.
	Beam int
	// Carryover threads the outgoing beam of one window into the next
	// when Beam > 1; otherwise each window starts beam-free.
	Carryover bool
	// Feedback, if non-nil, is applied via feedback.Build before the
	// first window is decoded.
	Feedback *core.Feedback
	// DynamicCandidates, if non-empty, are ranked and truncated to
	// DynamicCandidateLimit before being materialised as dyn: features.
	DynamicCandidates []DynamicCandidate
	// DynamicCandidateLimit caps how many DynamicCandidates are kept.
	// <= 0 falls back to the default (50).
	DynamicCandidateLimit int
	// DynamicInitialWeights seeds weights["dyn:"+k] for every k present,
	// but only when that key is absent from the caller's weights map.
	DynamicInitialWeights map[string]float64
}

// DefaultOptions returns the streaming driver's defaults from §6:
// LookaheadLines 32, Beam 1, Carryover true, DynamicCandidateLimit 50.
func DefaultOptions() Options {
	return Options{
		LookaheadLines:        32,
		Beam:                  1,
		Carryover:             true,
		DynamicCandidateLimit: 50,
	}
}

// WindowRecord is one emitted window of the streaming driver (§4.7 step
// 4): the decoded prefix that was committed, the line range it covers,
// and a confidence (1.0 if a boundary ended the window, 0.5 if the
// window exhausted its lookahead without finding one).
type WindowRecord struct {
	Pred         []core.JointState
	SpansPerLine []core.LineSpans
	StartLine    int
	EndLine      int
	Confidence   float64
}
