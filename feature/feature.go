package feature

import "github.com/katalvlaran/fieldlattice/core"

// Context is the read-only input to a Feature's Apply. Line features read
// only LineIndex and Lines; span features additionally read Span and
// SpanText.
type Context struct {
	LineIndex int
	Lines     []string
	Span      core.Span
	SpanText  string
}

// Feature is a stable-ID, pure scalar function of a Context. Implementations
// are small value types; dynamic features produced by the (out-of-scope)
// file-level analysis pipeline are constructed the same way, with an ID
// prefixed "dyn:" (§4.7, §9).
type Feature interface {
	ID() string
	Apply(ctx Context) float64
}

// Func is a Feature built directly from an id and a function, for ad-hoc
// and dynamic features alike.
type Func struct {
	id string
	fn func(Context) float64
}

// New constructs a Feature from an id and a pure function.
func New(id string, fn func(Context) float64) Func {
	return Func{id: id, fn: fn}
}

func (f Func) ID() string               { return f.id }
func (f Func) Apply(ctx Context) float64 { return f.fn(ctx) }

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
