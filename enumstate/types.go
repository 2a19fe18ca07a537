package enumstate

import (
	"errors"

	"github.com/katalvlaran/fieldlattice/core"
)

// ErrInvalidOptions indicates a nonsensical Options combination.
var ErrInvalidOptions = errors.New("enumstate: invalid options")

// Options configures state enumeration for one document's lines.
//
// Fields:
//
//	MaxUniqueFields    - cap on distinct non-noise labels used within one
//	                     line's assignment. <= 0 falls back to the default.
//	MaxStatesPerField  - optional per-label override of FieldConfig's
//	                     MaxAllowed, keyed by field name. Nil means "use
//	                     the schema's own cap for every field".
//	SafePrefix         - span positions >= SafePrefix are forced to the
//	                     schema's noise label. <= 0 falls back to the
//	                     default.
//	MaxStates          - hard cap on emitted JointStates for one line.
//	                     <= 0 falls back to the default.
//	ForcedLabelsByLine - lineIndex -> span.Key() -> forced label. A span
//	                     whose key is present generates only that label
//	                     (collapsing to the noise label if the forced
//	                     label would violate a cardinality cap).
//	ForcedBoundariesByLine - lineIndex -> forced Boundary. When present,
//	                     only that boundary is generated for the line.
//	ForcedEntityTypeByLine - lineIndex -> forced EntityType, stamped onto
//	                     every state generated for the line.
type Options struct {
	MaxUniqueFields        int
	MaxStatesPerField      map[string]int
	SafePrefix             int
	MaxStates              int
	ForcedLabelsByLine     map[int]map[string]string
	ForcedBoundariesByLine map[int]core.Boundary
	ForcedEntityTypeByLine map[int]core.EntityType
}

// DefaultOptions returns the default enumeration caps from §4.3:
// MaxUniqueFields 3, SafePrefix 8, MaxStates 2048.
func DefaultOptions() Options {
	return Options{
		MaxUniqueFields: 3,
		SafePrefix:      8,
		MaxStates:       2048,
	}
}

// Validate checks that Options holds a sensible combination.
func (o Options) Validate() error {
	if o.MaxUniqueFields < 0 {
		return ErrInvalidOptions
	}
	if o.SafePrefix < 0 {
		return ErrInvalidOptions
	}
	if o.MaxStates < 0 {
		return ErrInvalidOptions
	}
	for name, cap := range o.MaxStatesPerField {
		if name == "" || cap < 0 {
			return ErrInvalidOptions
		}
	}
	return nil
}

// resolved returns o with zero-valued fields replaced by their defaults.
func (o Options) resolved() Options {
	d := DefaultOptions()
	if o.MaxUniqueFields <= 0 {
		o.MaxUniqueFields = d.MaxUniqueFields
	}
	if o.SafePrefix <= 0 {
		o.SafePrefix = d.SafePrefix
	}
	if o.MaxStates <= 0 {
		o.MaxStates = d.MaxStates
	}
	return o
}
