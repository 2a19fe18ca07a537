package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldlattice/core"
)

func householdSchema() core.FieldSchema {
	return core.FieldSchema{
		NoiseLabel: "NOISE",
		Fields: []core.FieldConfig{
			{Name: "ExtID", MaxAllowed: 1},
			{Name: "Name", MaxAllowed: 2},
			{Name: "PreferredName", MaxAllowed: 1},
			{Name: "Phone", MaxAllowed: 3},
			{Name: "Email", MaxAllowed: 3},
			{Name: "GeneralNotes", MaxAllowed: 1},
			{Name: "MedicalNotes", MaxAllowed: 1},
			{Name: "DietaryNotes", MaxAllowed: 1},
			{Name: "Birthdate", MaxAllowed: 1},
		},
	}
}

func TestFieldSchemaValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, householdSchema().Validate())
	})

	t.Run("duplicate field", func(t *testing.T) {
		s := core.FieldSchema{NoiseLabel: "NOISE", Fields: []core.FieldConfig{{Name: "Name"}, {Name: "Name"}}}
		require.ErrorIs(t, s.Validate(), core.ErrInvalidSchema)
	})

	t.Run("noise collides with field", func(t *testing.T) {
		s := core.FieldSchema{NoiseLabel: "Name", Fields: []core.FieldConfig{{Name: "Name"}}}
		require.ErrorIs(t, s.Validate(), core.ErrInvalidSchema)
	})

	t.Run("empty noise label", func(t *testing.T) {
		s := core.FieldSchema{Fields: []core.FieldConfig{{Name: "Name"}}}
		require.ErrorIs(t, s.Validate(), core.ErrInvalidSchema)
	})
}

func TestFieldSchemaMaxAllowed(t *testing.T) {
	s := householdSchema()
	require.Equal(t, 3, s.MaxAllowed("Phone"))
	require.Equal(t, 1, s.MaxAllowed("ExtID"))
	require.Equal(t, math.MaxInt, s.MaxAllowed("NOISE"))
	require.Equal(t, math.MaxInt, s.MaxAllowed("NotAField"))
}

func TestFieldConfigDefaultMaxAllowed(t *testing.T) {
	s := core.FieldSchema{NoiseLabel: "NOISE", Fields: []core.FieldConfig{{Name: "Foo"}}}
	require.NoError(t, s.Validate())
	require.Equal(t, 1, s.MaxAllowed("Foo"))
}

func TestFieldSchemaAcceptsValidators(t *testing.T) {
	onlyDigits := func(s string) bool {
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return len(s) > 0
	}
	s := core.FieldSchema{
		NoiseLabel: "NOISE",
		Fields:     []core.FieldConfig{{Name: "Phone", Validators: []core.Validator{onlyDigits}}},
	}
	require.True(t, s.Accepts("Phone", "5551234567"))
	require.False(t, s.Accepts("Phone", "call me"))
	require.True(t, s.Accepts("NOISE", "anything"))
}
