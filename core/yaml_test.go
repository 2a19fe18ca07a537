package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldlattice/core"
)

func TestParseSchemaYAML(t *testing.T) {
	doc := []byte(`
noiseLabel: NOISE
fields:
  - name: ExtID
    maxAllowed: 1
  - name: Name
    maxAllowed: 2
  - name: Phone
    maxAllowed: 3
    required: true
`)
	schema, err := core.ParseSchemaYAML(doc)
	require.NoError(t, err)
	require.Equal(t, "NOISE", schema.NoiseLabel)
	require.Equal(t, 3, schema.MaxAllowed("Phone"))
	f, ok := schema.FieldByName("Phone")
	require.True(t, ok)
	require.True(t, f.Required)
}

func TestParseSchemaYAMLInvalid(t *testing.T) {
	doc := []byte(`
noiseLabel: NOISE
fields:
  - name: NOISE
`)
	_, err := core.ParseSchemaYAML(doc)
	require.ErrorIs(t, err, core.ErrInvalidSchema)
}

func TestParseWeightsYAML(t *testing.T) {
	doc := []byte(`
line.indentation_delta: 0.2
transition.B_to_B: -0.5
`)
	w, err := core.ParseWeightsYAML(doc)
	require.NoError(t, err)
	require.InDelta(t, 0.2, w["line.indentation_delta"], 1e-9)
	require.InDelta(t, -0.5, w["transition.B_to_B"], 1e-9)
}
