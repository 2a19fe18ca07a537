package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldlattice/core"
)

func TestBoundaryString(t *testing.T) {
	require.Equal(t, "B", core.Begin.String())
	require.Equal(t, "C", core.Continuation.String())
}

func TestEntityTypeString(t *testing.T) {
	require.Equal(t, "Primary", core.Primary.String())
	require.Equal(t, "Guardian", core.Guardian.String())
	require.Equal(t, "Unknown", core.Unknown.String())
	require.Equal(t, "None", core.EntityTypeNone.String())
}

func TestJointSequenceHasEntityTypes(t *testing.T) {
	seq := core.JointSequence{
		{Boundary: core.Begin, EntityType: core.EntityTypeNone},
		{Boundary: core.Continuation},
	}
	require.False(t, seq.HasEntityTypes())

	seq[0].EntityType = core.Primary
	require.True(t, seq.HasEntityTypes())
}
