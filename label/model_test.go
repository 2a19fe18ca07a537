package label_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldlattice/core"
	"github.com/katalvlaran/fieldlattice/label"
)

func schema() core.FieldSchema {
	return core.FieldSchema{
		NoiseLabel: "NOISE",
		Fields: []core.FieldConfig{
			{Name: "ExtID", MaxAllowed: 1},
			{Name: "Phone", MaxAllowed: 3},
			{Name: "Email", MaxAllowed: 3},
			{Name: "Name", MaxAllowed: 2},
		},
	}
}

func TestScoreSpanLabelNoiseIsZero(t *testing.T) {
	m := label.DefaultModel{}
	s := schema()
	score := m.ScoreSpanLabel("NOISE", "a@b.com", map[string]float64{"segment.is_email": 1}, map[string]float64{"segment.is_email": 1}, s)
	require.Zero(t, score)
}

func TestScoreSpanLabelFavoursMatchingLabel(t *testing.T) {
	m := label.DefaultModel{}
	s := schema()
	weights := map[string]float64{"segment.is_email": 1}
	emailScore := m.ScoreSpanLabel("Email", "a@b.com", map[string]float64{"segment.is_email": 1}, weights, s)
	phoneScore := m.ScoreSpanLabel("Phone", "a@b.com", map[string]float64{"segment.is_email": 1}, weights, s)
	require.Equal(t, 1.0, emailScore)
	require.Equal(t, -0.5, phoneScore)
}

func TestExtIDFlipsOnTenOrElevenDigits(t *testing.T) {
	m := label.DefaultModel{}
	s := schema()
	weights := map[string]float64{"segment.is_extid": 1}

	extidScore := m.ScoreSpanLabel("ExtID", "5551234567", map[string]float64{"segment.is_extid": 1}, weights, s)
	phoneScore := m.ScoreSpanLabel("Phone", "5551234567", map[string]float64{"segment.is_extid": 1}, weights, s)
	require.Equal(t, -1.0, extidScore)
	require.Equal(t, 1.0, phoneScore)
}

func TestExtIDNoFlipOnAlphanumeric(t *testing.T) {
	m := label.DefaultModel{}
	s := schema()
	weights := map[string]float64{"segment.is_extid": 1}
	extidScore := m.ScoreSpanLabel("ExtID", "45NUMBEU", map[string]float64{"segment.is_extid": 1}, weights, s)
	nameScore := m.ScoreSpanLabel("Name", "45NUMBEU", map[string]float64{"segment.is_extid": 1}, weights, s)
	require.Equal(t, 1.0, extidScore)
	require.Equal(t, -0.5, nameScore)
}

func TestApplicableFeaturesAllowList(t *testing.T) {
	m := label.DefaultModel{}
	s := core.FieldSchema{
		NoiseLabel: "NOISE",
		Fields:     []core.FieldConfig{{Name: "Email", ApplicableFeatures: []string{"segment.is_phone"}}},
	}
	weights := map[string]float64{"segment.is_email": 1}
	score := m.ScoreSpanLabel("Email", "a@b.com", map[string]float64{"segment.is_email": 1}, weights, s)
	require.Equal(t, -0.5, score)
}

func TestNonAsymmetricFeatureDefaultsToFeatureValue(t *testing.T) {
	m := label.DefaultModel{}
	s := schema()
	weights := map[string]float64{"segment.relative_position": 2}
	score := m.ScoreSpanLabel("Name", "x", map[string]float64{"segment.relative_position": 0.5}, weights, s)
	require.Equal(t, 1.0, score)
}
