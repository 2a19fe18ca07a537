package label

import (
	"github.com/katalvlaran/fieldlattice/core"
	"github.com/katalvlaran/fieldlattice/feature"
)

// Model is the replaceable label-scoring contract (§4.2).
type Model interface {
	// FeatureContribution shapes featureValue into label's contribution:
	// asymmetric by default (a segment.is_X feature favours label X and
	// penalises every other non-noise label).
	FeatureContribution(label, spanText, featureID string, featureValue float64, schema core.FieldSchema) float64

	// ScoreSpanLabel sums weights[fid] * FeatureContribution(...) over
	// spanFeatures; it is always 0 for schema.NoiseLabel.
	ScoreSpanLabel(label, spanText string, spanFeatures map[string]float64, weights map[string]float64, schema core.FieldSchema) float64
}

// segmentValidatorTarget maps a segment.is_X feature id to the field name
// X it favours by default.
var segmentValidatorTarget = map[string]string{
	"segment.is_email":          "Email",
	"segment.is_phone":          "Phone",
	"segment.is_birthdate":      "Birthdate",
	"segment.is_name":           "Name",
	"segment.is_preferred_name": "PreferredName",
	"segment.is_extid":          "ExtID",
}

// DefaultModel implements the default shaping described in §4.2.
type DefaultModel struct{}

// FeatureContribution implements Model.FeatureContribution.
func (DefaultModel) FeatureContribution(label, spanText, featureID string, featureValue float64, schema core.FieldSchema) float64 {
	if featureID == "segment.is_extid" {
		if dlen := feature.DigitOnlyLen(spanText); dlen == 10 || dlen == 11 {
			switch label {
			case "ExtID":
				return -1.0 * featureValue
			case "Phone":
				return 1.0 * featureValue
			default:
				return -0.5 * featureValue
			}
		}
		return asymmetric(schema, label, "ExtID", featureID, featureValue)
	}
	if target, ok := segmentValidatorTarget[featureID]; ok {
		return asymmetric(schema, label, target, featureID, featureValue)
	}
	return featureValue
}

// asymmetric implements the "+1.0 for the matching label, -0.5 for every
// other non-noise label" default shaping, honouring a field's optional
// ApplicableFeatures allow-list.
func asymmetric(schema core.FieldSchema, label, target, featureID string, featureValue float64) float64 {
	if label != target {
		return -0.5 * featureValue
	}
	if fc, ok := schema.FieldByName(target); ok && len(fc.ApplicableFeatures) > 0 {
		applicable := false
		for _, id := range fc.ApplicableFeatures {
			if id == featureID {
				applicable = true
				break
			}
		}
		if !applicable {
			return -0.5 * featureValue
		}
	}
	return featureValue
}

// ScoreSpanLabel implements Model.ScoreSpanLabel.
func (m DefaultModel) ScoreSpanLabel(label, spanText string, spanFeatures map[string]float64, weights map[string]float64, schema core.FieldSchema) float64 {
	if label == schema.NoiseLabel {
		return 0
	}
	var total float64
	for fid, val := range spanFeatures {
		w, ok := weights[fid]
		if !ok || w == 0 {
			continue
		}
		total += w * m.FeatureContribution(label, spanText, fid, val, schema)
	}
	return total
}
