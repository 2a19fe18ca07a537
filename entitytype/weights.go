package entitytype

// primaryWeights and guardianWeights are the fixed linear-scoring tables
// from the glossary (§4.10). They are module-level constants: the
// default annotator takes no per-decode customisation (§9 "no global
// state... any per-decode customisation is passed as an argument" — here
// there is none to pass, the tables are part of the contract itself).
var primaryWeights = map[string]float64{
	"line.primary_likely":     2.0,
	"line.leading_extid":      1.6,
	"line.has_name":           1.6,
	"line.has_preferred":      1.2,
	"line.has_birthdate":      1.0,
	"line.has_label":          1.0,
	"line.next_has_contact":   1.2,
	"line.short_token_count":  0.6,
	"line.leading_structural": 0.2,
	"line.indentation_delta":  0.2,
}

var guardianWeights = map[string]float64{
	"line.guardian_likely":    2.0,
	"line.role_keyword":       2.0,
	"line.leading_structural": 0.6,
	"line.has_label":          0.4,
	"line.short_token_count":  0.2,
}

// primaryThreshold, guardianThreshold are the decision-rule cutoffs.
const (
	primaryThreshold  = 1.0
	guardianThreshold = 0.8
	hasNameBoost      = 0.5
)

func weightedScore(weights map[string]float64, values map[string]float64) float64 {
	var total float64
	for fid, w := range weights {
		total += w * values[fid]
	}
	return total
}
