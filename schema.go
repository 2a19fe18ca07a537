package fieldlattice

import "github.com/katalvlaran/fieldlattice/core"

// HouseholdSchema returns the household-record FieldSchema used
// throughout this module's examples and tests (§1 worked examples): one
// optional external id, up to two names, one preferred name, up to three
// phone numbers and emails, one each of general/medical/dietary notes,
// and one birthdate, with "NOISE" as the reserved non-field label.
func HouseholdSchema() core.FieldSchema {
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
