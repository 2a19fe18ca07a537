package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldlattice/core"
)

func TestFeedbackEntryVariants(t *testing.T) {
	conf := 0.9
	fb := core.Feedback{Entries: []core.FeedbackEntry{
		{Record: &core.RecordFeedback{StartLine: 0, EndLine: 2}},
		{Entity: &core.EntityFeedback{FileStart: 10, FileEnd: 30, EntityType: core.Guardian}},
		{Field: &core.FieldFeedback{Action: core.FieldActionAdd, LineIndex: 0, Start: 0, End: 3, FieldType: "Name", Confidence: &conf}},
	}}
	require.Len(t, fb.Entries, 3)
	require.NotNil(t, fb.Entries[0].Record)
	require.Nil(t, fb.Entries[0].Entity)
	require.Equal(t, core.Guardian, fb.Entries[1].Entity.EntityType)
	require.Equal(t, core.FieldActionAdd, fb.Entries[2].Field.Action)
}
