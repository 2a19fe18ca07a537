package fieldlattice_test

import (
	"fmt"

	"github.com/katalvlaran/fieldlattice"
	"github.com/katalvlaran/fieldlattice/core"
)

func ExampleDecodeFullViaStreaming() {
	lines := []core.Line{
		{Index: 0, Text: "Henry Johnson"},
		{Index: 1, Text: "555-123-4567"},
	}
	spansPerLine := []core.LineSpans{
		{LineIndex: 0, Spans: []core.Span{{Start: 0, End: 13}}},
		{LineIndex: 1, Spans: []core.Span{{Start: 0, End: 12}}},
	}
	schema := core.FieldSchema{
		NoiseLabel: "NOISE",
		Fields: []core.FieldConfig{
			{Name: "Name", MaxAllowed: 2},
			{Name: "Phone", MaxAllowed: 3},
		},
	}
	weights := map[string]float64{"segment.is_name": 1.0, "segment.is_phone": 1.0}

	records, err := fieldlattice.DecodeFullViaStreaming(lines, spansPerLine, schema, weights, fieldlattice.DefaultOptions())
	if err != nil {
		panic(err)
	}

	fmt.Println(len(records))
	// Output:
	// 1
}
