package stream_test

import (
	"fmt"

	"github.com/katalvlaran/fieldlattice/core"
	"github.com/katalvlaran/fieldlattice/enumstate"
	"github.com/katalvlaran/fieldlattice/feature"
	"github.com/katalvlaran/fieldlattice/label"
	"github.com/katalvlaran/fieldlattice/stream"
)

func ExampleDecode() {
	lines := []core.Line{
		{Index: 0, Text: "Henry Johnson"},
		{Index: 1, Text: "Jane Smith"},
	}
	spansPerLine := []core.LineSpans{
		{LineIndex: 0, Spans: []core.Span{{Start: 0, End: 13}}},
		{LineIndex: 1, Spans: []core.Span{{Start: 0, End: 10}}},
	}
	schema := core.FieldSchema{NoiseLabel: "NOISE", Fields: []core.FieldConfig{{Name: "Name", MaxAllowed: 2}}}
	weights := map[string]float64{"segment.is_name": 1.0}

	records, err := stream.Decode(
		lines, spansPerLine, schema, weights,
		feature.DefaultLineFeatures(), feature.DefaultSpanFeatures(),
		enumstate.DefaultOptions(), stream.DefaultOptions(),
		label.DefaultModel{}, nil, nil,
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(records) > 0)
	// Output:
	// true
}
