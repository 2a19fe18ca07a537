package cache_test

import (
	"fmt"

	"github.com/katalvlaran/fieldlattice/cache"
	"github.com/katalvlaran/fieldlattice/core"
	"github.com/katalvlaran/fieldlattice/enumstate"
)

func ExampleBuildCaches() {
	lines := []core.Line{{Index: 0, Text: "Henry"}}
	spans := []core.LineSpans{{LineIndex: 0, Spans: []core.Span{{Start: 0, End: 5}}}}
	s := core.FieldSchema{NoiseLabel: "NOISE", Fields: []core.FieldConfig{{Name: "Name"}}}

	c := cache.BuildCaches(lines, spans, s, nil, nil, nil, enumstate.DefaultOptions(), nil)
	fmt.Println(c.SpanText[0][0])
	// Output:
	// Henry
}
