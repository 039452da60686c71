package levels_test

import (
	"fmt"

	"github.com/katalvlaran/stimset/levels"
)

// ExampleParseLevels shows numeric and categorical level lists.
func ExampleParseLevels() {
	for _, in := range [][2]string{
		{"Zipf.SUBTLEX_UK", "1:2 ~ 4:7"},
		{"PoS", "noun ~ c(verb, adj)"},
	} {
		spec, err := levels.ParseLevels(in[0], in[1])
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(spec)
	}
	// Output:
	// Zipf.SUBTLEX_UK: 1:2 ~ 4:7
	// PoS: "noun" ~ c("verb", "adj")
}

// ExampleParseEllipsis shows the three tolerance shapes.
func ExampleParseEllipsis() {
	terms, err := levels.ParseEllipsis("Length, BG = -0.5:0.5, Zipf = 0.2")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, t := range terms {
		fmt.Println(t.Vars, t.Tolerance)
	}
	// Output:
	// Length NA
	// BG -0.5:0.5
	// Zipf -0.2:0.2
}
