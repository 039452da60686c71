package design_test

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/stimset/design"
	"github.com/katalvlaran/stimset/table"
)

// ExampleRun loads a YAML design and writes the wide frame as CSV.
func ExampleRun() {
	tb, _ := table.New("string",
		[]string{"cat", "dog", "sun", "house", "table", "chair"},
		table.NumericColumn("Zipf", []float64{5.1, 4.0, 3.2, 5.0, 3.3, 1.0}),
		table.CategoricalColumn("Group", []string{"a", "a", "a", "b", "b", "b"}),
	)
	req, err := design.ParseRequest([]byte(`
splits: [{var: Group, levels: "a ~ b"}]
controls: "Zipf = -0.2:0.2"
seed: 1
ordered: true
format: wide
include: id
`))
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := design.Run(context.Background(), tb, req)
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = res.Frame.WriteCSV(os.Stdout)
	fmt.Println("achieved:", res.Achieved)
	// Output:
	// item,A1,A2
	// 1,cat,house
	// 2,sun,table
	// achieved: 2
}
