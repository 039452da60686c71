// SPDX-License-Identifier: MIT
// Package design: the typed request.

package design

import (
	"github.com/katalvlaran/stimset/filter"
	"github.com/katalvlaran/stimset/match"
	"github.com/katalvlaran/stimset/output"
	"github.com/katalvlaran/stimset/split"
	"github.com/katalvlaran/stimset/table"
)

// Request is one complete design. The zero value is not ready to run; start
// from NewRequest.
type Request struct {
	Filters  []filter.Spec
	Splits   []split.Spec
	Controls []match.Control

	// N is the number of tuples to build, or match.All.
	N int
	// Seed fixes randomness; nil draws a fresh seed.
	Seed *int64

	Format  output.Format
	Include output.Include

	Null          match.NullMode
	NullCondition string
	Strategy      match.Strategy
	// Ordered visits candidates in table order instead of a seeded shuffle.
	Ordered bool

	// AllowUncontrolled generates tuples from splits alone instead of
	// returning the split-annotated table.
	AllowUncontrolled bool

	// Table configures how ReadTable interprets a CSV file.
	Table TableConfig
}

// NewRequest returns a request for every tuple, long format, used columns,
// inclusive matching and the greedy strategy.
func NewRequest() Request {
	return Request{
		N:        match.All,
		Format:   output.Long,
		Include:  output.IncludeUsed,
		Null:     match.Inclusive,
		Strategy: match.StrategyGreedy,
	}
}

// Used returns the filter and split variables, in order.
func (r Request) Used() table.Vars {
	return append(filter.Vars(r.Filters), split.Vars(r.Splits)...)
}

// ControlVars returns every control variable, in order.
func (r Request) ControlVars() table.Vars {
	var out table.Vars
	for _, c := range r.Controls {
		out = append(out, c.Vars...)
	}
	return out
}

// matchOptions maps r onto the engine's options.
func (r Request) matchOptions() match.Options {
	o := match.DefaultOptions()
	o.N = r.N
	o.Null = r.Null
	o.NullCondition = r.NullCondition
	o.Strategy = r.Strategy
	o.Shuffle = !r.Ordered
	return o
}

// TableConfig describes the item table's CSV layout.
type TableConfig struct {
	IDColumn    string
	Missing     []string
	Categorical []string
	Measures    []Measure
}

// Measure tags a column with measure/source metadata.
type Measure struct {
	Column  string
	Measure string
	Source  string
}

// Options converts c into table options.
func (c TableConfig) Options() []table.Option {
	var opts []table.Option
	if c.IDColumn != "" {
		opts = append(opts, table.WithIDColumn(c.IDColumn))
	}
	if len(c.Missing) > 0 {
		opts = append(opts, table.WithMissing(c.Missing...))
	}
	if len(c.Categorical) > 0 {
		opts = append(opts, table.WithCategorical(c.Categorical...))
	}
	for _, m := range c.Measures {
		opts = append(opts, table.WithMeasure(m.Column, m.Measure, m.Source))
	}
	return opts
}
