// SPDX-License-Identifier: MIT
// Package describe: per-condition summaries.

package describe

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/stimset/match"
	"github.com/katalvlaran/stimset/output"
	"github.com/katalvlaran/stimset/table"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrTupleArity indicates a tuple whose size differs from the cell count.
var ErrTupleArity = errors.New("describe: tuple size does not match cells")

// Stat summarizes one variable within one cell. Undefined statistics are
// NaN (SD needs two values, everything else one).
type Stat struct {
	Cell   string
	Var    string
	N      int
	Mean   float64
	SD     float64
	Median float64
	Min    float64
	Max    float64
}

// Summary lists stats cell by cell, variables in the order requested.
type Summary []Stat

// Tuples summarizes every numeric variable of vars over the items each cell
// contributed to tuples. Categorical variables are skipped; missing values
// are ignored.
//
// Errors: ErrTupleArity, or resolution errors from package table.
//
// Complexity: O(C · V · T log T).
func Tuples(t *table.Table, labels []string, tuples []match.Tuple, vars table.Vars) (Summary, error) {
	refs, err := t.ResolveAll(vars)
	if err != nil {
		return nil, fmt.Errorf("describe: Tuples: %w", err)
	}
	for i, tp := range tuples {
		if len(tp.Rows) != len(labels) {
			return nil, fmt.Errorf("describe: Tuples: tuple %d: %w", i, ErrTupleArity)
		}
	}

	var (
		out  Summary
		seen = map[string]struct{}{}
		vals = make([]float64, 0, len(tuples))
	)
	for c, label := range labels {
		clear(seen)
		for _, r := range refs {
			if r.Kind != table.Numeric {
				continue
			}
			if _, dup := seen[r.Column]; dup {
				continue
			}
			seen[r.Column] = struct{}{}

			vals = vals[:0]
			for _, tp := range tuples {
				if v := t.Number(r, tp.Rows[c]); !math.IsNaN(v) {
					vals = append(vals, v)
				}
			}
			out = append(out, summarize(label, r.Column, vals))
		}
	}
	return out, nil
}

func summarize(cell, name string, vals []float64) Stat {
	s := Stat{Cell: cell, Var: name, N: len(vals)}
	nan := math.NaN()
	s.Mean, s.SD, s.Median, s.Min, s.Max = nan, nan, nan, nan, nan
	if len(vals) == 0 {
		return s
	}

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.Min, s.Max = floats.Min(sorted), floats.Max(sorted)
	if len(vals) == 1 {
		s.Mean = vals[0]
		return s
	}
	s.Mean, s.SD = stat.MeanStdDev(vals, nil)
	return s
}

// Frame renders s with one record per stat.
func (s Summary) Frame() *output.Frame {
	f := &output.Frame{Header: []string{output.ConditionColumn, "variable", "n", "mean", "sd", "median", "min", "max"}}
	for _, st := range s {
		f.Records = append(f.Records, []string{
			st.Cell, st.Var, fmt.Sprint(st.N),
			num(st.Mean), num(st.SD), num(st.Median), num(st.Min), num(st.Max),
		})
	}
	return f
}

func num(v float64) string {
	if math.IsNaN(v) {
		return output.NA
	}
	return fmt.Sprintf("%.4g", v)
}
