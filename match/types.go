// SPDX-License-Identifier: MIT
// Package match: controls, options and results.

package match

import (
	"github.com/katalvlaran/stimset/levels"
	"github.com/katalvlaran/stimset/progress"
	"github.com/katalvlaran/stimset/table"
)

// All requests every tuple the engine can build.
const All = -1

// Control is one control specification. Tolerance is a NumericRange or
// Unconstrained (exact match).
type Control struct {
	Vars      table.Vars
	Tolerance levels.Selector
}

// FromTerms converts parsed ellipsis terms.
func FromTerms(terms []levels.Term) []Control {
	out := make([]Control, len(terms))
	for i, t := range terms {
		out[i] = Control{Vars: t.Vars, Tolerance: t.Tolerance}
	}
	return out
}

// String renders c as "vars = lo:hi" or "vars".
func (c Control) String() string {
	if c.Tolerance.Kind == levels.NumericRange {
		return c.Vars.String() + " = " + c.Tolerance.String()
	}
	return c.Vars.String()
}

// NullMode selects how the null cell of a tuple is chosen.
type NullMode uint8

const (
	// Inclusive checks every pair of cells; no cell is the null.
	Inclusive NullMode = iota
	// First uses the first cell as null.
	First
	// Balanced rotates the null through the cells, one tuple at a time.
	Balanced
	// Random draws the null cell for every attempt.
	Random
	// Condition uses the cell named by Options.NullCondition.
	Condition
)

// String returns the lower-case mode name.
func (m NullMode) String() string {
	switch m {
	case Inclusive:
		return "inclusive"
	case First:
		return "first"
	case Balanced:
		return "balanced"
	case Random:
		return "random"
	case Condition:
		return "condition"
	default:
		return "invalid"
	}
}

// Strategy selects the tuple construction algorithm.
type Strategy uint8

const (
	// StrategyGreedy builds tuples by anchored greedy attempts.
	StrategyGreedy Strategy = iota
	// StrategyMaxMatching finds a maximum pairing for two cells.
	StrategyMaxMatching
)

// String returns "greedy", "max_matching" or "invalid".
func (s Strategy) String() string {
	switch s {
	case StrategyGreedy:
		return "greedy"
	case StrategyMaxMatching:
		return "max_matching"
	default:
		return "invalid"
	}
}

// Options configures Generate.
//   - N: tuples to build, or All.
//   - Null, NullCondition: null mode; NullCondition names the cell for
//     Condition.
//   - Strategy: construction algorithm.
//   - Shuffle: visit candidates in seeded-random order instead of row order.
//   - Reporter: receives Started, one Advanced per tuple, and Finished.
type Options struct {
	N             int
	Null          NullMode
	NullCondition string
	Strategy      Strategy
	Shuffle       bool
	Reporter      progress.Reporter
}

// DefaultOptions returns N=All, Inclusive, greedy, shuffled, silent.
func DefaultOptions() Options {
	return Options{N: All, Null: Inclusive, Strategy: StrategyGreedy, Shuffle: true, Reporter: progress.Nop()}
}

// Tuple holds one row index per cell, in cell order. Null is the index of
// the null cell, or -1 in Inclusive mode.
type Tuple struct {
	Rows []int
	Null int
}

// Result is the outcome of Generate.
//   - Requested: Options.N (All for no limit).
//   - Achieved: len(Tuples).
//   - Exhausted: generation stopped because no further tuple could be built.
type Result struct {
	Tuples    []Tuple
	Requested int
	Achieved  int
	Exhausted bool
}

// Short reports whether a finite request was not met.
func (r *Result) Short() bool {
	return r.Requested != All && r.Achieved < r.Requested
}
