// SPDX-License-Identifier: MIT
// Package split: specs, dimensions, cells and the split stage.

package split

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/stimset/levels"
	"github.com/katalvlaran/stimset/seeded"
	"github.com/katalvlaran/stimset/table"
)

// Spec is one split dimension: Vars + ordered Levels, or a random split into
// Random groups when Random > 0.
type Spec struct {
	Vars   table.Vars
	Levels []levels.Selector
	Random int
}

// FromLevels converts a parsed level specification. A Random variable with
// n levels becomes a random split into n groups.
func FromLevels(s levels.Spec) Spec {
	if len(s.Vars) == 1 && s.Vars[0].IsRandom() {
		return Spec{Vars: s.Vars, Random: len(s.Levels)}
	}
	return Spec{Vars: s.Vars, Levels: s.Levels}
}

// RandomInto returns a random split into k groups.
func RandomInto(k int) Spec {
	return Spec{Vars: table.Vars{table.Name(table.RandomName)}, Random: k}
}

// IsRandom reports whether s is a random split.
func (s Spec) IsRandom() bool { return s.Random > 0 }

// NumLevels returns the number of conditions s defines.
func (s Spec) NumLevels() int {
	if s.IsRandom() {
		return s.Random
	}
	return len(s.Levels)
}

// Dimension is one applied split.
type Dimension struct {
	Letter string
	Spec   Spec
	// Groups[i] holds the rows assigned to level i, in view order.
	Groups []table.View
}

// Label returns the condition label of level i ("A1" for i == 0).
func (d Dimension) Label(i int) string { return d.Letter + strconv.Itoa(i+1) }

// Cell is one condition combination.
type Cell struct {
	Label string
	// Levels[d] is the level index in dimension d.
	Levels []int
	Rows   table.View
}

// Result holds the applied dimensions and their cross product.
type Result struct {
	Dims  []Dimension
	Cells []Cell

	cellOf map[int]int
}

// Label returns the cell label of row, or "" when the row is in no cell.
func (r *Result) Label(row int) string {
	if c, ok := r.cellOf[row]; ok {
		return r.Cells[c].Label
	}
	return ""
}

// Labels returns the cell labels in order.
func (r *Result) Labels() []string {
	out := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.Label
	}
	return out
}

// Apply splits v along every spec and crosses the dimensions into cells.
// rng is required only when a random split is present; each random
// dimension d draws from its own stream derived from rng.
//
// Errors: ErrNoLevels, ErrLevelCount, ErrNeedRand, ErrSelectorKind, and
// *table.UnresolvedVariableError from resolution.
//
// Complexity: O(|v| · Σ levels · vars) + O(|v|) per random dimension.
func Apply(t *table.Table, v table.View, specs []Spec, rng *rand.Rand) (*Result, error) {
	res := &Result{Dims: make([]Dimension, 0, len(specs)), cellOf: map[int]int{}}
	if len(specs) == 0 {
		return res, nil
	}

	// assign[d][k] is the level of v[k] in dimension d, -1 when excluded.
	assign := make([][]int, len(specs))
	for d, s := range specs {
		var err error
		if s.IsRandom() {
			if rng == nil {
				return nil, fmt.Errorf("split %d: %w", d, ErrNeedRand)
			}
			if s.Random < 2 {
				return nil, fmt.Errorf("split %d: %w", d, ErrLevelCount)
			}
			assign[d] = randomAssign(len(v), s.Random, seeded.Derive(rng, seeded.SplitStream+uint64(d)))
		} else {
			if assign[d], err = levelAssign(t, v, s); err != nil {
				return nil, fmt.Errorf("split %d: %w", d, err)
			}
		}

		dim := Dimension{Letter: letter(d), Spec: s, Groups: make([]table.View, s.NumLevels())}
		for k, lvl := range assign[d] {
			if lvl >= 0 {
				dim.Groups[lvl] = append(dim.Groups[lvl], v[k])
			}
		}
		res.Dims = append(res.Dims, dim)
	}

	res.Cells = crossCells(res.Dims)
	strides := make([]int, len(specs))
	stride := 1
	for d := len(specs) - 1; d >= 0; d-- {
		strides[d] = stride
		stride *= specs[d].NumLevels()
	}

	for k, row := range v {
		idx := 0
		for d := range specs {
			lvl := assign[d][k]
			if lvl < 0 {
				idx = -1
				break
			}
			idx += lvl * strides[d]
		}
		if idx < 0 {
			continue
		}
		res.Cells[idx].Rows = append(res.Cells[idx].Rows, row)
		res.cellOf[row] = idx
	}
	return res, nil
}

// levelAssign maps every row of v to its unique matching level.
func levelAssign(t *table.Table, v table.View, s Spec) ([]int, error) {
	if len(s.Levels) == 0 {
		return nil, ErrNoLevels
	}
	refs, err := t.ResolveAll(s.Vars)
	if err != nil {
		return nil, err
	}
	for _, sel := range s.Levels {
		if sel.Kind != levels.NumericRange {
			continue
		}
		for _, r := range refs {
			if r.Kind != table.Numeric {
				return nil, fmt.Errorf("%s: %w", r.Column, ErrSelectorKind)
			}
		}
	}

	out := make([]int, len(v))
	for k, row := range v {
		out[k] = -1
		for i, sel := range s.Levels {
			if !matches(t, refs, sel, row) {
				continue
			}
			if out[k] >= 0 {
				// Several levels match: excluded.
				out[k] = -1
				break
			}
			out[k] = i
		}
	}
	return out, nil
}

// matches reports whether row satisfies sel on every ref. NA levels never
// match.
func matches(t *table.Table, refs []table.Ref, sel levels.Selector, row int) bool {
	for _, r := range refs {
		switch sel.Kind {
		case levels.NumericRange:
			if !sel.ContainsNumber(t.Number(r, row)) {
				return false
			}
		case levels.CategorySet:
			if !sel.ContainsCategory(t.Category(r, row)) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// randomAssign deals n rows into k groups of sizes ⌈n/k⌉ or ⌊n/k⌋, the
// first n mod k groups taking the extra row.
func randomAssign(n, k int, rng *rand.Rand) []int {
	var (
		perm = seeded.Perm(n, rng)
		out  = make([]int, n)
		q, r = n / k, n % k
		pos  int
	)
	for g := 0; g < k; g++ {
		size := q
		if g < r {
			size++
		}
		for _, idx := range perm[pos : pos+size] {
			out[idx] = g
		}
		pos += size
	}
	return out
}

// crossCells enumerates every level combination, first dimension slowest.
func crossCells(dims []Dimension) []Cell {
	cells := []Cell{{}}
	for _, d := range dims {
		next := make([]Cell, 0, len(cells)*len(d.Groups))
		for _, c := range cells {
			for i := range d.Groups {
				lv := append(append([]int(nil), c.Levels...), i)
				label := d.Label(i)
				if c.Label != "" {
					label = c.Label + "_" + label
				}
				next = append(next, Cell{Label: label, Levels: lv})
			}
		}
		cells = next
	}
	return cells
}

// letter names dimension d: A..Z, then AA, AB, ... (spreadsheet columns).
func letter(d int) string {
	var b []byte
	for n := d + 1; n > 0; n = (n - 1) / 26 {
		b = append(b, byte('A'+(n-1)%26))
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// Vars returns the non-random variables referenced by specs, de-duplicated,
// in order.
func Vars(specs []Spec) table.Vars {
	var (
		out  table.Vars
		seen = map[table.Var]struct{}{}
	)
	for _, s := range specs {
		if s.IsRandom() {
			continue
		}
		for _, v := range s.Vars {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// String renders s as "vars: level ~ level" or "Random: k".
func (s Spec) String() string {
	if s.IsRandom() {
		return table.RandomName + ": " + strconv.Itoa(s.Random)
	}
	parts := make([]string, len(s.Levels))
	for i, l := range s.Levels {
		parts[i] = l.String()
	}
	return s.Vars.String() + ": " + strings.Join(parts, " ~ ")
}

// Sizes returns the row count of every cell, in cell order.
func (r *Result) Sizes() []int {
	out := make([]int, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = len(c.Rows)
	}
	return out
}
