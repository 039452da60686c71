// SPDX-License-Identifier: MIT
// Package match: greedy anchored construction.

package match

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/stimset/table"
)

// greedy holds the state of one greedy run.
type greedy struct {
	t     *table.Table
	cons  []constraint
	cands [][]int // usable rows per cell, in visit order

	mode  NullMode
	fixed int // null cell for First/Condition
	rng   *rand.Rand

	used    []bool // by table row
	cursor  []int  // next untried anchor position per cell
	left    []int  // unused candidates per cell
	onTuple func(n int)
}

func (g *greedy) run(ctx context.Context, n int) (*Result, error) {
	res := &Result{Requested: n}
	g.cursor = make([]int, len(g.cands))
	g.left = make([]int, len(g.cands))
	for c, cs := range g.cands {
		g.left[c] = len(cs)
	}

	for n == All || len(res.Tuples) < n {
		if err := ctx.Err(); err != nil {
			res.Achieved = len(res.Tuples)
			return res, err
		}

		cell, anchor, ok := g.nextAnchor(len(res.Tuples))
		if !ok {
			res.Exhausted = true
			break
		}
		null := -1
		if g.mode != Inclusive {
			null = cell
		}

		rows := g.build(cell, anchor, null)
		if rows == nil {
			continue
		}
		for c, r := range rows {
			g.used[r] = true
			g.left[c]--
		}
		for c := range g.cursor {
			g.cursor[c] = 0
		}
		res.Tuples = append(res.Tuples, Tuple{Rows: rows, Null: null})
		if g.onTuple != nil {
			g.onTuple(len(res.Tuples))
		}
	}
	res.Achieved = len(res.Tuples)
	return res, nil
}

// nextAnchor picks the anchor cell for the current attempt and its next
// untried unused row, advancing that cell's cursor. ok is false when no
// anchor remains (exhaustion).
func (g *greedy) nextAnchor(built int) (cell, row int, ok bool) {
	switch g.mode {
	case Inclusive:
		cell = 0
		for c := range g.left {
			if g.left[c] < g.left[cell] {
				cell = c
			}
		}
	case First, Condition:
		cell = g.fixed
	case Balanced:
		cell = built % len(g.cands)
	case Random:
		var open []int
		for c := range g.cands {
			if g.peek(c) >= 0 {
				open = append(open, c)
			}
		}
		if len(open) == 0 {
			return 0, 0, false
		}
		cell = open[g.rng.Intn(len(open))]
	}

	pos := g.peek(cell)
	if pos < 0 {
		return 0, 0, false
	}
	g.cursor[cell] = pos + 1
	return cell, g.cands[cell][pos], true
}

// peek returns the next untried unused position in cell, or -1.
func (g *greedy) peek(cell int) int {
	cs := g.cands[cell]
	for pos := g.cursor[cell]; pos < len(cs); pos++ {
		if !g.used[cs[pos]] {
			return pos
		}
	}
	return -1
}

// build completes a tuple around anchor, or returns nil.
func (g *greedy) build(cell, anchor, null int) []int {
	chosen := make([]int, len(g.cands))
	for i := range chosen {
		chosen[i] = -1
	}
	chosen[cell] = anchor

	for c, cs := range g.cands {
		if c == cell {
			continue
		}
		for _, r := range cs {
			if g.used[r] || contains(chosen, r) || !admits(g.t, g.cons, chosen, c, r, null) {
				continue
			}
			chosen[c] = r
			break
		}
		if chosen[c] < 0 {
			return nil
		}
	}
	return chosen
}

func contains(rows []int, r int) bool {
	for _, x := range rows {
		if x == r {
			return true
		}
	}
	return false
}
