// SPDX-License-Identifier: MIT
// Package match: post-hoc tuple validation.

package match

import (
	"fmt"

	"github.com/katalvlaran/stimset/split"
	"github.com/katalvlaran/stimset/table"
)

// Validate re-checks every tuple of res against cells and controls: one row
// per cell drawn from that cell, no row reused, no missing control value,
// and every constraint satisfied for the tuple's null mode (pairwise when
// Null < 0, against the null item otherwise).
//
// Errors: ErrInvalidTuple wrapped with the tuple index, or a compile error.
//
// Complexity: O(T · C² · M).
func Validate(t *table.Table, cells []split.Cell, controls []Control, res *Result) error {
	cons, err := compile(t, controls)
	if err != nil {
		return err
	}
	member := make([]map[int]struct{}, len(cells))
	for c, cell := range cells {
		member[c] = make(map[int]struct{}, len(cell.Rows))
		for _, r := range cell.Rows {
			member[c][r] = struct{}{}
		}
	}

	seen := make(map[int]int)
	for i, tp := range res.Tuples {
		if len(tp.Rows) != len(cells) {
			return fmt.Errorf("%w: tuple %d has %d items for %d cells", ErrInvalidTuple, i, len(tp.Rows), len(cells))
		}
		if tp.Null >= len(cells) {
			return fmt.Errorf("%w: tuple %d null cell %d out of range", ErrInvalidTuple, i, tp.Null)
		}
		for c, r := range tp.Rows {
			if _, ok := member[c][r]; !ok {
				return fmt.Errorf("%w: tuple %d: %s is not in %s", ErrInvalidTuple, i, t.ID(r), cells[c].Label)
			}
			if prev, dup := seen[r]; dup {
				return fmt.Errorf("%w: tuple %d reuses %s from tuple %d", ErrInvalidTuple, i, t.ID(r), prev)
			}
			seen[r] = i
			if !usable(t, cons, r) {
				return fmt.Errorf("%w: tuple %d: %s has a missing control value", ErrInvalidTuple, i, t.ID(r))
			}
		}
		if err = checkTuple(t, cons, tp); err != nil {
			return fmt.Errorf("%w: tuple %d: %v", ErrInvalidTuple, i, err)
		}
	}
	return nil
}

func checkTuple(t *table.Table, cons []constraint, tp Tuple) error {
	for a := range tp.Rows {
		for b := a + 1; b < len(tp.Rows); b++ {
			x, y := tp.Rows[a], tp.Rows[b]
			switch {
			case tp.Null < 0:
			case a == tp.Null:
			case b == tp.Null:
				x, y = y, x
			default:
				continue
			}
			for _, k := range cons {
				if !k.fits(t, x, y) {
					return fmt.Errorf("%s and %s differ on %s", t.ID(x), t.ID(y), k.ref.Column)
				}
			}
		}
	}
	return nil
}
