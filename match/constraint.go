// SPDX-License-Identifier: MIT
// Package match: compiled control constraints.

package match

import (
	"fmt"

	"github.com/katalvlaran/stimset/levels"
	"github.com/katalvlaran/stimset/table"
)

// eps absorbs floating-point noise at tolerance bounds.
const eps = 1e-9

// constraint is one control bound to one column.
type constraint struct {
	ref     table.Ref
	numeric bool
	lo, hi  float64
}

// compile resolves every control variable. A multi-variable control yields
// one constraint per variable sharing the tolerance.
func compile(t *table.Table, controls []Control) ([]constraint, error) {
	var out []constraint
	for i, c := range controls {
		refs, err := t.ResolveAll(c.Vars)
		if err != nil {
			return nil, fmt.Errorf("control %d: %w", i, err)
		}
		for _, r := range refs {
			k := constraint{ref: r}
			switch {
			case r.Kind == table.Numeric && c.Tolerance.Kind == levels.NumericRange:
				k.numeric, k.lo, k.hi = true, c.Tolerance.Min(), c.Tolerance.Max()
			case r.Kind == table.Numeric && c.Tolerance.Kind == levels.Unconstrained:
				k.numeric = true
			case r.Kind == table.Categorical && c.Tolerance.Kind == levels.Unconstrained:
			default:
				return nil, fmt.Errorf("control %d (%s): %w", i, r.Column, ErrToleranceKind)
			}
			out = append(out, k)
		}
	}
	return out, nil
}

// fits reports whether the pair (a, b) satisfies k, b being the later or
// non-null item.
func (k constraint) fits(t *table.Table, a, b int) bool {
	if k.numeric {
		d := t.Number(k.ref, b) - t.Number(k.ref, a)
		return d >= k.lo-eps && d <= k.hi+eps
	}
	return t.Category(k.ref, a) == t.Category(k.ref, b)
}

// pairOK reports whether (a, b) satisfies every constraint.
func pairOK(t *table.Table, cons []constraint, a, b int) bool {
	for _, k := range cons {
		if !k.fits(t, a, b) {
			return false
		}
	}
	return true
}

// usable reports whether row has a value for every constraint.
func usable(t *table.Table, cons []constraint, row int) bool {
	for _, k := range cons {
		if t.Missing(k.ref, row) {
			return false
		}
	}
	return true
}

// candidates returns the usable rows of each cell.
func candidates(t *table.Table, cons []constraint, cells []table.View) [][]int {
	out := make([][]int, len(cells))
	for c, rows := range cells {
		for _, r := range rows {
			if usable(t, cons, r) {
				out[c] = append(out[c], r)
			}
		}
	}
	return out
}

// admits reports whether row r may join cell c of the partially built tuple
// chosen (-1 marks an empty slot). With null ≥ 0 only the null item is
// compared; otherwise every chosen item is, in cell order.
func admits(t *table.Table, cons []constraint, chosen []int, c, r, null int) bool {
	if null >= 0 {
		return pairOK(t, cons, chosen[null], r)
	}
	for k, other := range chosen {
		switch {
		case other < 0 || k == c:
			continue
		case other == r:
			return false
		case k < c && !pairOK(t, cons, other, r):
			return false
		case k > c && !pairOK(t, cons, r, other):
			return false
		}
	}
	return true
}
