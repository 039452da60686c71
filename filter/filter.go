// SPDX-License-Identifier: MIT
// Package filter: predicates and the filter stage.

package filter

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stimset/levels"
	"github.com/katalvlaran/stimset/table"
)

// ErrSelectorKind indicates a numeric range on a categorical column.
// Category sets are accepted on numeric columns and compare the exact
// textual value.
var ErrSelectorKind = errors.New("filter: selector does not fit column kind")

// Spec is one filter predicate.
type Spec struct {
	Var      table.Var
	Selector levels.Selector
}

// String renders s as "var: selector".
func (s Spec) String() string { return s.Var.String() + ": " + s.Selector.String() }

// predicate is a compiled Spec.
type predicate struct {
	ref table.Ref
	sel levels.Selector
}

func (p predicate) keep(t *table.Table, row int) bool {
	switch p.sel.Kind {
	case levels.NumericRange:
		return p.sel.ContainsNumber(t.Number(p.ref, row))
	case levels.CategorySet:
		return p.sel.ContainsCategory(t.Category(p.ref, row))
	default:
		return true
	}
}

// compile resolves every spec before any row is touched, so a bad spec
// fails the whole stage.
func compile(t *table.Table, specs []Spec) ([]predicate, error) {
	preds := make([]predicate, 0, len(specs))
	for i, s := range specs {
		ref, err := t.Resolve(s.Var)
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i, err)
		}
		if s.Selector.Kind == levels.NumericRange && ref.Kind != table.Numeric {
			return nil, fmt.Errorf("filter %d (%s): %w", i, ref.Column, ErrSelectorKind)
		}
		preds = append(preds, predicate{ref: ref, sel: s.Selector})
	}
	return preds, nil
}

// Apply returns the rows of v satisfying every spec, in v's order.
//
// Complexity: O(|v| · len(specs)).
func Apply(t *table.Table, v table.View, specs []Spec) (table.View, error) {
	preds, err := compile(t, specs)
	if err != nil {
		return nil, err
	}
	out := v.Clone()
	for _, p := range preds {
		out = out.Keep(func(row int) bool { return p.keep(t, row) })
	}
	return out, nil
}

// Explain returns the index of the first spec row violates, or -1 when the
// row satisfies all of them.
func Explain(t *table.Table, row int, specs []Spec) (int, error) {
	preds, err := compile(t, specs)
	if err != nil {
		return 0, err
	}
	for i, p := range preds {
		if !p.keep(t, row) {
			return i, nil
		}
	}
	return -1, nil
}

// Vars returns the variables referenced by specs, de-duplicated, in order.
func Vars(specs []Spec) table.Vars {
	var (
		out  = make(table.Vars, 0, len(specs))
		seen = make(map[table.Var]struct{}, len(specs))
	)
	for _, s := range specs {
		if _, dup := seen[s.Var]; dup {
			continue
		}
		seen[s.Var] = struct{}{}
		out = append(out, s.Var)
	}
	return out
}
