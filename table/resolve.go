// SPDX-License-Identifier: MIT
// Package table: variable resolution.

package table

import (
	"errors"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestions bounds the "did you mean" list.
const maxSuggestions = 3

// Resolve maps v to exactly one column.
//
// Order of precedence:
//  1. v.Name equal to a column name (literal or custom column).
//  2. v.Name equal to LengthName → computed identifier length.
//  3. v.Name equal to a Measure shared by exactly one column.
//  4. a dotted v.Name "measure.source" matching exactly one column's
//     metadata.
//  5. v.Measure (+ optional v.Source) matching exactly one column's metadata.
//
// Zero matches → *UnresolvedVariableError wrapping ErrUnresolvedVariable;
// several → wrapping ErrAmbiguousVariable. Random never resolves.
//
// Complexity: O(cols).
func (t *Table) Resolve(v Var) (Ref, error) {
	if v.IsRandom() {
		return Ref{}, &UnresolvedVariableError{Var: v}
	}

	if v.Name != "" {
		if i, ok := t.byName[v.Name]; ok {
			return t.ref(v, i), nil
		}
		if v.Name == LengthName {
			return Ref{Var: v, Column: LengthName, Kind: Numeric, col: -1, length: true}, nil
		}
		ref, err := t.byMeasure(v, v.Name, "")
		if err == nil || errors.Is(err, ErrAmbiguousVariable) {
			return ref, err
		}
		if dot := strings.LastIndexByte(v.Name, '.'); dot > 0 && dot < len(v.Name)-1 {
			ref, derr := t.byMeasure(v, v.Name[:dot], v.Name[dot+1:])
			if derr == nil || errors.Is(derr, ErrAmbiguousVariable) {
				return ref, derr
			}
		}
		return Ref{}, err
	}

	return t.byMeasure(v, v.Measure, v.Source)
}

// ResolveAll resolves every member of vs, stopping at the first failure.
func (t *Table) ResolveAll(vs Vars) ([]Ref, error) {
	refs := make([]Ref, 0, len(vs))
	for _, v := range vs {
		r, err := t.Resolve(v)
		if err != nil {
			return nil, err
		}
		refs = append(refs, r)
	}
	return refs, nil
}

func (t *Table) ref(v Var, i int) Ref {
	return Ref{Var: v, Column: t.cols[i].Name, Kind: t.cols[i].Kind, col: i}
}

// byMeasure matches columns by measure/source metadata.
func (t *Table) byMeasure(v Var, measure, source string) (Ref, error) {
	var matches []int
	if measure != "" {
		for i, c := range t.cols {
			if c.Measure != measure {
				continue
			}
			if source != "" && c.Source != source {
				continue
			}
			matches = append(matches, i)
		}
	}

	switch len(matches) {
	case 1:
		return t.ref(v, matches[0]), nil
	case 0:
		return Ref{}, &UnresolvedVariableError{Var: v, Suggestions: t.suggest(v.String())}
	default:
		names := make([]string, len(matches))
		for k, i := range matches {
			names[k] = t.cols[i].Name
		}
		return Ref{}, &UnresolvedVariableError{Var: v, Matches: names}
	}
}

// suggest ranks column names (and measure.source pairs) close to name.
func (t *Table) suggest(name string) []string {
	if name == "" {
		return nil
	}
	candidates := make([]string, 0, len(t.cols)+1)
	for _, c := range t.cols {
		candidates = append(candidates, c.Name)
	}
	candidates = append(candidates, LengthName)

	ranks := fuzzy.RankFindFold(name, candidates)
	sort.Sort(ranks)

	out := make([]string, 0, maxSuggestions)
	for _, r := range ranks {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, r.Target)
	}
	return out
}
