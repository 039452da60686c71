// SPDX-License-Identifier: MIT
// Package levels: ellipsis grammar.
//
//	ellipsis  := item { "," item }
//	item      := vars [ "=" tolerance ]
//	tolerance := number ":" number | "c" "(" number "," number ")" | number | "NA" | "NULL"

package levels

import (
	"math"

	"github.com/katalvlaran/stimset/table"
)

// Term is one "variable[=tolerance]" item. Tolerance is Unconstrained when
// none was given.
type Term struct {
	Vars      table.Vars
	Tolerance Selector
}

// HasTolerance reports whether a numeric tolerance was given.
func (t Term) HasTolerance() bool { return t.Tolerance.Kind == NumericRange }

// ParseEllipsis parses a comma-separated "variable[=tolerance]" list. The
// result keeps input order, which later fixes the order in which tolerances
// are checked.
//
// Errors (*ParseError): empty items, more than one "=", a missing
// tolerance after "=", dangling or repeated ":", non-numeric tolerances.
//
// Complexity: O(len(expr)).
func ParseEllipsis(expr string) ([]Term, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	body := toks[:len(toks)-1]
	if len(body) == 0 {
		return nil, nil
	}

	items, err := splitTop(expr, body, tokComma, "empty item")
	if err != nil {
		return nil, err
	}

	terms := make([]Term, 0, len(items))
	for _, item := range items {
		term, err := parseTerm(expr, item)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, nil
}

func parseTerm(input string, toks []token) (Term, error) {
	eq := -1
	for i, t := range toks {
		if t.kind != tokEquals {
			continue
		}
		if eq >= 0 {
			return Term{}, unexpected(input, t, "more than one '='")
		}
		eq = i
	}

	lhs := toks
	if eq >= 0 {
		lhs = toks[:eq]
	}
	if eq == 0 {
		return Term{}, unexpected(input, toks[0], "missing variable before '='")
	}
	vars, err := parseVarTokens(input, lhs)
	if err != nil {
		return Term{}, err
	}
	term := Term{Vars: vars}
	if eq < 0 {
		return term, nil
	}

	rhs := toks[eq+1:]
	if len(rhs) == 0 {
		return Term{}, unexpected(input, toks[eq], "missing tolerance after '='")
	}
	if term.Tolerance, err = parseTolerance(input, rhs); err != nil {
		return Term{}, err
	}
	return term, nil
}

// parseTolerance accepts a:b, c(a, b), a single number (symmetric) or NA.
func parseTolerance(input string, toks []token) (Selector, error) {
	for _, t := range toks {
		if t.kind == tokColon {
			raw, err := parseLevel(input, toks)
			if err != nil {
				return Selector{}, err
			}
			return Range(raw.nums[0], raw.nums[1]), nil
		}
	}

	raw, err := parseLevel(input, toks)
	if err != nil {
		return Selector{}, err
	}
	switch {
	case raw.shape == shapeNA:
		return NA(), nil
	case raw.isRange():
		return Range(raw.nums[0], raw.nums[1]), nil
	case raw.shape == shapeSingle && raw.numeric:
		w := math.Abs(raw.nums[0])
		return Range(-w, w), nil
	default:
		return Selector{}, unexpected(input, toks[0], "tolerance must be numeric")
	}
}
