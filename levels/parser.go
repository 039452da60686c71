// SPDX-License-Identifier: MIT
// Package levels: level grammar.
//
//	levels   := level { "~" level }
//	level    := "NA" | "NULL" | number ":" number | "c" "(" items ")" | literal
//	items    := literal { "," literal }
//	literal  := number | string | ident
//	vars     := literal | "c" "(" literal { "," literal } ")"

package levels

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/stimset/table"
)

// rawShape is the syntactic shape of one level before classification.
type rawShape uint8

const (
	shapeNA rawShape = iota
	shapeRange
	shapeList
	shapeSingle
)

// rawLevel is a syntactically valid level awaiting classification.
type rawLevel struct {
	shape rawShape
	nums  []float64 // parsed numbers for shapeRange and all-numeric lists
	texts []string  // literal texts for shapeList / shapeSingle
	// numeric reports whether every literal of a list/single is a number.
	numeric bool
}

// isRange reports whether r denotes a pair of numeric bounds.
func (r rawLevel) isRange() bool {
	return r.shape == shapeRange || r.shape == shapeList && r.numeric && len(r.nums) == 2
}

// ParseVars parses a variable token: an identifier, a quoted string, or
// c(a, b, ...) for a multi-variable reference.
func ParseVars(input string) (table.Vars, error) {
	toks, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	return parseVarTokens(input, toks[:len(toks)-1])
}

// parseVarTokens parses vars from toks (without the trailing EOF).
func parseVarTokens(input string, toks []token) (table.Vars, error) {
	if len(toks) == 0 {
		return nil, &ParseError{Input: input, Msg: "missing variable"}
	}
	if len(toks) == 1 {
		switch toks[0].kind {
		case tokIdent, tokString:
			return table.Vars{table.Name(toks[0].text)}, nil
		default:
			return nil, unexpected(input, toks[0], "expected a variable name")
		}
	}

	items, rest, err := parseCall(input, toks)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, unexpected(input, rest[0], "unexpected token after variable list")
	}
	vars := make(table.Vars, 0, len(items))
	for _, it := range items {
		if it.kind == tokNumber {
			return nil, unexpected(input, it, "expected a variable name")
		}
		vars = append(vars, table.Name(it.text))
	}
	return vars, nil
}

// ParseLevels parses a variable token and an optional "~"-separated level
// expression into a Spec. An empty expression yields a Spec without levels.
//
// Complexity: O(len(varToken) + len(expr)).
func ParseLevels(varToken, expr string) (Spec, error) {
	vars, err := ParseVars(varToken)
	if err != nil {
		return Spec{}, err
	}
	spec := Spec{Vars: vars}
	if strings.TrimSpace(expr) == "" {
		return spec, nil
	}

	toks, err := tokenize(expr)
	if err != nil {
		return Spec{}, err
	}
	groups, err := splitTop(expr, toks[:len(toks)-1], tokTilde, "empty level")
	if err != nil {
		return Spec{}, err
	}

	raws := make([]rawLevel, len(groups))
	for i, g := range groups {
		if raws[i], err = parseLevel(expr, g); err != nil {
			return Spec{}, err
		}
	}
	spec.Levels = classify(raws)
	return spec, nil
}

// ParseSelector parses a single level (no "~") into a Selector. Ranges and
// two-number pairs become NumericRange, NA/NULL Unconstrained, anything
// else a CategorySet. Used for filters.
func ParseSelector(expr string) (Selector, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return Selector{}, err
	}
	body := toks[:len(toks)-1]
	for _, t := range body {
		if t.kind == tokTilde {
			return Selector{}, unexpected(expr, t, "a single level is expected")
		}
	}
	raw, err := parseLevel(expr, body)
	if err != nil {
		return Selector{}, err
	}
	return classify([]rawLevel{raw})[0], nil
}

// classify applies the numeric-vs-categorical rule to a whole level list.
func classify(raws []rawLevel) []Selector {
	var allRange, anyColon = true, false
	for _, r := range raws {
		if !r.isRange() {
			allRange = false
		}
		if r.shape == shapeRange {
			anyColon = true
		}
	}

	out := make([]Selector, len(raws))
	for i, r := range raws {
		switch {
		case r.shape == shapeNA:
			out[i] = NA()
		case allRange || anyColon:
			if r.isRange() {
				out[i] = Range(r.nums[0], r.nums[1])
			} else {
				out[i] = NA()
			}
		default:
			out[i] = Categories(r.texts...)
		}
	}
	return out
}

// parseLevel parses one level's tokens.
func parseLevel(input string, toks []token) (rawLevel, error) {
	switch {
	case len(toks) == 0:
		return rawLevel{}, &ParseError{Input: input, Msg: "empty level"}

	case len(toks) == 1 && (toks[0].is("NA") || toks[0].is("NULL")):
		return rawLevel{shape: shapeNA}, nil

	case len(toks) == 1:
		switch toks[0].kind {
		case tokNumber, tokString, tokIdent:
			r := rawLevel{shape: shapeSingle, texts: []string{toks[0].text}}
			if toks[0].kind == tokNumber {
				r.numeric = true
				r.nums = []float64{mustNumber(toks[0])}
			}
			return r, nil
		default:
			return rawLevel{}, unexpected(input, toks[0], "expected a level")
		}

	case len(toks) == 3 && toks[1].kind == tokColon:
		if toks[0].kind != tokNumber {
			return rawLevel{}, unexpected(input, toks[0], "range bound must be a number")
		}
		if toks[2].kind != tokNumber {
			return rawLevel{}, unexpected(input, toks[2], "range bound must be a number")
		}
		return rawLevel{shape: shapeRange, nums: []float64{mustNumber(toks[0]), mustNumber(toks[2])}}, nil

	case toks[0].is("c"):
		items, rest, err := parseCall(input, toks)
		if err != nil {
			return rawLevel{}, err
		}
		if len(rest) > 0 {
			return rawLevel{}, unexpected(input, rest[0], "unexpected token after c(...)")
		}
		r := rawLevel{shape: shapeList, numeric: true}
		for _, it := range items {
			r.texts = append(r.texts, it.text)
			if it.kind == tokNumber {
				r.nums = append(r.nums, mustNumber(it))
			} else {
				r.numeric = false
			}
		}
		return r, nil

	default:
		for _, t := range toks {
			if t.kind == tokColon {
				return rawLevel{}, unexpected(input, t, "malformed range")
			}
		}
		return rawLevel{}, unexpected(input, toks[1], "unexpected token in level")
	}
}

// parseCall parses `c ( literal {, literal} )` at the head of toks and
// returns the literals and the remaining tokens.
func parseCall(input string, toks []token) ([]token, []token, error) {
	if len(toks) < 2 || !toks[0].is("c") || toks[1].kind != tokLParen {
		return nil, nil, unexpected(input, toks[0], "expected c(...)")
	}
	var (
		items []token
		i     = 2
	)
	for {
		if i >= len(toks) {
			return nil, nil, &ParseError{Input: input, Msg: "unbalanced parenthesis"}
		}
		t := toks[i]
		switch t.kind {
		case tokNumber, tokString, tokIdent:
			items = append(items, t)
		default:
			return nil, nil, unexpected(input, t, "expected a literal")
		}
		i++
		if i >= len(toks) {
			return nil, nil, &ParseError{Input: input, Msg: "unbalanced parenthesis"}
		}
		switch toks[i].kind {
		case tokComma:
			i++
		case tokRParen:
			return items, toks[i+1:], nil
		default:
			return nil, nil, unexpected(input, toks[i], "expected ',' or ')'")
		}
	}
}

// splitTop splits toks on sep at parenthesis depth zero. Empty groups and
// unbalanced parentheses are errors.
func splitTop(input string, toks []token, sep tokenKind, emptyMsg string) ([][]token, error) {
	var (
		groups [][]token
		cur    []token
		depth  int
	)
	for _, t := range toks {
		switch {
		case t.kind == tokLParen:
			depth++
		case t.kind == tokRParen:
			depth--
			if depth < 0 {
				return nil, unexpected(input, t, "unbalanced parenthesis")
			}
		case t.kind == sep && depth == 0:
			if len(cur) == 0 {
				return nil, unexpected(input, t, emptyMsg)
			}
			groups = append(groups, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	if depth != 0 {
		return nil, &ParseError{Input: input, Msg: "unbalanced parenthesis"}
	}
	if len(cur) == 0 {
		return nil, &ParseError{Input: input, Msg: emptyMsg}
	}
	return append(groups, cur), nil
}

func unexpected(input string, t token, msg string) error {
	text := t.text
	if t.kind == tokString {
		text = strconv.Quote(t.text)
	}
	return &ParseError{Input: input, Token: text, Pos: t.pos, Msg: msg}
}

// mustNumber converts a tokNumber; the lexer only emits valid literals.
func mustNumber(t token) float64 {
	v, _ := strconv.ParseFloat(t.text, 64)
	return v
}
