// SPDX-License-Identifier: MIT
// Package levels: the typed selector variant and level specifications.

package levels

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/stimset/table"
)

// Kind tags a Selector.
type Kind uint8

const (
	// Unconstrained is the NA/NULL level: no bounds, no categories.
	Unconstrained Kind = iota

	// NumericRange is an inclusive pair of bounds.
	NumericRange

	// CategorySet is a set of category labels.
	CategorySet
)

// String returns a lower-case kind name.
func (k Kind) String() string {
	switch k {
	case NumericRange:
		return "range"
	case CategorySet:
		return "categories"
	default:
		return "NA"
	}
}

// Selector is one level or tolerance: NumericRange{Lower, Upper},
// CategorySet{Values} or Unconstrained. The zero value is Unconstrained.
type Selector struct {
	Kind   Kind
	Lower  float64
	Upper  float64
	Values []string
}

// Range builds a numeric range; lower/upper keep the caller's order.
func Range(lower, upper float64) Selector {
	return Selector{Kind: NumericRange, Lower: lower, Upper: upper}
}

// Categories builds a category set.
func Categories(values ...string) Selector {
	return Selector{Kind: CategorySet, Values: append([]string(nil), values...)}
}

// NA returns the Unconstrained selector.
func NA() Selector { return Selector{} }

// Min returns the smaller bound of a range.
func (s Selector) Min() float64 { return math.Min(s.Lower, s.Upper) }

// Max returns the larger bound of a range.
func (s Selector) Max() float64 { return math.Max(s.Lower, s.Upper) }

// ContainsNumber reports Min() ≤ v ≤ Max(). NaN and non-range selectors
// never contain anything.
func (s Selector) ContainsNumber(v float64) bool {
	if s.Kind != NumericRange || math.IsNaN(v) {
		return false
	}
	return v >= s.Min() && v <= s.Max()
}

// ContainsCategory reports set membership; "" (missing) is never a member.
func (s Selector) ContainsCategory(v string) bool {
	if s.Kind != CategorySet || v == "" {
		return false
	}
	for _, c := range s.Values {
		if c == v {
			return true
		}
	}
	return false
}

// String renders s in the notation ParseSelector accepts.
func (s Selector) String() string {
	switch s.Kind {
	case NumericRange:
		return formatNumber(s.Lower) + ":" + formatNumber(s.Upper)
	case CategorySet:
		quoted := make([]string, len(s.Values))
		for i, v := range s.Values {
			quoted[i] = strconv.Quote(v)
		}
		if len(quoted) == 1 {
			return quoted[0]
		}
		return "c(" + strings.Join(quoted, ", ") + ")"
	default:
		return "NA"
	}
}

func formatNumber(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// Spec is a parsed level specification: the variable reference followed by
// its ordered levels. Zero levels means "no constraint / exact-match mode".
type Spec struct {
	Vars   table.Vars
	Levels []Selector
}

// Numeric reports whether any level is a numeric range.
func (s Spec) Numeric() bool {
	for _, l := range s.Levels {
		if l.Kind == NumericRange {
			return true
		}
	}
	return false
}

// String renders s as "vars: level ~ level".
func (s Spec) String() string {
	if len(s.Levels) == 0 {
		return s.Vars.String()
	}
	parts := make([]string, len(s.Levels))
	for i, l := range s.Levels {
		parts[i] = l.String()
	}
	return s.Vars.String() + ": " + strings.Join(parts, " ~ ")
}
