// SPDX-License-Identifier: MIT
// Package table: column kinds, columns and variable references.

package table

import (
	"math"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Kind classifies a column.
type Kind uint8

const (
	// Numeric columns hold float64 values.
	Numeric Kind = iota + 1

	// Categorical columns hold string labels.
	Categorical
)

// String returns "numeric", "categorical" or "invalid".
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "invalid"
	}
}

// Reserved pseudo-variable names.
const (
	// LengthName resolves to the identifier's rune count unless the table
	// has a literal column of that name.
	LengthName = "Length"

	// RandomName marks a random split; it never resolves to a column.
	RandomName = "Random"

	// DefaultIDName is the identifier column name used by FromRecords.
	DefaultIDName = "string"
)

// Column is one typed column of a Table, stored as an immutable arrow array:
// *array.Float64 for Numeric, *array.String for Categorical. Missing values
// are nulls in the array's validity bitmap.
type Column struct {
	Name    string
	Measure string
	Source  string
	Kind    Kind

	data arrow.Array
}

// alloc backs every column built by this package.
var alloc = memory.NewGoAllocator()

// NumericColumn builds a numeric column; NaN values become nulls.
func NumericColumn(name string, vals []float64) Column {
	b := array.NewFloat64Builder(alloc)
	defer b.Release()
	b.Reserve(len(vals))
	for _, v := range vals {
		if math.IsNaN(v) {
			b.AppendNull()
			continue
		}
		b.Append(v)
	}
	return Column{Name: name, Kind: Numeric, data: b.NewFloat64Array()}
}

// CategoricalColumn builds a categorical column; "" values become nulls.
func CategoricalColumn(name string, vals []string) Column {
	b := array.NewStringBuilder(alloc)
	defer b.Release()
	b.Reserve(len(vals))
	for _, v := range vals {
		if v == "" {
			b.AppendNull()
			continue
		}
		b.Append(v)
	}
	return Column{Name: name, Kind: Categorical, data: b.NewStringArray()}
}

// WithMeasure returns a copy of c tagged with measure/source metadata.
func (c Column) WithMeasure(measure, source string) Column {
	c.Measure = measure
	c.Source = source
	return c
}

// typed reports whether c's array matches its Kind.
func (c Column) typed() bool {
	switch c.data.(type) {
	case *array.Float64:
		return c.Kind == Numeric
	case *array.String:
		return c.Kind == Categorical
	default:
		return false
	}
}

// Len returns the number of values in c.
func (c Column) Len() int {
	if c.data == nil {
		return 0
	}
	return c.data.Len()
}

// Missing reports whether row i holds a missing value.
func (c Column) Missing(i int) bool { return c.data.IsNull(i) }

// NullN returns the number of missing values.
func (c Column) NullN() int {
	if c.data == nil {
		return 0
	}
	return c.data.NullN()
}

// Number returns row i of a numeric column; NaN when missing or when c is
// categorical.
func (c Column) Number(i int) float64 {
	a, ok := c.data.(*array.Float64)
	if !ok || a.IsNull(i) {
		return math.NaN()
	}
	return a.Value(i)
}

// Category returns row i of a categorical column; "" when missing or when c
// is numeric.
func (c Column) Category(i int) string {
	a, ok := c.data.(*array.String)
	if !ok || a.IsNull(i) {
		return ""
	}
	return a.Value(i)
}

// Array returns the backing arrow array. It is shared and must not be
// released by the caller.
func (c Column) Array() arrow.Array { return c.data }

// Field describes c as an arrow field; measure and source travel as field
// metadata.
func (c Column) Field() arrow.Field {
	f := arrow.Field{Name: c.Name, Type: arrow.BinaryTypes.String, Nullable: true}
	if c.Kind == Numeric {
		f.Type = arrow.PrimitiveTypes.Float64
	}
	if c.Measure != "" {
		f.Metadata = arrow.NewMetadata([]string{MetaMeasure, MetaSource}, []string{c.Measure, c.Source})
	}
	return f
}

// Arrow field metadata keys written by Column.Field.
const (
	MetaMeasure = "measure"
	MetaSource  = "source"
)

// Var references one column: either by Name (a literal or custom column, or
// a pseudo-variable) or by a Measure + Source pair.
type Var struct {
	Name    string
	Measure string
	Source  string
}

// Name references a column by its literal name.
func Name(name string) Var { return Var{Name: name} }

// MeasureOf references the column carrying the given measure/source pair.
// An empty source matches any source; the measure must then be unique.
func MeasureOf(measure, source string) Var { return Var{Measure: measure, Source: source} }

// IsRandom reports whether v is the Random pseudo-variable.
func (v Var) IsRandom() bool { return v.Name == RandomName && v.Measure == "" }

// String renders v the way a user would type it.
func (v Var) String() string {
	if v.Name != "" {
		return v.Name
	}
	if v.Source == "" {
		return v.Measure
	}
	return v.Measure + "." + v.Source
}

// Vars is a multi-variable reference sharing one selector or tolerance.
type Vars []Var

// Names builds Vars from literal column names.
func Names(names ...string) Vars {
	vs := make(Vars, len(names))
	for i, n := range names {
		vs[i] = Name(n)
	}
	return vs
}

// String renders vs as "a" or "c(a, b)".
func (vs Vars) String() string {
	if len(vs) == 1 {
		return vs[0].String()
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return "c(" + strings.Join(parts, ", ") + ")"
}

// Ref is a resolved variable: a concrete column (or the computed Length).
type Ref struct {
	Var    Var
	Column string
	Kind   Kind

	col    int // index into Table.cols; -1 for computed Length
	length bool
}

// Computed reports whether r is the computed Length pseudo-column.
func (r Ref) Computed() bool { return r.length }
