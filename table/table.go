// SPDX-License-Identifier: MIT
// Package table: Table construction and accessors.

package table

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Table is an immutable, columnar item table. Safe for concurrent reads.
type Table struct {
	idName string
	ids    []string
	cols   []Column
	byName map[string]int
	byID   map[string]int
}

// New builds a Table from an identifier column and typed columns. Column
// arrays are immutable and shared; ids are copied.
//
// Errors: ErrMissingID, ErrDuplicateID, ErrDuplicateColumn,
// ErrColumnLength, ErrBadKind (wrapped with "New").
//
// Complexity: O(rows · cols).
func New(idName string, ids []string, cols ...Column) (*Table, error) {
	if idName == "" {
		idName = DefaultIDName
	}
	t := &Table{
		idName: idName,
		ids:    append([]string(nil), ids...),
		cols:   make([]Column, 0, len(cols)),
		byName: make(map[string]int, len(cols)),
		byID:   make(map[string]int, len(ids)),
	}

	var (
		i  int
		id string
	)
	for i, id = range t.ids {
		if id == "" {
			return nil, tableErrorf("New", ErrMissingID)
		}
		if _, dup := t.byID[id]; dup {
			return nil, tableErrorf("New", ErrDuplicateID)
		}
		t.byID[id] = i
	}

	for _, c := range cols {
		if !c.typed() {
			return nil, tableErrorf("New", ErrBadKind)
		}
		if c.Name == "" || c.Name == idName {
			return nil, tableErrorf("New", ErrDuplicateColumn)
		}
		if _, dup := t.byName[c.Name]; dup {
			return nil, tableErrorf("New", ErrDuplicateColumn)
		}
		if c.Len() != len(t.ids) {
			return nil, tableErrorf("New", ErrColumnLength)
		}
		t.byName[c.Name] = len(t.cols)
		t.cols = append(t.cols, c)
	}

	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.ids) }

// IDName returns the identifier column name.
func (t *Table) IDName() string { return t.idName }

// ID returns the identifier of row i.
func (t *Table) ID(i int) string { return t.ids[i] }

// Row returns the row index of id.
func (t *Table) Row(id string) (int, bool) {
	i, ok := t.byID[id]
	return i, ok
}

// Columns returns the column names in schema order, excluding the identifier.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Column{}, false
	}
	return t.cols[i], true
}

// Record returns the table as an arrow record: the identifier column first,
// then every column in schema order. The caller owns the record and should
// Release it.
func (t *Table) Record() arrow.Record {
	b := array.NewStringBuilder(alloc)
	defer b.Release()
	b.AppendValues(t.ids, nil)
	ids := b.NewStringArray()
	defer ids.Release()

	fields := make([]arrow.Field, 0, len(t.cols)+1)
	arrs := make([]arrow.Array, 0, len(t.cols)+1)
	fields = append(fields, arrow.Field{Name: t.idName, Type: arrow.BinaryTypes.String})
	arrs = append(arrs, ids)
	for _, c := range t.cols {
		fields = append(fields, c.Field())
		arrs = append(arrs, c.data)
	}
	return array.NewRecord(arrow.NewSchema(fields, nil), arrs, int64(len(t.ids)))
}

// All returns a View over every row in table order.
func (t *Table) All() View {
	v := make(View, len(t.ids))
	for i := range v {
		v[i] = i
	}
	return v
}

// Refs resolves every schema column in order; convenient for "include all".
func (t *Table) Refs() []Ref {
	refs := make([]Ref, len(t.cols))
	for i, c := range t.cols {
		refs[i] = Ref{Var: Name(c.Name), Column: c.Name, Kind: c.Kind, col: i}
	}
	return refs
}

// Number returns the numeric value of r at row i (NaN when missing or when
// r is categorical).
func (t *Table) Number(r Ref, i int) float64 {
	if r.length {
		return float64(utf8.RuneCountInString(t.ids[i]))
	}
	return t.cols[r.col].Number(i)
}

// Category returns the categorical value of r at row i ("" when missing).
// Numeric values are rendered as text so categorical matching on a numeric
// column compares exact values.
func (t *Table) Category(r Ref, i int) string {
	if r.Kind == Numeric {
		v := t.Number(r, i)
		if math.IsNaN(v) {
			return ""
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return t.cols[r.col].Category(i)
}

// Missing reports whether r is missing at row i.
func (t *Table) Missing(r Ref, i int) bool {
	if r.length {
		return false
	}
	return t.cols[r.col].Missing(i)
}

// Text renders r at row i for export; missing values render as "NA".
func (t *Table) Text(r Ref, i int) string {
	if t.Missing(r, i) {
		return "NA"
	}
	return t.Category(r, i)
}
