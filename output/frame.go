// SPDX-License-Identifier: MIT
// Package output: frames, tuple rendering and CSV.

package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/stimset/match"
	"github.com/katalvlaran/stimset/table"
)

// Column names added by the formatter.
const (
	ItemColumn      = "item"
	ConditionColumn = "condition"
	NullColumn      = "match_null"
)

// NA is written for missing values and unassigned conditions.
const NA = "NA"

// Frame is a header plus equally wide string records.
type Frame struct {
	Header  []string
	Records [][]string
}

// Len returns the number of records.
func (f *Frame) Len() int { return len(f.Records) }

// Column returns the values under name, or nil when absent.
func (f *Frame) Column(name string) []string {
	for j, h := range f.Header {
		if h != name {
			continue
		}
		out := make([]string, len(f.Records))
		for i, rec := range f.Records {
			out[i] = rec[j]
		}
		return out
	}
	return nil
}

// WriteCSV writes the header and every record as comma-separated values,
// without a row index.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Header); err != nil {
		return fmt.Errorf("output: WriteCSV: %w", err)
	}
	if err := cw.WriteAll(f.Records); err != nil {
		return fmt.Errorf("output: WriteCSV: %w", err)
	}
	return nil
}

// Tuples renders tuples built over cells labeled labels.
//
// Errors: ErrTupleArity, or resolution errors for IncludeUsed.
//
// Complexity: O(T · C · K) for T tuples, C cells and K columns.
func Tuples(t *table.Table, labels []string, tuples []match.Tuple, cfg Config) (*Frame, error) {
	cols, err := cfg.columns(t)
	if err != nil {
		return nil, fmt.Errorf("output: Tuples: %w", err)
	}
	anchored := false
	for i, tp := range tuples {
		if len(tp.Rows) != len(labels) {
			return nil, fmt.Errorf("output: Tuples: tuple %d: %w", i, ErrTupleArity)
		}
		anchored = anchored || tp.Null >= 0
	}
	nullOf := func(tp match.Tuple) string {
		if tp.Null < 0 {
			return NA
		}
		return labels[tp.Null]
	}

	if cfg.Format == Wide {
		return wide(t, labels, tuples, cols, anchored, nullOf), nil
	}

	f := &Frame{Header: []string{ItemColumn, ConditionColumn}}
	if anchored {
		f.Header = append(f.Header, NullColumn)
	}
	f.Header = append(f.Header, t.IDName())
	f.Header = appendNames(f.Header, "", cols)

	f.Records = make([][]string, 0, len(tuples)*len(labels))
	for i, tp := range tuples {
		item := strconv.Itoa(i + 1)
		for c, row := range tp.Rows {
			rec := make([]string, 0, len(f.Header))
			rec = append(rec, item, labels[c])
			if anchored {
				rec = append(rec, nullOf(tp))
			}
			rec = append(rec, t.ID(row))
			f.Records = append(f.Records, appendValues(rec, t, cols, row))
		}
	}
	return f, nil
}

func wide(t *table.Table, labels []string, tuples []match.Tuple, cols []table.Ref, anchored bool, nullOf func(match.Tuple) string) *Frame {
	f := &Frame{Header: append([]string{ItemColumn}, labels...)}
	if anchored {
		f.Header = append(f.Header, NullColumn)
	}
	for _, l := range labels {
		f.Header = appendNames(f.Header, l+".", cols)
	}

	f.Records = make([][]string, 0, len(tuples))
	for i, tp := range tuples {
		rec := make([]string, 0, len(f.Header))
		rec = append(rec, strconv.Itoa(i+1))
		for _, row := range tp.Rows {
			rec = append(rec, t.ID(row))
		}
		if anchored {
			rec = append(rec, nullOf(tp))
		}
		for _, row := range tp.Rows {
			rec = appendValues(rec, t, cols, row)
		}
		f.Records = append(f.Records, rec)
	}
	return f
}

// View renders the rows of v without generation. label, when non-nil, adds
// a condition column ("NA" for rows it maps to "").
//
// Errors: resolution errors for IncludeUsed.
func View(t *table.Table, v table.View, label func(row int) string, cfg Config) (*Frame, error) {
	cols, err := cfg.columns(t)
	if err != nil {
		return nil, fmt.Errorf("output: View: %w", err)
	}
	f := &Frame{Header: []string{t.IDName()}}
	if label != nil {
		f.Header = append(f.Header, ConditionColumn)
	}
	f.Header = appendNames(f.Header, "", cols)

	f.Records = make([][]string, 0, len(v))
	for _, row := range v {
		rec := make([]string, 0, len(f.Header))
		rec = append(rec, t.ID(row))
		if label != nil {
			l := label(row)
			if l == "" {
				l = NA
			}
			rec = append(rec, l)
		}
		f.Records = append(f.Records, appendValues(rec, t, cols, row))
	}
	return f, nil
}

func appendNames(dst []string, prefix string, cols []table.Ref) []string {
	for _, c := range cols {
		dst = append(dst, prefix+c.Column)
	}
	return dst
}

func appendValues(dst []string, t *table.Table, cols []table.Ref, row int) []string {
	for _, c := range cols {
		dst = append(dst, t.Text(c, row))
	}
	return dst
}
