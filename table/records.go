// SPDX-License-Identifier: MIT
// Package table: building a Table from textual records.

package table

import (
	"strings"

	"github.com/apache/arrow-go/v18/arrow/array"
)

// FromRecords builds a Table from a header and string records, as read by
// encoding/csv. The identifier column defaults to DefaultIDName and falls
// back to the first column when absent. A column is Numeric when every
// non-missing cell parses as a float64, Categorical otherwise.
//
// Errors: ErrEmptyHeader, ErrRaggedRecord, plus those of New.
//
// Complexity: O(rows · cols).
func FromRecords(header []string, records [][]string, opts ...Option) (*Table, error) {
	cfg := newRecordsConfig(opts...)
	if len(header) == 0 {
		return nil, tableErrorf("FromRecords", ErrEmptyHeader)
	}

	idCol := 0
	for j, h := range header {
		if strings.TrimSpace(h) == cfg.idName {
			idCol = j
			break
		}
	}

	ids := make([]string, len(records))
	for i, rec := range records {
		if len(rec) != len(header) {
			return nil, tableErrorf("FromRecords", ErrRaggedRecord)
		}
		ids[i] = strings.TrimSpace(rec[idCol])
	}

	cols := make([]Column, 0, len(header)-1)
	for j, h := range header {
		if j == idCol {
			continue
		}
		name := strings.TrimSpace(h)
		col := cfg.column(name, j, records)
		if m, ok := cfg.measures[name]; ok {
			col = col.WithMeasure(m[0], m[1])
		}
		cols = append(cols, col)
	}

	return New(strings.TrimSpace(header[idCol]), ids, cols...)
}

// column infers and builds column j: a Float64 array when every
// non-missing cell parses as a number and the column is not forced
// categorical, a String array otherwise. Missing markers become nulls.
func (c recordsConfig) column(name string, j int, records [][]string) Column {
	cells := make([]string, len(records))
	for i, rec := range records {
		cells[i] = strings.TrimSpace(rec[j])
	}

	if _, forced := c.categorical[name]; !forced {
		if nums, ok := c.parseNumbers(cells); ok {
			return Column{Name: name, Kind: Numeric, data: nums}
		}
	}

	b := array.NewStringBuilder(alloc)
	defer b.Release()
	b.Reserve(len(cells))
	for _, s := range cells {
		if c.isMissing(s) {
			b.AppendNull()
			continue
		}
		b.Append(s)
	}
	return Column{Name: name, Kind: Categorical, data: b.NewStringArray()}
}

// parseNumbers appends every cell to a Float64 builder, mapping missing
// markers to nulls. It fails on the first non-numeric, non-missing cell.
func (c recordsConfig) parseNumbers(cells []string) (*array.Float64, bool) {
	b := array.NewFloat64Builder(alloc)
	defer b.Release()
	b.Reserve(len(cells))
	for _, s := range cells {
		if c.isMissing(s) {
			b.AppendNull()
			continue
		}
		if err := b.AppendValueFromString(s); err != nil {
			return nil, false
		}
	}
	return b.NewFloat64Array(), true
}

func (c recordsConfig) isMissing(s string) bool {
	_, miss := c.missing[s]
	return miss
}
