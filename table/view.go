// SPDX-License-Identifier: MIT
// Package table: row views.

package table

// View is an ordered subset of row indices into a Table. Stages narrow views
// instead of copying rows; order is preserved through every stage.
type View []int

// Len returns the number of rows in v.
func (v View) Len() int { return len(v) }

// Clone returns an independent copy of v.
func (v View) Clone() View { return append(View(nil), v...) }

// Keep returns the rows of v for which keep reports true, in order.
func (v View) Keep(keep func(row int) bool) View {
	out := make(View, 0, len(v))
	for _, r := range v {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// IDs returns the identifiers of v's rows in order.
func (v View) IDs(t *Table) []string {
	ids := make([]string, len(v))
	for i, r := range v {
		ids[i] = t.ID(r)
	}
	return ids
}
