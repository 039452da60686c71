// Package table provides the immutable item table consumed by every stage of
// a stimulus-set design: an ordered set of uniquely identified rows (words,
// items) with a fixed schema of numeric and categorical columns.
//
// Key pieces:
//
//   - Table:  columnar, read-only storage keyed by a unique identifier column.
//   - Column: one typed column (Numeric or Categorical) plus optional
//     Measure/Source metadata, so a property measured by several studies can
//     be addressed as "measure + source" instead of by column name.
//   - View:   an ordered subset of row indices; stages narrow and annotate
//     views instead of copying rows.
//   - Var / Vars: variable references, resolved into a Ref by Table.Resolve.
//
// Columns are stored as apache arrow arrays (Float64 or String) and missing
// values are nulls in the validity bitmap. Accessors surface them as NaN for
// numeric columns and the empty string for categorical columns. FromRecords
// maps the usual textual markers ("", "NA", "NaN") to nulls and infers each
// column's kind. Table.Record exports the whole table as an arrow record.
//
// The pseudo-variable Length resolves to the rune count of the identifier
// when the table has no literal Length column. Random is reserved for
// random splits and never resolves to a column.
//
// Resolution is strict: a reference that matches no column, or more than one
// column, fails with *UnresolvedVariableError. It never silently picks one.
// Suggestions for misspelled names are ranked with fuzzy matching.
package table
