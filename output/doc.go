// Package output renders generated tuples, or a plain filtered view, as a
// rectangular Frame of strings and serializes it as CSV.
//
// Wide frames hold one record per tuple:
//
//	item, <cell>..., [match_null], <cell>.<column>...
//
// Long frames hold one record per item:
//
//	item, condition, [match_null], <id>, <column>...
//
// "item" is the 1-based tuple number. match_null appears only when tuples
// were built against a null cell. Which table columns follow is chosen by
// Include: every column, only the variables used by filters and splits, or
// none.
//
// Numbers are printed with strconv.FormatFloat(v, 'g', -1, 64), so every
// value reads back unchanged; missing values print as "NA".
package output
