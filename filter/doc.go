// Package filter narrows an item table to the rows satisfying every filter
// predicate.
//
// A Spec pairs a variable reference with one levels.Selector:
//
//   - NumericRange  keeps rows whose value lies within the inclusive bounds;
//   - CategorySet   keeps rows whose label is a member of the set;
//   - Unconstrained keeps every row.
//
// Missing values never satisfy a range or a set. Specs compose by
// intersection in the order supplied; the result keeps table order. An
// unresolvable variable is fatal and surfaces as
// *table.UnresolvedVariableError; a selector whose kind does not fit the
// column fails with ErrSelectorKind.
package filter
