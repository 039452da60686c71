// SPDX-License-Identifier: MIT
// Package table: sentinel errors.
//
// Callers branch with errors.Is / errors.As; messages are prefixed with
// "table:" and wrapped with method context at the call site.

package table

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnresolvedVariable is returned when a variable reference does not
	// resolve to exactly one column.
	ErrUnresolvedVariable = errors.New("table: unresolved variable")

	// ErrAmbiguousVariable is the refinement of ErrUnresolvedVariable for
	// references matching several columns. errors.Is matches both.
	ErrAmbiguousVariable = fmt.Errorf("%w: ambiguous reference", ErrUnresolvedVariable)

	// ErrDuplicateID indicates two rows share one identifier.
	ErrDuplicateID = errors.New("table: duplicate identifier")

	// ErrMissingID indicates an empty identifier.
	ErrMissingID = errors.New("table: empty identifier")

	// ErrDuplicateColumn indicates two columns share one name, or a column
	// reuses the identifier column name.
	ErrDuplicateColumn = errors.New("table: duplicate column")

	// ErrColumnLength indicates a column whose length differs from the row count.
	ErrColumnLength = errors.New("table: column length mismatch")

	// ErrBadKind indicates a column without a valid Kind.
	ErrBadKind = errors.New("table: invalid column kind")

	// ErrEmptyHeader indicates FromRecords received no header.
	ErrEmptyHeader = errors.New("table: empty header")

	// ErrRaggedRecord indicates a record whose width differs from the header.
	ErrRaggedRecord = errors.New("table: ragged record")
)

// UnresolvedVariableError describes a reference that did not resolve to
// exactly one column. Matches lists the columns it matched when ambiguous;
// Suggestions lists near names when it matched nothing.
type UnresolvedVariableError struct {
	Var         Var
	Matches     []string
	Suggestions []string
}

// Error implements error.
func (e *UnresolvedVariableError) Error() string {
	var b strings.Builder
	b.WriteString(e.Unwrap().Error())
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf("%q", e.Var.String()))
	if len(e.Matches) > 0 {
		b.WriteString(" matches ")
		b.WriteString(strings.Join(e.Matches, ", "))
	}
	if len(e.Suggestions) > 0 {
		b.WriteString(" (did you mean ")
		b.WriteString(strings.Join(e.Suggestions, ", "))
		b.WriteString("?)")
	}

	return b.String()
}

// Unwrap exposes the sentinel: ErrAmbiguousVariable when several columns
// matched, ErrUnresolvedVariable otherwise.
func (e *UnresolvedVariableError) Unwrap() error {
	if len(e.Matches) > 1 {
		return ErrAmbiguousVariable
	}

	return ErrUnresolvedVariable
}

// tableErrorf prefixes err with a method name: "<method>: <err>".
func tableErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
