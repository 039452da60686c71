// SPDX-License-Identifier: MIT
// Package design: sentinel errors and warnings.

package design

import "errors"

var (
	// ErrBadRequest indicates a malformed YAML design.
	ErrBadRequest = errors.New("design: bad request")

	// ErrNilTable indicates Run without a table.
	ErrNilTable = errors.New("design: nil table")
)

// WarningKind classifies a Warning.
type WarningKind uint8

// ConfigurationWarning flags a design that is incomplete but still runs.
const ConfigurationWarning WarningKind = iota + 1

// String returns "configuration" or "unknown".
func (k WarningKind) String() string {
	if k == ConfigurationWarning {
		return "configuration"
	}
	return "unknown"
}

// Warning is a non-fatal diagnostic attached to a Result.
type Warning struct {
	Kind WarningKind
	Msg  string
}

// String renders w as "<kind> warning: <msg>".
func (w Warning) String() string { return w.Kind.String() + " warning: " + w.Msg }
