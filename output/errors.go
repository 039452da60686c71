// SPDX-License-Identifier: MIT
// Package output: sentinel errors.

package output

import "errors"

var (
	// ErrUnknownFormat indicates an unrecognized format name.
	ErrUnknownFormat = errors.New("output: unknown format")

	// ErrUnknownInclude indicates an unrecognized include mode name.
	ErrUnknownInclude = errors.New("output: unknown include mode")

	// ErrTupleArity indicates a tuple whose size differs from the cell count.
	ErrTupleArity = errors.New("output: tuple size does not match cells")
)
