// SPDX-License-Identifier: MIT
// Package match: sentinel errors.

package match

import "errors"

var (
	// ErrNoCells indicates generation without condition cells.
	ErrNoCells = errors.New("match: no condition cells")

	// ErrBadCount indicates a requested tuple count that is neither positive
	// nor All.
	ErrBadCount = errors.New("match: count must be positive or All")

	// ErrToleranceKind indicates a numeric tolerance on a categorical control.
	ErrToleranceKind = errors.New("match: tolerance on categorical control")

	// ErrUnknownCondition indicates a Condition null naming no cell.
	ErrUnknownCondition = errors.New("match: unknown null condition")

	// ErrNullMode indicates an unknown NullMode.
	ErrNullMode = errors.New("match: unknown null mode")

	// ErrStrategy indicates a strategy that cannot serve the configuration.
	ErrStrategy = errors.New("match: strategy not applicable")

	// ErrNeedRand indicates a shuffled or random-null run without a generator.
	ErrNeedRand = errors.New("match: rng is required")

	// ErrInvalidTuple is returned by Validate for a tuple breaking a
	// constraint, reusing an item, or holding an item outside its cell.
	ErrInvalidTuple = errors.New("match: invalid tuple")
)
