// SPDX-License-Identifier: MIT
// Package split: sentinel errors.

package split

import "errors"

var (
	// ErrNoLevels indicates a level split without levels.
	ErrNoLevels = errors.New("split: no levels")

	// ErrLevelCount indicates a random split with fewer than two groups.
	ErrLevelCount = errors.New("split: random split needs at least two levels")

	// ErrNeedRand indicates a random split without a generator.
	ErrNeedRand = errors.New("split: rng is required")

	// ErrSelectorKind indicates a numeric range on a categorical column.
	ErrSelectorKind = errors.New("split: selector does not fit column kind")
)
