// SPDX-License-Identifier: MIT
// Package match: option validation and strategy dispatch.

package match

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/stimset/progress"
	"github.com/katalvlaran/stimset/seeded"
	"github.com/katalvlaran/stimset/split"
	"github.com/katalvlaran/stimset/table"
)

// Generate builds matched tuples across cells under controls.
//
// rng seeds candidate order and Random null draws through its own derived
// stream; it may be nil only when Shuffle is false and Null is not Random.
// Reporter panics are recovered.
//
// Cancellation of ctx stops the run between attempts; the partial Result is
// returned together with ctx.Err().
//
// Errors: ErrNoCells, ErrBadCount, ErrNullMode, ErrUnknownCondition,
// ErrStrategy, ErrNeedRand, ErrToleranceKind, and resolution errors from
// package table.
func Generate(
	ctx context.Context,
	t *table.Table,
	cells []split.Cell,
	controls []Control,
	rng *rand.Rand,
	opts Options,
) (*Result, error) {
	null, err := validate(cells, rng, opts)
	if err != nil {
		return nil, err
	}
	cons, err := compile(t, controls)
	if err != nil {
		return nil, err
	}

	views := make([]table.View, len(cells))
	for i, c := range cells {
		views[i] = c.Rows
	}
	cands := candidates(t, cons, views)

	var gen *rand.Rand
	if rng != nil {
		gen = seeded.Derive(rng, seeded.GenerateStream)
	}
	if opts.Shuffle {
		for _, cs := range cands {
			shuffle(cs, gen)
		}
	}

	rep := progress.Safe(opts.Reporter)
	total := opts.N
	if total == All {
		total = progress.Unknown
	}
	rep.Report(progress.Event{Stage: progress.Started, Total: total})

	var res *Result
	switch opts.Strategy {
	case StrategyMaxMatching:
		res, err = maxMatching(ctx, t, cons, cands, null, opts.N)
		if res != nil {
			for i := range res.Tuples {
				rep.Report(progress.Event{Stage: progress.Advanced, Done: i + 1, Total: total})
			}
		}
	default:
		g := &greedy{
			t: t, cons: cons, cands: cands,
			mode: opts.Null, fixed: null, rng: gen,
			used: make([]bool, t.Len()),
			onTuple: func(n int) {
				rep.Report(progress.Event{Stage: progress.Advanced, Done: n, Total: total})
			},
		}
		res, err = g.run(ctx, opts.N)
	}
	if err != nil {
		rep.Report(progress.Event{Stage: progress.Note, Msg: "Generation stopped: " + err.Error()})
		return res, err
	}
	rep.Report(progress.Event{Stage: progress.Finished, Done: res.Achieved, Total: total})
	return res, nil
}

// validate checks opts against cells and returns the fixed null cell index
// (-1 when the null is not fixed).
func validate(cells []split.Cell, rng *rand.Rand, opts Options) (int, error) {
	if len(cells) == 0 {
		return 0, ErrNoCells
	}
	if opts.N == 0 || opts.N < All {
		return 0, fmt.Errorf("%w: %d", ErrBadCount, opts.N)
	}
	if rng == nil && (opts.Shuffle || opts.Null == Random) {
		return 0, ErrNeedRand
	}

	null := -1
	switch opts.Null {
	case Inclusive, Balanced, Random:
	case First:
		null = 0
	case Condition:
		for i, c := range cells {
			if c.Label == opts.NullCondition {
				null = i
				break
			}
		}
		if null < 0 {
			return 0, fmt.Errorf("%w: %q", ErrUnknownCondition, opts.NullCondition)
		}
	default:
		return 0, fmt.Errorf("%w: %d", ErrNullMode, opts.Null)
	}

	switch opts.Strategy {
	case StrategyGreedy:
	case StrategyMaxMatching:
		if len(cells) != 2 {
			return 0, fmt.Errorf("%w: %s needs exactly two cells, got %d", ErrStrategy, opts.Strategy, len(cells))
		}
		if opts.Null != Inclusive && null != 0 {
			return 0, fmt.Errorf("%w: %s needs the first cell or no cell as null", ErrStrategy, opts.Strategy)
		}
	default:
		return 0, fmt.Errorf("%w: %d", ErrStrategy, opts.Strategy)
	}
	return null, nil
}

// shuffle permutes rows in place with r.
func shuffle(rows []int, r *rand.Rand) {
	perm := seeded.Perm(len(rows), r)
	tmp := append([]int(nil), rows...)
	for i, p := range perm {
		rows[i] = tmp[p]
	}
}
