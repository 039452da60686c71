// SPDX-License-Identifier: MIT
// Package design: the pipeline.

package design

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/stimset/describe"
	"github.com/katalvlaran/stimset/filter"
	"github.com/katalvlaran/stimset/match"
	"github.com/katalvlaran/stimset/output"
	"github.com/katalvlaran/stimset/progress"
	"github.com/katalvlaran/stimset/seeded"
	"github.com/katalvlaran/stimset/split"
	"github.com/katalvlaran/stimset/table"
	"go.uber.org/zap"
)

// Result is the outcome of one Run.
//   - View: rows surviving the filters.
//   - Split: nil when no split ran.
//   - Frame: the output table in the requested format.
//   - Summary: per-condition control statistics, when tuples were built.
//   - Requested/Achieved/Exhausted: generation counts; Exhausted means no
//     further tuple could be built.
type Result struct {
	RunID string
	Seed  int64

	View   table.View
	Split  *split.Result
	Tuples []match.Tuple
	Frame  *output.Frame

	Summary  describe.Summary
	Warnings []Warning
	Messages []string

	Generated bool
	Requested int
	Achieved  int
	Exhausted bool
}

// Run executes req on t.
//
// Steps:
//  1. Draw the seed (req.Seed or a fresh one) and the run id. The split and
//     generation stages draw from independent streams of that seed.
//  2. Filter every row.
//  3. Without splits and controls, or with controls only, return the
//     filtered table. IncludeUsed then keeps the identifier plus the filter
//     variables, so the caller can see why each row survived.
//  4. Split. Without controls (and without AllowUncontrolled) return the
//     split-annotated table.
//  5. Generate, validate, format and summarize the tuples.
//
// Errors: ErrNilTable, and any error from the stages, wrapped as
// "design: Run: ...". Cancellation of ctx during generation returns
// ctx.Err().
func Run(ctx context.Context, t *table.Table, req Request, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, fmt.Errorf("design: Run: %w", ErrNilTable)
	}
	cfg := newRunConfig(opts...)
	rep := progress.Safe(cfg.reporter)

	res := &Result{RunID: uuid.NewString(), Requested: req.N}
	if req.Seed != nil {
		res.Seed = *req.Seed
	} else {
		res.Seed = seeded.Entropy()
	}
	log := cfg.logger.With(zap.String("run_id", res.RunID), zap.Int64("seed", res.Seed))

	view, err := filter.Apply(t, t.All(), req.Filters)
	if err != nil {
		return nil, fmt.Errorf("design: Run: %w", err)
	}
	res.View = view
	log.Debug("filtered", zap.Int("rows", t.Len()), zap.Int("kept", len(view)), zap.Int("filters", len(req.Filters)))

	fmtCfg := output.Config{Format: req.Format, Include: req.Include, Used: req.Used()}
	if len(req.Splits) == 0 {
		if len(req.Controls) == 0 {
			res.note(rep, "No splits or controls configured: returning the filtered table.")
		} else {
			res.warn(log, rep, "controls without splits have no conditions to match across; returning the filtered table")
		}
		if res.Frame, err = output.View(t, view, nil, fmtCfg); err != nil {
			return nil, fmt.Errorf("design: Run: %w", err)
		}
		return res, nil
	}

	if res.Split, err = split.Apply(t, view, req.Splits, seeded.Stream(res.Seed, seeded.SplitStream)); err != nil {
		return nil, fmt.Errorf("design: Run: %w", err)
	}
	log.Debug("split", zap.Strings("cells", res.Split.Labels()), zap.Ints("sizes", res.Split.Sizes()))

	if len(req.Controls) == 0 && !req.AllowUncontrolled {
		res.warn(log, rep, "splits without controls: returning the split-annotated table without generating tuples")
		if res.Frame, err = output.View(t, view, res.Split.Label, fmtCfg); err != nil {
			return nil, fmt.Errorf("design: Run: %w", err)
		}
		return res, nil
	}

	mopts := req.matchOptions()
	mopts.Reporter = rep
	gen, err := match.Generate(ctx, t, res.Split.Cells, req.Controls, seeded.Stream(res.Seed, seeded.GenerateStream), mopts)
	if err != nil {
		return nil, fmt.Errorf("design: Run: %w", err)
	}
	if err = match.Validate(t, res.Split.Cells, req.Controls, gen); err != nil {
		return nil, fmt.Errorf("design: Run: %w", err)
	}
	res.Generated = true
	res.Tuples, res.Achieved, res.Exhausted = gen.Tuples, gen.Achieved, gen.Exhausted

	labels := res.Split.Labels()
	if res.Frame, err = output.Tuples(t, labels, gen.Tuples, fmtCfg); err != nil {
		return nil, fmt.Errorf("design: Run: %w", err)
	}
	if res.Summary, err = describe.Tuples(t, labels, gen.Tuples, req.ControlVars()); err != nil {
		return nil, fmt.Errorf("design: Run: %w", err)
	}

	switch {
	case gen.Short():
		res.note(rep, fmt.Sprintf("Only %d of %d requested tuples could be generated.", gen.Achieved, gen.Requested))
	case gen.Achieved == 0:
		res.note(rep, "No tuples could be generated: no item combination satisfies the controls.")
	}
	log.Info("generated",
		zap.Int("achieved", gen.Achieved),
		zap.Int("requested", gen.Requested),
		zap.Bool("exhausted", gen.Exhausted),
		zap.Stringer("strategy", req.Strategy),
		zap.Stringer("match_null", req.Null),
	)
	return res, nil
}

func (r *Result) note(rep progress.Reporter, msg string) {
	r.Messages = append(r.Messages, msg)
	rep.Report(progress.Event{Stage: progress.Note, Msg: msg})
}

func (r *Result) warn(log *zap.Logger, rep progress.Reporter, msg string) {
	w := Warning{Kind: ConfigurationWarning, Msg: msg}
	r.Warnings = append(r.Warnings, w)
	log.Warn(msg)
	rep.Report(progress.Event{Stage: progress.Note, Msg: w.String()})
}
