// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/stimset/design"
	"github.com/katalvlaran/stimset/match"
	"github.com/katalvlaran/stimset/output"
	"github.com/katalvlaran/stimset/progress"
	"github.com/katalvlaran/stimset/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type generateFlags struct {
	items, design, out, summary string
	format, include, n          string
	seed                        int64
	progress, verbose           bool
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate matched tuples and write them as CSV",
		Long: `Generate reads the item table (--items) and the design (--design), runs
filters, splits and matched generation, and writes the result as CSV.

Example:
  stimset generate --items words.csv --design design.yaml --out stimuli.csv
  stimset generate --items words.csv --design design.yaml --n 20 --seed 42 --format wide`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.items, "items", "", "CSV item table (required)")
	fl.StringVar(&f.design, "design", "", "YAML design; empty returns the item table")
	fl.StringVarP(&f.out, "out", "o", "-", "output CSV, - for stdout")
	fl.StringVar(&f.summary, "summary", "", "write per-condition control statistics as CSV")
	fl.StringVar(&f.format, "format", "", "override format: wide or long")
	fl.StringVar(&f.include, "include", "", "override include: all, used or id")
	fl.StringVar(&f.n, "n", "", "override the tuple count: a positive integer or all")
	fl.Int64Var(&f.seed, "seed", 0, "override the random seed")
	fl.BoolVar(&f.progress, "progress", false, "draw a progress bar on stderr")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging on stderr")
	_ = cmd.MarkFlagRequired("items")
	return cmd
}

func runGenerate(cmd *cobra.Command, f generateFlags) error {
	req, err := loadRequest(f.design)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		req.Seed = &f.seed
	}
	if f.n != "" {
		if req.N, err = parseCount(f.n); err != nil {
			return err
		}
	}
	if f.format != "" {
		if req.Format, err = output.ParseFormat(f.format); err != nil {
			return err
		}
	}
	if f.include != "" {
		if req.Include, err = output.ParseInclude(f.include); err != nil {
			return err
		}
	}

	tb, err := readTable(f.items, req.Table.Options()...)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if f.verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
	}
	opts := []design.Option{design.WithLogger(logger)}
	if f.progress {
		opts = append(opts, design.WithReporter(progress.NewBar(cmd.ErrOrStderr(), progress.DefaultWidth, "")))
	}

	res, err := design.Run(cmd.Context(), tb, req, opts...)
	if err != nil {
		return err
	}
	stderr := cmd.ErrOrStderr()
	for _, w := range res.Warnings {
		fmt.Fprintln(stderr, w)
	}
	for _, m := range res.Messages {
		fmt.Fprintln(stderr, m)
	}
	fmt.Fprintf(stderr, "seed %d, run %s\n", res.Seed, res.RunID)

	if err = writeFrame(f.out, cmd.OutOrStdout(), res.Frame); err != nil {
		return err
	}
	if f.summary != "" && res.Summary != nil {
		return writeFrame(f.summary, cmd.OutOrStdout(), res.Summary.Frame())
	}
	return nil
}

func loadRequest(path string) (design.Request, error) {
	if path == "" {
		return design.NewRequest(), nil
	}
	return design.ReadRequest(path)
}

func parseCount(s string) (int, error) {
	if s == "all" {
		return match.All, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("--n: want a positive integer or all, got %q", s)
	}
	return n, nil
}

func readTable(path string, opts ...table.Option) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", path, table.ErrEmptyHeader)
	}
	return table.FromRecords(rows[0], rows[1:], opts...)
}

func writeFrame(path string, stdout io.Writer, f *output.Frame) error {
	if path == "-" {
		return f.WriteCSV(stdout)
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = f.WriteCSV(out); err != nil {
		return errors.Join(err, out.Close())
	}
	return out.Close()
}
