// SPDX-License-Identifier: MIT

// Command stimset generates matched stimulus sets from a CSV item table and a
// YAML design.
//
//	stimset generate --items words.csv --design design.yaml --out stimuli.csv
//	stimset inspect --design design.yaml
//
// Warnings and notices go to stderr; --progress draws a progress bar there.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "stimset",
		Short: "Matched stimulus-set generator",
		Long: `stimset filters an item table, splits it into conditions and builds
tuples of items, one per condition, matched on control variables within
declared tolerances.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newGenerateCmd(), newInspectCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
