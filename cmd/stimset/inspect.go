// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/stimset/match"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Parse a design and print it in canonical notation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := loadRequest(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, f := range req.Filters {
				fmt.Fprintln(out, "filter:  ", f)
			}
			for _, s := range req.Splits {
				fmt.Fprintln(out, "split:   ", s)
			}
			for _, c := range req.Controls {
				fmt.Fprintln(out, "control: ", c)
			}
			n := "all"
			if req.N != match.All {
				n = fmt.Sprint(req.N)
			}
			null := req.Null.String()
			if req.Null == match.Condition {
				null = req.NullCondition
			}
			fmt.Fprintf(out, "n: %s, format: %s, include: %s, match_null: %s, strategy: %s\n",
				n, req.Format, req.Include, null, req.Strategy)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "design", "", "YAML design (required)")
	_ = cmd.MarkFlagRequired("design")
	return cmd
}
