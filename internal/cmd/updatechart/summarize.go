// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"os"

	"github.com/petenewcomb/updates-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSummarizeCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "summarize SAMPLES...",
		Short: "Write a statistics file from raw timing samples",
		Long: `summarize reads raw timing samples, one file per chunk size, and writes
one "<mean> <stddev>" line per file, in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := updates.SummarizeFiles(args...)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return updates.WriteSeries(cmd.OutOrStdout(), s)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := updates.WriteSeries(f, s); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			zap.L().Info("Statistics written",
				zap.String("file", out),
				zap.Int("points", s.Len()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "statistics file to write (default stdout)")
	return cmd
}
