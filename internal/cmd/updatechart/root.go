// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"github.com/petenewcomb/updates-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	dir       string
	out       string
	autolabel bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "updatechart",
		Short: "Render the update processing time chart",
		Long: `updatechart reads the mean and standard deviation of update processing
times for each chunk size from three statistics files and draws them as a
grouped bar chart with error bars.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c := updates.DefaultChart()
			c.Autolabel = opts.autolabel
			return c.Render(opts.dir, opts.out)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&opts.dir, "dir", updates.DefaultDir, "directory holding the statistics files and the chart")
	cmd.Flags().StringVar(&opts.out, "out", updates.DefaultOutput, "chart file name; the extension selects the image format")
	cmd.Flags().BoolVar(&opts.autolabel, "autolabel", false, "print each bar's height above it")

	cmd.AddCommand(newSummarizeCmd())
	return cmd
}

// logger is installed as the global zap logger once the command line has
// been parsed. It is nil until then.
var logger *zap.Logger

func setupLogger(verbose bool) error {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	if logger != nil {
		_ = logger.Sync()
	}
	logger = l
	zap.ReplaceGlobals(logger)
	return nil
}
