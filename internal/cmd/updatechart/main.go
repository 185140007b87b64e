// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Command updatechart renders charts/updates.png from the update timing
// statistics in charts/updates_spark.txt, charts/updates_tdb.txt and
// charts/updates_10.txt.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Errors from flag parsing arrive before the logger is set up.
		if logger == nil {
			fmt.Fprintf(os.Stderr, "updatechart: %v\n", err)
			os.Exit(1)
		}
		logger.Fatal("updatechart failed", zap.Error(err))
	}
	if logger != nil {
		_ = logger.Sync()
	}
}
