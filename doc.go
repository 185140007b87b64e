// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package updates renders the "Time to Process Updates" comparison chart. It
// reads per-chunk-size timing statistics, one "<mean> <stddev>" pair per line,
// for each of three configurations and draws them as grouped bars with
// symmetric error bars, one group per chunk size and one bar per
// configuration.
//
// The statistics files themselves can be produced from raw timing samples
// with Summarize and WriteSeries.
package updates

//go:generate go run ./internal/cmd/updatechart
