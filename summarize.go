// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package updates

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// ReadSamples parses raw timing samples from r. Every whitespace-separated
// field is one sample. Blank lines and lines starting with '#' are skipped.
func ReadSamples(r io.Reader) ([]float64, error) {
	return readSamples(r, "")
}

// LoadSamples reads raw timing samples from the named file.
func LoadSamples(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readSamples(f, path)
}

func readSamples(r io.Reader, file string) ([]float64, error) {
	var samples []float64
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, field := range strings.Fields(line) {
			v, err := parseField(field)
			if err != nil {
				return nil, &ParseError{File: file, Line: lineNum, Err: err}
			}
			samples = append(samples, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

// Summarize reduces raw samples to their mean and sample standard deviation.
// A single sample has a standard deviation of zero.
func Summarize(samples []float64) (mean, stddev float64, err error) {
	switch len(samples) {
	case 0:
		return 0, 0, ErrNoSamples
	case 1:
		return samples[0], 0, nil
	}
	mean, stddev = stat.MeanStdDev(samples, nil)
	return mean, stddev, nil
}

// SummarizeFiles builds a series with one point per sample file, in argument
// order.
func SummarizeFiles(paths ...string) (Series, error) {
	var s Series
	for _, path := range paths {
		samples, err := LoadSamples(path)
		if err != nil {
			return Series{}, err
		}
		mean, stddev, err := Summarize(samples)
		if err != nil {
			return Series{}, fmt.Errorf("%s: %w", path, err)
		}
		zap.L().Debug("Summarized samples",
			zap.String("file", path),
			zap.Int("samples", len(samples)),
			zap.Float64("mean", mean),
			zap.Float64("stddev", stddev))
		s.Append(mean, stddev)
	}
	return s, nil
}
