// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package updates

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Series holds the timing statistics of one configuration, one point per
// chunk size. Means and StdDevs are parallel and kept in file order, which
// determines where each bar is drawn.
type Series struct {
	Means   []float64
	StdDevs []float64
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.Means)
}

// Append adds a point to the end of the series.
func (s *Series) Append(mean, stddev float64) {
	s.Means = append(s.Means, mean)
	s.StdDevs = append(s.StdDevs, stddev)
}

// ReadSeries parses "<mean> <stddev>" lines from r. Fields are separated by
// any amount of whitespace and fields past the second are ignored. A line
// with fewer than two fields or with a field that does not parse as a float
// fails the whole read with a *ParseError.
func ReadSeries(r io.Reader) (Series, error) {
	return readSeries(r, "")
}

// LoadSeries reads the series stored in the named file under dir.
func LoadSeries(dir, name string) (Series, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return Series{}, err
	}
	defer f.Close()

	s, err := readSeries(f, path)
	if err != nil {
		return Series{}, err
	}
	zap.L().Debug("Loaded series",
		zap.String("file", path),
		zap.Int("points", s.Len()))
	return s, nil
}

func readSeries(r io.Reader, file string) (Series, error) {
	var s Series
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			return Series{}, &ParseError{File: file, Line: lineNum, Err: ErrMissingField}
		}
		mean, err := parseField(fields[0])
		if err != nil {
			return Series{}, &ParseError{File: file, Line: lineNum, Err: err}
		}
		stddev, err := parseField(fields[1])
		if err != nil {
			return Series{}, &ParseError{File: file, Line: lineNum, Err: err}
		}
		s.Append(mean, stddev)
	}
	if err := sc.Err(); err != nil {
		return Series{}, err
	}
	return s, nil
}

func parseField(field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, field)
	}
	return v, nil
}

// WriteSeries writes s to w in the format read by ReadSeries. Values are
// written with the shortest representation that parses back exactly.
func WriteSeries(w io.Writer, s Series) error {
	bw := bufio.NewWriter(w)
	for i := range s.Means {
		if _, err := fmt.Fprintf(bw, "%s %s\n",
			strconv.FormatFloat(s.Means[i], 'g', -1, 64),
			strconv.FormatFloat(s.StdDevs[i], 'g', -1, 64),
		); err != nil {
			return err
		}
	}
	return bw.Flush()
}
