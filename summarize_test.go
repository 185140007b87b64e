// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package updates_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/petenewcomb/updates-go"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	chk := require.New(t)

	mean, stddev, err := updates.Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	chk.NoError(err)
	chk.InDelta(5.0, mean, 1e-12)
	chk.InDelta(math.Sqrt(32.0/7.0), stddev, 1e-12)

	mean, stddev, err = updates.Summarize([]float64{3})
	chk.NoError(err)
	chk.Equal(3.0, mean)
	chk.Equal(0.0, stddev)

	_, _, err = updates.Summarize(nil)
	chk.ErrorIs(err, updates.ErrNoSamples)
}

func TestReadSamples(t *testing.T) {
	chk := require.New(t)
	samples, err := updates.ReadSamples(strings.NewReader("# run 1\n1.5 2.5\n\n  3\n"))
	chk.NoError(err)
	chk.Equal([]float64{1.5, 2.5, 3}, samples)

	_, err = updates.ReadSamples(strings.NewReader("1\nfast\n"))
	chk.ErrorIs(err, updates.ErrNotNumeric)
}

func TestSummarizeFiles(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()
	raw := map[string]string{
		"c1.txt":   "9\n11\n",
		"c10.txt":  "20\n",
		"c100.txt": "28 30 32\n",
	}
	for name, content := range raw {
		chk.NoError(os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	s, err := updates.SummarizeFiles(
		filepath.Join(dir, "c1.txt"),
		filepath.Join(dir, "c10.txt"),
		filepath.Join(dir, "c100.txt"),
	)
	chk.NoError(err)
	chk.Equal([]float64{10, 20, 30}, s.Means)
	chk.InDelta(math.Sqrt2, s.StdDevs[0], 1e-12)
	chk.Equal(0.0, s.StdDevs[1])
	chk.InDelta(2.0, s.StdDevs[2], 1e-12)
}

func TestSummarizeFilesEmpty(t *testing.T) {
	chk := require.New(t)
	path := filepath.Join(t.TempDir(), "empty.txt")
	chk.NoError(os.WriteFile(path, []byte("# nothing yet\n"), 0o644))

	_, err := updates.SummarizeFiles(path)
	chk.ErrorIs(err, updates.ErrNoSamples)
	chk.Contains(err.Error(), "empty.txt")
}
