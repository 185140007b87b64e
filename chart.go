// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package updates

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	DefaultDir    = "charts"
	DefaultOutput = "updates.png"
)

// Chart describes a grouped bar chart: one group of bars per entry in
// GroupLabels, one bar per series within each group.
type Chart struct {
	Title        string
	XAxisLabel   string
	YAxisLabel   string
	GroupLabels  []string
	SeriesFiles  []string
	SeriesLabels []string
	SeriesColors []color.Color

	// BarWidth is in data units. Groups are one unit apart.
	BarWidth float64

	// Autolabel draws each bar's truncated integer height above it.
	Autolabel bool

	Width  vg.Length
	Height vg.Length
}

// DefaultChart returns the update processing time chart. Series are loaded
// from SeriesFiles and labeled by position: the first file's bars carry the
// first label, and so on.
func DefaultChart() *Chart {
	return &Chart{
		Title:       "Time to Process Updates",
		XAxisLabel:  "Chunk Size",
		YAxisLabel:  "Time (seconds)",
		GroupLabels: []string{"1", "10", "100"},
		SeriesFiles: []string{
			"updates_spark.txt",
			"updates_tdb.txt",
			"updates_10.txt",
		},
		// These labels do not line up with the file names above. They are
		// kept as the published chart shows them until the intended mapping
		// is confirmed.
		SeriesLabels: []string{"TDB", "Non-incremental", "Update 10"},
		SeriesColors: []color.Color{
			color.RGBA{R: 0x3c, G: 0x78, B: 0xd8, A: 0xff},
			color.RGBA{R: 0x6a, G: 0xa8, B: 0x4f, A: 0xff},
			color.RGBA{R: 0xe6, G: 0x91, B: 0x38, A: 0xff},
		},
		BarWidth: 0.2,
		Width:    8 * vg.Inch,
		Height:   6 * vg.Inch,
	}
}

// Groups returns the number of bar groups.
func (c *Chart) Groups() int {
	return len(c.GroupLabels)
}

// BarX returns the center of the given series' bar within the given group.
func (c *Chart) BarX(group, series int) float64 {
	return float64(group) + float64(series)*c.BarWidth
}

// TickX returns the center of the given group.
func (c *Chart) TickX(group int) float64 {
	return c.BarX(group, 0) + c.BarWidth*float64(len(c.SeriesLabels)-1)/2
}

// XRange returns the horizontal extent of the chart, leaving a margin of
// one bar width before the first group and after the last.
func (c *Chart) XRange() (lo, hi float64) {
	return -c.BarWidth, float64(c.Groups()-1) + float64(len(c.SeriesLabels)+1)*c.BarWidth
}

// seriesPoints carries a series' bar positions and heights together with its
// error bars, the way NewBarSet expects them.
type seriesPoints struct {
	plotter.XYs
	plotter.YErrors
}

var _ plotter.YErrorer = seriesPoints{}

// Build lays out series as grouped bars on a new plot. series must be in the
// same order as SeriesLabels and each must have exactly Groups points.
func (c *Chart) Build(series []Series) (*plot.Plot, []*BarSet, error) {
	if len(series) != len(c.SeriesLabels) || len(c.SeriesColors) < len(series) {
		return nil, nil, fmt.Errorf("%w: got %d series for %d labels and %d colors",
			ErrSeriesCount, len(series), len(c.SeriesLabels), len(c.SeriesColors))
	}
	n := c.Groups()
	for i, s := range series {
		if s.Len() != n || len(s.StdDevs) != n {
			return nil, nil, fmt.Errorf("%w: series %q has %d means and %d deviations for %d groups",
				ErrSeriesLength, c.SeriesLabels[i], s.Len(), len(s.StdDevs), n)
		}
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XAxisLabel
	p.Y.Label.Text = c.YAxisLabel
	p.Legend.Top = true

	sets := make([]*BarSet, len(series))
	for i, s := range series {
		points := seriesPoints{
			XYs:     make(plotter.XYs, n),
			YErrors: make(plotter.YErrors, n),
		}
		for g := 0; g < n; g++ {
			points.XYs[g].X = c.BarX(g, i)
			points.XYs[g].Y = s.Means[g]
			points.YErrors[g].Low = s.StdDevs[g]
			points.YErrors[g].High = s.StdDevs[g]
		}
		bs, err := NewBarSet(points, c.BarWidth)
		if err != nil {
			return nil, nil, err
		}
		bs.Color = c.SeriesColors[i]
		if c.Autolabel {
			bs.Labels = make([]string, n)
			for g := range bs.Labels {
				bs.Labels[g] = fmt.Sprintf("%d", int(s.Means[g]))
			}
		}
		p.Add(bs)
		p.Legend.Add(c.SeriesLabels[i], bs)
		sets[i] = bs
	}

	xTicks := make([]plot.Tick, n)
	for g := range xTicks {
		xTicks[g] = plot.Tick{Value: c.TickX(g), Label: c.GroupLabels[g]}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)

	// Plot.Add widens the axes to fit the data, so the fixed range goes last.
	p.X.Min, p.X.Max = c.XRange()

	return p, sets, nil
}

// Save renders series to the named file. The file extension selects the
// image format.
func (c *Chart) Save(series []Series, path string) error {
	p, _, err := c.Build(series)
	if err != nil {
		return err
	}
	return p.Save(c.Width, c.Height, path)
}

// Encode renders series to w in the given image format ("png", "svg", ...).
func (c *Chart) Encode(w io.Writer, series []Series, format string) error {
	p, _, err := c.Build(series)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(c.Width, c.Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// LoadAll reads every file in SeriesFiles from dir, in order.
func (c *Chart) LoadAll(dir string) ([]Series, error) {
	series := make([]Series, len(c.SeriesFiles))
	for i, name := range c.SeriesFiles {
		s, err := LoadSeries(dir, name)
		if err != nil {
			return nil, err
		}
		series[i] = s
	}
	return series, nil
}

// Render loads all series from dir and saves the chart as dir/out. Nothing
// is written unless every series loads.
func (c *Chart) Render(dir, out string) error {
	startTime := time.Now()
	series, err := c.LoadAll(dir)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, out)
	if err := c.Save(series, path); err != nil {
		return err
	}
	zap.L().Info("Chart saved",
		zap.String("file", path),
		zap.Int("series", len(series)),
		zap.Duration("duration", time.Since(startTime)))
	return nil
}
