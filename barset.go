// Derived from https://github.com/gonum/plot/blob/v0.16.0/plotter/barchart.go:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package updates

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A BarSet draws one series as vertical bars rising from zero, each with a
// symmetric error bar on top. Unlike plotter.BarChart, bar positions and the
// bar width are both in data units, so bars from several sets can be laid
// side by side at computed X positions.
type BarSet struct {
	// Bars holds the center (X) and height (Y) of each bar.
	Bars plotter.XYs

	// Errors holds the half-length of each bar's error bar, indexed like
	// Bars. Bars past the end of Errors have no error bar.
	Errors []float64

	// Labels are drawn centered above the bars they share an index with.
	// Bars past the end of Labels are unlabeled.
	Labels []string

	// Width is the width of the bars in data units.
	Width float64

	// Color is the fill color of the bars.
	Color color.Color

	// LineStyle is the style of the outline of the bars.
	draw.LineStyle

	// ErrorStyle is the style of the error bars.
	ErrorStyle draw.LineStyle

	// LabelStyle is the style of the label text.
	LabelStyle text.Style
}

var _ plot.Plotter = (*BarSet)(nil)
var _ plot.DataRanger = (*BarSet)(nil)
var _ plot.Thumbnailer = (*BarSet)(nil)
var _ plot.GlyphBoxer = (*BarSet)(nil)

// NewBarSet returns a bar set with one bar per value, positioned by X and
// sized by Y. If bars also implements plotter.YErrorer, the larger of each
// point's low and high errors becomes its symmetric error.
func NewBarSet(bars plotter.XYer, width float64) (*BarSet, error) {
	if width <= 0 {
		return nil, errors.New("updates: bar width was not positive")
	}
	barsCopy, err := plotter.CopyXYs(bars)
	if err != nil {
		return nil, err
	}
	var errs []float64
	if yerrs, ok := bars.(plotter.YErrorer); ok {
		errs = make([]float64, bars.Len())
		for i := range errs {
			lo, hi := yerrs.YError(i)
			errs[i] = math.Max(math.Abs(lo), math.Abs(hi))
		}
	}
	return &BarSet{
		Bars:       barsCopy,
		Errors:     errs,
		Width:      width,
		Color:      color.Black,
		LineStyle:  plotter.DefaultLineStyle,
		ErrorStyle: plotter.DefaultLineStyle,
		LabelStyle: text.Style{
			Color:   color.Black,
			Font:    font.From(plotter.DefaultFont, plotter.DefaultFontSize),
			Handler: plot.DefaultTextHandler,
			XAlign:  text.XCenter,
			YAlign:  text.YBottom,
		},
	}, nil
}

// Plot implements the plot.Plotter interface.
func (b *BarSet) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for i, bar := range b.Bars {
		x := trX(bar.X)
		if !c.ContainsX(x) {
			continue
		}
		xMin := trX(bar.X - b.Width/2)
		xMax := trX(bar.X + b.Width/2)
		yMin := trY(0)
		yMax := trY(bar.Y)

		pts := []vg.Point{
			{X: xMin, Y: yMin},
			{X: xMin, Y: yMax},
			{X: xMax, Y: yMax},
			{X: xMax, Y: yMin},
		}
		c.FillPolygon(b.Color, c.ClipPolygonY(pts))

		pts = append(pts, vg.Point{X: xMin, Y: yMin})
		c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)

		if i < len(b.Errors) {
			e := math.Abs(b.Errors[i])
			low := trY(bar.Y - e)
			high := trY(bar.Y + e)
			c.StrokeLines(b.ErrorStyle, c.ClipLinesY([]vg.Point{{X: x, Y: low}, {X: x, Y: high}})...)
			capHalf := (xMax - xMin) / 4
			c.StrokeLine2(b.ErrorStyle, x-capHalf, low, x+capHalf, low)
			c.StrokeLine2(b.ErrorStyle, x-capHalf, high, x+capHalf, high)
		}

		if i < len(b.Labels) {
			c.FillText(b.LabelStyle, vg.Point{X: x, Y: trY(labelY(bar.Y))}, b.Labels[i])
		}
	}
}

// DataRange implements the plot.DataRanger interface. The range always
// includes zero, where the bars start.
func (b *BarSet) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = 0, 0
	for i, bar := range b.Bars {
		xmin = math.Min(xmin, bar.X-b.Width/2)
		xmax = math.Max(xmax, bar.X+b.Width/2)
		lo, hi := bar.Y, bar.Y
		if i < len(b.Errors) {
			e := math.Abs(b.Errors[i])
			lo -= e
			hi += e
		}
		ymin = math.Min(ymin, lo)
		ymax = math.Max(ymax, hi)
	}
	return xmin, xmax, ymin, ymax
}

// GlyphBoxes implements the plot.GlyphBoxer interface so that the plot
// leaves room for the bar labels.
func (b *BarSet) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	n := min(len(b.Labels), len(b.Bars))
	boxes := make([]plot.GlyphBox, n)
	for i := range boxes {
		bar := b.Bars[i]
		boxes[i].X = plt.X.Norm(bar.X)
		boxes[i].Y = plt.Y.Norm(labelY(bar.Y))
		boxes[i].Rectangle = b.LabelStyle.Rectangle(b.Labels[i])
	}
	return boxes
}

// labelY is where a bar's label sits, just above a bar of height y.
func labelY(y float64) float64 {
	return 1.05 * y
}

// Thumbnail fulfills the plot.Thumbnailer interface.
func (b *BarSet) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	poly := c.ClipPolygonY(pts)
	c.FillPolygon(b.Color, poly)

	pts = append(pts, vg.Point{X: c.Min.X, Y: c.Min.Y})
	outline := c.ClipLinesY(pts)
	c.StrokeLines(b.LineStyle, outline...)
}
