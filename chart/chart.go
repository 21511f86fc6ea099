// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart composes a plot area, an x axis along its bottom, a y
// axis along its left edge and an optional candlestick plot.
package chart

import (
	"fmt"
	"image/color"

	"github.com/plotaxis/plotaxis/axis"
	"github.com/plotaxis/plotaxis/candle"
	"github.com/plotaxis/plotaxis/surface"
)

// Margins separate the plot area from the edges of the surface.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// DefaultMargins leave room for y labels on the left and x labels
// below.
var DefaultMargins = Margins{Left: 60, Right: 20, Top: 20, Bottom: 40}

// Chart is a two-axis chart.
type Chart struct {
	Width, Height float64
	Margins       Margins

	// X and Y configure the axes. The y axis runs bottom to top
	// with its labels on the left; Y.FlipSide moves them inside the
	// plot area.
	X, Y axis.Spec

	// Frame, if non-nil, strokes the plot area outline.
	Frame color.Color

	// Grid, if non-nil, strokes a line across the plot area at each
	// large tick of both axes.
	Grid color.Color

	Candles *candle.Plot
}

// NewCandle returns a width by height chart of p whose axes span the
// ranges p suggests.
func NewCandle(p *candle.Plot, width, height float64) Chart {
	xmin, xmax := p.SuggestX()
	ymin, ymax := p.SuggestY()
	return Chart{
		Width:   width,
		Height:  height,
		Margins: DefaultMargins,
		X:       axis.New(xmin, xmax),
		Y:       axis.New(ymin, ymax),
		Candles: p,
	}
}

// PlotArea returns the rectangle inside the margins.
func (c Chart) PlotArea() surface.Rect {
	m := c.Margins
	return surface.Rect{
		Min: surface.Pt(m.Left, m.Top),
		Max: surface.Pt(c.Width-m.Right, c.Height-m.Bottom),
	}
}

// Layouts computes the x and y axes.
func (c Chart) Layouts(m surface.TextMeasurer) (x, y *axis.Layout, err error) {
	area := c.PlotArea()
	if area.Empty() {
		return nil, nil, fmt.Errorf("chart: margins leave no plot area in %vx%v", c.Width, c.Height)
	}
	x, err = axis.Compute(c.X, axis.Segment{
		Start: surface.Pt(area.Min.X, area.Max.Y),
		End:   area.Max,
	}, m)
	if err != nil {
		return nil, nil, fmt.Errorf("x axis: %w", err)
	}
	ySpec := c.Y
	ySpec.FlipSide = !ySpec.FlipSide
	y, err = axis.Compute(ySpec, axis.Segment{
		Start: surface.Pt(area.Min.X, area.Max.Y),
		End:   area.Min,
	}, m)
	if err != nil {
		return nil, nil, fmt.Errorf("y axis: %w", err)
	}
	return x, y, nil
}

// Draw draws the chart onto s: the frame, the grid, the candles and
// then both axes. It returns the region drawn.
func (c Chart) Draw(s surface.Surface) (surface.Rect, error) {
	x, y, err := c.Layouts(s)
	if err != nil {
		return surface.EmptyRect(), err
	}
	area := c.PlotArea()
	bounds := area
	if c.Frame != nil {
		s.Rect(area, nil, surface.LineStyle{Color: c.Frame, Width: 1})
		bounds = area.Inset(-0.5)
	}
	if c.Grid != nil {
		pen := surface.LineStyle{Color: c.Grid, Width: 1}
		for _, t := range x.Large {
			s.Line(surface.Pt(t.Pixel.X, area.Min.Y), surface.Pt(t.Pixel.X, area.Max.Y), pen)
		}
		for _, t := range y.Large {
			s.Line(surface.Pt(area.Min.X, t.Pixel.Y), surface.Pt(area.Max.X, t.Pixel.Y), pen)
		}
		bounds = area.Inset(-0.5)
	}
	if c.Candles != nil {
		if err := c.Candles.Draw(s, x, y); err != nil {
			return surface.EmptyRect(), err
		}
	}
	x.Paint(s)
	y.Paint(s)
	return bounds.Union(x.Bounds).Union(y.Bounds), nil
}
