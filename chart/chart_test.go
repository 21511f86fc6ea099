// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"testing"

	"github.com/plotaxis/plotaxis/candle"
	"github.com/plotaxis/plotaxis/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandleChart(t *testing.T) {
	p := &candle.Plot{Points: []candle.OHLC{
		{X: 1, Open: 10, Low: 9, High: 12, Close: 11},
		{X: 2, Open: 11, Low: 8, High: 11.5, Close: 9},
		{X: 3, Open: 9, Low: 9, High: 13, Close: 12.5},
	}}
	c := NewCandle(p, 400, 300)
	c.Frame = color.Gray{128}

	rec := surface.NewRecorder()
	box, err := c.Draw(rec)
	require.NoError(t, err)

	rects := rec.Filter(surface.OpRect)
	require.Len(t, rects, 4, "frame and three bodies")
	assert.Equal(t, c.PlotArea(), rects[0].Box)
	for _, op := range rec.Ops {
		assert.True(t, box.ContainsRect(op.Extent()), "%v %v outside %v", op.Kind, op.Extent(), box)
	}

	x, y, err := c.Layouts(rec)
	require.NoError(t, err)
	assert.Equal(t, 60.0, x.Segment.Start.X)
	assert.Equal(t, 380.0, x.Segment.End.X)
	// Larger y values are higher up.
	assert.Less(t, y.WorldToPixel(12).Y, y.WorldToPixel(9).Y)
	// y labels sit left of the plot area.
	for _, tk := range y.Large {
		if tk.Labeled {
			assert.LessOrEqual(t, tk.LabelBox.Max.X, 60.0)
		}
	}
}

func TestChartGridAndTitles(t *testing.T) {
	p := &candle.Plot{Points: []candle.OHLC{
		{X: 1, Open: 10, Low: 9, High: 12, Close: 11},
		{X: 2, Open: 11, Low: 8, High: 11.5, Close: 9},
	}}
	c := NewCandle(p, 400, 300)
	c.Grid = color.Gray{200}
	c.X.Label = "Date"
	c.X.HideTickText = true
	c.Y.Label = "Price"

	rec := surface.NewRecorder()
	box, err := c.Draw(rec)
	require.NoError(t, err)

	x, y, err := c.Layouts(rec)
	require.NoError(t, err)
	var grid int
	for _, op := range rec.Filter(surface.OpLine) {
		if op.Stroke.Color == c.Grid {
			grid++
			assert.True(t, c.PlotArea().Inset(-0.5).ContainsRect(op.Extent()), "grid line %v leaves the plot area", op.Extent())
		}
	}
	assert.Equal(t, len(x.Large)+len(y.Large), grid)

	var texts []string
	for _, op := range rec.Filter(surface.OpText) {
		texts = append(texts, op.Text)
		assert.True(t, box.ContainsRect(op.Box), "text %q at %v outside %v", op.Text, op.Box, box)
	}
	assert.Contains(t, texts, "Date")
	assert.Contains(t, texts, "Price")
	assert.Empty(t, x.Labels())
	assert.Greater(t, x.TitleBox.Min.Y, c.PlotArea().Max.Y)
	assert.Less(t, y.TitleBox.Max.X, c.PlotArea().Min.X)
}

func TestChartNoArea(t *testing.T) {
	c := Chart{Width: 50, Height: 50, Margins: DefaultMargins}
	_, err := c.Draw(surface.NewRecorder())
	assert.Error(t, err)
}

func TestChartBadFormat(t *testing.T) {
	c := NewCandle(&candle.Plot{}, 400, 300)
	c.Y.NumberFormat = "{0:D}"
	_, err := c.Draw(surface.NewRecorder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "y axis")
}
