// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package candle draws open/low/high/close data as candlesticks
// against a pair of axes.
package candle

import (
	"errors"
	"image/color"
	"math"

	"github.com/plotaxis/plotaxis/axis"
	"github.com/plotaxis/plotaxis/scale"
	"github.com/plotaxis/plotaxis/surface"
)

// OHLC is one period of price data.
type OHLC struct {
	X                      float64
	Open, Low, High, Close float64
}

// Valid reports whether none of p's prices is NaN.
func (p OHLC) Valid() bool {
	return !math.IsNaN(p.Open) && !math.IsNaN(p.Low) && !math.IsNaN(p.High) && !math.IsNaN(p.Close)
}

// Style selects how candles are drawn.
type Style int

const (
	// Filled draws a wick from low to high and a box from open to
	// close, filled with the bullish or bearish color.
	Filled Style = iota

	// Stick draws the wick with a tick to the left at the open and
	// a tick to the right at the close.
	Stick
)

// AutoStickWidth sizes candles from the spacing of the data.
const AutoStickWidth = 0

// Plot is a candlestick plot.
type Plot struct {
	Points []OHLC
	Style  Style

	// Color strokes wicks and box outlines. Nil means black.
	Color color.Color

	// BullishColor fills boxes that close above their open and
	// BearishColor those that close below. Nil means white and
	// black respectively.
	BullishColor, BearishColor color.Color

	// StickWidth is the candle width in pixels, or AutoStickWidth.
	StickWidth float64

	// Centered shifts candles right by half the spacing between
	// points, so each candle sits between its X and the next.
	Centered bool
}

// ErrStickWidth is returned when a Plot has a negative StickWidth.
var ErrStickWidth = errors.New("candle: negative stick width")

// SuggestX returns an x range covering every point, padded on both
// sides by half the spacing of the first points.
func (p *Plot) SuggestX() (min, max float64) {
	xs := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		xs[i] = pt.X
	}
	min, max = scale.MinMax(xs)
	step := 0.0
	if len(xs) > 1 {
		step = math.Abs(xs[1] - xs[0])
	}
	if len(xs) > 2 {
		step = math.Min(step, math.Abs(xs[2]-xs[1]))
	}
	return min - step/2, max + step/2
}

// SuggestY returns a y range from the lowest low to the highest high,
// widened by 8% of its span on each side.
func (p *Plot) SuggestY() (min, max float64) {
	var lows, highs []float64
	for _, pt := range p.Points {
		if pt.Valid() {
			lows = append(lows, pt.Low)
			highs = append(highs, pt.High)
		}
	}
	min, _ = scale.MinMax(lows)
	_, max = scale.MinMax(highs)
	pad := (max - min) * 0.08
	return min - pad, max + pad
}

// separation returns the smallest horizontal pixel distance between
// consecutive points, or 0 if there are fewer than two.
func (p *Plot) separation(x *axis.Layout) float64 {
	sep := math.Inf(1)
	for i := 1; i < len(p.Points); i++ {
		d := math.Abs(x.WorldToPixel(p.Points[i].X).X - x.WorldToPixel(p.Points[i-1].X).X)
		sep = math.Min(sep, d)
	}
	if math.IsInf(sep, 1) {
		return 0
	}
	return sep
}

// Draw draws the candles onto s. x must be a horizontal axis and y a
// vertical one. Points with a NaN price or lying entirely outside
// the horizontal extent of x are skipped.
func (p *Plot) Draw(s surface.Surface, x, y *axis.Layout) error {
	if p.StickWidth < 0 {
		return ErrStickWidth
	}

	sep := p.separation(x)
	half, width := math.Floor(p.StickWidth/2), p.StickWidth
	if p.StickWidth == AutoStickWidth {
		half, width = 2, 4
		if sep > 0 {
			half = math.Floor(sep / 3)
			width = half * 2
		}
	}
	offset := 0.0
	if p.Centered {
		offset = math.Floor(sep / 2)
	}

	pen := surface.LineStyle{Color: orDefault(p.Color, color.Black), Width: 1}
	bull := orDefault(p.BullishColor, color.White)
	bear := orDefault(p.BearishColor, color.Black)
	left := math.Min(x.Segment.Start.X, x.Segment.End.X)
	right := math.Max(x.Segment.Start.X, x.Segment.End.X)

	for _, pt := range p.Points {
		if !pt.Valid() {
			continue
		}
		xPos := x.WorldToPixel(pt.X).X + offset
		if xPos+half < left || right < xPos-half {
			continue
		}
		yLow := y.WorldToPixel(pt.Low).Y
		yHigh := y.WorldToPixel(pt.High).Y
		yOpen := y.WorldToPixel(pt.Open).Y
		yClose := y.WorldToPixel(pt.Close).Y

		s.Line(surface.Pt(xPos, yLow), surface.Pt(xPos, yHigh), pen)
		switch p.Style {
		case Stick:
			s.Line(surface.Pt(xPos-half, yOpen), surface.Pt(xPos, yOpen), pen)
			s.Line(surface.Pt(xPos, yClose), surface.Pt(xPos+half, yClose), pen)
		default:
			top, bottom := math.Min(yOpen, yClose), math.Max(yOpen, yClose)
			box := surface.Rect{Min: surface.Pt(xPos-half, top), Max: surface.Pt(xPos-half+width, bottom)}
			switch {
			case pt.Close > pt.Open:
				s.Rect(box, bull, pen)
			case pt.Close < pt.Open:
				s.Rect(box, bear, pen)
			default:
				s.Line(box.Min, surface.Pt(box.Max.X, box.Min.Y), pen)
			}
		}
	}
	return nil
}

func orDefault(c, def color.Color) color.Color {
	if c == nil {
		return def
	}
	return c
}
