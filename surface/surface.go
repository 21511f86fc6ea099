// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface defines the drawing surface axes and plots render
// onto, along with SVG, raster and recording implementations.
package surface

import (
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// A TextMeasurer reports the size of the box a string occupies when
// drawn.
type TextMeasurer interface {
	MeasureText(s string) Size
}

// LineStyle describes a stroke. A nil Color draws nothing. A zero
// Width is drawn one pixel wide.
type LineStyle struct {
	Color color.Color
	Width float64
}

// StrokeWidth returns the effective width of ls.
func (ls LineStyle) StrokeWidth() float64 {
	if ls.Width <= 0 {
		return 1
	}
	return ls.Width
}

// A Surface accepts drawing primitives.
type Surface interface {
	TextMeasurer

	// Line strokes the segment from p0 to p1.
	Line(p0, p1 Point, style LineStyle)

	// Rect fills r with fill, if non-nil, and then strokes its
	// outline with stroke.
	Rect(r Rect, fill color.Color, stroke LineStyle)

	// Text draws s so that its text box, as reported by
	// MeasureText, has its top-left corner at p.
	Text(p Point, s string, c color.Color)
}

// FaceMeasurer measures text with a font face. The text box is the
// advance width by the ascent plus descent.
type FaceMeasurer struct {
	Face font.Face
}

// DefaultMeasurer measures text set in the 7x13 fixed-width face.
func DefaultMeasurer() FaceMeasurer {
	return FaceMeasurer{basicfont.Face7x13}
}

func (m FaceMeasurer) MeasureText(s string) Size {
	met := m.Face.Metrics()
	return Size{
		W: fixedToFloat(font.MeasureString(m.Face, s)),
		H: fixedToFloat(met.Ascent + met.Descent),
	}
}

// Ascent returns the distance from the top of the text box to the
// baseline.
func (m FaceMeasurer) Ascent() float64 {
	return fixedToFloat(m.Face.Metrics().Ascent)
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}
