// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis lays out and draws chart axes: the baseline between two
// pixel positions, large labeled ticks and small unlabeled ticks
// between them.
//
// An axis is described by an immutable Spec and drawn along a Segment.
// Every call recomputes the ticks from scratch; nothing is cached
// between calls.
package axis

import (
	"image/color"
	"math"

	"github.com/plotaxis/plotaxis/scale"
	"github.com/plotaxis/plotaxis/surface"
)

// AutoSmallTicks selects the number of small ticks from the large
// tick step.
const AutoSmallTicks = scale.AutoMinor

// Spec configures an axis. The zero Spec is usable: it draws [0, 0]
// with an automatic step, black strokes and no small ticks.
type Spec struct {
	// WorldMin and WorldMax bound the world range. They are
	// normalized so that WorldMin <= WorldMax; Reversed, not the
	// order of the bounds, controls direction.
	WorldMin, WorldMax float64

	// Reversed maps WorldMin to the end of the segment instead of
	// its start.
	Reversed bool

	// LargeTickStep is the world distance between large ticks. NaN
	// (or any non-positive or infinite value) selects a step
	// automatically, as does a step so small that it would produce
	// more than scale.MaxMajorTicks large ticks.
	LargeTickStep float64

	// NumberOfSmallTicks is the number of small ticks between each
	// pair of adjacent large ticks, or AutoSmallTicks.
	NumberOfSmallTicks int

	// SmallTickSize and LargeTickSize are tick lengths in pixels.
	// A zero SmallTickSize suppresses small ticks.
	SmallTickSize, LargeTickSize float64

	// LabelGap is the distance between the end of a large tick and
	// its label.
	LabelGap float64

	// AxisColor strokes the baseline and ticks; AxisWidth is their
	// width. Nil means black.
	AxisColor color.Color
	AxisWidth float64

	// TickTextColor fills tick labels. Nil means black.
	TickTextColor color.Color

	// NumberFormat formats large tick labels; see package numfmt.
	NumberFormat string

	// HideTickText suppresses labels.
	HideTickText bool

	// Label is the axis title, drawn beside the middle of the
	// baseline on the tick side, beyond the tick labels. Empty means
	// no title.
	Label string

	// LabelOffset is extra space between the tick labels and the
	// title. If LabelOffsetAbsolute is set it is instead the
	// distance of the title from the baseline.
	LabelOffset         float64
	LabelOffsetAbsolute bool

	// FlipSide draws ticks and labels on the other side of the
	// baseline. By default they go on the side obtained by turning
	// the segment direction 90° clockwise on a y-down surface: below
	// a left-to-right axis and left of a top-to-bottom one.
	FlipSide bool

	// Log selects a logarithmic scale with base LogBase (10 if
	// unset). Large ticks then sit at powers of the base and
	// LargeTickStep is ignored.
	Log     bool
	LogBase float64
}

// New returns a Spec for [worldMin, worldMax] with the default
// appearance: automatic step and small ticks, 2 pixel small ticks, 6
// pixel large ticks and black strokes and labels.
func New(worldMin, worldMax float64) Spec {
	return Spec{
		WorldMin:           worldMin,
		WorldMax:           worldMax,
		LargeTickStep:      math.NaN(),
		NumberOfSmallTicks: AutoSmallTicks,
		SmallTickSize:      2,
		LargeTickSize:      6,
		LabelGap:           2,
		AxisColor:          color.Black,
		AxisWidth:          1,
		TickTextColor:      color.Black,
	}
}

func (s Spec) scale() scale.Interface {
	if s.Log {
		sc := scale.NewLog(s.WorldMin, s.WorldMax, s.LogBase)
		sc.Reversed = s.Reversed
		return sc
	}
	sc := scale.NewLinear(s.WorldMin, s.WorldMax)
	sc.Reversed = s.Reversed
	return sc
}

func (s Spec) pen() surface.LineStyle {
	c := s.AxisColor
	if c == nil {
		c = color.Black
	}
	return surface.LineStyle{Color: c, Width: s.AxisWidth}
}

func (s Spec) textColor() color.Color {
	if s.TickTextColor == nil {
		return color.Black
	}
	return s.TickTextColor
}
