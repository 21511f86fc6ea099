// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/vec"
	"github.com/plotaxis/plotaxis/numfmt"
	"github.com/plotaxis/plotaxis/scale"
	"github.com/plotaxis/plotaxis/surface"
)

// A Segment is the pair of pixel positions an axis is drawn between.
// It need not be axis-aligned.
type Segment struct {
	Start, End surface.Point
}

// Seg is shorthand for Segment{Pt(x0, y0), Pt(x1, y1)}.
func Seg(x0, y0, x1, y1 float64) Segment {
	return Segment{surface.Pt(x0, y0), surface.Pt(x1, y1)}
}

// A TickMark is one computed tick.
type TickMark struct {
	World float64       // position in world coordinates
	Pixel surface.Point // position on the baseline
	Tip   surface.Point // far end of the tick stroke
	Large bool

	// Label is the formatted world value of a large tick. Labeled
	// is false for small ticks, when labels are hidden, and for
	// labels suppressed because they would overlap a neighbor.
	Label    string
	Labeled  bool
	LabelBox surface.Rect
}

// A Layout is the fully computed geometry of one axis.
type Layout struct {
	Spec    Spec
	Segment Segment
	Scale   scale.Interface

	// Step is the world distance between large ticks, or NaN on a
	// logarithmic axis.
	Step float64

	Large, Small []TickMark

	// TitleBox is where Spec.Label is drawn, or empty if there is
	// no title.
	TitleBox surface.Rect

	// Bounds encloses the baseline, every tick stroke, every drawn
	// label and the title.
	Bounds surface.Rect

	dir    surface.Point // Start to End
	normal surface.Point // unit vector toward ticks and labels
}

// Compute lays out the axis described by spec along seg, measuring
// labels with m. It returns a *numfmt.FormatError (wrapped) if
// spec.NumberFormat is invalid.
func Compute(spec Spec, seg Segment, m surface.TextMeasurer) (*Layout, error) {
	format, err := numfmt.Parse(spec.NumberFormat)
	if err != nil {
		return nil, fmt.Errorf("axis label format: %w", err)
	}

	sc := spec.scale()
	switch sc := sc.(type) {
	case scale.Linear:
		spec.WorldMin, spec.WorldMax = sc.Min, sc.Max
	case scale.Log:
		spec.WorldMin, spec.WorldMax = sc.Min, sc.Max
	}
	l := &Layout{Spec: spec, Segment: seg, Scale: sc, Step: math.NaN()}

	l.dir = seg.End.Sub(seg.Start)
	unit := surface.Pt(1, 0)
	if n := l.dir.Len(); n > 0 {
		unit = l.dir.Mul(1 / n)
	}
	l.normal = surface.Pt(-unit.Y, unit.X)
	if spec.FlipSide {
		l.normal = l.normal.Mul(-1)
	}

	opts := scale.TickOptions{Step: spec.LargeTickStep, Minor: spec.NumberOfSmallTicks}
	if spec.SmallTickSize <= 0 {
		opts.Minor = 0
	}
	if lin, ok := sc.(scale.Linear); ok {
		l.Step = lin.Step(opts)
	}
	major, minor := sc.Ticks(opts)

	for i, u := range vec.Map(sc.Of, minor) {
		p := seg.Start.Lerp(seg.End, u)
		l.Small = append(l.Small, TickMark{
			World: minor[i],
			Pixel: p,
			Tip:   p.Add(l.normal.Mul(spec.SmallTickSize)),
		})
	}
	for i, u := range vec.Map(sc.Of, major) {
		p := seg.Start.Lerp(seg.End, u)
		t := TickMark{
			World:    major[i],
			Pixel:    p,
			Tip:      p.Add(l.normal.Mul(spec.LargeTickSize)),
			Large:    true,
			Label:    format.Format(major[i]),
			LabelBox: surface.EmptyRect(),
		}
		if !spec.HideTickText {
			t.Labeled = true
			t.LabelBox = l.labelBox(p, m.MeasureText(t.Label))
		}
		l.Large = append(l.Large, t)
	}
	l.thinLabels()

	l.TitleBox = surface.EmptyRect()
	if spec.Label != "" {
		mid := seg.Start.Lerp(seg.End, 0.5)
		l.TitleBox = l.placeBox(mid, l.titleDistance(), m.MeasureText(spec.Label))
	}

	l.Bounds = RectOfSegment(seg)
	for _, ticks := range [][]TickMark{l.Small, l.Large} {
		for _, t := range ticks {
			l.Bounds = l.Bounds.Extend(t.Pixel).Extend(t.Tip)
		}
	}
	l.Bounds = l.Bounds.Inset(-spec.pen().StrokeWidth() / 2)
	for _, t := range l.Large {
		if t.Labeled {
			l.Bounds = l.Bounds.Union(t.LabelBox)
		}
	}
	l.Bounds = l.Bounds.Union(l.TitleBox)
	return l, nil
}

// RectOfSegment returns the bounding rectangle of seg's endpoints.
func RectOfSegment(seg Segment) surface.Rect {
	return surface.RectOf(seg.Start, seg.End)
}

// labelBox places a label of size sz outward from the tick at p. The
// box's nearest point to the baseline is LargeTickSize+LabelGap away
// along the normal, so labels never cross the baseline whatever the
// segment's angle.
func (l *Layout) labelBox(p surface.Point, sz surface.Size) surface.Rect {
	return l.placeBox(p, l.Spec.LargeTickSize+l.Spec.LabelGap, sz)
}

// placeBox places a box of size sz so that its nearest point to the
// baseline is dist from p along the normal.
func (l *Layout) placeBox(p surface.Point, dist float64, sz surface.Size) surface.Rect {
	anchor := p.Add(l.normal.Mul(dist))
	reach := math.Abs(l.normal.X)*sz.W/2 + math.Abs(l.normal.Y)*sz.H/2
	c := anchor.Add(l.normal.Mul(reach))
	return surface.RectAt(surface.Pt(c.X-sz.W/2, c.Y-sz.H/2), sz)
}

// titleDistance returns how far from the baseline the title box
// starts: past the ticks and every drawn tick label, plus LabelGap
// and LabelOffset.
func (l *Layout) titleDistance() float64 {
	if l.Spec.LabelOffsetAbsolute {
		return l.Spec.LabelOffset
	}
	d := math.Max(math.Max(l.Spec.LargeTickSize, l.Spec.SmallTickSize), 0)
	for _, t := range l.Large {
		if !t.Labeled {
			continue
		}
		b := t.LabelBox
		for _, c := range []surface.Point{b.Min, b.Max, surface.Pt(b.Min.X, b.Max.Y), surface.Pt(b.Max.X, b.Min.Y)} {
			d = math.Max(d, c.Sub(l.Segment.Start).Dot(l.normal))
		}
	}
	return d + l.Spec.LabelGap + l.Spec.LabelOffset
}

// thinLabels walks the large ticks along the segment and drops each
// label that would overlap the previous drawn label.
func (l *Layout) thinLabels() {
	order := make([]int, len(l.Large))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return l.Scale.Of(l.Large[order[a]].World) < l.Scale.Of(l.Large[order[b]].World)
	})
	var prev *TickMark
	for _, i := range order {
		t := &l.Large[i]
		if !t.Labeled {
			continue
		}
		if prev != nil && t.LabelBox.Overlaps(prev.LabelBox) {
			t.Labeled = false
			continue
		}
		prev = t
	}
}

// WorldToPixel maps a world value to its position on the baseline.
// Values outside the world range land on the baseline's extension.
func (l *Layout) WorldToPixel(x float64) surface.Point {
	return l.Segment.Start.Lerp(l.Segment.End, l.Scale.Of(x))
}

// PixelToWorld projects p onto the baseline and returns the world
// value at that position. On a zero-length segment it returns
// WorldMin.
func (l *Layout) PixelToWorld(p surface.Point) float64 {
	d2 := l.dir.Dot(l.dir)
	if d2 == 0 {
		return l.Spec.WorldMin
	}
	return l.Scale.Inverse(p.Sub(l.Segment.Start).Dot(l.dir) / d2)
}

// Normal returns the unit vector pointing from the baseline toward
// the ticks and labels.
func (l *Layout) Normal() surface.Point {
	return l.normal
}

// Labels returns the labels that will be drawn, in world order.
func (l *Layout) Labels() []string {
	var labels []string
	for _, t := range l.Large {
		if t.Labeled {
			labels = append(labels, t.Label)
		}
	}
	return labels
}
