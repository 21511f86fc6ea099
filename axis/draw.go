// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import "github.com/plotaxis/plotaxis/surface"

// Draw renders the axis described by spec along seg onto s and
// returns the rectangle it occupied.
//
// Nothing is drawn if spec.NumberFormat is invalid.
func Draw(s surface.Surface, spec Spec, seg Segment) (surface.Rect, error) {
	l, err := Compute(spec, seg, s)
	if err != nil {
		return surface.EmptyRect(), err
	}
	l.Paint(s)
	return l.Bounds, nil
}

// Paint draws a computed layout: the baseline, then the small ticks,
// then each large tick followed by its label, and finally the title.
func (l *Layout) Paint(s surface.Surface) {
	pen := l.Spec.pen()
	s.Line(l.Segment.Start, l.Segment.End, pen)
	for _, t := range l.Small {
		s.Line(t.Pixel, t.Tip, pen)
	}
	text := l.Spec.textColor()
	for _, t := range l.Large {
		s.Line(t.Pixel, t.Tip, pen)
		if t.Labeled {
			s.Text(t.LabelBox.Min, t.Label, text)
		}
	}
	if l.Spec.Label != "" {
		s.Text(l.TitleBox.Min, l.Spec.Label, text)
	}
}
