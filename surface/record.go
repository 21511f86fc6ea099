// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import "image/color"

// OpKind identifies a recorded drawing primitive.
type OpKind int

const (
	OpLine OpKind = iota
	OpRect
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpLine:
		return "line"
	case OpRect:
		return "rect"
	case OpText:
		return "text"
	}
	return "unknown"
}

// An Op is one primitive issued against a Recorder.
type Op struct {
	Kind OpKind

	// P0 and P1 are the endpoints of a line. For text, P0 is the
	// top-left of the text box.
	P0, P1 Point

	// Box is the rectangle of a Rect op or the text box of a Text
	// op.
	Box Rect

	Text   string
	Fill   color.Color
	Stroke LineStyle
}

// Extent returns the region of the surface op can touch.
func (op Op) Extent() Rect {
	switch op.Kind {
	case OpLine:
		return RectOf(op.P0, op.P1).Inset(-op.Stroke.StrokeWidth() / 2)
	case OpRect:
		if op.Stroke.Color != nil {
			return op.Box.Inset(-op.Stroke.StrokeWidth() / 2)
		}
	}
	return op.Box
}

// Recorder is a Surface that records the primitives drawn on it.
type Recorder struct {
	Measurer TextMeasurer
	Ops      []Op
}

// NewRecorder returns a Recorder that measures text with
// DefaultMeasurer.
func NewRecorder() *Recorder {
	return &Recorder{Measurer: DefaultMeasurer()}
}

func (r *Recorder) MeasureText(s string) Size {
	return r.Measurer.MeasureText(s)
}

func (r *Recorder) Line(p0, p1 Point, ls LineStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, P0: p0, P1: p1, Stroke: ls})
}

func (r *Recorder) Rect(rect Rect, c color.Color, ls LineStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Box: rect, Fill: c, Stroke: ls})
}

func (r *Recorder) Text(p Point, s string, c color.Color) {
	box := RectAt(p, r.MeasureText(s))
	r.Ops = append(r.Ops, Op{Kind: OpText, P0: p, Box: box, Text: s, Fill: c})
}

// Filter returns the recorded ops of the given kind, in order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Extent returns the union of the extents of all recorded ops.
func (r *Recorder) Extent() Rect {
	ext := EmptyRect()
	for _, op := range r.Ops {
		ext = ext.Union(op.Extent())
	}
	return ext
}

// Reset discards the recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
