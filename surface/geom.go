// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image"
	"math"
)

// A Point is a position on a drawing surface, in pixels. Y grows
// downward.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

func (p Point) Add(q Point) Point   { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point   { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point) Len() float64        { return math.Hypot(p.X, p.Y) }

// Lerp returns the point a fraction u of the way from p to q.
func (p Point) Lerp(q Point, u float64) Point {
	return Point{p.X + (q.X-p.X)*u, p.Y + (q.Y-p.Y)*u}
}

// A Size is the extent of a text box.
type Size struct {
	W, H float64
}

// A Rect is an axis-aligned rectangle containing the points with
// Min.X <= X <= Max.X and Min.Y <= Y <= Max.Y. A Rect whose Min
// exceeds its Max in either coordinate is empty; the zero Rect is
// the single point at the origin.
type Rect struct {
	Min, Max Point
}

// EmptyRect returns a rectangle containing no points. It is the
// identity for Union.
func EmptyRect() Rect {
	inf := math.Inf(1)
	return Rect{Point{inf, inf}, Point{-inf, -inf}}
}

// RectOf returns the smallest rectangle containing pts.
func RectOf(pts ...Point) Rect {
	r := EmptyRect()
	for _, p := range pts {
		r = r.Extend(p)
	}
	return r
}

// RectAt returns the rectangle with top-left corner p and size sz.
func RectAt(p Point, sz Size) Rect {
	return Rect{p, Point{p.X + sz.W, p.Y + sz.H}}
}

func (r Rect) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Size returns the width and height of r.
func (r Rect) Size() Size {
	return Size{r.Dx(), r.Dy()}
}

// Extend returns the smallest rectangle containing r and p.
func (r Rect) Extend(p Point) Rect {
	return Rect{
		Point{math.Min(r.Min.X, p.X), math.Min(r.Min.Y, p.Y)},
		Point{math.Max(r.Max.X, p.X), math.Max(r.Max.Y, p.Y)},
	}
}

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return r.Extend(s.Min).Extend(s.Max)
}

// Inset returns r shrunk by d on every side. Negative d grows r.
func (r Rect) Inset(d float64) Rect {
	if r.Empty() {
		return r
	}
	return Rect{Point{r.Min.X + d, r.Min.Y + d}, Point{r.Max.X - d, r.Max.Y - d}}
}

func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X && r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether every point of s is in r. The empty
// rectangle is contained in every rectangle.
func (r Rect) ContainsRect(s Rect) bool {
	if s.Empty() {
		return true
	}
	return r.Contains(s.Min) && r.Contains(s.Max)
}

// Overlaps reports whether r and s share interior points.
func (r Rect) Overlaps(s Rect) bool {
	return !r.Empty() && !s.Empty() &&
		r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

// Bounds returns the smallest integer rectangle covering r.
func (r Rect) Bounds() image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)))
}
