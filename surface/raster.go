// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// DefaultFontSize is the size, in points at 72 DPI, of text drawn by
// a Raster.
const DefaultFontSize = 11

// Raster is a Surface that paints into an in-memory NRGBA image. Text
// is set in Go Regular.
type Raster struct {
	img     *image.NRGBA
	fontCtx *freetype.Context
	measure FaceMeasurer
}

// NewRaster returns a white width by height raster.
func NewRaster(width, height int) (*Raster, error) {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	fontCtx := freetype.NewContext()
	fontCtx.SetDPI(72)
	fontCtx.SetFont(f)
	fontCtx.SetFontSize(DefaultFontSize)
	fontCtx.SetDst(img)
	fontCtx.SetClip(img.Bounds())

	face := truetype.NewFace(f, &truetype.Options{Size: DefaultFontSize, DPI: 72})
	return &Raster{img: img, fontCtx: fontCtx, measure: FaceMeasurer{face}}, nil
}

// Image returns the image r paints into.
func (r *Raster) Image() *image.NRGBA {
	return r.img
}

// WritePNG encodes the image as PNG to w.
func (r *Raster) WritePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func (r *Raster) MeasureText(s string) Size {
	return r.measure.MeasureText(s)
}

func (r *Raster) Line(p0, p1 Point, ls LineStyle) {
	if ls.Color == nil {
		return
	}
	d := p1.Sub(p0)
	l := d.Len()
	if l == 0 {
		// Paint a dot so zero-length ticks stay visible.
		w := ls.StrokeWidth() / 2
		r.fill(Rect{Point{p0.X - w, p0.Y - w}, Point{p0.X + w, p0.Y + w}}, ls.Color)
		return
	}
	n := Point{-d.Y, d.X}.Mul(ls.StrokeWidth() / 2 / l)
	r.polygon(ls.Color, p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n))
}

func (r *Raster) Rect(rect Rect, c color.Color, ls LineStyle) {
	if rect.Empty() {
		return
	}
	if c != nil {
		r.fill(rect, c)
	}
	if ls.Color != nil {
		tl, br := rect.Min, rect.Max
		tr, bl := Point{br.X, tl.Y}, Point{tl.X, br.Y}
		r.Line(tl, tr, ls)
		r.Line(tr, br, ls)
		r.Line(br, bl, ls)
		r.Line(bl, tl, ls)
	}
}

func (r *Raster) fill(rect Rect, c color.Color) {
	r.polygon(c, rect.Min, Point{rect.Max.X, rect.Min.Y}, rect.Max, Point{rect.Min.X, rect.Max.Y})
}

func (r *Raster) polygon(c color.Color, pts ...Point) {
	b := r.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

func (r *Raster) Text(p Point, s string, c color.Color) {
	if c == nil {
		c = color.Black
	}
	r.fontCtx.SetSrc(image.NewUniform(c))
	at := fixed.Point26_6{X: floatToFixed(p.X), Y: floatToFixed(p.Y + r.measure.Ascent())}
	// DrawString only fails if no font is set.
	r.fontCtx.DrawString(s, at)
}
