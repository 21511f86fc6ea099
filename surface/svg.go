// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"
)

// SVG is a Surface that streams an SVG document to a writer. Write
// errors are sticky and reported by Done.
type SVG struct {
	w   io.Writer
	err error

	measure  FaceMeasurer
	fontSize float64
}

// NewSVG writes the SVG header for a width by height document to w.
// Text is measured with DefaultMeasurer and set in a monospace font
// sized to match it.
func NewSVG(w io.Writer, width, height int) *SVG {
	s := &SVG{w: w, measure: DefaultMeasurer(), fontSize: 11}
	s.fprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\">\n", width, height)
	s.fprintf("<rect width=\"100%%\" height=\"100%%\" style=\"fill:rgb(255,255,255)\"/>\n")
	return s
}

type svglen float64

func (v svglen) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func colorToCSS(c color.Color) string {
	cc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if cc.A == 0xff {
		return fmt.Sprintf("rgb(%d,%d,%d)", cc.R, cc.G, cc.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%f)", cc.R, cc.G, cc.B, float64(cc.A)/0xff)
}

func (s *SVG) fprintf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *SVG) style(parts ...string) string {
	val, sep := "", ""
	for _, part := range parts {
		if part != "" {
			val += sep + part
			sep = ";"
		}
	}
	if val != "" {
		return " style=\"" + val + "\""
	}
	return ""
}

func fill(c color.Color) string {
	if c == nil {
		return "fill:none"
	}
	return "fill:" + colorToCSS(c)
}

func stroke(ls LineStyle) string {
	if ls.Color == nil {
		return ""
	}
	return fmt.Sprintf("stroke:%s;stroke-width:%v", colorToCSS(ls.Color), svglen(ls.StrokeWidth()))
}

func (s *SVG) MeasureText(str string) Size {
	return s.measure.MeasureText(str)
}

func (s *SVG) Line(p0, p1 Point, ls LineStyle) {
	if ls.Color == nil {
		return
	}
	s.fprintf("<line x1=\"%v\" y1=\"%v\" x2=\"%v\" y2=\"%v\"%s/>\n",
		svglen(p0.X), svglen(p0.Y), svglen(p1.X), svglen(p1.Y), s.style(stroke(ls)))
}

func (s *SVG) Rect(r Rect, c color.Color, ls LineStyle) {
	if r.Empty() || (c == nil && ls.Color == nil) {
		return
	}
	s.fprintf("<rect x=\"%v\" y=\"%v\" width=\"%v\" height=\"%v\"%s/>\n",
		svglen(r.Min.X), svglen(r.Min.Y), svglen(r.Dx()), svglen(r.Dy()), s.style(fill(c), stroke(ls)))
}

func (s *SVG) Text(p Point, str string, c color.Color) {
	if c == nil {
		c = color.Black
	}
	y := p.Y + s.measure.Ascent()
	// Stretch the text to its measured width so that the drawn text
	// matches its box whatever monospace font the viewer picks.
	length := ""
	if w := s.measure.MeasureText(str).W; w > 0 {
		length = fmt.Sprintf(" textLength=\"%v\" lengthAdjust=\"spacingAndGlyphs\"", svglen(w))
	}
	s.fprintf("<text x=\"%v\" y=\"%v\" font-family=\"monospace\" font-size=\"%v\"%s%s>",
		svglen(p.X), svglen(y), svglen(s.fontSize), length, s.style(fill(c)))
	if s.err == nil {
		s.err = xml.EscapeText(s.w, []byte(str))
	}
	s.fprintf("</text>\n")
}

// Done closes the document and returns the first error encountered
// while writing it.
func (s *SVG) Done() error {
	s.fprintf("</svg>\n")
	return s.err
}
