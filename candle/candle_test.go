// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package candle

import (
	"image/color"
	"math"
	"testing"

	"github.com/plotaxis/plotaxis/axis"
	"github.com/plotaxis/plotaxis/surface"
)

func axes(t *testing.T, xmin, xmax, ymin, ymax float64) (x, y *axis.Layout) {
	t.Helper()
	m := surface.DefaultMeasurer()
	x, err := axis.Compute(axis.New(xmin, xmax), axis.Seg(0, 100, 100, 100), m)
	if err != nil {
		t.Fatal(err)
	}
	y, err = axis.Compute(axis.New(ymin, ymax), axis.Seg(0, 100, 0, 0), m)
	if err != nil {
		t.Fatal(err)
	}
	return x, y
}

func TestSuggest(t *testing.T) {
	p := &Plot{Points: []OHLC{
		{X: 10, Open: 5, Low: 4, High: 6, Close: 5.5},
		{X: 12, Open: 5, Low: 2, High: 7, Close: 5.5},
		{X: 13, Open: 5, Low: 3, High: 9, Close: 5.5},
		{X: 20, Open: math.NaN(), Low: -100, High: 100, Close: 1},
	}}
	xmin, xmax := p.SuggestX()
	if xmin != 9.5 || xmax != 20.5 {
		t.Errorf("SuggestX = %v, %v; want 9.5, 20.5", xmin, xmax)
	}
	ymin, ymax := p.SuggestY()
	if math.Abs(ymin-(2-0.56)) > 1e-9 || math.Abs(ymax-(9+0.56)) > 1e-9 {
		t.Errorf("SuggestY = %v, %v; want 1.44, 9.56", ymin, ymax)
	}
}

func TestDrawFilled(t *testing.T) {
	bull, bear := color.RGBA{0, 255, 0, 255}, color.RGBA{255, 0, 0, 255}
	p := &Plot{
		Points: []OHLC{
			{X: 1, Open: 2, Low: 1, High: 5, Close: 4},
			{X: 2, Open: 4, Low: 1, High: 5, Close: 2},
			{X: 3, Open: 3, Low: 1, High: 5, Close: 3},
			{X: 4, Open: math.NaN(), Low: 1, High: 5, Close: 3},
		},
		BullishColor: bull,
		BearishColor: bear,
	}
	x, y := axes(t, 0, 5, 0, 10)
	rec := surface.NewRecorder()
	if err := p.Draw(rec, x, y); err != nil {
		t.Fatal(err)
	}

	rects := rec.Filter(surface.OpRect)
	if len(rects) != 2 {
		t.Fatalf("got %d bodies, want 2", len(rects))
	}
	if rects[0].Fill != bull || rects[1].Fill != bear {
		t.Errorf("body fills = %v, %v; want bullish then bearish", rects[0].Fill, rects[1].Fill)
	}
	// Points are 20 pixels apart: half width 6, width 12.
	if got := rects[0].Box.Dx(); got != 12 {
		t.Errorf("body width = %v, want 12", got)
	}
	if got := rects[0].Box; got.Min.Y != 60 || got.Max.Y != 80 {
		t.Errorf("bullish body spans y %v..%v, want 60..80", got.Min.Y, got.Max.Y)
	}
	// Three wicks plus one flat open=close line.
	if n := len(rec.Filter(surface.OpLine)); n != 4 {
		t.Errorf("got %d lines, want 4", n)
	}
}

func TestDrawStick(t *testing.T) {
	p := &Plot{
		Points:     []OHLC{{X: 1, Open: 2, Low: 1, High: 5, Close: 4}},
		Style:      Stick,
		StickWidth: 8,
	}
	x, y := axes(t, 0, 5, 0, 10)
	rec := surface.NewRecorder()
	if err := p.Draw(rec, x, y); err != nil {
		t.Fatal(err)
	}
	lines := rec.Filter(surface.OpLine)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	open, close := lines[1], lines[2]
	if open.P0 != surface.Pt(16, 80) || open.P1 != surface.Pt(20, 80) {
		t.Errorf("open tick = %v-%v, want (16,80)-(20,80)", open.P0, open.P1)
	}
	if close.P0 != surface.Pt(20, 60) || close.P1 != surface.Pt(24, 60) {
		t.Errorf("close tick = %v-%v, want (20,60)-(24,60)", close.P0, close.P1)
	}
}

func TestDrawSkipsOutside(t *testing.T) {
	p := &Plot{Points: []OHLC{
		{X: -50, Open: 2, Low: 1, High: 5, Close: 4},
		{X: 1, Open: 2, Low: 1, High: 5, Close: 4},
	}}
	x, y := axes(t, 0, 5, 0, 10)
	rec := surface.NewRecorder()
	if err := p.Draw(rec, x, y); err != nil {
		t.Fatal(err)
	}
	if n := len(rec.Filter(surface.OpRect)); n != 1 {
		t.Errorf("got %d bodies, want 1", n)
	}
}

func TestNegativeStickWidth(t *testing.T) {
	p := &Plot{StickWidth: -1}
	x, y := axes(t, 0, 5, 0, 10)
	if err := p.Draw(surface.NewRecorder(), x, y); err != ErrStickWidth {
		t.Errorf("Draw = %v, want %v", err, ErrStickWidth)
	}
}
