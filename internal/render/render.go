// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws scenes onto SVG and PNG outputs.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/plotaxis/plotaxis/axis"
	"github.com/plotaxis/plotaxis/chart"
	"github.com/plotaxis/plotaxis/internal/config"
	"github.com/plotaxis/plotaxis/surface"
	"golang.org/x/sync/errgroup"
)

// A Format is an output file format.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ParseFormats parses format names such as "svg" or "PNG".
func ParseFormats(names []string) ([]Format, error) {
	var fs []Format
	for _, name := range names {
		switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
		case SVG, PNG:
			fs = append(fs, f)
		default:
			return nil, fmt.Errorf("unknown output format %q", name)
		}
	}
	return fs, nil
}

// boundsColor outlines axis bounding boxes when a scene asks for
// them.
var boundsColor = color.NRGBA{0xff, 0x00, 0xff, 0x80}

// Draw draws sc onto s and returns the bounding box of everything
// drawn.
func Draw(s surface.Surface, sc *config.Scene) (surface.Rect, error) {
	bg, err := config.ParseColor(sc.Background)
	if err != nil {
		return surface.EmptyRect(), err
	}
	if bg != nil {
		s.Rect(surface.Rect{Max: surface.Pt(float64(sc.Width), float64(sc.Height))}, bg, surface.LineStyle{})
	}

	bounds := surface.EmptyRect()
	if c := sc.Candles; c != nil {
		p, err := c.Plot()
		if err != nil {
			return bounds, fmt.Errorf("candles: %w", err)
		}
		ch := chart.NewCandle(p, float64(sc.Width), float64(sc.Height))
		ch.X.NumberFormat = c.XFormat
		ch.Y.NumberFormat = c.YFormat
		ch.X.HideTickText = c.HideXLabels
		ch.X.Label = c.XTitle
		ch.Y.Label = c.YTitle
		if c.YTitle != "" {
			ch.Margins.Left += s.MeasureText(c.YTitle).W + ch.Y.LabelGap
		}
		if ch.Frame, err = config.ParseColor(c.Frame); err != nil {
			return bounds, err
		}
		if ch.Grid, err = config.ParseColor(c.Grid); err != nil {
			return bounds, err
		}
		r, err := ch.Draw(s)
		if err != nil {
			return bounds, fmt.Errorf("candles: %w", err)
		}
		bounds = bounds.Union(r)
	}

	for i := range sc.Axes {
		a := &sc.Axes[i]
		spec, err := a.Spec()
		if err != nil {
			return bounds, fmt.Errorf("axis %d: %w", i, err)
		}
		r, err := axis.Draw(s, spec, a.Segment())
		if err != nil {
			return bounds, fmt.Errorf("axis %d: %w", i, err)
		}
		if sc.ShowBounds {
			s.Rect(r, nil, surface.LineStyle{Color: boundsColor, Width: 1})
		}
		bounds = bounds.Union(r)
	}
	return bounds, nil
}

// Write draws sc in format f to w.
func Write(w io.Writer, sc *config.Scene, f Format) error {
	switch f {
	case SVG:
		s := surface.NewSVG(w, sc.Width, sc.Height)
		if _, err := Draw(s, sc); err != nil {
			return err
		}
		return s.Done()
	case PNG:
		r, err := surface.NewRaster(sc.Width, sc.Height)
		if err != nil {
			return err
		}
		if _, err := Draw(r, sc); err != nil {
			return err
		}
		return r.WritePNG(w)
	}
	return fmt.Errorf("unknown output format %q", f)
}

// WriteFile draws sc in format f to the file at path. The file is
// only replaced once drawing has succeeded.
func WriteFile(path string, sc *config.Scene, f Format) error {
	var buf bytes.Buffer
	if err := Write(&buf, sc, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0666)
}

// Files draws sc once per format, concurrently, to base plus the
// format's extension. It returns the paths written.
func Files(ctx context.Context, sc *config.Scene, base string, formats []Format) ([]string, error) {
	paths := make([]string, len(formats))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		i, f := i, f
		paths[i] = base + "." + string(f)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return WriteFile(paths[i], sc, f)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
