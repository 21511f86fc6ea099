// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads axis scenes from YAML.
//
// A scene is a canvas size, a list of axes, each drawn between two
// pixel positions, and an optional candlestick chart filling the
// canvas.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/plotaxis/plotaxis/axis"
	"github.com/plotaxis/plotaxis/numfmt"
	"gopkg.in/yaml.v3"
)

// Scene is a drawing of one or more axes.
type Scene struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Background fills the canvas. Empty means white.
	Background string `yaml:"background"`

	// ShowBounds outlines the bounding box of every axis.
	ShowBounds bool `yaml:"show_bounds"`

	Axes    []AxisConfig  `yaml:"axes"`
	Candles *CandleConfig `yaml:"candles"`
}

// AxisConfig is one axis of a scene. Unset optional fields take the
// defaults of axis.New.
type AxisConfig struct {
	Min      float64   `yaml:"min"`
	Max      float64   `yaml:"max"`
	From     []float64 `yaml:"from"`
	To       []float64 `yaml:"to"`
	Reversed bool      `yaml:"reversed"`

	Step          *float64 `yaml:"step"`
	SmallTicks    *int     `yaml:"small_ticks"`
	SmallTickSize *float64 `yaml:"small_tick_size"`
	LargeTickSize *float64 `yaml:"large_tick_size"`
	LabelGap      *float64 `yaml:"label_gap"`

	Color     string  `yaml:"color"`
	LineWidth float64 `yaml:"line_width"`
	TextColor string  `yaml:"text_color"`

	Format     string  `yaml:"format"`
	HideLabels bool    `yaml:"hide_labels"`
	Flip       bool    `yaml:"flip"`
	Log        bool    `yaml:"log"`
	LogBase    float64 `yaml:"log_base"`

	// Title is the axis title. TitleOffset adds space between the
	// tick labels and the title, or is the title's distance from the
	// baseline if TitleOffsetAbsolute is set.
	Title               string  `yaml:"title"`
	TitleOffset         float64 `yaml:"title_offset"`
	TitleOffsetAbsolute bool    `yaml:"title_offset_absolute"`
}

// CandleConfig is a candlestick chart. Exactly one of Data and Points
// must be set.
type CandleConfig struct {
	// Data is a CSV file of x,open,high,low,close rows. A relative
	// path is resolved against the scene file's directory.
	Data string `yaml:"data"`

	// Points are inline [x, open, high, low, close] rows.
	Points [][]float64 `yaml:"points"`

	Style      string  `yaml:"style"` // "filled" (default) or "stick"
	Color      string  `yaml:"color"`
	Bullish    string  `yaml:"bullish"`
	Bearish    string  `yaml:"bearish"`
	StickWidth float64 `yaml:"stick_width"`
	Centered   bool    `yaml:"centered"`
	Frame      string  `yaml:"frame"`
	Grid       string  `yaml:"grid"`

	XFormat string `yaml:"x_format"`
	YFormat string `yaml:"y_format"`
	XTitle  string `yaml:"x_title"`
	YTitle  string `yaml:"y_title"`

	// HideXLabels hides the x tick labels, which are bare numbers
	// (days since 1970 for dated data).
	HideXLabels bool `yaml:"hide_x_labels"`
}

// Default returns an empty 640x480 scene.
func Default() *Scene {
	return &Scene{Width: 640, Height: 480}
}

// Parse decodes a scene from YAML, filling in defaults, and validates
// it.
func Parse(data []byte) (*Scene, error) {
	sc := Default()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("parse scene yaml: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("validate scene: %w", err)
	}
	return sc, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if c := sc.Candles; c != nil && c.Data != "" && !filepath.IsAbs(c.Data) {
		c.Data = filepath.Join(filepath.Dir(path), c.Data)
	}
	return sc, nil
}

// Validate reports the first problem with sc.
func (sc *Scene) Validate() error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d is not positive", sc.Width, sc.Height)
	}
	if _, err := ParseColor(sc.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if len(sc.Axes) == 0 && sc.Candles == nil {
		return errors.New("scene has no axes and no candles")
	}
	for i := range sc.Axes {
		if err := sc.Axes[i].Validate(); err != nil {
			return fmt.Errorf("axis %d: %w", i, err)
		}
	}
	if sc.Candles != nil {
		if err := sc.Candles.Validate(); err != nil {
			return fmt.Errorf("candles: %w", err)
		}
	}
	return nil
}

// Validate reports the first problem with a.
func (a *AxisConfig) Validate() error {
	for _, p := range []struct {
		name string
		xy   []float64
	}{{"from", a.From}, {"to", a.To}} {
		if len(p.xy) != 2 {
			return fmt.Errorf("%s must be [x, y], got %v", p.name, p.xy)
		}
		if !finite(p.xy[0]) || !finite(p.xy[1]) {
			return fmt.Errorf("%s %v is not finite", p.name, p.xy)
		}
	}
	if a.SmallTicks != nil && *a.SmallTicks < axis.AutoSmallTicks {
		return fmt.Errorf("small_ticks %d out of range", *a.SmallTicks)
	}
	_, err := a.Spec()
	return err
}

// Segment returns the pixel segment the axis is drawn along.
func (a *AxisConfig) Segment() axis.Segment {
	return axis.Seg(a.From[0], a.From[1], a.To[0], a.To[1])
}

// Spec converts a to an axis.Spec.
func (a *AxisConfig) Spec() (axis.Spec, error) {
	s := axis.New(a.Min, a.Max)
	s.Reversed = a.Reversed
	if a.Step != nil {
		s.LargeTickStep = *a.Step
	}
	if a.SmallTicks != nil {
		s.NumberOfSmallTicks = *a.SmallTicks
	}
	if a.SmallTickSize != nil {
		s.SmallTickSize = *a.SmallTickSize
	}
	if a.LargeTickSize != nil {
		s.LargeTickSize = *a.LargeTickSize
	}
	if a.LabelGap != nil {
		s.LabelGap = *a.LabelGap
	}
	if a.LineWidth > 0 {
		s.AxisWidth = a.LineWidth
	}
	var err error
	if a.Color != "" {
		if s.AxisColor, err = ParseColor(a.Color); err != nil {
			return s, fmt.Errorf("color: %w", err)
		}
	}
	if a.TextColor != "" {
		if s.TickTextColor, err = ParseColor(a.TextColor); err != nil {
			return s, fmt.Errorf("text_color: %w", err)
		}
	}
	if _, err := numfmt.Parse(a.Format); err != nil {
		return s, err
	}
	s.NumberFormat = a.Format
	s.HideTickText = a.HideLabels
	s.FlipSide = a.Flip
	s.Log = a.Log
	s.LogBase = a.LogBase
	s.Label = a.Title
	s.LabelOffset = a.TitleOffset
	s.LabelOffsetAbsolute = a.TitleOffsetAbsolute
	return s, nil
}

// Validate reports the first problem with c.
func (c *CandleConfig) Validate() error {
	switch {
	case c.Data == "" && len(c.Points) == 0:
		return errors.New("one of data or points is required")
	case c.Data != "" && len(c.Points) != 0:
		return errors.New("data and points are mutually exclusive")
	}
	for i, row := range c.Points {
		if len(row) != 5 {
			return fmt.Errorf("point %d: want [x, open, high, low, close], got %v", i, row)
		}
	}
	if _, err := c.style(); err != nil {
		return err
	}
	if c.StickWidth < 0 {
		return fmt.Errorf("stick_width %v is negative", c.StickWidth)
	}
	for _, col := range []struct{ name, val string }{
		{"color", c.Color}, {"bullish", c.Bullish}, {"bearish", c.Bearish}, {"frame", c.Frame}, {"grid", c.Grid},
	} {
		if _, err := ParseColor(col.val); err != nil {
			return fmt.Errorf("%s: %w", col.name, err)
		}
	}
	for _, f := range []string{c.XFormat, c.YFormat} {
		if _, err := numfmt.Parse(f); err != nil {
			return err
		}
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
