// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plotaxis/plotaxis/axis"
	"github.com/plotaxis/plotaxis/candle"
	"github.com/plotaxis/plotaxis/numfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
width: 300
height: 120
axes:
  - min: 0
    max: 10
    from: [10, 100]
    to: [290, 100]
    step: 2.5
    small_ticks: 4
    color: "#0f0"
    text_color: navy
    format: "{0:F1}"
  - {min: 1, max: 1000, from: [10, 10], to: [10, 90], log: true, flip: true,
     title: Latency, title_offset: 30, title_offset_absolute: true}
`

func TestParse(t *testing.T) {
	sc, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, 300, sc.Width)
	assert.Equal(t, 120, sc.Height)
	require.Len(t, sc.Axes, 2)

	spec, err := sc.Axes[0].Spec()
	require.NoError(t, err)
	assert.Equal(t, 2.5, spec.LargeTickStep)
	assert.Equal(t, 4, spec.NumberOfSmallTicks)
	assert.Equal(t, color.NRGBA{0, 0xff, 0, 0xff}, spec.AxisColor)
	assert.Equal(t, color.RGBA{0, 0, 0x80, 0xff}, spec.TickTextColor)
	assert.Equal(t, "{0:F1}", spec.NumberFormat)
	assert.Equal(t, axis.Seg(10, 100, 290, 100), sc.Axes[0].Segment())

	spec, err = sc.Axes[1].Spec()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(spec.LargeTickStep), "unset step should be automatic")
	assert.Equal(t, axis.AutoSmallTicks, spec.NumberOfSmallTicks)
	assert.Equal(t, 6.0, spec.LargeTickSize)
	assert.True(t, spec.Log)
	assert.True(t, spec.FlipSide)
	assert.Equal(t, "Latency", spec.Label)
	assert.Equal(t, 30.0, spec.LabelOffset)
	assert.True(t, spec.LabelOffsetAbsolute)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		yaml string
		want string
	}{
		{"width: 0\naxes: [{from: [0, 0], to: [1, 1]}]", "canvas size"},
		{"width: 10", "no axes"},
		{"axes: [{from: [0, 0]}]", "to must be"},
		{"axes: [{from: [0, 0], to: [1, .inf]}]", "not finite"},
		{"axes: [{from: [0, 0], to: [1, 1], color: mauve-ish}]", "unknown color"},
		{"axes: [{from: [0, 0], to: [1, 1], color: '#12345'}]", "bad hex"},
		{"axes: [{from: [0, 0], to: [1, 1], small_ticks: -2}]", "small_ticks"},
		{"candles: {}", "one of data or points"},
		{"candles: {data: x.csv, points: [[1, 2, 3, 4, 5]]}", "mutually exclusive"},
		{"candles: {points: [[1, 2, 3]]}", "point 0"},
		{"candles: {points: [[1, 2, 3, 4, 5]], style: hollow}", "candle style"},
		{"candles: {points: [[1, 2, 3, 4, 5]], stick_width: -1}", "stick_width"},
		{"candles: {points: [[1, 2, 3, 4, 5]], grid: nope}", "grid"},
		{"axes: [", "parse scene yaml"},
	}
	for _, test := range tests {
		_, err := Parse([]byte(test.yaml))
		if assert.Error(t, err, test.yaml) {
			assert.Contains(t, err.Error(), test.want, test.yaml)
		}
	}
}

func TestParseFormatError(t *testing.T) {
	_, err := Parse([]byte(`axes: [{from: [0, 0], to: [1, 1], format: "{0:D}"}]`))
	var fe *numfmt.FormatError
	require.True(t, errors.As(err, &fe), "got %v", err)
	assert.Equal(t, "{0:D}", fe.Pattern)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"", nil},
		{"cyan", color.RGBA{0, 0xff, 0xff, 0xff}},
		{" Black ", color.RGBA{0, 0, 0, 0xff}},
		{"#abc", color.NRGBA{0xaa, 0xbb, 0xcc, 0xff}},
		{"#102030", color.NRGBA{0x10, 0x20, 0x30, 0xff}},
		{"#10203040", color.NRGBA{0x10, 0x20, 0x30, 0x40}},
	}
	for _, test := range tests {
		got, err := ParseColor(test.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseColor(%q) = %v, want %v", test.in, got, test.want)
		}
	}
	for _, bad := range []string{"#", "#ggg", "#1234", "notacolor"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", bad)
		}
	}
}

func TestAxisTests(t *testing.T) {
	sc := AxisTests()
	require.Len(t, sc.Axes, 10)

	first, err := sc.Axes[0].Spec()
	require.NoError(t, err)
	assert.False(t, first.Reversed)

	last, err := sc.Axes[9].Spec()
	require.NoError(t, err)
	assert.True(t, last.Reversed)
	assert.Equal(t, -3.0, last.WorldMin)
	assert.Equal(t, 100000.0, last.WorldMax)
	assert.Equal(t, 5, last.NumberOfSmallTicks)
	assert.Equal(t, "{0:0.0E+0}", last.NumberFormat)

	slanted := sc.Axes[7].Segment()
	assert.NotEqual(t, slanted.Start.X, slanted.End.X)
}

func TestLoadResolvesData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("candles: {data: prices.csv}\n"), 0666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prices.csv"), []byte("1,2,4,1,3\n2,3,5,2,2\n"), 0666))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "prices.csv"), sc.Candles.Data)

	p, err := sc.Candles.Plot()
	require.NoError(t, err)
	assert.Equal(t, []candle.OHLC{
		{X: 1, Open: 2, High: 4, Low: 1, Close: 3},
		{X: 2, Open: 3, High: 5, Low: 2, Close: 2},
	}, p.Points)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadCSV(t *testing.T) {
	in := `# daily prices
Date, Close, Open, High, Low
2024-01-02, 11, 10, 12, 9
2024-01-03, 10.5, 11, 11.5, 10
`
	pts, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, pts, 2)
	assert.Equal(t, candle.OHLC{X: 19724, Open: 10, High: 12, Low: 9, Close: 11}, pts[0])
	assert.Equal(t, 1.0, pts[1].X-pts[0].X)

	for _, bad := range []string{
		"",
		"x,open,high,low\n1,2,3,4\n",
		"1,2,3,4,five\n",
		"yesterday,2,3,4,5\n",
	} {
		if _, err := ReadCSV(strings.NewReader(bad)); err == nil {
			t.Errorf("ReadCSV(%q) succeeded, want error", bad)
		}
	}
}
