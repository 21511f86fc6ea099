// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plotaxis/plotaxis/internal/config"
	"github.com/plotaxis/plotaxis/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candleScene(t *testing.T) *config.Scene {
	t.Helper()
	sc, err := config.Parse([]byte(`
width: 400
height: 300
background: "#f0f0f0"
candles:
  frame: gray
  y_format: "{0:F1}"
  y_title: Price
  hide_x_labels: true
  points:
    - [1, 10, 12, 9, 11]
    - [2, 11, 11.5, 8, 9]
    - [3, 9, 13, 9, 12]
`))
	require.NoError(t, err)
	return sc
}

func TestParseFormats(t *testing.T) {
	fs, err := ParseFormats([]string{"svg", " PNG"})
	require.NoError(t, err)
	assert.Equal(t, []Format{SVG, PNG}, fs)

	_, err = ParseFormats([]string{"gif"})
	assert.ErrorContains(t, err, "gif")
}

func TestDrawAxisTests(t *testing.T) {
	sc := config.AxisTests()
	rec := surface.NewRecorder()
	bounds, err := Draw(rec, sc)
	require.NoError(t, err)

	canvas := surface.Rect{Max: surface.Pt(float64(sc.Width), float64(sc.Height))}
	assert.True(t, canvas.ContainsRect(bounds), "bounds %v outside canvas %v", bounds, canvas)
	for _, op := range rec.Ops {
		assert.True(t, bounds.ContainsRect(op.Extent()), "%v op %v outside %v", op.Kind, op.Extent(), bounds)
	}

	var labels []string
	for _, op := range rec.Filter(surface.OpText) {
		labels = append(labels, op.Text)
	}
	assert.Contains(t, labels, "2.5")
	assert.Contains(t, labels, "1.0E+5")
}

func TestDrawShowBounds(t *testing.T) {
	sc := config.AxisTests()
	sc.Axes = sc.Axes[:1]
	sc.ShowBounds = true
	rec := surface.NewRecorder()
	bounds, err := Draw(rec, sc)
	require.NoError(t, err)

	rects := rec.Filter(surface.OpRect)
	require.Len(t, rects, 1)
	assert.Equal(t, bounds, rects[0].Box)
}

func TestDrawCandles(t *testing.T) {
	rec := surface.NewRecorder()
	_, err := Draw(rec, candleScene(t))
	require.NoError(t, err)

	rects := rec.Filter(surface.OpRect)
	// Background, frame and three bodies.
	require.Len(t, rects, 5)
	assert.Equal(t, surface.Rect{Max: surface.Pt(400, 300)}, rects[0].Box)

	var labels []string
	for _, op := range rec.Filter(surface.OpText) {
		labels = append(labels, op.Text)
	}
	assert.Contains(t, labels, "10.0")
	assert.Contains(t, labels, "Price")
	for _, l := range labels {
		assert.NotEqual(t, "2", l, "x tick labels should be hidden")
	}
}

func TestDrawCandleGrid(t *testing.T) {
	sc := candleScene(t)
	sc.Candles.Grid = "#c0c0c0"
	sc.Candles.YTitle = ""
	rec := surface.NewRecorder()
	bounds, err := Draw(rec, sc)
	require.NoError(t, err)

	var grid int
	for _, op := range rec.Filter(surface.OpLine) {
		if op.Stroke.Color == (color.NRGBA{0xc0, 0xc0, 0xc0, 0xff}) {
			grid++
		}
		assert.True(t, bounds.ContainsRect(op.Extent()))
	}
	assert.NotZero(t, grid)
}

func TestWrite(t *testing.T) {
	sc := candleScene(t)

	var svg bytes.Buffer
	require.NoError(t, Write(&svg, sc, SVG))
	assert.True(t, strings.HasPrefix(svg.String(), "<svg"))
	assert.True(t, strings.HasSuffix(svg.String(), "</svg>\n"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sc, PNG))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	assert.Error(t, Write(&buf, sc, Format("gif")))
}

func TestFiles(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out")
	paths, err := Files(context.Background(), config.AxisTests(), base, []Format{SVG, PNG})
	require.NoError(t, err)
	assert.Equal(t, []string{base + ".svg", base + ".png"}, paths)
	for _, p := range paths {
		fi, err := os.Stat(p)
		require.NoError(t, err)
		assert.NotZero(t, fi.Size())
	}
}

func TestFilesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Files(ctx, config.AxisTests(), filepath.Join(t.TempDir(), "out"), []Format{SVG})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteFileKeepsOldOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0666))

	sc := config.AxisTests()
	sc.Axes[0].Format = "%d %d"
	assert.Error(t, WriteFile(path, sc, SVG))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))
}
