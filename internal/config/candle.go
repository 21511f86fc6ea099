// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/plotaxis/plotaxis/candle"
)

func (c *CandleConfig) style() (candle.Style, error) {
	switch strings.ToLower(c.Style) {
	case "", "filled":
		return candle.Filled, nil
	case "stick":
		return candle.Stick, nil
	}
	return 0, fmt.Errorf("unknown candle style %q", c.Style)
}

// Plot builds the candlestick plot c describes, reading its data
// file if it has one.
func (c *CandleConfig) Plot() (*candle.Plot, error) {
	style, err := c.style()
	if err != nil {
		return nil, err
	}
	p := &candle.Plot{Style: style, StickWidth: c.StickWidth, Centered: c.Centered}
	if p.Color, err = ParseColor(c.Color); err != nil {
		return nil, err
	}
	if p.BullishColor, err = ParseColor(c.Bullish); err != nil {
		return nil, err
	}
	if p.BearishColor, err = ParseColor(c.Bearish); err != nil {
		return nil, err
	}

	if c.Data != "" {
		p.Points, err = LoadCSV(c.Data)
		return p, err
	}
	for _, row := range c.Points {
		p.Points = append(p.Points, candle.OHLC{X: row[0], Open: row[1], High: row[2], Low: row[3], Close: row[4]})
	}
	return p, nil
}

// LoadCSV reads OHLC rows from the CSV file at path.
func LoadCSV(path string) ([]candle.OHLC, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pts, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pts, nil
}

// ReadCSV reads OHLC rows. Columns are x, open, high, low and close
// in that order, unless the first row is a header naming them
// (x, date or time; open; high; low; close) in any order. An x value
// that is not a number may be a date, which is converted to days
// since 1970-01-01.
func ReadCSV(r io.Reader) ([]candle.OHLC, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("no rows")
	}

	cols := [5]int{0, 1, 2, 3, 4}
	if _, err := strconv.ParseFloat(records[0][len(records[0])-1], 64); err != nil {
		if cols, err = header(records[0]); err != nil {
			return nil, err
		}
		records = records[1:]
	}

	pts := make([]candle.OHLC, 0, len(records))
	for i, rec := range records {
		var v [5]float64
		for j, col := range cols {
			if col >= len(rec) {
				return nil, fmt.Errorf("row %d: missing column %d", i+1, col+1)
			}
			if j == 0 {
				v[j], err = parseX(rec[col])
			} else {
				v[j], err = strconv.ParseFloat(rec[col], 64)
			}
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		pts = append(pts, candle.OHLC{X: v[0], Open: v[1], High: v[2], Low: v[3], Close: v[4]})
	}
	return pts, nil
}

func header(rec []string) ([5]int, error) {
	cols := [5]int{-1, -1, -1, -1, -1}
	for i, name := range rec {
		var j int
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "x", "date", "time":
			j = 0
		case "open":
			j = 1
		case "high":
			j = 2
		case "low":
			j = 3
		case "close":
			j = 4
		default:
			continue
		}
		cols[j] = i
	}
	for j, name := range []string{"x", "open", "high", "low", "close"} {
		if cols[j] < 0 {
			return cols, fmt.Errorf("header has no %s column", name)
		}
	}
	return cols, nil
}

func parseX(s string) (float64, error) {
	if x, err := strconv.ParseFloat(s, 64); err == nil {
		return x, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return 0, fmt.Errorf("x value %q is neither a number nor a date", s)
	}
	return float64(t.Unix()) / (24 * 60 * 60), nil
}
