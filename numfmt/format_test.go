// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfmt

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFormat(t *testing.T) {
	for _, test := range []struct {
		pattern string
		v       float64
		want    string
	}{
		// Default.
		{"", 2, "2"},
		{"", 0.1 + 0.2, "0.3"},
		{"", 100000, "100000"},
		{"", -2.5, "-2.5"},
		{"", math.Copysign(0, -1), "0"},

		// printf.
		{"%.2f", 3.14159, "3.14"},
		{"%g", 2.5, "2.5"},
		{"%5.1f%%", 12.34, " 12.3%"},
		{"t=%d s", 2.6, "t=3 s"},
		{"%e", 100000, "1.000000e+05"},
		{"%d", 1e19, "10000000000000000000"},
		{"%d", -1e19, "-10000000000000000000"},
		{"[%+25d]", 1e19, "[    +10000000000000000000]"},
		{"%#.3d", 1e19, "10000000000000000000"},
		{"% d", 5, " 5"},
		{"%% %d", 5, "% 5"},

		// Composite.
		{"{0}", 2.5, "2.5"},
		{"{0:0.0E+0}", 100000, "1.0E+5"},
		{"{0:0.0E+0}", 50000, "5.0E+4"},
		{"{0:0.0E+0}", 0, "0.0E+0"},
		{"{0:0.0E+0}", -3, "-3.0E+0"},
		{"{0:0.0E+0}", 99999, "1.0E+5"},
		{"{0:0.00e-00}", 0.00123, "1.23e-03"},
		{"{0:0.0E+0}", 0.00123, "1.2E-3"},
		{"{0:F2} ms", 1.5, "1.50 ms"},
		{"{{{0:0}}}", 7, "{7}"},
		{"[{0,6:0.0}]", 2.5, "[   2.5]"},
		{"[{0,-6:0.0}]", 2.5, "[2.5   ]"},

		// Standard specifiers.
		{"F", 2, "2.00"},
		{"F0", 2.4, "2"},
		{"E3", 12346, "1.235E+004"},
		{"e2", 0.5, "5.00e-001"},
		{"G", 2.5, "2.5"},
		{"N2", 1234567.891, "1,234,567.89"},
		{"N0", -1234, "-1,234"},
		{"P1", 0.125, "12.5%"},

		// Custom.
		{"0.00", 2, "2.00"},
		{"0.##", 2.5, "2.5"},
		{"0.0#", 2, "2.0"},
		{"#.##", 0.5, ".5"},
		{"000", 7, "007"},
		{"#,##0", 1234567, "1,234,567"},
		{"#,##0.00", 1234.5, "1,234.50"},
		{"0,", 25000, "25"},
		{"0.0%", 0.125, "12.5%"},
		{"'$'0.00", 3, "$3.00"},
		{"0 \\k", 3, "3 k"},
		{"0.0;(0.0)", -2.5, "(2.5)"},
		{"0.0;(0.0);zero 0", 0, "zero 0"},
		{"0.0", -0.01, "0.0"},
		{"0.0", -1.26, "-1.3"},
		{"0.0 % done", 0.05, "5.0 % done"},
		{"# % d", 0.5, "50 % d"},

		// Non-finite values.
		{"0.0", math.NaN(), "NaN"},
		{"F2", math.Inf(1), "Infinity"},
		{"%d", math.Inf(-1), "-Infinity"},
	} {
		f, err := Parse(test.pattern)
		if !assert.NoError(t, err, "Parse(%q)", test.pattern) {
			continue
		}
		assert.Equal(t, test.want, f.Format(test.v), "pattern %q, value %v", test.pattern, test.v)
	}
}

func TestFormatHugeInteger(t *testing.T) {
	f := MustParse("%d")
	for _, v := range []float64{1e300, math.MaxFloat64, 9.3e18} {
		s := f.Format(v)
		assert.NotContains(t, s, "-", "Format(%v)", v)
		assert.NotContains(t, s, ".", "Format(%v)", v)
		assert.Equal(t, len(fmt.Sprintf("%.0f", v)), len(s), "Format(%v)", v)
	}
}

func TestParseErrors(t *testing.T) {
	for _, pattern := range []string{
		"{1}",
		"{0",
		"x}",
		"{0}{0}",
		"no placeholder {{}}",
		"{0:D}",
		"{0:X4}",
		"{0:Q}",
		"{0,abc}",
		"%d %f",
		"%.2",
		"%s %f",
		"abc",
		"0 0",
		"'0.0",
		"0\\",
		"0;0;0;0",
		"E999",
	} {
		_, err := Parse(pattern)
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("Parse(%q) error = %v, want *FormatError", pattern, err)
			continue
		}
		assert.Equal(t, pattern, fe.Pattern)
		assert.GreaterOrEqual(t, fe.Pos, 0)
		assert.LessOrEqual(t, fe.Pos, len(pattern))
	}
}

func TestSprint(t *testing.T) {
	s, err := Sprint("{0:0.0}", 1)
	require.NoError(t, err)
	assert.Equal(t, "1.0", s)

	_, err = Sprint("{2}", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "{2}")
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("{0:D}") })
	assert.NotPanics(t, func() { MustParse("{0:D0.0}") })
}

func TestWithLanguage(t *testing.T) {
	f := MustParse("N2")
	de := f.WithLanguage(language.German)
	assert.Equal(t, "1,234.50", f.Format(1234.5))
	assert.Equal(t, "1.234,50", de.Format(1234.5))
	assert.Equal(t, "N2", de.String())
}
