// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// parseNumeric parses a standard or custom numeric format. spec
// starts at byte off of pattern, which is used for error reporting.
func parseNumeric(pattern, spec string, off int) (numeric, error) {
	if spec == "" {
		return shortest{}, nil
	}
	if isLetter(spec[0]) && allDigits(spec[1:]) {
		return parseStandard(pattern, spec, off)
	}
	return parseCustom(pattern, spec, off)
}

// standard is a standard numeric format such as "F2" or "E".
type standard struct {
	kind  byte // upper-cased specifier
	lower bool
	prec  int // -1 for the default
}

func parseStandard(pattern, spec string, off int) (numeric, error) {
	s := standard{kind: spec[0] &^ 0x20, lower: spec[0]&0x20 != 0, prec: -1}
	if len(spec) > 1 {
		p, err := strconv.Atoi(spec[1:])
		if err != nil || p > 99 {
			return nil, &FormatError{pattern, off + 1, fmt.Sprintf("bad precision %q", spec[1:])}
		}
		s.prec = p
	}
	switch s.kind {
	case 'E', 'F', 'G', 'N', 'P', 'R':
		return s, nil
	case 'C', 'D', 'X', 'B':
		return nil, &FormatError{pattern, off, fmt.Sprintf("format %q does not apply to floating-point values", spec[:1])}
	}
	return nil, &FormatError{pattern, off, fmt.Sprintf("unknown format specifier %q", spec[:1])}
}

func (s standard) precision(def int) int {
	if s.prec < 0 {
		return def
	}
	return s.prec
}

func (s standard) format(v float64, lang language.Tag) string {
	if str, ok := nonFinite(v); ok {
		return str
	}
	var out string
	switch s.kind {
	case 'F':
		out = strconv.FormatFloat(v, 'f', s.precision(2), 64)
	case 'E':
		out = strconv.FormatFloat(v, 'e', s.precision(6), 64)
		mant, exp, _ := strings.Cut(out, "e")
		out = mant + "e" + exp[:1] + padLeft(exp[1:], 3)
	case 'G', 'R':
		out = strconv.FormatFloat(v, 'g', s.precision(-1), 64)
		if s.prec == 0 {
			out = strconv.FormatFloat(v, 'g', -1, 64)
		}
	case 'N':
		out = grouped(v, s.precision(2), lang)
	case 'P':
		out = grouped(v*100, s.precision(2), lang) + "%"
	}
	if !s.lower {
		out = strings.Replace(out, "e", "E", 1)
	}
	return out
}

func grouped(v float64, prec int, lang language.Tag) string {
	p := message.NewPrinter(lang)
	return p.Sprint(number.Decimal(v, number.MinFractionDigits(prec), number.MaxFractionDigits(prec)))
}

// custom is a custom numeric format of up to three sections for
// positive, negative and zero values.
type custom struct {
	sections []*section
}

type section struct {
	prefix, suffix string
	digits         bool // has at least one digit placeholder

	intZeros, intPlaces int // '0' and total placeholders before the point
	fracMin, fracMax    int
	group               bool
	scale               int // trailing commas, each dividing by 1000
	percent             int

	exp       bool
	expUpper  bool
	expPlus   bool
	expDigits int
}

func parseCustom(pattern, spec string, off int) (numeric, error) {
	var c custom
	start := 0
	for _, part := range splitSections(spec) {
		s, err := parseSection(pattern, part, off+start)
		if err != nil {
			return nil, err
		}
		c.sections = append(c.sections, s)
		start += len(part) + 1
	}
	if len(c.sections) > 3 {
		return nil, &FormatError{pattern, off, "more than three sections"}
	}
	if !c.sections[0].digits {
		return nil, &FormatError{pattern, off, "no digit placeholder"}
	}
	return c, nil
}

// splitSections splits spec at unquoted, unescaped semicolons.
func splitSections(spec string) []string {
	var parts []string
	var quote byte
	last := 0
	for i := 0; i < len(spec); i++ {
		switch c := spec[i]; {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\\':
			i++
		case c == '\'' || c == '"':
			quote = c
		case c == ';':
			parts = append(parts, spec[last:i])
			last = i + 1
		}
	}
	return append(parts, spec[last:])
}

func parseSection(pattern, part string, off int) (*section, error) {
	s := &section{}
	const (
		before = iota // literals go to the prefix
		inside        // within the digit placeholders
		after         // literals go to the suffix
	)
	state := before
	point := false
	commas := 0 // commas not yet followed by a placeholder
	var pre, suf strings.Builder
	lit := func(str string) {
		if state == inside {
			state = after
		}
		if state == before {
			pre.WriteString(str)
		} else {
			suf.WriteString(str)
		}
	}
	placeholder := func(i int) error {
		if state == after {
			return &FormatError{pattern, off + i, "digit placeholders must be contiguous"}
		}
		state = inside
		return nil
	}

	for i := 0; i < len(part); i++ {
		c := part[i]
		switch {
		case c == '0' || c == '#':
			if err := placeholder(i); err != nil {
				return nil, err
			}
			s.digits = true
			if s.exp {
				return nil, &FormatError{pattern, off + i, "digit placeholder after exponent"}
			}
			if point {
				s.fracMax++
				if c == '0' {
					s.fracMin = s.fracMax
				}
				continue
			}
			if commas > 0 && s.intPlaces > 0 {
				s.group = true
			}
			commas = 0
			s.intPlaces++
			if c == '0' {
				s.intZeros++
			}
		case c == '.':
			if err := placeholder(i); err != nil {
				return nil, err
			}
			if !point {
				s.scale += commas
				commas = 0
			}
			point = true
		case c == ',':
			if state == inside && !point {
				commas++
			} else {
				lit(",")
			}
		case c == '%':
			s.percent++
			lit("%")
		case (c == 'E' || c == 'e') && state == inside && !s.exp && isExponent(part[i+1:]):
			s.exp, s.expUpper = true, c == 'E'
			i++
			if part[i] == '+' || part[i] == '-' {
				s.expPlus = part[i] == '+'
				i++
			}
			for i < len(part) && part[i] == '0' {
				s.expDigits++
				i++
			}
			i--
		case c == '\\':
			if i+1 == len(part) {
				return nil, &FormatError{pattern, off + i, "trailing backslash"}
			}
			i++
			lit(part[i : i+1])
		case c == '\'' || c == '"':
			end := strings.IndexByte(part[i+1:], c)
			if end < 0 {
				return nil, &FormatError{pattern, off + i, "unterminated quoted literal"}
			}
			lit(part[i+1 : i+1+end])
			i += end + 1
		default:
			lit(part[i : i+1])
		}
	}
	if !point {
		s.scale += commas
	}
	s.prefix, s.suffix = pre.String(), suf.String()
	return s, nil
}

// isExponent reports whether rest follows an E or e that starts an
// exponent: an optional sign and at least one '0'.
func isExponent(rest string) bool {
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		rest = rest[1:]
	}
	return rest != "" && rest[0] == '0'
}

func (c custom) format(v float64, _ language.Tag) string {
	if str, ok := nonFinite(v); ok {
		return str
	}
	s, neg := c.sections[0], v < 0
	switch {
	case v < 0 && len(c.sections) >= 2 && c.sections[1].digits:
		s, neg = c.sections[1], false
	case v == 0 && len(c.sections) == 3 && c.sections[2].digits:
		s = c.sections[2]
	}
	num := s.number(math.Abs(v))
	if neg && strings.ContainsAny(num, "123456789") {
		num = "-" + num
	}
	return s.prefix + num + s.suffix
}

// number renders the digits of v >= 0.
func (s *section) number(v float64) string {
	v *= math.Pow(100, float64(s.percent))
	v /= math.Pow(1000, float64(s.scale))
	if !s.exp {
		return s.fixed(strconv.FormatFloat(v, 'f', s.fracMax, 64))
	}

	intDigits := s.intPlaces
	if intDigits < 1 {
		intDigits = 1
	}
	exp := 0
	if v != 0 {
		exp = int(math.Floor(math.Log10(v))) - (intDigits - 1)
	}
	mant := strconv.FormatFloat(v/math.Pow10(exp), 'f', s.fracMax, 64)
	if whole, _, _ := strings.Cut(mant, "."); len(whole) > intDigits {
		// Rounding carried into a new digit.
		exp++
		mant = strconv.FormatFloat(v/math.Pow10(exp), 'f', s.fracMax, 64)
	}

	var b strings.Builder
	b.WriteString(s.fixed(mant))
	if s.expUpper {
		b.WriteByte('E')
	} else {
		b.WriteByte('e')
	}
	if exp < 0 {
		b.WriteByte('-')
		exp = -exp
	} else if s.expPlus {
		b.WriteByte('+')
	}
	b.WriteString(padLeft(strconv.Itoa(exp), s.expDigits))
	return b.String()
}

// fixed applies the placeholder rules to a plain decimal string.
func (s *section) fixed(str string) string {
	whole, frac, _ := strings.Cut(str, ".")
	for len(frac) > s.fracMin && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}
	whole = strings.TrimLeft(whole, "0")
	whole = padLeft(whole, s.intZeros)
	if s.group {
		whole = groupThousands(whole)
	}
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func padLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}

func isLetter(c byte) bool {
	return 'a' <= c|0x20 && c|0x20 <= 'z'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
