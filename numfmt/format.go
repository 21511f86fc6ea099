// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numfmt formats tick label values.
//
// A pattern is one of:
//
//   - empty, for a short decimal rendering;
//   - a printf-style format with exactly one floating-point verb
//     (%e, %E, %f, %F, %g, %G) or %d, such as "%.2f s";
//   - a composite format with a single {0} placeholder, optionally
//     with an alignment and a numeric format: "{0:0.0E+0}",
//     "{0,8:N2} ms";
//   - a bare numeric format, such as "0.00", "#,##0", "E3" or "P1".
//
// Numeric formats are either a standard specifier (a letter from
// EFGNPR, in either case, with an optional precision) or a custom
// pattern built from 0, #, '.', ',', '%' and exponent markers such as
// E+0.
package numfmt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// A FormatError reports a pattern that cannot format numbers.
type FormatError struct {
	Pattern string // the pattern being parsed
	Pos     int    // byte offset of the problem in Pattern
	Msg     string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid number format %q at offset %d: %s", e.Pattern, e.Pos, e.Msg)
}

// A Format is a compiled label pattern. Formats are immutable and
// safe for concurrent use.
type Format struct {
	pattern        string
	prefix, suffix string
	align          int
	num            numeric
	lang           language.Tag
}

type numeric interface {
	format(v float64, lang language.Tag) string
}

// printfVerb matches a fmt verb that takes a number.
var printfVerb = regexp.MustCompile(`%[-+# 0]*[0-9]*(\.[0-9]*)?[eEfFgGd]`)

// Parse compiles pattern. It returns a *FormatError if pattern cannot
// be used to format a floating-point value.
func Parse(pattern string) (*Format, error) {
	f := &Format{pattern: pattern, lang: language.English}
	var err error
	switch {
	case pattern == "":
		f.num = shortest{}
	case strings.ContainsAny(pattern, "{}"):
		err = f.parseComposite()
	case isPrintf(pattern):
		f.num, err = parsePrintf(pattern)
	default:
		f.num, err = parseNumeric(pattern, pattern, 0)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// MustParse is like Parse but panics if pattern is invalid.
func MustParse(pattern string) *Format {
	f, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// Sprint formats v with pattern.
func Sprint(pattern string, v float64) (string, error) {
	f, err := Parse(pattern)
	if err != nil {
		return "", err
	}
	return f.Format(v), nil
}

// WithLanguage returns a copy of f that groups digits of N and P
// formats using the conventions of tag.
func (f *Format) WithLanguage(tag language.Tag) *Format {
	f2 := *f
	f2.lang = tag
	return &f2
}

// String returns the pattern f was parsed from.
func (f *Format) String() string {
	return f.pattern
}

// Format renders v.
func (f *Format) Format(v float64) string {
	if v == 0 {
		// Drop the sign of negative zero.
		v = 0
	}
	s := f.num.format(v, f.lang)
	if f.align != 0 {
		s = fmt.Sprintf("%*s", f.align, s)
	}
	return f.prefix + s + f.suffix
}

func (f *Format) parseComposite() error {
	p := f.pattern
	var pre, suf strings.Builder
	cur, found := &pre, false
	for i := 0; i < len(p); i++ {
		switch c := p[i]; c {
		case '{':
			if i+1 < len(p) && p[i+1] == '{' {
				cur.WriteByte('{')
				i++
				continue
			}
			if found {
				return &FormatError{p, i, "more than one placeholder"}
			}
			end := strings.IndexByte(p[i:], '}')
			if end < 0 {
				return &FormatError{p, i, "unclosed placeholder"}
			}
			if err := f.parsePlaceholder(i+1, i+end); err != nil {
				return err
			}
			found, cur = true, &suf
			i += end
		case '}':
			if i+1 < len(p) && p[i+1] == '}' {
				cur.WriteByte('}')
				i++
				continue
			}
			return &FormatError{p, i, "unmatched '}'"}
		default:
			cur.WriteByte(c)
		}
	}
	if !found {
		return &FormatError{p, 0, "no {0} placeholder"}
	}
	f.prefix, f.suffix = pre.String(), suf.String()
	return nil
}

// parsePlaceholder parses the body of a {index[,align][:format]}
// item, which occupies f.pattern[start:end].
func (f *Format) parsePlaceholder(start, end int) error {
	p := f.pattern
	body := p[start:end]
	spec, hasSpec := "", false
	if i := strings.IndexByte(body, ':'); i >= 0 {
		body, spec, hasSpec = body[:i], body[i+1:], true
	}
	index, align := body, ""
	if i := strings.IndexByte(body, ','); i >= 0 {
		index, align = body[:i], body[i+1:]
	}
	if strings.TrimSpace(index) != "0" {
		return &FormatError{p, start, fmt.Sprintf("placeholder index %q is not 0", strings.TrimSpace(index))}
	}
	if align != "" {
		n, err := strconv.Atoi(strings.TrimSpace(align))
		if err != nil {
			return &FormatError{p, start + len(index) + 1, fmt.Sprintf("bad alignment %q", align)}
		}
		f.align = n
	}
	if !hasSpec {
		f.num = shortest{}
		return nil
	}
	var err error
	f.num, err = parseNumeric(p, spec, start+len(body)+1)
	return err
}

// shortest renders values with up to 12 significant digits, which
// hides the rounding noise accumulated by tick arithmetic.
type shortest struct{}

func (shortest) format(v float64, _ language.Tag) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return strconv.FormatFloat(v, 'g', 12, 64)
}

// spaceVerb is a verb with only the space flag, such as "% d". In
// "0.0 % done" it is a percent sign followed by text, not a verb.
var spaceVerb = regexp.MustCompile(`^% +[a-zA-Z]$`)

// isPrintf reports whether p is a fmt pattern rather than a custom
// numeric one. A space-flag verb only counts when p has no digit
// placeholders outside it.
func isPrintf(p string) bool {
	for _, loc := range printfVerb.FindAllStringIndex(p, -1) {
		if !spaceVerb.MatchString(p[loc[0]:loc[1]]) {
			return true
		}
		if !strings.ContainsAny(p[:loc[0]]+p[loc[1]:], "0#") {
			return true
		}
	}
	return false
}

type printfNum struct {
	pattern    string
	integer    bool
	start, end int // extent of the verb in pattern
}

func parsePrintf(p string) (numeric, error) {
	n := printfNum{pattern: p}
	verbs := 0
	for i := 0; i < len(p); i++ {
		if p[i] != '%' {
			continue
		}
		start := i
		i++
		if i < len(p) && p[i] == '%' {
			continue
		}
		for i < len(p) && strings.IndexByte("+-# 0", p[i]) >= 0 {
			i++
		}
		for i < len(p) && isDigit(p[i]) {
			i++
		}
		if i < len(p) && p[i] == '.' {
			i++
			for i < len(p) && isDigit(p[i]) {
				i++
			}
		}
		if i >= len(p) {
			return nil, &FormatError{p, start, "incomplete verb"}
		}
		switch p[i] {
		case 'e', 'E', 'f', 'F', 'g', 'G':
		case 'd':
			n.integer = true
		default:
			return nil, &FormatError{p, i, fmt.Sprintf("verb %%%c cannot format a number", p[i])}
		}
		n.start, n.end = start, i+1
		verbs++
	}
	if verbs != 1 {
		return nil, &FormatError{p, 0, fmt.Sprintf("want exactly one verb, found %d", verbs)}
	}
	return n, nil
}

func (n printfNum) format(v float64, _ language.Tag) string {
	if !n.integer {
		return fmt.Sprintf(n.pattern, v)
	}
	if s, ok := nonFinite(v); ok {
		return n.pattern[:n.start] + s + n.pattern[n.end:]
	}
	r := math.Round(v)
	if math.Abs(r) >= 1<<63 {
		// Beyond int64: print the rounded float with the verb's
		// flags and width.
		verb := strings.ReplaceAll(n.pattern[n.start:n.end-1], "#", "")
		if i := strings.IndexByte(verb, '.'); i >= 0 {
			verb = verb[:i]
		}
		return fmt.Sprintf(n.pattern[:n.start]+verb+".0f"+n.pattern[n.end:], r)
	}
	return fmt.Sprintf(n.pattern, int64(r))
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
