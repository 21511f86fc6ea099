// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Log maps [Min, Max] onto [0, 1] logarithmically. Min and Max are
// always positive.
type Log struct {
	Min, Max, Base float64
	Reversed       bool
}

// NewLog returns a new logarithmic scale.
//
// base has no effect on the scaling. It is only used for computing
// tick marks. Bases <= 1 are replaced by 10. Non-positive bounds are
// pulled up to the positive range: a non-positive min becomes max/base
// and a range with no positive values becomes [1, base].
func NewLog(min, max, base float64) Log {
	if !(base > 1) || math.IsInf(base, 0) {
		base = 10
	}
	min, max = normalize(min, max)
	if max <= 0 {
		min, max = 1, base
	} else if min <= 0 {
		min = max / base
	}
	return Log{Min: min, Max: max, Base: base}
}

func (s Log) denom() float64 {
	return math.Log(s.Max) - math.Log(s.Min)
}

// Of maps x to the unit interval. Non-positive x maps to the Min end.
func (s Log) Of(x float64) float64 {
	var u float64
	if d := s.denom(); d == 0 {
		u = 0.5
	} else if x <= 0 {
		u = 0
	} else {
		u = (math.Log(x) - math.Log(s.Min)) / d
	}
	if s.Reversed && s.denom() != 0 {
		u = 1 - u
	}
	return u
}

// Inverse maps u in the unit interval back to world coordinates.
func (s Log) Inverse(u float64) float64 {
	if s.Reversed {
		u = 1 - u
	}
	return math.Exp(math.Log(s.Min) + u*s.denom())
}

// Nice expands the domain of s to "nice" values of the scale, which
// will translate into major tick marks.
//
// n is the maximum number of major ticks. n must be >= 2.
func (s *Log) Nice(n int) {
	if n < 2 {
		panic("n must be >= 2")
	}
	ebase := s.effectiveBase(n)
	lo := math.Pow(ebase, math.Floor(math.Log(s.Min)/math.Log(ebase)+tickEpsilon))
	hi := math.Pow(ebase, math.Ceil(math.Log(s.Max)/math.Log(ebase)-tickEpsilon))
	s.Min, s.Max = lo, hi
}

// effectiveBase increases the tick base by powers of s.Base until
// there are at most n major ticks.
func (s Log) effectiveBase(n int) float64 {
	ebase := s.Base
	for {
		nticks := 1 + s.denom()/math.Log(ebase)
		if nticks <= float64(n) {
			return ebase
		}
		ebase *= s.Base
	}
}

// Ticks returns major ticks at powers of an effective base (a power
// of s.Base chosen so there are at most o.Target+1 major ticks) and
// minor ticks between them. o.Step is ignored. A zero o.Minor
// suppresses minor ticks.
func (s Log) Ticks(o TickOptions) (major, minor []float64) {
	major, minor = []float64{}, []float64{}
	if s.Min == s.Max {
		return append(major, s.Min), minor
	}

	n := o.target() + 1
	ebase := s.effectiveBase(n)
	lo, hi := s.Min*(1-tickEpsilon), s.Max*(1+tickEpsilon)
	inRange := func(x float64) bool { return lo <= x && x <= hi }

	// Start at the major tick below s.Min
	x := math.Pow(ebase, math.Floor(math.Log(s.Min)/math.Log(ebase)+tickEpsilon))
	for x <= hi {
		if inRange(x) {
			major = append(major, x)
		}
		if ebase == s.Base {
			for m := 2.0; m < s.Base; m++ {
				if inRange(m * x) {
					minor = append(minor, m*x)
				}
			}
		} else {
			for x2 := x * s.Base; x2 < x*ebase*(1-tickEpsilon); x2 *= s.Base {
				if inRange(x2) {
					minor = append(minor, x2)
				}
			}
		}
		x *= ebase
	}

	if o.Minor == 0 {
		minor = []float64{}
	}
	return
}
