// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Linear maps the world interval [Min, Max] linearly onto [0, 1].
// Min <= Max always holds; Reversed maps Min to 1 instead of 0.
type Linear struct {
	Min, Max float64
	Reversed bool
}

// NewLinear returns a new linear scale over [min, max]. Swapped
// bounds are reordered and non-finite bounds are replaced (see
// normalize).
func NewLinear(min, max float64) Linear {
	min, max = normalize(min, max)
	return Linear{Min: min, Max: max}
}

// Fit returns a linear scale spanning the values in input.
func Fit(input []float64) Linear {
	return NewLinear(MinMax(input))
}

// Width returns Max - Min.
func (s Linear) Width() float64 {
	return s.Max - s.Min
}

// Of maps x to the unit interval. Every x maps to 0.5 on a
// zero-width scale.
func (s Linear) Of(x float64) float64 {
	w := s.Max - s.Min
	if w == 0 {
		return 0.5
	}
	u := (x - s.Min) / w
	if s.Reversed {
		u = 1 - u
	}
	return u
}

// Inverse maps u in the unit interval back to world coordinates.
func (s Linear) Inverse(u float64) float64 {
	if s.Reversed {
		u = 1 - u
	}
	return s.Min + u*(s.Max-s.Min)
}

// Step returns the major tick step Ticks will use for o.
func (s Linear) Step(o TickOptions) float64 {
	step, _ := s.step(o)
	return step
}

func (s Linear) step(o TickOptions) (step float64, explicit bool) {
	span := s.Max - s.Min
	if o.Step > 0 && !math.IsInf(o.Step, 0) && span/o.Step <= MaxMajorTicks {
		return o.Step, true
	}
	return NiceStep(span, o.target()), false
}

// Ticks returns the major and minor tick positions of s.
//
// With an explicit step, major ticks sit at Min + k*Step for every k
// that stays within the range, so there are floor(width/Step)+1 of
// them. Otherwise major ticks sit at the multiples of NiceStep that
// fall within the range. A zero-width scale has a single major tick
// at Min and no minor ticks.
func (s Linear) Ticks(o TickOptions) (major, minor []float64) {
	span := s.Max - s.Min
	if span == 0 {
		return []float64{s.Min}, []float64{}
	}
	if math.IsInf(span, 0) {
		return []float64{s.Min, s.Max}, []float64{}
	}

	step, explicit := s.step(o)
	if explicit {
		n := int(math.Floor(span/step + tickEpsilon))
		major = make([]float64, n+1)
		for k := range major {
			major[k] = s.place(s.Min+float64(k)*step, step)
		}
	} else {
		first := math.Ceil(s.Min/step - tickEpsilon)
		last := math.Floor(s.Max/step + tickEpsilon)
		n := int(last - first)
		if n < 0 || n > MaxMajorTicks {
			return []float64{s.Min, s.Max}, []float64{}
		}
		major = make([]float64, n+1)
		for k := range major {
			major[k] = s.place((first+float64(k))*step, step)
		}
	}

	nminor := o.Minor
	if nminor == AutoMinor {
		nminor = autoMinor(step)
	}
	return major, subdivide(major, nminor)
}

// place snaps x to zero when it is within rounding noise of it and
// clamps it into the range.
func (s Linear) place(x, step float64) float64 {
	return clamp(snap(x, step), s.Min, s.Max)
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(x, hi))
}
