// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// tickEpsilon is the relative slack allowed when deciding whether a
// tick lands on a range bound.
const tickEpsilon = 1e-9

var niceMantissas = []float64{1, 2, 5, 10}

// NiceStep returns a "nice" step for dividing span into roughly
// target intervals: span/target rounded up to 1, 2 or 5 times a power
// of ten. A non-positive or non-finite span yields 1.
func NiceStep(span float64, target int) float64 {
	if !(span > 0) || math.IsInf(span, 0) {
		return 1
	}
	if target <= 0 {
		target = DefaultTickTarget
	}
	raw := span / float64(target)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag
	for _, m := range niceMantissas {
		if norm <= m*(1+tickEpsilon) {
			return m * mag
		}
	}
	return 10 * mag
}

// autoMinor picks a minor tick count that divides step into round
// sub-steps.
func autoMinor(step float64) int {
	if !(step > 0) || math.IsInf(step, 0) {
		return 0
	}
	m := step / math.Pow(10, math.Floor(math.Log10(step)))
	if math.Abs(m-2) < 1e-6 {
		return 3
	}
	return 4
}

// subdivide places n evenly spaced ticks strictly between each pair
// of adjacent values in major.
func subdivide(major []float64, n int) []float64 {
	minor := []float64{}
	if n <= 0 {
		return minor
	}
	for i := 0; i+1 < len(major); i++ {
		pts := vec.Linspace(major[i], major[i+1], n+2)
		minor = append(minor, pts[1:n+1]...)
	}
	return minor
}

// snap rounds values within floating-point noise of zero to exactly
// zero.
func snap(x, step float64) float64 {
	if math.Abs(x) < math.Abs(step)*tickEpsilon {
		return 0
	}
	return x
}
