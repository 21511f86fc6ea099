// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// MinMax returns the smallest and largest values in xs, ignoring
// NaNs. If xs has no non-NaN values, both results are NaN.
func MinMax(xs []float64) (min float64, max float64) {
	min, max = math.NaN(), math.NaN()
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if math.IsNaN(min) || x < min {
			min = x
		}
		if math.IsNaN(max) || x > max {
			max = x
		}
	}
	return
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// normalize orders a pair of bounds and replaces non-finite bounds.
// A single non-finite bound collapses onto the finite one; if neither
// is finite the result is [0, 1].
func normalize(min, max float64) (float64, float64) {
	switch fmin, fmax := isFinite(min), isFinite(max); {
	case !fmin && !fmax:
		return 0, 1
	case !fmin:
		min = max
	case !fmax:
		max = min
	}
	if min > max {
		min, max = max, min
	}
	return min, max
}
