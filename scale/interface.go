// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps world coordinates onto the unit interval and
// places tick marks across a world range.
package scale

// A scale satisfies Interface if it maps from some input range to an
// output interval [0, 1].
type Interface interface {
	Of(x float64) float64
	Inverse(u float64) float64
	Ticks(o TickOptions) (major, minor []float64)
}

// AutoMinor requests that the number of minor ticks between each
// pair of major ticks be derived from the major step.
const AutoMinor = -1

// DefaultTickTarget is the number of major intervals the automatic
// step selection aims for.
const DefaultTickTarget = 5

// MaxMajorTicks bounds the number of major ticks an explicit step may
// produce. Steps that would exceed it fall back to automatic
// selection.
const MaxMajorTicks = 1000

// TickOptions controls tick placement.
type TickOptions struct {
	// Step is the distance between major ticks. NaN, zero, negative
	// or infinite values select a step automatically.
	Step float64

	// Minor is the number of minor ticks between adjacent major
	// ticks, or AutoMinor.
	Minor int

	// Target is the number of major intervals automatic step
	// selection aims for. Zero means DefaultTickTarget.
	Target int
}

func (o TickOptions) target() int {
	if o.Target <= 0 {
		return DefaultTickTarget
	}
	return o.Target
}
