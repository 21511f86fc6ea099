// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import _ "embed"

//go:embed scenes/axistests.yaml
var axisTests []byte

// AxisTests returns the built-in scene that draws the same linear
// axis ten times, changing one setting between each: reversal, small
// tick size, an explicit step, small tick count, colors, a slanted
// segment, a wide range and a scientific label format.
func AxisTests() *Scene {
	sc, err := Parse(axisTests)
	if err != nil {
		panic("built-in axis test scene: " + err.Error())
	}
	return sc
}
