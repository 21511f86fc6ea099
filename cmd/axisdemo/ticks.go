// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/plotaxis/plotaxis/axis"
	"github.com/plotaxis/plotaxis/surface"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) ticksCmd() *cobra.Command {
	spec := axis.New(0, 10)
	var length float64
	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Print the ticks of a horizontal axis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := axis.Compute(spec, axis.Seg(0, 0, length, 0), surface.DefaultMeasurer())
			if err != nil {
				return err
			}
			a.logger.Debug("computed axis",
				zap.Float64("step", l.Step),
				zap.Int("large", len(l.Large)),
				zap.Int("small", len(l.Small)))

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(tw, "kind\tworld\tpixel\tlabel\t\n")
			for _, t := range l.Large {
				label := t.Label
				if !t.Labeled {
					label = "(" + label + ")"
				}
				fmt.Fprintf(tw, "large\t%g\t%.1f\t%s\t\n", t.World, t.Pixel.X, label)
			}
			for _, t := range l.Small {
				fmt.Fprintf(tw, "small\t%g\t%.1f\t\t\n", t.World, t.Pixel.X)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if !math.IsNaN(l.Step) {
				fmt.Fprintf(cmd.OutOrStdout(), "step %g\n", l.Step)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&spec.WorldMin, "min", spec.WorldMin, "world minimum")
	f.Float64Var(&spec.WorldMax, "max", spec.WorldMax, "world maximum")
	f.Float64Var(&spec.LargeTickStep, "step", spec.LargeTickStep, "large tick step (NaN for automatic)")
	f.IntVar(&spec.NumberOfSmallTicks, "small", spec.NumberOfSmallTicks, "small ticks between large ticks (-1 for automatic)")
	f.StringVar(&spec.NumberFormat, "label-format", "", "label number format")
	f.BoolVar(&spec.Reversed, "reversed", false, "reverse the axis")
	f.BoolVar(&spec.Log, "log", false, "logarithmic axis")
	f.Float64Var(&length, "length", 400, "axis length in pixels")
	return cmd
}
