// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/plotaxis/plotaxis/internal/config"
	"github.com/plotaxis/plotaxis/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// outputFlags are the flags shared by every command that writes
// images.
type outputFlags struct {
	out     string
	formats []string
}

func (o *outputFlags) register(cmd *cobra.Command, defaultOut string) {
	cmd.Flags().StringVarP(&o.out, "output", "o", defaultOut, "output path without extension")
	cmd.Flags().StringSliceVar(&o.formats, "format", []string{"svg"}, "output formats (svg, png)")
}

func (a *app) write(ctx context.Context, cmd *cobra.Command, sc *config.Scene, o *outputFlags) error {
	formats, err := render.ParseFormats(o.formats)
	if err != nil {
		return err
	}
	paths, err := render.Files(ctx, sc, o.out, formats)
	if err != nil {
		return err
	}
	for _, p := range paths {
		a.logger.Info("wrote output", zap.String("path", p))
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}

func (a *app) renderCmd() *cobra.Command {
	var o outputFlags
	var watch bool
	cmd := &cobra.Command{
		Use:   "render <scene.yaml>",
		Short: "Render a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if o.out == "" {
				o.out = strings.TrimSuffix(path, filepath.Ext(path))
			}
			once := func() error {
				sc, err := config.Load(path)
				if err != nil {
					return err
				}
				a.logger.Debug("loaded scene", zap.String("path", path), zap.Int("axes", len(sc.Axes)))
				return a.write(cmd.Context(), cmd, sc, &o)
			}
			if err := once(); err != nil {
				if !watch {
					return err
				}
				a.logger.Error("render failed", zap.Error(err))
			}
			if !watch {
				return nil
			}
			return a.watch(cmd.Context(), path, once)
		},
	}
	o.register(cmd, "")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-render whenever the scene file changes")
	return cmd
}

func (a *app) testsCmd() *cobra.Command {
	var o outputFlags
	cmd := &cobra.Command{
		Use:   "tests",
		Short: "Render the built-in axis test scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.write(cmd.Context(), cmd, config.AxisTests(), &o)
		},
	}
	o.register(cmd, "axistests")
	return cmd
}

func (a *app) financialCmd() *cobra.Command {
	var o outputFlags
	sc := config.Default()
	cc := &config.CandleConfig{Frame: "gray"}
	cmd := &cobra.Command{
		Use:   "financial <data.csv>",
		Short: "Render a candlestick chart of OHLC data",
		Long: `Render a candlestick chart of OHLC data.

The CSV file holds x, open, high, low and close columns, or a header
row naming them. The x column may hold dates (2006-01-02).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc.Data = args[0]
			sc.Candles = cc
			if o.out == "" {
				o.out = strings.TrimSuffix(args[0], filepath.Ext(args[0]))
			}
			if err := sc.Validate(); err != nil {
				return err
			}
			return a.write(cmd.Context(), cmd, sc, &o)
		},
	}
	o.register(cmd, "")
	cmd.Flags().IntVar(&sc.Width, "width", sc.Width, "canvas width in pixels")
	cmd.Flags().IntVar(&sc.Height, "height", sc.Height, "canvas height in pixels")
	cmd.Flags().StringVar(&cc.Style, "style", "filled", "candle style (filled, stick)")
	cmd.Flags().BoolVar(&cc.Centered, "centered", false, "center candles between x values")
	cmd.Flags().StringVar(&cc.YFormat, "y-format", "", "price label format")
	cmd.Flags().StringVar(&cc.XTitle, "x-label", "Date", "x axis title")
	cmd.Flags().StringVar(&cc.YTitle, "y-label", "Price", "y axis title")
	cmd.Flags().BoolVar(&cc.HideXLabels, "hide-x-labels", true, "hide the x tick labels")
	cmd.Flags().StringVar(&cc.Grid, "grid", "", "grid line color (empty for none)")
	return cmd
}
