// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws a bar chart comparing the total parse time of
// both parsers on each fixture.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"golang.org/x/json5bench/fixture"
	"golang.org/x/json5bench/timing"
)

const dpi = 96

var barColors = [2]color.Color{
	color.RGBA{0x4c, 0x72, 0xb0, 0xff},
	color.RGBA{0xdd, 0x84, 0x52, 0xff},
}

// New builds the chart. labels are the baseline and candidate parser
// names.
func New(set fixture.Set, pairs []timing.Pair, labels [2]string) (*plot.Plot, error) {
	if len(set) == 0 {
		return nil, errors.New("chart: no fixtures")
	}
	if len(set) != len(pairs) {
		return nil, fmt.Errorf("chart: %d fixtures but %d timings", len(set), len(pairs))
	}

	var values [2]plotter.Values
	names := make([]string, len(set))
	for i, f := range set {
		names[i] = f.Name()
		values[0] = append(values[0], pairs[i].Baseline.Seconds())
		values[1] = append(values[1], pairs[i].Candidate.Seconds())
	}

	pl := plot.New()
	pl.Title.Text = "Total parse time"
	pl.Y.Label.Text = "seconds"
	pl.Legend.Top = true

	w := vg.Points(16)
	for j := range values {
		bars, err := plotter.NewBarChart(values[j], w)
		if err != nil {
			return nil, fmt.Errorf("chart: %w", err)
		}
		bars.Color = barColors[j]
		bars.LineStyle.Width = vg.Length(0)
		// Place the two parsers' bars side by side around each tick.
		bars.Offset = w * vg.Length(2*j-1) / 2
		pl.Add(bars)
		pl.Legend.Add(labels[j], bars)
	}
	pl.NominalX(names...)
	pl.X.Tick.Label.Rotation = 0.3
	pl.X.Tick.Label.XAlign = draw.XRight
	return pl, nil
}

// Write draws the chart and writes it to path as a PNG image.
func Write(path string, set fixture.Set, pairs []timing.Pair, labels [2]string) error {
	pl, err := New(set, pairs, labels)
	if err != nil {
		return err
	}

	width := vg.Length(6+2*float64(len(set))) * vg.Centimeter
	height := 10 * vg.Centimeter
	can := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))
	pl.Draw(draw.New(can))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = vgimg.PngCanvas{Canvas: can}.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
