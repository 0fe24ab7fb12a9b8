// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const histBins = 32

// plotPerMilli saves a histogram of ids per millisecond. A generator that
// saturates the sequence piles up at 4096.
func plotPerMilli(path string, counts map[int64]int) error {
	if len(counts) == 0 {
		return fmt.Errorf("plot %s: no ids", path)
	}
	vals := make(plotter.Values, 0, len(counts))
	for _, c := range counts {
		vals = append(vals, float64(c))
	}

	p := plot.New()
	p.Title.Text = "Snowflake ids per millisecond"
	p.X.Label.Text = "ids in one millisecond"
	p.Y.Label.Text = "milliseconds"

	h, err := plotter.NewHist(vals, histBins)
	if err != nil {
		return fmt.Errorf("plot %s: %w", path, err)
	}
	p.Add(h, plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("plot %s: %w", path, err)
	}
	return nil
}
