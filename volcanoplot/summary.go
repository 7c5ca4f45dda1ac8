// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/volcano/volcano"
)

// cellsToTable returns one row per hexbin cell of every panel.
func cellsToTable(groups []*volcano.Group) *table.Table {
	var (
		panels       []string
		xs, ys       []float64
		ns, sizes    []int
		points       []bool
		tops, colors []string
	)
	for _, g := range groups {
		for _, c := range g.Cells {
			panels = append(panels, g.Key)
			xs = append(xs, c.X)
			ys = append(ys, c.Y)
			ns = append(ns, len(c.Records))
			sizes = append(sizes, c.Size)
			points = append(points, c.DrawCircles)
			top := ""
			if len(c.Levels) > 0 {
				top = c.Levels[0].Key
			}
			tops = append(tops, top)
			colors = append(colors, cssColor(c))
		}
	}
	return new(table.Builder).
		Add("panel", panels).
		Add("x", xs).
		Add("y", ys).
		Add("n", ns).
		Add("size", sizes).
		Add("points", points).
		Add("top", tops).
		Add("color", colors).
		Done()
}

func cssColor(c *volcano.Cell) string {
	if c.Color == nil {
		return "none"
	}
	r, g, b, _ := c.Color.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
