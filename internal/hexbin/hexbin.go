// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hexbin groups points in the plane into the cells of a
// pointy-topped hexagonal grid.
//
// The grid matches the d3.hexbin layout: cell (i, j) is centered at
// ((i + (j&1)/2) * dx, j * dy) where dx = 2r sin(π/3) and dy = 1.5r.
// Unlike d3.hexbin, every point is assigned to the cell whose center
// is nearest, so cells are exactly the drawn hexagons.
package hexbin

import (
	"fmt"
	"math"
	"strings"
)

// Binner assigns points to hexagonal cells of radius Radius.
//
// Width and Height describe the extent of the plotting area. They do
// not restrict binning: points outside the area are binned into cells
// outside the area like any other point.
type Binner struct {
	Width, Height float64
	Radius        float64
}

// A Bin is one occupied hexagonal cell.
type Bin struct {
	// I and J are the column and row of the cell in the grid.
	I, J int

	// X and Y are the center of the cell.
	X, Y float64

	// Points are the indexes of the points in this cell, in
	// input order.
	Points []int
}

func (b *Binner) steps() (dx, dy float64) {
	return b.Radius * 2 * math.Sin(math.Pi/3), b.Radius * 1.5
}

// round rounds half up, like JavaScript's Math.round.
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Locate returns the grid cell containing point (x, y).
func (b *Binner) Locate(x, y float64) (i, j int) {
	dx, dy := b.steps()

	py := y / dy
	pj := round(py)
	px := x / dx
	if int(pj)&1 != 0 {
		px -= 0.5
	}
	pi := round(px)
	py1 := py - pj

	if math.Abs(py1)*3 > 1 {
		// The point is near a row boundary. It belongs to
		// whichever of the two nearest centers is closer in
		// pixels, not in grid units.
		px1 := px - pi
		pi2 := pi + 0.5
		if px < pi {
			pi2 = pi - 0.5
		}
		pj2 := pj + 1
		if py < pj {
			pj2 = pj - 1
		}
		px2 := px - pi2
		py2 := py - pj2
		if math.Hypot(px1*dx, py1*dy) > math.Hypot(px2*dx, py2*dy) {
			if int(pj)&1 != 0 {
				pi = pi2 + 0.5
			} else {
				pi = pi2 - 0.5
			}
			pj = pj2
		}
	}
	return int(pi), int(pj)
}

// Center returns the center of grid cell (i, j).
func (b *Binner) Center(i, j int) (x, y float64) {
	dx, dy := b.steps()
	x = float64(i) * dx
	if j&1 != 0 {
		x += dx / 2
	}
	return x, float64(j) * dy
}

// Bin assigns each of the n points to a cell. xy returns the
// coordinates of point k. Every point is placed in exactly one bin.
// Bins are returned in the order their first point appears.
//
// Points with non-finite coordinates are not binned; their indexes
// are returned in skipped.
func (b *Binner) Bin(n int, xy func(k int) (x, y float64)) (bins []*Bin, skipped []int) {
	type key struct{ i, j int }
	index := make(map[key]*Bin)
	for k := 0; k < n; k++ {
		x, y := xy(k)
		if !isFinite(x) || !isFinite(y) {
			skipped = append(skipped, k)
			continue
		}
		i, j := b.Locate(x, y)
		bin := index[key{i, j}]
		if bin == nil {
			cx, cy := b.Center(i, j)
			bin = &Bin{I: i, J: j, X: cx, Y: cy}
			index[key{i, j}] = bin
			bins = append(bins, bin)
		}
		bin.Points = append(bin.Points, k)
	}
	return bins, skipped
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Hexagon returns an SVG path for a hexagon of radius r centered on
// the origin, in relative path commands.
func Hexagon(r float64) string {
	var sb strings.Builder
	x0, y0 := 0.0, 0.0
	for k := 0; k < 6; k++ {
		angle := float64(k) * math.Pi / 3
		x1, y1 := math.Sin(angle)*r, -math.Cos(angle)*r
		if k == 0 {
			sb.WriteString("m")
		} else {
			sb.WriteString("l")
		}
		fmt.Fprintf(&sb, "%.6g,%.6g", clean(x1-x0), clean(y1-y0))
		x0, y0 = x1, y1
	}
	sb.WriteString("z")
	return sb.String()
}

// clean snaps floating point noise near zero to zero so paths don't
// contain values like 1e-15.
func clean(x float64) float64 {
	if math.Abs(x) < 1e-9 {
		return 0
	}
	return x
}
