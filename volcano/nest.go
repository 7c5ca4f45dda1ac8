// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volcano

import (
	"image/color"
	"math"
	"sort"
)

// A Group is the set of records plotted in one panel.
type Group struct {
	Key     string // PlotName shared by all Records
	Records []*Record
	Cells   []*Cell
}

// A Cell is one occupied hexagon of a Group.
type Cell struct {
	// I and J are the hexagon's grid coordinates and X and Y are
	// its center in panel pixels.
	I, J int
	X, Y float64

	Records []*Record

	// Size is the number of records, capped at the maximum of the
	// configured count range.
	Size int

	// DrawCircles indicates that the cell is sparse enough to draw
	// each record as a point instead of drawing a hexagon.
	DrawCircles bool

	// Levels counts the records of each color variable value,
	// most frequent first. Ties are in order of first appearance
	// in Records.
	Levels []Level

	// Color is the color of Levels[0].
	Color color.Color
}

// A Level is the number of records in a cell with one value of the
// color variable.
type Level struct {
	Key   string
	Count int
}

// Nest partitions clean records into groups by PlotName and bins each
// group into cells. Groups appear in the order of their first record.
func Nest(cfg Config, s *Scales, clean []*Record) []*Group {
	var groups []*Group
	byKey := make(map[string]*Group)
	for _, r := range clean {
		g := byKey[r.PlotName]
		if g == nil {
			g = &Group{Key: r.PlotName}
			byKey[r.PlotName] = g
			groups = append(groups, g)
		}
		g.Records = append(g.Records, r)
	}

	for _, g := range groups {
		g.Cells = binGroup(cfg, s, g.Records)
	}
	return groups
}

func binGroup(cfg Config, s *Scales, recs []*Record) []*Cell {
	bins, _ := s.Hexbin.Bin(len(recs), func(k int) (float64, float64) {
		return s.Project(recs[k])
	})

	countRange := cfg.Hexbin.CountRange
	cells := make([]*Cell, len(bins))
	for i, bin := range bins {
		c := &Cell{I: bin.I, J: bin.J, X: bin.X, Y: bin.Y}
		for _, k := range bin.Points {
			c.Records = append(c.Records, recs[k])
		}
		n := len(c.Records)
		c.DrawCircles = float64(n) <= countRange.Min
		c.Size = int(math.Min(float64(n), countRange.Max))
		c.Levels = levels(s, c.Records)
		c.Color = s.Color.Map(c.Levels[0].Key)
		cells[i] = c
	}
	return cells
}

// levels tallies recs by color variable value.
func levels(s *Scales, recs []*Record) []Level {
	var out []Level
	index := make(map[string]int)
	for _, r := range recs {
		key := s.Category(r)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, Level{Key: key})
		}
		out[i].Count++
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
