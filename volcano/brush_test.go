// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volcano

import (
	"errors"
	"reflect"
	"testing"
)

func brushChart(t *testing.T) *Chart {
	cfg := testConfig
	cfg.IDCol = "otu"
	raw := rows(
		[5]string{"-1", "1", "A", "B", "X"},
		[5]string{"1", "0.01", "A", "B", "Y"},
		[5]string{"0.5", "0.1", "A", "B", "X"},
		[5]string{"0.5", "0.1", "A", "C", "X"},
		[5]string{"1", "0.001", "A", "C", "Z"},
	)
	for i, id := range []string{"o1", "o2", "o3", "o3", "o4"} {
		raw[i].Fields["otu"] = id
	}
	return newTestChart(t, cfg, raw)
}

func TestSelect(t *testing.T) {
	c := brushChart(t)
	for _, test := range []struct {
		rect Rect
		want []string
	}{
		{Rect{0, 1, 0.01, 0.1}, []string{"o2", "o3"}},
		// Edges are inclusive.
		{Rect{0.5, 0.5, 0.1, 0.1}, []string{"o3"}},
		{Rect{-2, 2, 0.0001, 1}, []string{"o1", "o2", "o3", "o4"}},
		{Rect{1.1, 2, 0.0001, 1}, nil},
	} {
		got := Select(test.rect, c.Clean, "otu")
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Select(%+v) = %v; want %v", test.rect, got, test.want)
		}
	}
}

func TestBrushTransitions(t *testing.T) {
	c := brushChart(t)
	b := c.NewBrush()
	if b.State() != Idle {
		t.Fatalf("new brush is %s; want idle", b.State())
	}
	if err := b.Move(Point{1, 1}); !errors.Is(err, ErrBrushState) {
		t.Errorf("Move while idle: %v; want ErrBrushState", err)
	}
	if _, err := b.End(); !errors.Is(err, ErrBrushState) {
		t.Errorf("End while idle: %v; want ErrBrushState", err)
	}

	if err := b.Start(0, Point{-1, -1}); err != nil {
		t.Fatal(err)
	}
	if b.State() != Dragging {
		t.Fatalf("after Start: %s; want dragging", b.State())
	}
	if err := b.Start(0, Point{0, 0}); !errors.Is(err, ErrBrushState) {
		t.Errorf("Start while dragging: %v; want ErrBrushState", err)
	}
	if b.Selection() != nil {
		t.Errorf("selection while dragging")
	}

	// Drag just past the whole plotting area.
	cfg := c.Config
	if err := b.Move(Point{float64(cfg.Width) + 1, float64(cfg.Height) + 1}); err != nil {
		t.Fatal(err)
	}
	sel, err := b.End()
	if err != nil {
		t.Fatal(err)
	}
	if b.State() != Applied {
		t.Fatalf("after End: %s; want applied", b.State())
	}
	if sel == nil || sel.Len() != 4 {
		t.Fatalf("selection = %+v; want all 4 IDs", sel)
	}
	if b.Selection() != sel {
		t.Errorf("Selection() does not return the applied selection")
	}

	// A new drag discards the old selection.
	if err := b.Start(1, Point{10, 10}); err != nil {
		t.Fatal(err)
	}
	if b.Selection() != nil {
		t.Errorf("selection survived a new drag")
	}
	// A click without movement clears.
	sel, err = b.End()
	if err != nil || sel != nil || b.State() != Idle {
		t.Errorf("zero-area End = %v, %v, state %s; want nil, nil, idle", sel, err, b.State())
	}

	b.Start(0, Point{0, 0})
	b.Move(Point{5, 5})
	b.End()
	b.Clear()
	if b.State() != Idle || b.Selection() != nil {
		t.Errorf("after Clear: %s, %v; want idle, nil", b.State(), b.Selection())
	}
}

func TestBrushAcrossPanels(t *testing.T) {
	c := brushChart(t)
	b := c.NewBrush()

	// Brush around ratio 0.5, p 0.1 on the first panel.
	s := c.Scales
	x0, y0 := s.X.Map(0.4), s.Y.Map(0.2)
	x1, y1 := s.X.Map(0.6), s.Y.Map(0.05)
	b.Start(0, Point{x0, y0})
	b.Move(Point{x1, y1})
	sel, err := b.End()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(sel.IDs, []string{"o3"}) {
		t.Fatalf("IDs = %v; want [o3]", sel.IDs)
	}
	// Both o3 records are selected, one in each panel.
	n := 0
	for _, g := range c.Groups {
		for _, r := range g.Records {
			if sel.Contains(r) {
				n++
			}
		}
	}
	if n != 2 {
		t.Errorf("%d records selected across panels; want 2", n)
	}
}

func TestSummarize(t *testing.T) {
	cfg := testConfig
	cfg.IDCol = "otu"
	cfg.Selected = []Column{{"phylum", "Phylum"}}
	raw := rows(
		[5]string{"0", "0.1", "A", "B", "X"},
		[5]string{"0", "0.1", "A", "B", "Y"},
		[5]string{"0", "0.1", "A", "B", "Y"},
		[5]string{"0", "0.1", "A", "C", "Y"},
		[5]string{"1", "1", "A", "B", "X"},
	)
	for i, id := range []string{"o1", "o2", "o3", "o3", "o5"} {
		raw[i].Fields["otu"] = id
	}
	c := newTestChart(t, cfg, raw)

	empty := c.Summary(nil)
	if empty.N != 0 || len(empty.Rows) != 0 || !reflect.DeepEqual(empty.Columns, []string{"Phylum"}) {
		t.Errorf("empty summary = %+v", empty)
	}

	b := c.NewBrush()
	b.Start(0, Point{-1, -1})
	b.Move(Point{1, float64(c.Config.Height) + 1})
	if _, err := b.End(); err != nil {
		t.Fatal(err)
	}
	sum := c.Summary(b)
	if sum.N != 3 {
		t.Errorf("N = %d; want 3", sum.N)
	}
	want := []SummaryRow{{[]string{"Y"}, 2}, {[]string{"X"}, 1}}
	if !reflect.DeepEqual(sum.Rows, want) {
		t.Errorf("rows = %v; want %v", sum.Rows, want)
	}
}
