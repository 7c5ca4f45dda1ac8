// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volcano

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLinear(t *testing.T) {
	l := NewLinear(-1, 3, 0, 200)
	for _, test := range []struct{ x, y float64 }{
		{-1, 0}, {3, 200}, {1, 100}, {5, 300},
	} {
		if got := l.Map(test.x); !near(got, test.y) {
			t.Errorf("Map(%v) = %v; want %v", test.x, got, test.y)
		}
		if got := l.Invert(test.y); !near(got, test.x) {
			t.Errorf("Invert(%v) = %v; want %v", test.y, got, test.x)
		}
	}

	// Decreasing domains flip the range.
	d := NewLinear(3, -1, 0, 200)
	if got := d.Map(3); !near(got, 0) {
		t.Errorf("decreasing Map(3) = %v; want 0", got)
	}
	if lo, hi := d.Domain(); lo != -1 || hi != 3 {
		t.Errorf("Domain() = %v, %v; want -1, 3", lo, hi)
	}
}

func TestLog(t *testing.T) {
	// Significance axis: 1 at the bottom, the smallest p at the top.
	l := NewLog(1, 1e-4, 240, 0)
	for _, test := range []struct{ p, y float64 }{
		{1, 240}, {1e-4, 0}, {1e-2, 120},
	} {
		if got := l.Map(test.p); !near(got, test.y) {
			t.Errorf("Map(%v) = %v; want %v", test.p, got, test.y)
		}
		if got := l.Invert(test.y); math.Abs(got-test.p)/test.p > 1e-9 {
			t.Errorf("Invert(%v) = %v; want %v", test.y, got, test.p)
		}
	}
	for _, tick := range l.Ticks(5) {
		e := math.Log10(tick)
		if !near(e, math.Round(e)) || tick > 1 || tick < 1e-4 {
			t.Errorf("tick %v is not a power of ten in [1e-4, 1]", tick)
		}
	}
}

func TestSqrt(t *testing.T) {
	s := NewSqrt(3, 100, 3, 10)
	if got := s.Map(3); !near(got, 3) {
		t.Errorf("Map(3) = %v; want 3", got)
	}
	if got := s.Map(100); !near(got, 10) {
		t.Errorf("Map(100) = %v; want 10", got)
	}
	// Area, not radius, grows linearly between the ends.
	mid := s.Map(51.5)
	want := 3 + (math.Sqrt(51.5)-math.Sqrt(3))/(10-math.Sqrt(3))*7
	if !near(mid, want) {
		t.Errorf("Map(51.5) = %v; want %v", mid, want)
	}
}

func TestFormatTick(t *testing.T) {
	for _, test := range []struct {
		v    float64
		want string
	}{
		{1, "1"}, {0.001, "0.001"}, {1e-5, "0.00001"}, {-0.5, "-0.5"}, {2, "2"},
	} {
		if got := FormatTick(test.v); got != test.want {
			t.Errorf("FormatTick(%v) = %q; want %q", test.v, got, test.want)
		}
	}
}

func TestNewScales(t *testing.T) {
	cfg := mustNormalize(t, testConfig)
	clean, _ := Clean(cfg, rows(
		[5]string{"-1", "0.5", "A", "B", "X"},
		[5]string{"1.5", "0.001", "A", "B", "Y"},
		[5]string{"9", "0.2", "A", "C", "X"},
		[5]string{"0", "0.3", "A", "C", "Z"},
	))
	s, err := NewScales(cfg, clean)
	if err != nil {
		t.Fatal(err)
	}

	// x spans the clamped ratios across all groups.
	if lo, hi := s.X.Domain(); lo != -1 || hi != 2 {
		t.Errorf("x domain = [%v, %v]; want [-1, 2]", lo, hi)
	}
	if got := s.X.Map(-1); !near(got, 0) {
		t.Errorf("x(-1) = %v; want 0", got)
	}
	if got := s.X.Map(2); !near(got, float64(cfg.Width)) {
		t.Errorf("x(2) = %v; want %d", got, cfg.Width)
	}

	// y runs from 1 at the bottom to the smallest p at the top.
	if got := s.Y.Map(1); !near(got, float64(cfg.Height)) {
		t.Errorf("y(1) = %v; want %d", got, cfg.Height)
	}
	if got := s.Y.Map(0.001); !near(got, 0) {
		t.Errorf("y(0.001) = %v; want 0", got)
	}

	// Colors are assigned in first-seen order from category10.
	if got := s.Color.Domain(); len(got) != 3 || got[0] != "X" || got[1] != "Y" || got[2] != "Z" {
		t.Errorf("color domain = %v; want [X Y Z]", got)
	}
	for i, v := range []string{"X", "Y", "Z"} {
		if got, want := cssColor(s.Color.Map(v)), cssColor(category10[i]); got != want {
			t.Errorf("color(%s) = %s; want %s", v, got, want)
		}
	}

	if s.Hexbin.Radius != cfg.Hexbin.Radius.Max {
		t.Errorf("hexbin radius = %v; want %v", s.Hexbin.Radius, cfg.Hexbin.Radius.Max)
	}
}

func TestNewScalesDegenerate(t *testing.T) {
	cfg := mustNormalize(t, testConfig)
	clean, _ := Clean(cfg, rows(
		[5]string{"1", "1", "A", "B", "X"},
		[5]string{"1", "1", "A", "B", "X"},
	))
	s, err := NewScales(cfg, clean)
	if err != nil {
		t.Fatal(err)
	}
	if lo, hi := s.X.Domain(); lo != 0 || hi != 2 {
		t.Errorf("x domain = [%v, %v]; want [0, 2]", lo, hi)
	}
	x, y := s.Project(clean[0])
	if math.IsNaN(x) || math.IsNaN(y) {
		t.Errorf("Project = %v, %v; want finite", x, y)
	}

	if _, err := NewScales(cfg, nil); err != ErrNoData {
		t.Errorf("NewScales(nil) error = %v; want ErrNoData", err)
	}
}

func TestNewScalesDefaultColor(t *testing.T) {
	in := testConfig
	in.Structure = nil
	in.DefaultColor = "darkorange"
	cfg := mustNormalize(t, in)
	clean, _ := Clean(cfg, rows(
		[5]string{"1", "0.1", "A", "B", "X"},
		[5]string{"2", "0.2", "A", "B", "Y"},
	))
	s, err := NewScales(cfg, clean)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range clean {
		if got := cssColor(s.Color.Map(s.Category(r))); got != "#ff8c00" {
			t.Errorf("color of %v = %s; want darkorange", r.Fields, got)
		}
	}
}
