// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volcano

import (
	"bytes"
	"strings"
	"testing"
)

func twoGroupRows() []*Record {
	var in [][5]string
	in = append(in, denseRows(20, "0.5", "0.01", "A", "B", "X", "Y")...)
	in = append(in, [5]string{"1.5", "0.5", "A", "B", "Y"})
	in = append(in, [5]string{"0", "0.2", "A", "C", "X"})
	return rows(in...)
}

func TestShowYAxisFirst(t *testing.T) {
	cfg := testConfig
	cfg.ShowYAxis = YAxisFirst
	c := newTestChart(t, cfg, twoGroupRows())
	if len(c.Groups) != 2 {
		t.Fatalf("got %d groups; want 2", len(c.Groups))
	}

	panels, err := c.RenderPanels(nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range panels {
		if n := strings.Count(p, `class="x axis"`); n != 1 {
			t.Errorf("panel %d has %d x axes; want 1", i, n)
		}
		wantY := 0
		if i == 0 {
			wantY = 1
		}
		if n := strings.Count(p, `class="y axis"`); n != wantY {
			t.Errorf("panel %d has %d y axes; want %d", i, n, wantY)
		}
	}
	// The second panel is narrower by the y axis gap.
	if !strings.Contains(panels[0], `width="390"`) || !strings.Contains(panels[1], `width="330"`) {
		t.Errorf("unexpected panel widths:\n%s\n%s", firstLine(panels[0]), firstLine(panels[1]))
	}
}

func TestShowYAxisAll(t *testing.T) {
	c := newTestChart(t, testConfig, twoGroupRows())
	var buf bytes.Buffer
	if err := c.WriteSVG(&buf, nil); err != nil {
		t.Fatal(err)
	}
	svg := buf.String()
	if n := strings.Count(svg, `class="y axis"`); n != 2 {
		t.Errorf("got %d y axes; want 2", n)
	}
	if n := strings.Count(svg, `class="x axis"`); n != 2 {
		t.Errorf("got %d x axes; want 2", n)
	}
}

func TestMarks(t *testing.T) {
	c := newTestChart(t, testConfig, twoGroupRows())
	var buf bytes.Buffer
	if err := c.WritePanel(&buf, 0, nil); err != nil {
		t.Fatal(err)
	}
	p := buf.String()
	// 20 dense records become one hexagon; the lone record is a point.
	if n := strings.Count(p, `class="hex"`); n != 1 {
		t.Errorf("got %d hexagons; want 1", n)
	}
	if n := strings.Count(p, `class="point"`); n != 1 {
		t.Errorf("got %d points; want 1", n)
	}
	if !strings.Contains(p, "B vs. A") {
		t.Errorf("panel does not name its comparison")
	}
	if strings.Contains(p, "NaN") {
		t.Errorf("panel contains NaN:\n%s", p)
	}

	if err := c.WritePanel(&buf, 2, nil); err == nil {
		t.Errorf("WritePanel(2) succeeded with 2 panels")
	}
}

func TestMarksSelected(t *testing.T) {
	c := newTestChart(t, testConfig, twoGroupRows())
	b := c.NewBrush()
	// Select the lone point at ratio 1.5, p 0.5.
	x, y := c.Scales.X.Map(1.5), c.Scales.Y.Map(0.5)
	b.Start(0, Point{x - 3, y - 3})
	b.Move(Point{x + 3, y + 3})
	if sel, err := b.End(); err != nil || sel.Len() != 1 {
		t.Fatalf("End = %v, %v; want one selected record", sel, err)
	}

	var buf bytes.Buffer
	if err := c.WritePanel(&buf, 0, b); err != nil {
		t.Fatal(err)
	}
	p := buf.String()
	if n := strings.Count(p, `class="point selected"`); n != 1 {
		t.Errorf("got %d selected points; want 1", n)
	}
	if n := strings.Count(p, `fill-opacity="0.5"`); n != 1 {
		t.Errorf("got %d de-emphasized marks; want 1 (the hexagon)", n)
	}
	if !strings.Contains(p, `class="extent"`) {
		t.Errorf("brushed panel has no extent")
	}
}

func TestHooks(t *testing.T) {
	c, err := New(testConfig)
	if err != nil {
		t.Fatal(err)
	}
	var events []string
	c.On(EventInit, func(c *Chart) {
		if c.Groups != nil {
			t.Errorf("init hook ran after grouping")
		}
		events = append(events, "init")
	})
	c.On(EventComplete, func(c *Chart) {
		if c.Groups == nil {
			t.Errorf("complete hook ran before grouping")
		}
		events = append(events, "complete")
	})
	c.On("brush", func(*Chart) { events = append(events, "brush") })
	c.On(EventInit, nil) // ignored, keeps the first callback

	if err := c.Init(twoGroupRows()); err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(events, ","); got != "init,complete" {
		t.Errorf("events = %s; want init,complete", got)
	}
}

func TestInitNoData(t *testing.T) {
	c, err := New(testConfig)
	if err != nil {
		t.Fatal(err)
	}
	completed := false
	c.On(EventComplete, func(*Chart) { completed = true })
	err = c.Init(rows([5]string{"x", "y", "A", "B", "X"}))
	if err != ErrNoData {
		t.Errorf("Init error = %v; want ErrNoData", err)
	}
	if completed {
		t.Errorf("complete hook ran after a failed Init")
	}
	if len(c.Warnings) != 1 {
		t.Errorf("got %d warnings; want 1", len(c.Warnings))
	}
	var buf bytes.Buffer
	if err := c.WriteSVG(&buf, nil); err == nil {
		t.Errorf("WriteSVG succeeded on an uninitialized chart")
	}
}

func TestNewInvalidConfig(t *testing.T) {
	if _, err := New(Config{PCol: "p"}); err == nil {
		t.Errorf("New accepted a config without ratio_col")
	}
}

func TestWriteHTML(t *testing.T) {
	c := newTestChart(t, testConfig, twoGroupRows())
	var buf bytes.Buffer
	if err := c.WriteHTML(&buf, nil, false); err != nil {
		t.Fatal(err)
	}
	page := buf.String()
	for _, want := range []string{
		`<div class="ig-volcano">`,
		`<div class="middle">`,
		`Selected Taxa (n=<span id="nSelected">0</span>)`,
		`None selected`,
		`Mouse over the figure or summary table for taxa details.`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if n := strings.Count(page, `class="volcanoPlot"`); n != 2 {
		t.Errorf("got %d panels; want 2", n)
	}
	if strings.Contains(page, "<script>") {
		t.Errorf("non-interactive page has a script")
	}

	buf.Reset()
	if err := c.WriteHTML(&buf, nil, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<script>") {
		t.Errorf("interactive page has no script")
	}
}

func TestWriteDetails(t *testing.T) {
	c := newTestChart(t, testConfig, twoGroupRows())
	r := c.Clean[0]
	r.Fields["genus"] = "Bacteroides"
	var buf bytes.Buffer
	if err := c.WriteDetails(&buf, r); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); !strings.Contains(got, "<th>Genus</th><td>Bacteroides</td>") {
		t.Errorf("details missing genus:\n%s", got)
	}
	if c.Record("0") != r {
		t.Errorf("Record(\"0\") did not find the first record")
	}
}

func firstLine(s string) string {
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[:i]
	}
	return s
}
