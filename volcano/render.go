// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volcano

import (
	"fmt"
	"html"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/aclements/volcano/internal/hexbin"
)

const (
	// yAxisGap is how much narrower the left margin is on panels
	// that don't draw a y axis.
	yAxisGap = 60

	pointRadius = 2
	tickSize    = 6
	xTicks      = 10
	yTicks      = 5
)

// renderer draws panels. It holds only what drawing needs.
type renderer struct {
	cfg    Config
	scales *Scales
	groups []*Group

	// brush, if non-nil, supplies the selection and drag extent.
	brush *Brush
}

// hasYAxis reports whether panel i draws a y axis.
func (r *renderer) hasYAxis(i int) bool {
	return i == 0 || r.cfg.ShowYAxis != YAxisFirst
}

// panelSize returns the outer size of panel i and the left offset of
// its plotting area.
func (r *renderer) panelSize(i int) (w, h, left int) {
	m := r.cfg.Margin
	left = m.Left
	if !r.hasYAxis(i) {
		left = max(m.Left-yAxisGap, 0)
	}
	return r.cfg.Width + left + m.Right, r.cfg.Height + m.Top + m.Bottom, left
}

func (r *renderer) selection() *Selection {
	if r.brush == nil {
		return nil
	}
	return r.brush.Selection()
}

// writePanel writes panel i as a standalone SVG document.
func (r *renderer) writePanel(w io.Writer, i int) {
	pw, ph, _ := r.panelSize(i)
	canvas := svg.New(w)
	canvas.Start(pw, ph, `class="volcano"`, fmt.Sprintf(`data-panel="%d"`, i))
	r.panel(canvas, i)
	canvas.End()
}

// writeAll writes every panel side by side in one SVG document.
func (r *renderer) writeAll(w io.Writer) {
	width, height := 0, 0
	for i := range r.groups {
		pw, ph, _ := r.panelSize(i)
		width += pw
		height = max(height, ph)
	}
	canvas := svg.New(w)
	canvas.Start(width, height, `class="volcano"`)
	x := 0
	for i := range r.groups {
		pw, _, _ := r.panelSize(i)
		canvas.Group(fmt.Sprintf(`transform="translate(%d,0)"`, x), fmt.Sprintf(`data-panel="%d"`, i))
		r.panel(canvas, i)
		canvas.Gend()
		x += pw
	}
	canvas.End()
}

func (r *renderer) panel(canvas *svg.SVG, i int) {
	g := r.groups[i]
	_, _, left := r.panelSize(i)
	canvas.Group(`class="panel"`, fmt.Sprintf(`transform="translate(%d,%d)"`, left, r.cfg.Margin.Top))

	canvas.Text(r.cfg.Width, 12, g.Key, `class="title"`, `text-anchor="end"`, `fill="#666"`)
	r.xAxis(canvas)
	if r.hasYAxis(i) {
		r.yAxis(canvas)
	}
	r.marks(canvas, g)
	r.overlay(canvas, i)

	canvas.Gend()
}

func (r *renderer) xAxis(canvas *svg.SVG) {
	w, h := r.cfg.Width, r.cfg.Height
	canvas.Group(`class="x axis"`, fmt.Sprintf(`transform="translate(0,%d)"`, h))
	canvas.Path(fmt.Sprintf("M0,%dV0H%dV%d", tickSize, w, tickSize), "fill:none;stroke:#000")
	for _, t := range r.scales.X.Ticks(xTicks) {
		x := round(r.scales.X.Map(t))
		canvas.Line(x, 0, x, tickSize, "stroke:#000")
		canvas.Text(x, tickSize+3, FormatTick(t), `text-anchor="middle"`, `dy=".71em"`, `font-size="10"`)
	}
	canvas.Text(w/2, 0, r.cfg.XLabel, `class="label"`, `dy="2em"`, `font-size="24"`, `fill="#999"`, `text-anchor="middle"`)
	canvas.Gend()
}

func (r *renderer) yAxis(canvas *svg.SVG) {
	h := r.cfg.Height
	canvas.Group(`class="y axis"`)
	canvas.Path(fmt.Sprintf("M%d,0H0V%dH%d", -tickSize, h, -tickSize), "fill:none;stroke:#000")
	for _, t := range r.scales.Y.Ticks(yTicks) {
		y := round(r.scales.Y.Map(t))
		canvas.Line(-tickSize, y, 0, y, "stroke:#000")
		canvas.Text(-tickSize-3, y, FormatTick(t), `text-anchor="end"`, `dy=".32em"`, `font-size="10"`)
	}
	canvas.Text(0, 6-65, r.cfg.YLabel, `class="label"`, `transform="rotate(-90)"`, `font-size="24"`, `fill="#999"`, `text-anchor="end"`)
	canvas.Text(0, 6-53, "(Click to change quadrants)", `class="label"`, `transform="rotate(-90)"`, `font-size="10"`, `fill="#999"`, `text-anchor="end"`)
	canvas.Gend()
}

func (r *renderer) marks(canvas *svg.SVG, g *Group) {
	sel := r.selection()
	opacity := func(selected bool) string {
		if sel == nil || selected {
			return `fill-opacity="1"`
		}
		return `fill-opacity="0.5"`
	}
	class := func(base string, selected bool) string {
		if selected {
			base += " selected"
		}
		return fmt.Sprintf(`class="%s"`, base)
	}

	for _, c := range g.Cells {
		canvas.Group(`class="hexGroup"`)
		if c.DrawCircles {
			for _, rec := range c.Records {
				x, y := r.scales.Project(rec)
				fill := cssColor(r.scales.Color.Map(r.scales.Category(rec)))
				selected := sel.Contains(rec)
				canvas.Circle(round(x), round(y), pointRadius,
					class("point", selected),
					fmt.Sprintf(`fill="%s"`, fill),
					opacity(selected),
					fmt.Sprintf(`data-id="%s"`, html.EscapeString(rec.ID(r.cfg.IDCol))))
			}
		} else {
			selected := false
			for _, rec := range c.Records {
				if sel.Contains(rec) {
					selected = true
					break
				}
			}
			canvas.Path(hexbin.Hexagon(r.scales.Radius.Map(float64(c.Size))),
				class("hex", selected),
				fmt.Sprintf(`transform="translate(%.6g,%.6g)"`, c.X, c.Y),
				fmt.Sprintf(`fill="%s"`, cssColor(c.Color)),
				opacity(selected),
				fmt.Sprintf(`data-count="%d"`, len(c.Records)))
		}
		canvas.Gend()
	}
}

// overlay draws the brush target and, on the brushed panel, the
// brush extent.
func (r *renderer) overlay(canvas *svg.SVG, i int) {
	canvas.Group(`class="brush"`)
	canvas.Rect(0, 0, r.cfg.Width, r.cfg.Height, `class="background"`, `fill="none"`, `pointer-events="all"`)
	if r.brush != nil && r.brush.State() != Idle {
		panel, p0, p1 := r.brush.Extent()
		if panel == i {
			x, y := math.Min(p0.X, p1.X), math.Min(p0.Y, p1.Y)
			w, h := math.Abs(p1.X-p0.X), math.Abs(p1.Y-p0.Y)
			canvas.Rect(round(x), round(y), round(w), round(h), `class="extent"`, `fill="#000"`, `fill-opacity=".125"`, `stroke="#fff"`)
		}
	}
	canvas.Gend()
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
