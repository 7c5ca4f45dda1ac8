// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volcano

import (
	"bytes"
	"html/template"
	"io"
)

const htmlPage = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}}</title>
    <style>
body {
  font-family: sans-serif;
  color: #222;
}
div.volcanoPlot {
  display: inline-block;
  vertical-align: top;
}
div.bottom {
  display: flex;
}
div.third {
  flex: 1;
  padding: 8px;
}
div.title {
  font-size: 120%;
  font-weight: bold;
}
div.instruction, div.info {
  color: #777;
}
table {
  border-spacing: 0;
  border-collapse: collapse;
}
table>tbody>tr>td, table>thead>tr>th {
  padding: 4px 8px;
  text-align: left;
  border-top: 1px solid #ddd;
}
.axis text {
  font-size: 10px;
}
circle.point.selected, path.hex.selected {
  stroke: #222;
}
    </style>
  </head>
  <body>
    <div class="ig-volcano">
      <div class="top">{{.Records}} records in {{.Groups}} comparisons</div>
      <div class="middle">
{{range $i, $p := .Panels}}        <div class="volcanoPlot" data-panel="{{$i}}">{{$p}}</div>
{{end}}      </div>
      <div class="bottom">
        <div class="info third">
          {{with .Warnings}}{{len .}} records could not be plotted:
          <ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
        </div>
        <div class="summarytable third">{{template "selected" .Summary}}</div>
        <div class="details third">{{template "details" .Details}}</div>
      </div>
    </div>
{{if .Interactive}}    <script>
(function() {
  var drag = null;
  function local(svg, ev) {
    var g = svg.querySelector("g.panel");
    var pt = svg.createSVGPoint();
    pt.x = ev.clientX; pt.y = ev.clientY;
    return pt.matrixTransform(g.getScreenCTM().inverse());
  }
  function post(url, body) {
    return fetch(url, {method: "POST", headers: {"Content-Type": "application/json"}, body: JSON.stringify(body)})
      .then(function(r) { return r.json(); })
      .then(update);
  }
  function update(res) {
    var divs = document.querySelectorAll("div.volcanoPlot");
    res.panels.forEach(function(svg, i) { divs[i].innerHTML = svg; });
    document.querySelector("div.summarytable").innerHTML = res.table;
    bind();
  }
  function bind() {
    document.querySelectorAll("div.volcanoPlot").forEach(function(div) {
      var panel = +div.dataset.panel;
      var svg = div.querySelector("svg");
      var bg = svg.querySelector("g.brush rect.background");
      bg.addEventListener("mousedown", function(ev) {
        var p = local(svg, ev);
        drag = {panel: panel, svg: svg, x0: p.x, y0: p.y, x1: p.x, y1: p.y};
        ev.preventDefault();
      });
      svg.querySelectorAll("circle.point").forEach(function(c) {
        c.addEventListener("mouseover", function() {
          fetch("/details/" + encodeURIComponent(c.dataset.id))
            .then(function(r) { return r.text(); })
            .then(function(html) { document.querySelector("div.details").innerHTML = html; });
        });
      });
    });
  }
  document.addEventListener("mousemove", function(ev) {
    if (!drag) return;
    var p = local(drag.svg, ev);
    drag.x1 = p.x; drag.y1 = p.y;
  });
  document.addEventListener("mouseup", function() {
    if (!drag) return;
    var d = drag;
    drag = null;
    if (d.x0 === d.x1 || d.y0 === d.y1) {
      post("/brush/clear", {});
    } else {
      post("/brush", {panel: d.panel, x0: d.x0, y0: d.y0, x1: d.x1, y1: d.y1});
    }
  });
  bind();
})();
    </script>
{{end}}  </body>
</html>

{{define "selected"}}<div class="table selected-table">
  <div class="title">Selected Taxa (n=<span id="nSelected">{{.N}}</span>)</div>
  <div class="instruction">Click and drag a figure to select taxa.</div>
  <table>
    <thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}<th>n</th></tr></thead>
    <tbody>
    {{range .Rows}}<tr>{{range .Values}}<td>{{.}}</td>{{end}}<td>{{.Count}}</td></tr>
    {{else}}<tr><td colspan="{{inc (len .Columns)}}">None selected</td></tr>
    {{end}}</tbody>
  </table>
</div>{{end}}

{{define "details"}}<div class="details-table">
  <div class="title">Details</div>
  {{if .}}<table>
    <tbody>
    {{range .}}<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
    {{end}}</tbody>
  </table>{{else}}<div class="instruction">Mouse over the figure or summary table for taxa details.</div>{{end}}
</div>{{end}}
`

var htmlFuncs = template.FuncMap{
	"inc": func(x int) int { return x + 1 },
}

var htmlTemplate = template.Must(template.New("page").Funcs(htmlFuncs).Parse(htmlPage))

type htmlPageData struct {
	Title       string
	Interactive bool
	Records     int
	Groups      int
	Panels      []template.HTML
	Summary     *Summary
	Details     []Detail
	Warnings    []error
}

// RenderPanels returns each panel as an SVG document.
func (c *Chart) RenderPanels(b *Brush) ([]string, error) {
	r, err := c.renderer(b)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(c.Groups))
	for i := range c.Groups {
		var buf bytes.Buffer
		r.writePanel(&buf, i)
		out[i] = buf.String()
	}
	return out, nil
}

// WriteHTML writes an HTML page with every panel, the selected
// records table, and the details table. If interactive is set, the
// page includes a script that sends brush and hover events back to
// the server that served it (see the volcanoplot command).
func (c *Chart) WriteHTML(w io.Writer, b *Brush, interactive bool) error {
	panels, err := c.RenderPanels(b)
	if err != nil {
		return err
	}
	data := htmlPageData{
		Title:       "Volcano plot",
		Interactive: interactive,
		Records:     len(c.Clean),
		Groups:      len(c.Groups),
		Summary:     c.Summary(b),
		Warnings:    c.Warnings,
	}
	for _, p := range panels {
		data.Panels = append(data.Panels, template.HTML(p))
	}
	return htmlTemplate.Execute(w, data)
}

// Summary tabulates b's selection. b may be nil.
func (c *Chart) Summary(b *Brush) *Summary {
	var sel *Selection
	if b != nil {
		sel = b.Selection()
	}
	return Summarize(c.Config, c.Clean, sel)
}

// WriteSummary writes the selected records table as an HTML fragment.
func (c *Chart) WriteSummary(w io.Writer, b *Brush) error {
	return htmlTemplate.ExecuteTemplate(w, "selected", c.Summary(b))
}

// WriteDetails writes the details table of r as an HTML fragment.
// If r is nil, it writes the empty table.
func (c *Chart) WriteDetails(w io.Writer, r *Record) error {
	var ds []Detail
	if r != nil {
		ds = Details(c.Config, r)
	}
	return htmlTemplate.ExecuteTemplate(w, "details", ds)
}
