// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volcano

import (
	"errors"
	"image/color"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"

	"github.com/aclements/volcano/internal/hexbin"
)

// ErrNoData is returned when there are no plottable records.
var ErrNoData = errors.New("no plottable records")

// Linear maps a continuous domain linearly onto a pixel range.
type Linear struct {
	s      scale.Linear
	r0, r1 float64
}

// NewLinear returns a Linear mapping domain [d0, d1] to range
// [r0, r1]. Either interval may be decreasing.
func NewLinear(d0, d1, r0, r1 float64) Linear {
	if d0 > d1 {
		d0, d1 = d1, d0
		r0, r1 = r1, r0
	}
	return Linear{scale.Linear{Min: d0, Max: d1}, r0, r1}
}

// Map maps x to the range. Values outside the domain extrapolate.
func (l Linear) Map(x float64) float64 {
	return l.r0 + l.s.Map(x)*(l.r1-l.r0)
}

// Invert maps a range value back to the domain.
func (l Linear) Invert(y float64) float64 {
	return l.s.Min + (y-l.r0)/(l.r1-l.r0)*(l.s.Max-l.s.Min)
}

// Domain returns the domain in increasing order.
func (l Linear) Domain() (min, max float64) {
	return l.s.Min, l.s.Max
}

// Ticks returns at most n nicely spaced values in the domain.
func (l Linear) Ticks(n int) []float64 {
	major, _ := l.s.Ticks(scale.TickOptions{Max: n})
	return major
}

// Log maps a positive domain logarithmically onto a pixel range.
type Log struct {
	exp Linear
}

// NewLog returns a Log mapping domain [d0, d1] to range [r0, r1].
// The domain must be positive.
func NewLog(d0, d1, r0, r1 float64) Log {
	return Log{NewLinear(math.Log10(d0), math.Log10(d1), r0, r1)}
}

func (l Log) Map(x float64) float64 {
	return l.exp.Map(math.Log10(x))
}

func (l Log) Invert(y float64) float64 {
	return math.Pow(10, l.exp.Invert(y))
}

func (l Log) Domain() (min, max float64) {
	lo, hi := l.exp.Domain()
	return math.Pow(10, lo), math.Pow(10, hi)
}

// Ticks returns at most n powers of ten in the domain.
func (l Log) Ticks(n int) []float64 {
	major, _ := l.exp.s.Ticks(scale.TickOptions{Max: n, MinLevel: 0, MaxLevel: 1000})
	ticks := make([]float64, len(major))
	for i, e := range major {
		ticks[i] = math.Pow10(int(math.Round(e)))
	}
	return ticks
}

// FormatTick formats a tick value with the shortest exact decimal
// representation and no exponent.
func FormatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Sqrt maps a non-negative domain onto a range so that the square of
// the result is linear in the input.
type Sqrt struct {
	root Linear
}

func NewSqrt(d0, d1, r0, r1 float64) Sqrt {
	return Sqrt{NewLinear(math.Sqrt(d0), math.Sqrt(d1), r0, r1)}
}

func (s Sqrt) Map(x float64) float64 {
	return s.root.Map(math.Sqrt(x))
}

// Ordinal maps category values to colors.
type Ordinal struct {
	domain   []string
	index    map[string]int
	colors   []color.Color
	fallback color.Color
}

// NewOrdinal returns an Ordinal assigning colors to domain values in
// order, wrapping around if there are more values than colors. Values
// not in the domain map to fallback.
func NewOrdinal(domain []string, colors []color.Color, fallback color.Color) *Ordinal {
	o := &Ordinal{
		domain:   domain,
		index:    make(map[string]int, len(domain)),
		colors:   colors,
		fallback: fallback,
	}
	for i, v := range domain {
		o.index[v] = i
	}
	return o
}

func (o *Ordinal) Map(v string) color.Color {
	i, ok := o.index[v]
	if !ok || len(o.colors) == 0 {
		return o.fallback
	}
	return o.colors[i%len(o.colors)]
}

// Domain returns the category values in first-seen order.
func (o *Ordinal) Domain() []string {
	return o.domain
}

// Scales holds the mappings shared by every panel. Scales are
// computed once from the whole clean data set.
type Scales struct {
	X      Linear   // ratio to x pixel
	Y      Log      // significance to y pixel
	Color  *Ordinal // color variable to color
	Radius Sqrt     // cell size to hexagon radius
	Hexbin *hexbin.Binner

	colorVar string
}

// NewScales builds the scales for plotting clean, which must have been
// produced by Clean with the same cfg.
func NewScales(cfg Config, clean []*Record) (*Scales, error) {
	if len(clean) == 0 {
		return nil, ErrNoData
	}

	ratios := make([]float64, len(clean))
	ps := make([]float64, len(clean))
	for i, r := range clean {
		ratios[i], ps[i] = r.Ratio, r.P
	}

	xmin, xmax := stats.Bounds(ratios)
	if xmin == xmax {
		xmin, xmax = xmin-1, xmax+1
	}
	pmin, _ := stats.Bounds(ps)
	if pmin >= 1 {
		pmin = 0.1
	}

	w, h := float64(cfg.Width), float64(cfg.Height)
	s := &Scales{
		X:        NewLinear(xmin, xmax, 0, w),
		Y:        NewLog(1, pmin, h, 0),
		colorVar: cfg.ColorVar,
	}

	colors, err := paletteColors(cfg.Palette)
	if err != nil {
		return nil, err
	}
	fallback, err := namedColor(cfg.DefaultColor)
	if err != nil {
		return nil, err
	}
	if cfg.ColorVar == "" {
		s.Color = NewOrdinal([]string{""}, []color.Color{fallback}, fallback)
	} else {
		var domain []string
		seen := make(map[string]bool)
		for _, r := range clean {
			v := r.Fields[cfg.ColorVar]
			if !seen[v] {
				seen[v] = true
				domain = append(domain, v)
			}
		}
		s.Color = NewOrdinal(domain, colors, fallback)
	}

	hb := cfg.Hexbin
	s.Radius = NewSqrt(hb.CountRange.Min, hb.CountRange.Max, hb.Radius.Min, hb.Radius.Max)
	s.Hexbin = &hexbin.Binner{Width: w, Height: h, Radius: hb.Radius.Max}
	return s, nil
}

// Project returns the pixel position of r within a panel.
func (s *Scales) Project(r *Record) (x, y float64) {
	return s.X.Map(r.Ratio), s.Y.Map(r.P)
}

// Category returns the value of the color variable for r.
func (s *Scales) Category(r *Record) string {
	if s.colorVar == "" {
		return ""
	}
	return r.Fields[s.colorVar]
}
