// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volcano

import (
	"fmt"
	"math"
)

// Config controls how records are interpreted and how panels are
// laid out.
//
// The zero value of any field means "unset" and is replaced by a
// default by Normalize. A struct-valued field (Margin or one of the
// hexbin ranges) is unset only if all of its fields are zero.
type Config struct {
	// PCol, RatioCol, ReferenceCol, and ComparisonCol name the
	// columns holding the significance value, the effect ratio,
	// and the two compared groups. They are required.
	PCol          string `yaml:"p_col" json:"p_col"`
	RatioCol      string `yaml:"ratio_col" json:"ratio_col"`
	ReferenceCol  string `yaml:"reference_col" json:"reference_col"`
	ComparisonCol string `yaml:"comparison_col" json:"comparison_col"`

	// IDCol names the column identifying a record in a selection.
	// If empty, records are identified by their input position.
	IDCol string `yaml:"id_col" json:"id_col"`

	// Width and Height are the size of a panel's plotting area
	// in pixels, not including Margin.
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
	Margin Margin `yaml:"margin" json:"margin"`

	// ShowYAxis is "all" to draw a y axis on every panel or
	// "first" to draw it only on the first panel.
	ShowYAxis string `yaml:"showYaxis" json:"showYaxis"`

	// Structure is the ordered list of categorical columns.
	Structure []string `yaml:"structure" json:"structure"`

	// ColorVar is the column used to color marks. It defaults to
	// Structure[0]. If both are empty, every mark is drawn in
	// DefaultColor.
	ColorVar string `yaml:"colorVar" json:"colorVar"`

	// RatioLimit is the largest ratio plotted. Larger ratios are
	// clamped to it.
	RatioLimit float64 `yaml:"ratioLimit" json:"ratioLimit"`

	Hexbin HexbinConfig `yaml:"hexbin" json:"hexbin"`

	// Palette is "category10" or the name of a qualitative
	// ColorBrewer palette such as "Set1" or "Dark2".
	Palette string `yaml:"palette" json:"palette"`

	// DefaultColor is an SVG color keyword used when there is no
	// color variable.
	DefaultColor string `yaml:"defaultColor" json:"defaultColor"`

	XLabel string `yaml:"xLabel" json:"xLabel"`
	YLabel string `yaml:"yLabel" json:"yLabel"`

	// Selected lists the columns of the selected-records table.
	// Details lists the columns of the record details table.
	Selected []Column `yaml:"selected" json:"selected"`
	Details  []Column `yaml:"details" json:"details"`
}

// Margin is the padding around a panel's plotting area.
type Margin struct {
	Top    int `yaml:"top" json:"top"`
	Right  int `yaml:"right" json:"right"`
	Bottom int `yaml:"bottom" json:"bottom"`
	Left   int `yaml:"left" json:"left"`
}

// HexbinConfig controls hexagonal binning.
type HexbinConfig struct {
	// Radius is the range of hexagon radii in pixels. The binning
	// grid uses Radius.Max.
	Radius Range `yaml:"radius" json:"radius"`

	// CountRange is the range of cell counts mapped onto Radius.
	// Cells with at most CountRange.Min records are drawn as
	// individual points. Counts above CountRange.Max are drawn at
	// the maximum radius.
	CountRange Range `yaml:"countRange" json:"countRange"`
}

// Range is a closed interval.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Column binds a record field to a table column label.
type Column struct {
	ValueCol string `yaml:"value_col" json:"value_col"`
	Label    string `yaml:"label" json:"label"`
}

// ShowYAxis values.
const (
	YAxisAll   = "all"
	YAxisFirst = "first"
)

// DefaultConfig holds the defaults Normalize applies. Column bindings
// have no defaults.
var DefaultConfig = Config{
	Width:        300,
	Height:       240,
	Margin:       Margin{Top: 10, Right: 10, Bottom: 50, Left: 80},
	ShowYAxis:    YAxisAll,
	RatioLimit:   2.0,
	Palette:      "category10",
	DefaultColor: "steelblue",
	XLabel:       "Risk Ratio",
	YLabel:       "p-value",
	Hexbin: HexbinConfig{
		Radius:     Range{Min: 3, Max: 10},
		CountRange: Range{Min: 3, Max: 100},
	},
	Selected: []Column{
		{"phylum", "Phylum"},
		{"genus", "Genus"},
		{"gg_id", "Details"},
	},
	Details: []Column{
		{"otu", "OTU"},
		{"phylum", "Phylum"},
		{"genus", "Genus"},
		{"family", "Family"},
		{"gg_id", "Details"},
	},
}

// A ConfigError reports an invalid or missing configuration option.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

// Normalize returns a copy of c with defaults applied to every unset
// option, or a *ConfigError if the result is not usable. c itself is
// not modified. Normalizing a normalized Config returns an equal
// Config.
func (c Config) Normalize() (Config, error) {
	d := DefaultConfig

	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.Margin == (Margin{}) {
		c.Margin = d.Margin
	}
	if c.ShowYAxis == "" {
		c.ShowYAxis = d.ShowYAxis
	}
	// Copy slices so the result doesn't alias the caller's.
	c.Structure = append([]string(nil), c.Structure...)
	if c.ColorVar == "" && len(c.Structure) > 0 {
		c.ColorVar = c.Structure[0]
	}
	if c.RatioLimit == 0 {
		c.RatioLimit = d.RatioLimit
	}
	if c.Hexbin.Radius == (Range{}) {
		c.Hexbin.Radius = d.Hexbin.Radius
	}
	if c.Hexbin.CountRange == (Range{}) {
		c.Hexbin.CountRange = d.Hexbin.CountRange
	}
	if c.Palette == "" {
		c.Palette = d.Palette
	}
	if c.DefaultColor == "" {
		c.DefaultColor = d.DefaultColor
	}
	if c.XLabel == "" {
		c.XLabel = d.XLabel
	}
	if c.YLabel == "" {
		c.YLabel = d.YLabel
	}
	if len(c.Selected) == 0 {
		c.Selected = d.Selected
	}
	c.Selected = append([]Column(nil), c.Selected...)
	if len(c.Details) == 0 {
		c.Details = d.Details
	}
	c.Details = append([]Column(nil), c.Details...)

	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) validate() error {
	for _, req := range []struct{ field, val string }{
		{"p_col", c.PCol},
		{"ratio_col", c.RatioCol},
		{"reference_col", c.ReferenceCol},
		{"comparison_col", c.ComparisonCol},
	} {
		if req.val == "" {
			return &ConfigError{req.field, "required column name is not set"}
		}
	}
	if c.Width < 0 || c.Height < 0 {
		return &ConfigError{"width/height", fmt.Sprintf("panel size %dx%d must be positive", c.Width, c.Height)}
	}
	if c.ShowYAxis != YAxisAll && c.ShowYAxis != YAxisFirst {
		return &ConfigError{"showYaxis", fmt.Sprintf("%q is not %q or %q", c.ShowYAxis, YAxisAll, YAxisFirst)}
	}
	if math.IsNaN(c.RatioLimit) || math.IsInf(c.RatioLimit, 0) {
		return &ConfigError{"ratioLimit", "must be finite"}
	}
	if r := c.Hexbin.Radius; !(r.Min > 0 && r.Min <= r.Max) {
		return &ConfigError{"hexbin.radius", fmt.Sprintf("need 0 < min <= max, have [%g, %g]", r.Min, r.Max)}
	}
	if r := c.Hexbin.CountRange; !(r.Min >= 0 && r.Min < r.Max) {
		return &ConfigError{"hexbin.countRange", fmt.Sprintf("need 0 <= min < max, have [%g, %g]", r.Min, r.Max)}
	}
	if _, err := paletteColors(c.Palette); err != nil {
		return &ConfigError{"palette", err.Error()}
	}
	if _, err := namedColor(c.DefaultColor); err != nil {
		return &ConfigError{"defaultColor", err.Error()}
	}
	return nil
}
