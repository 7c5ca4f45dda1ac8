// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volcano

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/aclements/go-gg/palette/brewer"
	"golang.org/x/image/colornames"
)

// category10 is the d3 "category10" palette.
var category10 = []color.Color{
	color.RGBA{0x1f, 0x77, 0xb4, 0xff},
	color.RGBA{0xff, 0x7f, 0x0e, 0xff},
	color.RGBA{0x2c, 0xa0, 0x2c, 0xff},
	color.RGBA{0xd6, 0x27, 0x28, 0xff},
	color.RGBA{0x94, 0x67, 0xbd, 0xff},
	color.RGBA{0x8c, 0x56, 0x4b, 0xff},
	color.RGBA{0xe3, 0x77, 0xc2, 0xff},
	color.RGBA{0x7f, 0x7f, 0x7f, 0xff},
	color.RGBA{0xbc, 0xbd, 0x22, 0xff},
	color.RGBA{0x17, 0xbe, 0xcf, 0xff},
}

// paletteColors returns the colors of the named palette. ColorBrewer
// palettes come in several sizes; the largest is used.
func paletteColors(name string) ([]color.Color, error) {
	if name == "category10" {
		return category10, nil
	}
	sizes, ok := brewer.ByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q", name)
	}
	n := 0
	for size := range sizes {
		if size > n {
			n = size
		}
	}
	var cs []color.Color
	for _, c := range sizes[n] {
		cs = append(cs, c)
	}
	if len(cs) == 0 {
		return nil, fmt.Errorf("palette %q has no colors", name)
	}
	return cs, nil
}

// namedColor parses an SVG color keyword or a "#rrggbb" color.
func namedColor(name string) (color.Color, error) {
	if strings.HasPrefix(name, "#") {
		var c color.RGBA
		if n, err := fmt.Sscanf(name, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil || n != 3 || len(name) != 7 {
			return nil, fmt.Errorf("bad color %q", name)
		}
		c.A = 0xff
		return c, nil
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

// cssColor formats c as a CSS "#rrggbb" color.
func cssColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
