// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/aclements/volcano/volcano"
	"github.com/joho/godotenv"
	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"
)

// loadDotEnv loads ".env" from the current directory into the
// environment, if it exists. Variables already set are kept.
func loadDotEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// An envSetting binds an environment variable to a config field.
type envSetting struct {
	name string
	set  func(cfg *volcano.Config, v string) error
}

var envSettings = []envSetting{
	{"VOLCANO_P_COL", func(c *volcano.Config, v string) error { c.PCol = v; return nil }},
	{"VOLCANO_RATIO_COL", func(c *volcano.Config, v string) error { c.RatioCol = v; return nil }},
	{"VOLCANO_REFERENCE_COL", func(c *volcano.Config, v string) error { c.ReferenceCol = v; return nil }},
	{"VOLCANO_COMPARISON_COL", func(c *volcano.Config, v string) error { c.ComparisonCol = v; return nil }},
	{"VOLCANO_ID_COL", func(c *volcano.Config, v string) error { c.IDCol = v; return nil }},
	{"VOLCANO_COLOR_VAR", func(c *volcano.Config, v string) error { c.ColorVar = v; return nil }},
	{"VOLCANO_STRUCTURE", setStructure},
	{"VOLCANO_SHOW_Y_AXIS", func(c *volcano.Config, v string) error { c.ShowYAxis = v; return nil }},
	{"VOLCANO_PALETTE", func(c *volcano.Config, v string) error { c.Palette = v; return nil }},
	{"VOLCANO_RATIO_LIMIT", func(c *volcano.Config, v string) (err error) {
		c.RatioLimit, err = strconv.ParseFloat(v, 64)
		return
	}},
	{"VOLCANO_WIDTH", func(c *volcano.Config, v string) (err error) {
		c.Width, err = strconv.Atoi(v)
		return
	}},
	{"VOLCANO_HEIGHT", func(c *volcano.Config, v string) (err error) {
		c.Height, err = strconv.Atoi(v)
		return
	}},
}

func setStructure(cfg *volcano.Config, v string) error {
	words, err := shellquote.Split(v)
	if err != nil {
		return err
	}
	cfg.Structure = words
	return nil
}

// applyEnv sets the fields of cfg named by non-empty VOLCANO_*
// variables, as reported by getenv.
func applyEnv(cfg *volcano.Config, getenv func(string) string) error {
	for _, s := range envSettings {
		v := getenv(s.name)
		if v == "" {
			continue
		}
		if err := s.set(cfg, v); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

// applyFile overlays the YAML (or JSON) config file at path on cfg.
// Fields missing from the file are left alone.
func applyFile(cfg *volcano.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// configFlags registers the config override flags with flags. The returned
// function applies the flags that were set on the command line to cfg.
func configFlags(flags *flag.FlagSet) func(cfg *volcano.Config) error {
	var (
		pCol      = flags.String("p", "", "significance `column`")
		ratioCol  = flags.String("ratio", "", "effect ratio `column`")
		refCol    = flags.String("ref", "", "reference group `column`")
		cmpCol    = flags.String("cmp", "", "comparison group `column`")
		idCol     = flags.String("id", "", "record ID `column` (default: input position)")
		colorVar  = flags.String("color", "", "color marks by `column` (default: first structure column)")
		structure = flags.String("structure", "", "shell-quoted list of categorical `columns`")
		yaxis     = flags.String("yaxis", "", "draw the y axis on `all` panels or the first")
		palette   = flags.String("palette", "", "category10 or a ColorBrewer `palette` name")
		limit     = flags.Float64("limit", 0, "clamp ratios above `limit`")
		width     = flags.Int("width", 0, "panel plotting area `width` in pixels")
		height    = flags.Int("height", 0, "panel plotting area `height` in pixels")
	)
	return func(cfg *volcano.Config) error {
		var err error
		flags.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "p":
				cfg.PCol = *pCol
			case "ratio":
				cfg.RatioCol = *ratioCol
			case "ref":
				cfg.ReferenceCol = *refCol
			case "cmp":
				cfg.ComparisonCol = *cmpCol
			case "id":
				cfg.IDCol = *idCol
			case "color":
				cfg.ColorVar = *colorVar
			case "structure":
				if e := setStructure(cfg, *structure); e != nil && err == nil {
					err = fmt.Errorf("-structure: %w", e)
				}
			case "yaxis":
				cfg.ShowYAxis = *yaxis
			case "palette":
				cfg.Palette = *palette
			case "limit":
				cfg.RatioLimit = *limit
			case "width":
				cfg.Width = *width
			case "height":
				cfg.Height = *height
			}
		})
		return err
	}
}
