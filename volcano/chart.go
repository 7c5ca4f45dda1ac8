// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package volcano draws volcano plots of comparison data.
//
// A volcano plot places each record at its effect ratio (x) and
// significance (y, on a log scale). Records are split into one panel
// per comparison ("<comparison> vs. <reference>"), and the points of
// each panel are binned into hexagons so dense regions stay readable.
// Sparse hexagons are drawn as individual points. Marks are colored by
// a categorical column.
//
// A Chart runs the pipeline:
//
//	cfg, err := cfg.Normalize()   // defaults and validation
//	clean, warnings := Clean(cfg, raw)
//	scales, err := NewScales(cfg, clean)
//	groups := Nest(cfg, scales, clean)
//
// and renders the groups as SVG or as an HTML page with the selection
// tables. A Brush turns drags on a panel into a Selection shared by
// all panels.
package volcano

import (
	"fmt"
	"io"
)

// Lifecycle events accepted by Chart.On.
const (
	EventInit     = "init"
	EventComplete = "complete"
)

// A Chart is a configured volcano plot and the data derived from its
// records.
type Chart struct {
	Config Config

	Raw      []*Record
	Clean    []*Record
	Warnings []error // *DataWarning for each unplottable record
	Scales   *Scales
	Groups   []*Group

	hooks map[string]func(*Chart)
}

// New returns a Chart for the normalized form of cfg.
func New(cfg Config) (*Chart, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	return &Chart{Config: cfg, hooks: make(map[string]func(*Chart))}, nil
}

// On registers fn to be called at a lifecycle event. "init" is
// called by Init before any data is processed and "complete" after
// the groups are built. Other events and nil callbacks are ignored.
func (c *Chart) On(event string, fn func(*Chart)) {
	if event != EventInit && event != EventComplete {
		return
	}
	if fn != nil {
		c.hooks[event] = fn
	}
}

func (c *Chart) fire(event string) {
	if fn := c.hooks[event]; fn != nil {
		fn(c)
	}
}

// Init cleans raw and rebuilds the scales and groups from scratch.
// Records are updated in place by cleaning.
func (c *Chart) Init(raw []*Record) error {
	c.fire(EventInit)

	c.Raw = raw
	c.Clean, c.Warnings = Clean(c.Config, raw)
	scales, err := NewScales(c.Config, c.Clean)
	if err != nil {
		c.Scales, c.Groups = nil, nil
		return err
	}
	c.Scales = scales
	c.Groups = Nest(c.Config, c.Scales, c.Clean)

	c.fire(EventComplete)
	return nil
}

// NewBrush returns an Idle brush over c's clean records.
func (c *Chart) NewBrush() *Brush {
	return NewBrush(c.Scales, c.Clean, c.Config.IDCol)
}

// Record returns the clean record with the given ID, or nil.
func (c *Chart) Record(id string) *Record {
	for _, r := range c.Clean {
		if r.ID(c.Config.IDCol) == id {
			return r
		}
	}
	return nil
}

func (c *Chart) renderer(b *Brush) (*renderer, error) {
	if c.Scales == nil {
		return nil, fmt.Errorf("chart not initialized")
	}
	return &renderer{cfg: c.Config, scales: c.Scales, groups: c.Groups, brush: b}, nil
}

// WritePanel writes panel i as an SVG document. If b is non-nil, its
// selection is highlighted and its extent drawn.
func (c *Chart) WritePanel(w io.Writer, i int, b *Brush) error {
	r, err := c.renderer(b)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(c.Groups) {
		return fmt.Errorf("panel %d out of range [0, %d)", i, len(c.Groups))
	}
	r.writePanel(w, i)
	return nil
}

// WriteSVG writes all panels, left to right, as one SVG document.
func (c *Chart) WriteSVG(w io.Writer, b *Brush) error {
	r, err := c.renderer(b)
	if err != nil {
		return err
	}
	r.writeAll(w)
	return nil
}
