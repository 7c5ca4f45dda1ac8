// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volcano

import (
	"errors"
	"fmt"
	"math"
)

// ErrBrushState is returned for a brush event that is not valid in
// the brush's current state.
var ErrBrushState = errors.New("invalid brush transition")

// BrushState is the state of a Brush.
type BrushState int

const (
	// Idle: nothing is selected and no drag is in progress.
	Idle BrushState = iota
	// Dragging: a drag has started and not yet ended.
	Dragging
	// Applied: a drag ended and its selection is in effect.
	Applied
)

func (s BrushState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Applied:
		return "applied"
	}
	return fmt.Sprintf("BrushState(%d)", int(s))
}

// A Point is a position in panel pixels, relative to the plotting
// area's origin.
type Point struct {
	X, Y float64
}

// A Rect is a closed rectangle in data space.
type Rect struct {
	RatioMin, RatioMax float64
	PMin, PMax         float64
}

// Contains reports whether r's plotted values lie in rect.
func (rect Rect) Contains(r *Record) bool {
	return rect.RatioMin <= r.Ratio && r.Ratio <= rect.RatioMax &&
		rect.PMin <= r.P && r.P <= rect.PMax
}

// Invert maps the pixel rectangle spanned by p0 and p1 to data space.
func (s *Scales) Invert(p0, p1 Point) Rect {
	x0, x1 := s.X.Invert(p0.X), s.X.Invert(p1.X)
	y0, y1 := s.Y.Invert(p0.Y), s.Y.Invert(p1.Y)
	return Rect{
		RatioMin: math.Min(x0, x1), RatioMax: math.Max(x0, x1),
		PMin: math.Min(y0, y1), PMax: math.Max(y0, y1),
	}
}

// Select returns the IDs of the records in recs that lie in rect,
// without duplicates, in the order of their first matching record.
func Select(rect Rect, recs []*Record, idCol string) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, r := range recs {
		if !rect.Contains(r) {
			continue
		}
		id := r.ID(idCol)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// A Selection is the result of a completed brush.
type Selection struct {
	// Panel is the panel the brush was drawn on.
	Panel int
	Rect  Rect
	IDs   []string

	idCol string
	set   map[string]bool
}

func newSelection(panel int, rect Rect, ids []string, idCol string) *Selection {
	sel := &Selection{Panel: panel, Rect: rect, IDs: ids, idCol: idCol, set: make(map[string]bool)}
	for _, id := range ids {
		sel.set[id] = true
	}
	return sel
}

// Len returns the number of selected IDs.
func (sel *Selection) Len() int {
	if sel == nil {
		return 0
	}
	return len(sel.IDs)
}

// Contains reports whether r is selected. Records are selected by ID,
// so a record is highlighted in every panel it appears in.
func (sel *Selection) Contains(r *Record) bool {
	return sel != nil && sel.set[r.ID(sel.idCol)]
}

// Brush tracks a drag-to-select interaction over the panels.
//
// Brush starts Idle. Start moves it to Dragging, Move updates the
// dragged extent, and End computes the selection and moves it to
// Applied. Starting a new drag discards the previous selection. Clear
// returns to Idle from any state.
type Brush struct {
	scales *Scales
	recs   []*Record
	idCol  string

	state      BrushState
	panel      int
	start, cur Point
	sel        *Selection
}

// NewBrush returns an Idle brush selecting from recs using the shared
// scales s.
func NewBrush(s *Scales, recs []*Record, idCol string) *Brush {
	return &Brush{scales: s, recs: recs, idCol: idCol}
}

func (b *Brush) State() BrushState {
	return b.state
}

// Start begins a drag on panel at p.
func (b *Brush) Start(panel int, p Point) error {
	if b.state == Dragging {
		return fmt.Errorf("start while %s: %w", b.state, ErrBrushState)
	}
	b.state = Dragging
	b.panel = panel
	b.start, b.cur = p, p
	b.sel = nil
	return nil
}

// Move extends the current drag to p.
func (b *Brush) Move(p Point) error {
	if b.state != Dragging {
		return fmt.Errorf("move while %s: %w", b.state, ErrBrushState)
	}
	b.cur = p
	return nil
}

// End finishes the current drag and applies its selection. A drag
// that covers no area clears the selection and leaves the brush Idle,
// in which case End returns a nil Selection.
func (b *Brush) End() (*Selection, error) {
	if b.state != Dragging {
		return nil, fmt.Errorf("end while %s: %w", b.state, ErrBrushState)
	}
	if b.start.X == b.cur.X || b.start.Y == b.cur.Y {
		b.Clear()
		return nil, nil
	}
	rect := b.scales.Invert(b.start, b.cur)
	b.sel = newSelection(b.panel, rect, Select(rect, b.recs, b.idCol), b.idCol)
	b.state = Applied
	return b.sel, nil
}

// Clear discards any drag or selection.
func (b *Brush) Clear() {
	b.state = Idle
	b.sel = nil
}

// Extent returns the corners of the current or last applied drag.
func (b *Brush) Extent() (panel int, p0, p1 Point) {
	return b.panel, b.start, b.cur
}

// Selection returns the applied selection, or nil if the brush is not
// Applied.
func (b *Brush) Selection() *Selection {
	if b.state != Applied {
		return nil
	}
	return b.sel
}
