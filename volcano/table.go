// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volcano

import (
	"sort"
	"strconv"
	"strings"
)

// A Summary tabulates the selected records.
type Summary struct {
	// N is the number of selected IDs.
	N int

	// Columns are the labels of the configured selected columns.
	Columns []string

	// Rows has one entry per distinct combination of selected
	// column values, most frequent first.
	Rows []SummaryRow
}

type SummaryRow struct {
	Values []string
	Count  int
}

// Summarize tabulates the records of recs selected by sel. Each ID is
// counted once even if it appears in several groups.
func Summarize(cfg Config, recs []*Record, sel *Selection) *Summary {
	s := &Summary{N: sel.Len()}
	for _, col := range cfg.Selected {
		s.Columns = append(s.Columns, col.Label)
	}
	if sel.Len() == 0 {
		return s
	}

	seen := make(map[string]bool)
	index := make(map[string]int)
	for _, r := range recs {
		if !sel.Contains(r) {
			continue
		}
		id := r.ID(cfg.IDCol)
		if seen[id] {
			continue
		}
		seen[id] = true

		vals := make([]string, len(cfg.Selected))
		for i, col := range cfg.Selected {
			vals[i] = r.Fields[col.ValueCol]
		}
		key := strings.Join(vals, "\x00")
		i, ok := index[key]
		if !ok {
			i = len(s.Rows)
			index[key] = i
			s.Rows = append(s.Rows, SummaryRow{Values: vals})
		}
		s.Rows[i].Count++
	}
	sort.SliceStable(s.Rows, func(i, j int) bool {
		return s.Rows[i].Count > s.Rows[j].Count
	})
	return s
}

// A Detail is one labeled value of a record.
type Detail struct {
	Label, Value string
}

// Details returns the configured detail columns of r followed by its
// plotted values.
func Details(cfg Config, r *Record) []Detail {
	var ds []Detail
	for _, col := range cfg.Details {
		ds = append(ds, Detail{col.Label, r.Fields[col.ValueCol]})
	}
	ds = append(ds,
		Detail{"Comparison", r.PlotName},
		Detail{cfg.RatioCol, FormatTick(r.Ratio)},
		Detail{cfg.PCol, strconv.FormatFloat(r.P, 'g', -1, 64)},
	)
	if r.AboveLimit {
		ds = append(ds, Detail{"unclamped " + cfg.RatioCol, FormatTick(r.OrigRatio)})
	}
	return ds
}
