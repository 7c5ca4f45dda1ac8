// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volcano

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Record is one input row.
//
// Fields holds the raw column values. The remaining fields are
// derived by Clean, which fills them in place.
type Record struct {
	Fields map[string]string

	// Index is the position of this record in the raw input.
	Index int

	// PlotName is "<comparison> vs. <reference>" and names the
	// group this record is plotted in.
	PlotName string

	// Ratio and P are the numeric ratio and significance values.
	// Ratio is at most the configured ratio limit.
	Ratio, P float64

	// AboveLimit is set if the raw ratio exceeded the ratio
	// limit, in which case OrigRatio is the raw ratio.
	AboveLimit bool
	OrigRatio  float64
}

// NewRecords wraps rows of raw column values as Records.
func NewRecords(rows []map[string]string) []*Record {
	recs := make([]*Record, len(rows))
	for i, row := range rows {
		recs[i] = &Record{Fields: row, Index: i}
	}
	return recs
}

// ID returns the identity of r in selections: the value of idCol, or
// r's input position if idCol is empty.
func (r *Record) ID(idCol string) string {
	if idCol == "" {
		return strconv.Itoa(r.Index)
	}
	return r.Fields[idCol]
}

// A DataWarning reports a record that cannot be plotted.
type DataWarning struct {
	Index  int
	Field  string
	Value  string
	Reason string
}

func (w *DataWarning) Error() string {
	return fmt.Sprintf("record %d: %s %q %s", w.Index, w.Field, w.Value, w.Reason)
}

// parseNumber coerces s to a number. Anything that is not a number,
// including the empty string, is NaN.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Clean derives the plotted fields of each raw record in place and
// returns the records that can be plotted, in input order.
//
// Records whose ratio or significance is not a finite number, or
// whose significance is not positive, are still updated but are left
// out of clean and reported in warnings.
func Clean(cfg Config, raw []*Record) (clean []*Record, warnings []error) {
	clean = make([]*Record, 0, len(raw))
	for _, r := range raw {
		r.PlotName = r.Fields[cfg.ComparisonCol] + " vs. " + r.Fields[cfg.ReferenceCol]
		r.P = parseNumber(r.Fields[cfg.PCol])
		r.Ratio = parseNumber(r.Fields[cfg.RatioCol])
		r.AboveLimit, r.OrigRatio = false, 0
		if r.Ratio > cfg.RatioLimit {
			r.OrigRatio = r.Ratio
			r.Ratio = cfg.RatioLimit
			r.AboveLimit = true
		}

		if !isFinite(r.Ratio) {
			warnings = append(warnings, &DataWarning{r.Index, cfg.RatioCol, r.Fields[cfg.RatioCol], "is not a finite number"})
			continue
		}
		if !isFinite(r.P) {
			warnings = append(warnings, &DataWarning{r.Index, cfg.PCol, r.Fields[cfg.PCol], "is not a finite number"})
			continue
		}
		if r.P <= 0 {
			warnings = append(warnings, &DataWarning{r.Index, cfg.PCol, r.Fields[cfg.PCol], "is not positive and cannot be plotted on a log scale"})
			continue
		}
		clean = append(clean, r)
	}
	return clean, warnings
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
