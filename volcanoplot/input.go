// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readInput reads the rows of the table at path. "-" is standard input
// in CSV. Other paths are read by extension: .csv, .tsv or .txt
// (tab-separated), .json (an array of objects), or .xlsx (the named
// sheet, or the first sheet if sheet is "").
func readInput(path, sheet string) ([]map[string]string, error) {
	if path == "-" {
		return readDelimited(os.Stdin, ',')
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" {
		return readXLSX(path, sheet)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext {
	case ".csv":
		return readDelimited(f, ',')
	case ".tsv", ".txt":
		return readDelimited(f, '\t')
	case ".json":
		return readJSON(f)
	}
	return nil, fmt.Errorf("%s: unknown input format %q", path, ext)
}

// readDelimited reads a delimited table whose first row is the header.
func readDelimited(r io.Reader, comma rune) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	// Leading tabs would swallow empty TSV fields.
	cr.TrimLeadingSpace = comma != '\t'
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return rowsFromTable(recs)
}

func rowsFromTable(recs [][]string) ([]map[string]string, error) {
	if len(recs) == 0 {
		return nil, nil
	}
	header := recs[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i, col := range header {
		header[i] = strings.TrimSpace(col)
	}
	var rows []map[string]string
	for i, rec := range recs[1:] {
		if len(rec) > len(header) {
			return nil, fmt.Errorf("row %d: %d fields, header has %d", i+2, len(rec), len(header))
		}
		row := make(map[string]string, len(header))
		for j, col := range header {
			if j < len(rec) {
				row[col] = rec[j]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// readJSON reads an array of flat objects. Numbers keep their literal
// form so that coercion happens in one place.
func readJSON(r io.Reader) ([]map[string]string, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var objs []map[string]interface{}
	if err := dec.Decode(&objs); err != nil {
		return nil, err
	}
	rows := make([]map[string]string, len(objs))
	for i, obj := range objs {
		row := make(map[string]string, len(obj))
		for k, v := range obj {
			switch v := v.(type) {
			case nil:
				row[k] = ""
			case string:
				row[k] = v
			case json.Number:
				row[k] = v.String()
			case bool:
				row[k] = strconv.FormatBool(v)
			default:
				return nil, fmt.Errorf("record %d: field %q is not a scalar", i, k)
			}
		}
		rows[i] = row
	}
	return rows, nil
}

func readXLSX(path, sheet string) ([]map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: no sheets", path)
		}
		sheet = sheets[0]
	}
	recs, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rows, err := rowsFromTable(recs)
	if err != nil {
		return nil, fmt.Errorf("%s: sheet %s: %w", path, sheet, err)
	}
	return rows, nil
}
