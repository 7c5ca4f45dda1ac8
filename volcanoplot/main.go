// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command volcanoplot draws hexbinned volcano plots of comparison data.
//
// volcanoplot reads tables of records from its inputs (or standard
// input), one record per row. Each record needs a significance column,
// an effect ratio column, and the two columns naming the compared
// groups. volcanoplot draws one panel per comparison and writes the
// panels as SVG, as an HTML page, or as a text table of hexbin cells.
// With -http, it instead serves an interactive page where dragging on
// a panel selects records in every panel.
//
// Configuration is read, in increasing priority, from ".env" and
// VOLCANO_* environment variables, from the YAML or JSON file given by
// -config, and from flags. For example:
//
//	volcanoplot -p pvalue -ratio rr -ref group1 -cmp group2 \
//		-structure 'phylum genus' -format html -o out.html otus.csv
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/volcano/volcano"
)

func main() {
	log.SetPrefix("volcanoplot: ")
	log.SetFlags(0)

	var (
		flagOut    = flag.String("o", "", "write output to `file` (default: stdout)")
		flagFormat = flag.String("format", "svg", "output `format`: svg or html")
		flagTable  = flag.Bool("table", false, "output a table of hexbin cells instead of a plot")
		flagHTTP   = flag.String("http", "", "serve an interactive plot on `addr` (e.g., localhost:0)")
		flagConfig = flag.String("config", "", "read configuration from YAML or JSON `file`")
		flagSheet  = flag.String("sheet", "", "read `sheet` of .xlsx inputs (default: first sheet)")
		flagQuiet  = flag.Bool("q", false, "do not report unplottable records or requests")
	)
	applyFlags := configFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *flagFormat != "svg" && *flagFormat != "html" {
		flag.Usage()
		os.Exit(2)
	}

	// Build configuration.
	var cfg volcano.Config
	if err := loadDotEnv(); err != nil {
		log.Fatal(err)
	}
	if err := applyEnv(&cfg, os.Getenv); err != nil {
		log.Fatal(err)
	}
	if *flagConfig != "" {
		if err := applyFile(&cfg, *flagConfig); err != nil {
			log.Fatal(err)
		}
	}
	if err := applyFlags(&cfg); err != nil {
		log.Fatal(err)
	}
	chart, err := volcano.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Read inputs.
	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var rows []map[string]string
	for _, path := range paths {
		rs, err := readInput(path, *flagSheet)
		if err != nil {
			log.Fatal(err)
		}
		rows = append(rows, rs...)
	}

	if err := chart.Init(volcano.NewRecords(rows)); err != nil {
		log.Fatal(err)
	}
	if !*flagQuiet {
		for _, w := range chart.Warnings {
			log.Print(w)
		}
	}

	if *flagHTTP != "" {
		newState(chart).serve(*flagHTTP, !*flagQuiet)
		return
	}

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	// Output table.
	if *flagTable {
		table.Fprint(f, cellsToTable(chart.Groups))
		return
	}

	switch *flagFormat {
	case "svg":
		err = chart.WriteSVG(f, nil)
	case "html":
		err = chart.WriteHTML(f, nil, false)
	}
	if err != nil {
		log.Fatal(err)
	}
}
