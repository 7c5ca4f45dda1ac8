// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestCellsToTable(t *testing.T) {
	_, c := testServer(t)
	tab := cellsToTable(c.Groups)
	if got, want := tab.Len(), 3; got != want {
		t.Errorf("got %d rows, want %d", got, want)
	}
	if ns, ok := tab.Column("n").([]int); !ok || ns[0] != 1 {
		t.Errorf("n column = %v, want []int starting with 1", tab.Column("n"))
	}

	var buf bytes.Buffer
	table.Fprint(&buf, tab)
	out := buf.String()
	for _, want := range []string{"panel", "B vs. A", "C vs. A", "#1f77b4"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
