// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/aclements/volcano/volcano"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// state is the chart being served and the brush shared by all
// clients.
type state struct {
	mu    sync.Mutex
	chart *volcano.Chart
	brush *volcano.Brush
}

func newState(c *volcano.Chart) *state {
	return &state{chart: c, brush: c.NewBrush()}
}

func (s *state) routes(logRequests bool) http.Handler {
	r := chi.NewRouter()
	if logRequests {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Get("/", s.httpMain)
	r.Get("/panel/{i}.svg", s.httpPanel)
	r.Post("/brush", s.httpBrush)
	r.Post("/brush/clear", s.httpClear)
	r.Get("/details/{id}", s.httpDetails)
	return r
}

func (s *state) serve(addr string, logRequests bool) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to create server socket: %v", err)
	}
	fmt.Printf("Listening on http://%s\n", ln.Addr())
	err = http.Serve(ln, s.routes(logRequests))
	log.Fatalf("failed to start HTTP server: %v", err)
}

func (s *state) httpMain(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	if err := s.chart.WriteHTML(&buf, s.brush, true); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func (s *state) httpPanel(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(chi.URLParam(r, "i"))
	if err != nil {
		http.Error(w, "bad panel index", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.chart.Groups) {
		http.NotFound(w, r)
		return
	}
	var buf bytes.Buffer
	if err := s.chart.WritePanel(&buf, i, s.brush); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	buf.WriteTo(w)
}

// brushRequest is a drag on a panel, in the panel's plotting area
// pixels.
type brushRequest struct {
	Panel int     `json:"panel"`
	X0    float64 `json:"x0"`
	Y0    float64 `json:"y0"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
}

type brushResponse struct {
	N      int      `json:"n"`
	IDs    []string `json:"ids"`
	Panels []string `json:"panels"`
	Table  string   `json:"table"`
}

func (s *state) httpBrush(w http.ResponseWriter, r *http.Request) {
	var req brushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Panel < 0 || req.Panel >= len(s.chart.Groups) {
		http.Error(w, fmt.Sprintf("panel %d out of range", req.Panel), http.StatusBadRequest)
		return
	}
	s.brush.Clear()
	if err := s.brush.Start(req.Panel, volcano.Point{X: req.X0, Y: req.Y0}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := s.brush.Move(volcano.Point{X: req.X1, Y: req.Y1}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if _, err := s.brush.End(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeBrush(w)
}

func (s *state) httpClear(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.brush.Clear()
	s.writeBrush(w)
}

// writeBrush writes the current selection and the panels and table
// redrawn for it. s.mu must be held.
func (s *state) writeBrush(w http.ResponseWriter) {
	resp := brushResponse{IDs: []string{}}
	if sel := s.brush.Selection(); sel != nil {
		resp.N = sel.Len()
		resp.IDs = sel.IDs
	}
	panels, err := s.chart.RenderPanels(s.brush)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	resp.Panels = panels
	var buf bytes.Buffer
	if err := s.chart.WriteSummary(&buf, s.brush); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	resp.Table = buf.String()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Print(err)
	}
}

func (s *state) httpDetails(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.chart.Record(chi.URLParam(r, "id"))
	if rec == nil {
		http.NotFound(w, r)
		return
	}
	var buf bytes.Buffer
	if err := s.chart.WriteDetails(&buf, rec); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
