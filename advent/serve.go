package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cespare/advent/dial"
	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/go-chi/chi/v4"
)

func init() {
	register("serve", serve)
}

func serve(conf *config, args []string) error {
	addr := conf.addr
	switch len(args) {
	case 0:
	case 1:
		addr = args[0]
	default:
		return errors.New("serve takes at most 1 arg (listen address)")
	}
	s := &http.Server{
		Addr:         addr,
		Handler:      newServer(conf),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Printf("Listening on %s (max body %s)", addr, humanize.Bytes(uint64(conf.maxBody)))
	return s.ListenAndServe()
}

type server struct {
	conf *config
}

func newServer(conf *config) http.Handler {
	s := &server{conf: conf}
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Post("/day1", s.handleSolve)
	r.Post("/day1/trace", s.handleTrace)
	r.Handle("/debug/fgprof", fgprof.Handler())
	return r
}

type solveResponse struct {
	Rotations int `json:"rotations"`
	Part1     int `json:"part1"`
	Part2     int `json:"part2"`
}

type traceStep struct {
	Rotation string `json:"rotation"`
	Position int    `json:"position"`
	Clicks   int    `json:"clicks"`
}

func (s *server) handleSolve(w http.ResponseWriter, r *http.Request) {
	p, ok := s.readPuzzle(w, r)
	if !ok {
		return
	}
	writeJSON(w, solveResponse{
		Rotations: len(p.Rotations),
		Part1:     p.Part1(),
		Part2:     p.Part2(),
	})
}

func (s *server) handleTrace(w http.ResponseWriter, r *http.Request) {
	p, ok := s.readPuzzle(w, r)
	if !ok {
		return
	}
	steps := make([]traceStep, 0, len(p.Rotations))
	for i, d := range p.Trace() {
		steps = append(steps, traceStep{
			Rotation: p.Rotations[i].String(),
			Position: d.Position,
			Clicks:   d.Clicks,
		})
	}
	writeJSON(w, steps)
}

func (s *server) readPuzzle(w http.ResponseWriter, r *http.Request) (*dial.Puzzle, bool) {
	body := http.MaxBytesReader(w, r.Body, s.conf.maxBody)
	rotations, err := dial.ParseRotations(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg := fmt.Sprintf("body larger than %s", humanize.Bytes(uint64(tooLarge.Limit)))
			http.Error(w, msg, http.StatusRequestEntityTooLarge)
			return nil, false
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return s.conf.puzzle(rotations), true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error writing response: %s", err)
	}
}
