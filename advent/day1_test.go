package main

import (
	"os"
	"path/filepath"
	"testing"
)

const example = "L68\nL30\nR48\nL5\nR60\nL55\nL1\nL99\nR14\nL82\n"

func TestLoadPuzzle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(example+"junk\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := loadPuzzle(defaultConfig(), []string{path})
	if err != nil {
		t.Fatal(err)
	}
	if got := len(p.Rotations); got != 10 {
		t.Errorf("got %d rotations; want 10", got)
	}
	if got := p.Part1(); got != 3 {
		t.Errorf("Part1: got %d; want 3", got)
	}
	if got := p.Part2(); got != 6 {
		t.Errorf("Part2: got %d; want 6", got)
	}
}

func TestLoadPuzzleErrors(t *testing.T) {
	if _, err := loadPuzzle(defaultConfig(), []string{filepath.Join(t.TempDir(), "nope.txt")}); err == nil {
		t.Error("loading a missing input file succeeded")
	}
	if _, err := loadPuzzle(defaultConfig(), []string{"a", "b"}); err == nil {
		t.Error("loading with 2 args succeeded")
	}
}

func TestPuzzleUsesConfiguredStart(t *testing.T) {
	conf := defaultConfig()
	conf.start.Position = 32
	p := conf.puzzle(nil)
	if p.Start == nil || p.Start.Position != 32 {
		t.Fatalf("got start %v; want position 32", p.Start)
	}
	p.Start.Position = 1
	if conf.start.Position != 32 {
		t.Error("puzzle start aliases the config")
	}
}
