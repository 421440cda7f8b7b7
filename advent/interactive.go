package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/advent/dial"
	"github.com/chzyer/readline"
	"github.com/kr/pretty"
)

func init() {
	register("1i", day1Interactive)
}

func day1Interactive(conf *config, args []string) error {
	if len(args) != 0 {
		return errors.New("1i takes no args")
	}
	s := newSession(conf.start, os.Stdout)
	l, err := readline.NewEx(&readline.Config{
		Prompt:      s.prompt(),
		HistoryFile: filepath.Join(os.TempDir(), "advent-dial-history.txt"),
	})
	if err != nil {
		return err
	}
	defer l.Close()

	fmt.Println("Enter rotations like L68 or R14; also: reset, state, quit.")
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			log.Println("Readline error:", err)
			continue
		}
		if s.handle(line) {
			return nil
		}
		l.SetPrompt(s.prompt())
	}
}

// A session is an interactive dial that is turned one line at a time.
type session struct {
	start    dial.Dial
	d        dial.Dial
	landings int
	w        io.Writer
}

func newSession(start dial.Dial, w io.Writer) *session {
	return &session{start: start, d: start, w: w}
}

func (s *session) prompt() string {
	return fmt.Sprintf("%d> ", s.d.Position)
}

// handle runs one line of input and reports whether the session is over.
func (s *session) handle(line string) bool {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false
	case "quit", "exit":
		return true
	case "reset":
		s.d = s.start
		s.landings = 0
		fmt.Fprintf(s.w, "reset to %s\n", s.d)
		return false
	case "state":
		fmt.Fprintf(s.w, "%# v\nlandings: %d\n", pretty.Formatter(s.d), s.landings)
		return false
	}
	r, ok := dial.ParseRotation(line)
	if !ok {
		fmt.Fprintf(s.w, "not a rotation: %q\n", line)
		return false
	}
	s.d = s.d.Apply(r)
	// Landings are counted at the floor, as in dial.Puzzle.Part1.
	if s.d.Position == s.d.Floor {
		s.landings++
	}
	fmt.Fprintf(s.w, "%s -> %s landings=%d\n", r, s.d, s.landings)
	return false
}
