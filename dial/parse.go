package dial

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ParseRotation parses a single instruction such as "L68" or "R14".
// It reports false if s is not of that form or the distance is negative.
func ParseRotation(s string) (Rotation, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rotation{}, false
	}
	var r Rotation
	switch s[0] {
	case 'L':
		r.Direction = Left
	case 'R':
		r.Direction = Right
	default:
		return Rotation{}, false
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 0 {
		return Rotation{}, false
	}
	r.Distance = n
	return r, true
}

// ParseRotations reads one instruction per line from r.
// Lines that are not valid instructions are skipped.
func ParseRotations(r io.Reader) ([]Rotation, error) {
	var rotations []Rotation
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rot, ok := ParseRotation(scanner.Text())
		if !ok {
			continue
		}
		rotations = append(rotations, rot)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rotations, nil
}

// ParsePuzzle reads a puzzle that starts from the default dial.
func ParsePuzzle(r io.Reader) (*Puzzle, error) {
	rotations, err := ParseRotations(r)
	if err != nil {
		return nil, err
	}
	return &Puzzle{Rotations: rotations}, nil
}
