// Package dial models a circular combination-lock dial that is turned by a
// sequence of left and right rotations.
package dial

import "fmt"

type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// A Rotation turns the dial Distance steps in Direction.
type Rotation struct {
	Direction Direction
	Distance  int
}

func (r Rotation) String() string {
	return fmt.Sprintf("%s%d", r.Direction, r.Distance)
}

// A Dial is a position within [Floor, Ceiling] together with the number of
// times the dial has passed through or stopped at Floor.
//
// Dials are values: Apply returns a new Dial and leaves its receiver alone.
type Dial struct {
	Position int
	Floor    int
	Ceiling  int
	Clicks   int
}

const (
	defaultPosition = 50
	defaultFloor    = 0
	defaultCeiling  = 99
)

// Default returns a dial spanning 0-99 and pointing at 50.
func Default() Dial {
	return Dial{
		Position: defaultPosition,
		Floor:    defaultFloor,
		Ceiling:  defaultCeiling,
	}
}

// New returns a dial with no clicks.
func New(position, floor, ceiling int) (Dial, error) {
	if floor > ceiling {
		return Dial{}, fmt.Errorf("dial floor %d is above ceiling %d", floor, ceiling)
	}
	if position < floor || position > ceiling {
		return Dial{}, fmt.Errorf("dial position %d is outside [%d, %d]", position, floor, ceiling)
	}
	return Dial{Position: position, Floor: floor, Ceiling: ceiling}, nil
}

func (d Dial) size() int {
	return d.Ceiling - d.Floor + 1
}

func (d Dial) String() string {
	return fmt.Sprintf("pos=%d clicks=%d", d.Position, d.Clicks)
}

// Apply turns the dial by r and returns the result.
//
// Each time the raw position runs off either end of the dial and is brought
// back around counts as a click, and so does coming to rest on Floor.
// Two adjustments keep a single visit to Floor from being counted twice:
// wrapping past Ceiling onto Floor stops there without the resting click,
// and a left turn that starts on Floor gives back the click for leaving it.
// Wrapping below Floor onto Floor gets no such early stop.
//
// The wraps are counted by division, so Apply takes constant time for any
// distance and never overflows.
func (d Dial) Apply(r Rotation) Dial {
	if r.Distance == 0 {
		return d
	}
	size := d.size()
	off := d.Position - d.Floor
	clicks := d.Clicks

	if r.Direction == Right {
		// Every wrap past Ceiling is a click. Landing on Floor can only
		// happen through a wrap, which stops there without a resting click.
		rem := off + r.Distance%size
		clicks += r.Distance/size + rem/size
		d.Position = d.Floor + rem%size
		d.Clicks = clicks
		return d
	}

	raw := off - r.Distance
	if raw < 0 {
		// Number of times size must be added to bring raw back to >= 0.
		below := -raw - 1
		clicks += below/size + 1
		off = size - 1 - below%size
	} else {
		off = raw
	}
	if off == 0 {
		clicks++
	}
	if d.Position == d.Floor {
		clicks--
	}
	d.Position = d.Floor + off
	d.Clicks = clicks
	return d
}
