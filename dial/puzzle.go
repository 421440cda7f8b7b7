package dial

// A Puzzle is a list of rotations applied to a starting dial.
type Puzzle struct {
	Rotations []Rotation
	// Start is the dial each part begins from.
	// If nil, Default() is used.
	Start *Dial
}

func (p *Puzzle) start() Dial {
	if p.Start == nil {
		return Default()
	}
	return *p.Start
}

// Part1 counts the rotations that leave the dial pointing at its floor.
// For the default dial, and any dial whose floor is 0, that is the number
// of rotations that end at position 0. A dial whose range excludes 0 has
// its floor as the resting point instead.
func (p *Puzzle) Part1() int {
	d := p.start()
	var n int
	for _, r := range p.Rotations {
		d = d.Apply(r)
		if d.Position == d.Floor {
			n++
		}
	}
	return n
}

// Part2 returns the total number of clicks after every rotation is applied.
func (p *Puzzle) Part2() int {
	d := p.start()
	for _, r := range p.Rotations {
		d = d.Apply(r)
	}
	return d.Clicks
}

// Trace returns the dial after each rotation.
func (p *Puzzle) Trace() []Dial {
	d := p.start()
	trace := make([]Dial, len(p.Rotations))
	for i, r := range p.Rotations {
		d = d.Apply(r)
		trace[i] = d
	}
	return trace
}
