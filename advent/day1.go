package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cespare/advent/dial"
	"github.com/cespare/wait"
	"github.com/dustin/go-humanize"
)

func init() {
	register("1a", day1a)
	register("1b", day1b)
	register("1", day1)
}

const defaultInput = "input.txt"

func day1a(conf *config, args []string) error {
	p, err := loadPuzzle(conf, args)
	if err != nil {
		return err
	}
	fmt.Println("Part 1:", p.Part1())
	return nil
}

func day1b(conf *config, args []string) error {
	p, err := loadPuzzle(conf, args)
	if err != nil {
		return err
	}
	fmt.Println("Part 2:", p.Part2())
	return nil
}

// day1 solves both parts at once. Each part folds its own dial, so they
// can run side by side.
func day1(conf *config, args []string) error {
	p, err := loadPuzzle(conf, args)
	if err != nil {
		return err
	}
	var part1, part2 int
	var wg wait.Group
	wg.Go(func(<-chan struct{}) error {
		part1 = p.Part1()
		return nil
	})
	wg.Go(func(<-chan struct{}) error {
		part2 = p.Part2()
		return nil
	})
	if err := wg.Wait(); err != nil {
		return err
	}
	fmt.Println("Part 1:", part1)
	fmt.Println("Part 2:", part2)
	return nil
}

func loadPuzzle(conf *config, args []string) (*dial.Puzzle, error) {
	name := defaultInput
	switch len(args) {
	case 0:
	case 1:
		name = args[0]
	default:
		return nil, errors.New("need at most 1 arg (input file)")
	}

	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("cannot read input: %s", err)
		}
		defer f.Close()
		if conf.verbose {
			if stat, err := f.Stat(); err == nil {
				log.Printf("Reading %s (%s)", name, humanize.Bytes(uint64(stat.Size())))
			}
		}
		r = f
	}
	rotations, err := dial.ParseRotations(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %s", name, err)
	}
	if conf.verbose {
		log.Printf("Parsed %s rotations; starting at %s", humanize.Comma(int64(len(rotations))), conf.start)
	}
	return conf.puzzle(rotations), nil
}
