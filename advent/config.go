package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cespare/advent/dial"
	"github.com/dustin/go-humanize"
	"github.com/vaughan0/go-ini"
)

type config struct {
	start   dial.Dial
	addr    string
	maxBody int64
	verbose bool
}

func defaultConfig() *config {
	return &config{
		start:   dial.Default(),
		addr:    "localhost:8080",
		maxBody: 1e6,
	}
}

// loadConfig reads the INI file at path. An empty path yields the defaults.
func loadConfig(path string) (*config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	conf, err := parseConfig(file)
	if err != nil {
		return nil, fmt.Errorf("bad config (%s): %s", path, err)
	}
	return conf, nil
}

func readConfig(r io.Reader) (*config, error) {
	file, err := ini.Load(r)
	if err != nil {
		return nil, err
	}
	return parseConfig(file)
}

func parseConfig(file ini.File) (*config, error) {
	conf := defaultConfig()

	start := conf.start
	for _, field := range []struct {
		key string
		p   *int
	}{
		{"start", &start.Position},
		{"floor", &start.Floor},
		{"ceiling", &start.Ceiling},
	} {
		s, ok := file.Get("dial", field.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("[dial] %s: %s", field.key, err)
		}
		*field.p = n
	}
	d, err := dial.New(start.Position, start.Floor, start.Ceiling)
	if err != nil {
		return nil, err
	}
	conf.start = d

	if addr, ok := file.Get("serve", "addr"); ok {
		conf.addr = addr
	}
	if s, ok := file.Get("serve", "max_body"); ok {
		n, err := humanize.ParseBytes(s)
		if err != nil {
			return nil, fmt.Errorf("[serve] max_body: %s", err)
		}
		conf.maxBody = int64(n)
	}
	return conf, nil
}

func (c *config) puzzle(rotations []dial.Rotation) *dial.Puzzle {
	start := c.start
	return &dial.Puzzle{Rotations: rotations, Start: &start}
}
