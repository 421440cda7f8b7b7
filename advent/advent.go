package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/felixge/fgprof"
)

func main() {
	log.SetFlags(0)
	configPath := flag.String("config", "", "INI file with [dial] and [serve] settings")
	verbose := flag.Bool("v", false, "log progress and resource usage")
	profile := flag.String("fgprof", "", "write an fgprof profile of the run to this file")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	fn, ok := solutions[flag.Arg(0)]
	if !ok {
		log.Fatalf("unknown solution %q", flag.Arg(0))
	}
	conf, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	conf.verbose = *verbose

	if err := run(fn, conf, flag.Args()[1:], *profile); err != nil {
		log.Fatal(err)
	}
	if conf.verbose {
		logUsage()
	}
}

// run calls fn, profiling it with fgprof if profile is non-empty.
// The profile is complete by the time run returns, even if fn fails.
func run(fn solution, conf *config, args []string, profile string) error {
	if profile != "" {
		f, err := os.Create(profile)
		if err != nil {
			return fmt.Errorf("cannot create profile: %s", err)
		}
		defer f.Close()
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				log.Printf("error writing profile: %s", err)
			}
		}()
	}
	return fn(conf, args)
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [args...]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

type solution func(conf *config, args []string) error

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

// nameLess orders solutions by day number, then by suffix.
// Names without a leading day number sort after all the days.
func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	if i == 0 {
		return int(^uint(0) >> 1), name
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
