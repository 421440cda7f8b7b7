package main

import (
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"
)

func logUsage() {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		log.Printf("Cannot get resource usage: %s", err)
		return
	}
	cpu := time.Duration(ru.Utime.Nano() + ru.Stime.Nano())
	log.Printf("cpu: %s, max RSS: %s",
		cpu.Round(time.Millisecond), humanize.Bytes(uint64(ru.Maxrss)*1024))
}
