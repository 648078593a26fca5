package main

import (
	"strings"

	"github.com/maisem/aoc2020"
)

// bus is a bus line and its required departure offset.
type bus struct {
	id, offset int
}

func (s solver) buses() (earliest int, buses []bus) {
	lines := s.Lines()
	earliest = aoc.Int(lines[0])
	for i, f := range strings.Split(lines[1], ",") {
		if f == "x" {
			continue
		}
		buses = append(buses, bus{id: aoc.Int(f), offset: i})
	}
	return earliest, buses
}

/*
want=295

939
7,13,x,x,59,x,31,19
*/
func (s solver) D13p1() any {
	earliest, buses := s.buses()
	best, wait := 0, -1
	for _, b := range buses {
		w := aoc.Mod(-earliest, b.id)
		if wait < 0 || w < wait {
			best, wait = b.id, w
		}
	}
	return best * wait
}

// want=1068781
func (s solver) D13p2() any {
	_, buses := s.buses()
	// Sieve: t satisfies every bus so far, and stays a solution when
	// advanced by the LCM of their ids.
	t, period := 0, 1
	for _, b := range buses {
		for aoc.Mod(t+b.offset, b.id) != 0 {
			t += period
		}
		period = aoc.LCM(period, b.id)
		s.Debug("t=", t, " period=", period)
	}
	return t
}
