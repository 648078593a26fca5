package main

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2020"
)

type password struct {
	lo, hi int
	c      byte
	value  string
}

func parsePasswords(lines []string) []password {
	out := make([]password, 0, len(lines))
	for _, l := range lines {
		var p password
		aoc.MustGet(fmt.Sscanf(l, "%d-%d %c: %s", &p.lo, &p.hi, &p.c, &p.value))
		out = append(out, p)
	}
	return out
}

/*
want=2

1-3 a: abcde
1-3 b: cdefg
2-9 c: ccccccccc
*/
func (s solver) D2p1() any {
	return aoc.Count(parsePasswords(s.Lines()), func(p password) bool {
		n := strings.Count(p.value, string(p.c))
		return n >= p.lo && n <= p.hi
	})
}

// want=1
func (s solver) D2p2() any {
	return aoc.Count(parsePasswords(s.Lines()), func(p password) bool {
		// Positions are 1-based.
		at := func(i int) bool { return i <= len(p.value) && p.value[i-1] == p.c }
		return at(p.lo) != at(p.hi)
	})
}
