package main

import (
	"slices"
	"strings"

	"github.com/maisem/aoc2020"
)

var seatBits = strings.NewReplacer("F", "0", "B", "1", "L", "0", "R", "1")

// seatIDs returns the sorted ids of the boarding passes. The pass is the
// row and column in binary, so the id row*8+col is the whole pass read as
// one binary number.
func (s solver) seatIDs() []int {
	var ids []int
	s.ForLines(func(line string) {
		ids = append(ids, int(aoc.ParseBinary(seatBits.Replace(line))))
	})
	slices.Sort(ids)
	return ids
}

/*
want=820

BFFFBBFRRR
FFFBBBFRRR
BBFFBBFRLL
*/
func (s solver) D5p1() any {
	_, hi := aoc.MinMax(s.seatIDs()...)
	return hi
}

/*
want=357

FBFBBFFRLL
FBFBBFFRRL
*/
func (s solver) D5p2() any {
	ids := s.seatIDs()
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1]+2 {
			return ids[i] - 1
		}
	}
	panic("no free seat")
}
