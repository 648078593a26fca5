package main

import (
	"slices"

	"github.com/maisem/aoc2020"
)

// memoryGame returns the number spoken on the given turn.
func memoryGame(start []int, turn int) int {
	if turn <= len(start) {
		return start[turn-1]
	}
	// lastSeen[n] is the turn n was last spoken before the previous turn,
	// or 0.
	lastSeen := make([]int32, max(turn, slices.Max(start)+1))
	for i, n := range start[:len(start)-1] {
		lastSeen[n] = int32(i + 1)
	}
	last := start[len(start)-1]
	for t := len(start); t < turn; t++ {
		next := 0
		if prev := lastSeen[last]; prev != 0 {
			next = t - int(prev)
		}
		lastSeen[last] = int32(t)
		last = next
	}
	return last
}

/*
want=436

0,3,6
*/
func (s solver) D15p1() any {
	return memoryGame(aoc.IntFields(s.InputString(), ","), 2020)
}

// want=175594
func (s solver) D15p2() any {
	return memoryGame(aoc.IntFields(s.InputString(), ","), 30_000_000)
}
