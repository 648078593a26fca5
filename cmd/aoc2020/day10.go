package main

import (
	"slices"

	"github.com/maisem/aoc2020"
)

// adapters returns the joltages of the chain: the outlet (0), every adapter
// in ascending order and the device (max+3).
func (s solver) adapters() []int {
	j := aoc.Ints(s.Lines()...)
	slices.Sort(j)
	j = append([]int{0}, j...)
	return append(j, j[len(j)-1]+3)
}

/*
want=35

16
10
15
5
1
11
7
19
6
12
4
*/
func (s solver) D10p1() any {
	j := s.adapters()
	diffs := map[int]int{}
	for i := 1; i < len(j); i++ {
		diffs[j[i]-j[i-1]]++
	}
	return diffs[1] * diffs[3]
}

// arrangements counts the ways to go from an adapter to the end of the
// chain, remembering the count for each adapter.
type arrangements struct {
	joltages []int
	cache    map[int]int // index -> count
}

func (a *arrangements) from(i int) int {
	if i == len(a.joltages)-1 {
		return 1
	}
	if n, ok := a.cache[i]; ok {
		return n
	}
	n := 0
	for k := i + 1; k < len(a.joltages) && a.joltages[k]-a.joltages[i] <= 3; k++ {
		n += a.from(k)
	}
	a.cache[i] = n
	return n
}

// want=8
func (s solver) D10p2() any {
	a := &arrangements{joltages: s.adapters(), cache: map[int]int{}}
	return a.from(0)
}
