package main

import "github.com/maisem/aoc2020"

// cube is a point in up to four dimensions; unused axes stay 0.
type cube [4]int

// offsets returns the offsets to every neighbour of a cube in dims
// dimensions.
func offsets(dims int) []cube {
	out := []cube{{}}
	for d := 0; d < dims; d++ {
		var next []cube
		for _, o := range out {
			for _, delta := range []int{-1, 0, 1} {
				o[d] = delta
				next = append(next, o)
			}
		}
		out = next
	}
	// Drop the zero offset.
	return append(out[:len(out)/2], out[len(out)/2+1:]...)
}

func (s solver) conway(dims, cycles int) int {
	active := aoc.NewSet[cube]()
	aoc.ByteGrid(s.InputString()).ForEach(func(p aoc.Pt, v byte) {
		if v == '#' {
			active.Add(cube{p.X, p.Y})
		}
	})
	nbrs := offsets(dims)
	for i := 0; i < cycles; i++ {
		counts := map[cube]int{}
		for c := range active {
			for _, o := range nbrs {
				counts[cube{c[0] + o[0], c[1] + o[1], c[2] + o[2], c[3] + o[3]}]++
			}
		}
		next := aoc.NewSet[cube]()
		for c, n := range counts {
			if n == 3 || (n == 2 && active.Has(c)) {
				next.Add(c)
			}
		}
		active = next
		s.Debugf("cycle %d: %d active", i+1, len(active))
	}
	return len(active)
}

/*
want=112

.#.
..#
###
*/
func (s solver) D17p1() any {
	return s.conway(3, 6)
}

// want=848
func (s solver) D17p2() any {
	return s.conway(4, 6)
}
