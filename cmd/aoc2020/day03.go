package main

import "github.com/maisem/aoc2020"

// trees counts the trees hit going down the slope, which repeats to the
// right.
func trees(g aoc.Grid[byte], slope aoc.Pt) int {
	n := 0
	size := g.Size()
	for p := (aoc.Pt{}); p.Y < size.Y; p = p.Add(slope) {
		if g.At(aoc.StandardizePt(p, size)) == '#' {
			n++
		}
	}
	return n
}

/*
want=7

..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#
*/
func (s solver) D3p1() any {
	return trees(aoc.ByteGrid(s.InputString()), aoc.Pt{X: 3, Y: 1})
}

// want=336
func (s solver) D3p2() any {
	g := aoc.ByteGrid(s.InputString())
	prod := 1
	for _, slope := range []aoc.Pt{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 5, Y: 1}, {X: 7, Y: 1}, {X: 1, Y: 2}} {
		prod *= trees(g, slope)
	}
	return prod
}
