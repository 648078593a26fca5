package main

import (
	"github.com/maisem/aoc2020"
	"github.com/maisem/aoc2020/internal/expr"
)

/*
want=26335

2 * 3 + (4 * 5)
5 + (8 * 3 + 9 + 3 * 4 * 3)
5 * 9 * (7 * 3 * 3 + 9 * 3 + (8 + 6 * 4))
((2 + 4 * 9) * (6 + 9 * 8 + 6) + 6) + 2 + 4 * 2
*/
func (s solver) D18p1() any {
	return aoc.MustGet(expr.Sum(s.InputString(), expr.LeftToRight))
}

// want=693891
func (s solver) D18p2() any {
	return aoc.MustGet(expr.Sum(s.InputString(), expr.AdditionFirst))
}
