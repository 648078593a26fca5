package main

import (
	"github.com/maisem/aoc2020"
	"github.com/maisem/aoc2020/internal/seating"
)

func (s solver) settle(policy seating.Policy) int {
	g := aoc.MustGet(seating.Parse(s.InputString()))
	sim := seating.New(g, policy, seating.Incremental)
	n := sim.Run()
	s.Logger().Debugw("seating settled", "policy", policy, "generations", sim.Generations())
	return n
}

/*
want=37

L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL
*/
func (s solver) D11p1() any {
	return s.settle(seating.Adjacent)
}

// want=26
func (s solver) D11p2() any {
	return s.settle(seating.Visible)
}
