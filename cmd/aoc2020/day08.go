package main

import (
	"github.com/maisem/aoc2020"
	"github.com/maisem/aoc2020/internal/handheld"
)

/*
want=5

nop +0
acc +1
jmp +4
acc +3
jmp -3
acc -99
acc +1
jmp -4
acc +6
*/
func (s solver) D8p1() any {
	prog := aoc.MustGet(handheld.Parse(s.InputString()))
	r := prog.Run()
	if r.Status != handheld.Looped {
		panic("program did not loop: " + r.Status.String())
	}
	return r.Acc
}

// want=8
func (s solver) D8p2() any {
	prog := aoc.MustGet(handheld.Parse(s.InputString()))
	r, pos, err := prog.RepairReachable()
	aoc.MustDo(err)
	s.Debugf("flipped %v", prog[pos])
	return r.Acc
}
