package main

import (
	"github.com/maisem/aoc2020"
	"github.com/maisem/aoc2020/internal/cups"
)

/*
want=67384529

389125467
*/
func (s solver) D23p1() any {
	c := aoc.MustGet(cups.Parse(s.InputString(), 0))
	c.Play(100)
	s.Debugf("final: %v", c)
	return c.LabelsAfter(1)
}

// want=149245887792
func (s solver) D23p2() any {
	c := aoc.MustGet(cups.New(aoc.Digits(s.InputString()), 1_000_000))
	c.Play(10_000_000)
	return aoc.Product(c.After(1, 2)...)
}
