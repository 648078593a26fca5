package main

import (
	"strings"

	"github.com/maisem/aoc2020"
)

// groupAnswers returns the questions answered by each person, per group.
func (s solver) groupAnswers() [][]aoc.Set[rune] {
	var groups [][]aoc.Set[rune]
	for _, para := range s.Paragraphs() {
		var g []aoc.Set[rune]
		for _, person := range strings.Fields(para) {
			g = append(g, aoc.NewSet([]rune(person)...))
		}
		groups = append(groups, g)
	}
	return groups
}

/*
want=11

abc

a
b
c

ab
ac

a
a
a
a

b
*/
func (s solver) D6p1() any {
	sum := 0
	for _, g := range s.groupAnswers() {
		sum += len(g[0].Union(g[1:]...))
	}
	return sum
}

// want=6
func (s solver) D6p2() any {
	sum := 0
	for _, g := range s.groupAnswers() {
		sum += len(g[0].Intersect(g[1:]...))
	}
	return sum
}
