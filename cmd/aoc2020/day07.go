package main

import (
	"regexp"
	"strings"

	"github.com/maisem/aoc2020"
)

const shinyGold = "shiny gold"

var bagRx = regexp.MustCompile(`(\d+) (\w+ \w+) bags?`)

// bagRules returns the graph with an arc from each bag colour to every
// colour it must contain, weighted by count.
func (s solver) bagRules() *aoc.Graph[string] {
	g := &aoc.Graph[string]{}
	s.ForLines(func(line string) {
		outer, inner, ok := strings.Cut(line, " bags contain ")
		if !ok {
			panic("bad rule: " + line)
		}
		g.AddNode(outer)
		for _, m := range bagRx.FindAllStringSubmatch(inner, -1) {
			g.AddArc(outer, m[2], aoc.Int(m[1]))
		}
	})
	return g
}

/*
want=4

light red bags contain 1 bright white bag, 2 muted yellow bags.
dark orange bags contain 3 bright white bags, 4 muted yellow bags.
bright white bags contain 1 shiny gold bag.
muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
dark olive bags contain 3 faded blue bags, 4 dotted black bags.
vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
faded blue bags contain no other bags.
dotted black bags contain no other bags.
*/
func (s solver) D7p1() any {
	return len(s.bagRules().Reverse().ReachableNodes(shinyGold)) - 1
}

// bagCounter counts the bags inside a bag, remembering colours already
// counted.
type bagCounter struct {
	g    *aoc.Graph[string]
	memo map[string]int
}

func (c *bagCounter) inside(colour string) int {
	if n, ok := c.memo[colour]; ok {
		return n
	}
	n := 0
	for inner, count := range c.g.Edges[colour] {
		n += count * (1 + c.inside(inner))
	}
	c.memo[colour] = n
	return n
}

// want=32
func (s solver) D7p2() any {
	c := &bagCounter{g: s.bagRules(), memo: map[string]int{}}
	return c.inside(shinyGold)
}
