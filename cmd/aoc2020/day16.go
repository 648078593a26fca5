package main

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2020"
)

type ticketField struct {
	name     string
	lo1, hi1 int
	lo2, hi2 int
}

func (f ticketField) allows(v int) bool {
	return (v >= f.lo1 && v <= f.hi1) || (v >= f.lo2 && v <= f.hi2)
}

type tickets struct {
	fields []ticketField
	mine   []int
	nearby [][]int
}

func (s solver) tickets() tickets {
	paras := s.Paragraphs()
	if len(paras) != 3 {
		panic(fmt.Sprintf("got %d sections, want 3", len(paras)))
	}
	var t tickets
	for _, line := range strings.Split(paras[0], "\n") {
		name, ranges, ok := strings.Cut(line, ": ")
		if !ok {
			panic("bad field: " + line)
		}
		f := ticketField{name: name}
		aoc.MustGet(fmt.Sscanf(ranges, "%d-%d or %d-%d", &f.lo1, &f.hi1, &f.lo2, &f.hi2))
		t.fields = append(t.fields, f)
	}
	t.mine = aoc.IntFields(aoc.TrimPrefix(paras[1], "your ticket:\n"), ",")
	for _, line := range strings.Split(aoc.TrimPrefix(paras[2], "nearby tickets:\n"), "\n") {
		t.nearby = append(t.nearby, aoc.IntFields(line, ","))
	}
	return t
}

// invalid returns the values of the ticket that fit no field.
func (t tickets) invalid(ticket []int) []int {
	var out []int
	for _, v := range ticket {
		ok := false
		for _, f := range t.fields {
			if f.allows(v) {
				ok = true
				break
			}
		}
		if !ok {
			out = append(out, v)
		}
	}
	return out
}

/*
want=71

class: 1-3 or 5-7
row: 6-11 or 33-44
seat: 13-40 or 45-50

your ticket:
7,1,14

nearby tickets:
7,3,47
40,4,50
55,2,20
38,6,12
*/
func (s solver) D16p1() any {
	t := s.tickets()
	rate := 0
	for _, ticket := range t.nearby {
		rate += aoc.Sum(t.invalid(ticket)...)
	}
	return rate
}

// positions works out which ticket column holds each field, by elimination.
func (t tickets) positions() map[string]int {
	var valid [][]int
	for _, ticket := range t.nearby {
		if len(t.invalid(ticket)) == 0 {
			valid = append(valid, ticket)
		}
	}
	candidates := map[string]aoc.Set[int]{}
	for _, f := range t.fields {
		c := aoc.NewSet[int]()
		for i := range t.mine {
			if aoc.Count(valid, func(ticket []int) bool { return !f.allows(ticket[i]) }) == 0 {
				c.Add(i)
			}
		}
		candidates[f.name] = c
	}
	out := map[string]int{}
	for len(candidates) > 0 {
		progress := false
		for name, c := range candidates {
			i, ok := c.Only()
			if !ok {
				continue
			}
			out[name] = i
			delete(candidates, name)
			for _, other := range candidates {
				other.Remove(i)
			}
			progress = true
		}
		if !progress {
			panic("ambiguous ticket fields")
		}
	}
	return out
}

/*
want=156

departure class: 0-1 or 4-19
row: 0-5 or 8-19
departure seat: 0-13 or 16-19

your ticket:
11,12,13

nearby tickets:
3,9,18
15,1,5
5,14,9
*/
func (s solver) D16p2() any {
	t := s.tickets()
	prod := 1
	for name, i := range t.positions() {
		if strings.HasPrefix(name, "departure") {
			prod *= t.mine[i]
		}
	}
	return prod
}
