package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/maisem/aoc2020"
)

// msgRule is either a single literal character or a list of alternatives,
// each a sequence of rule ids.
type msgRule struct {
	lit  byte
	alts [][]int
}

type msgRules map[int]msgRule

func parseMsgRules(text string) msgRules {
	rules := msgRules{}
	for _, line := range strings.Split(text, "\n") {
		id, def, ok := strings.Cut(line, ": ")
		if !ok {
			panic("bad rule: " + line)
		}
		var r msgRule
		if lit, ok := strings.CutPrefix(def, `"`); ok {
			r.lit = strings.TrimSuffix(lit, `"`)[0]
		} else {
			for _, alt := range strings.Split(def, " | ") {
				r.alts = append(r.alts, aoc.IntFields(alt, ""))
			}
		}
		rules[aoc.Int(id)] = r
	}
	return rules
}

// match returns every position in msg at which a match of rule id starting
// at pos can end. Rules may refer to themselves, as long as every loop
// consumes input.
func (rs msgRules) match(id int, msg string, pos int) []int {
	r, ok := rs[id]
	if !ok {
		panic(fmt.Sprintf("no rule %d", id))
	}
	if r.alts == nil {
		if pos < len(msg) && msg[pos] == r.lit {
			return []int{pos + 1}
		}
		return nil
	}
	var ends []int
	for _, seq := range r.alts {
		cur := []int{pos}
		for _, sub := range seq {
			var next []int
			for _, p := range cur {
				if p < len(msg) {
					next = append(next, rs.match(sub, msg, p)...)
				}
			}
			cur = next
		}
		ends = append(ends, cur...)
	}
	return ends
}

// matches reports whether rule 0 matches the whole of msg.
func (rs msgRules) matches(msg string) bool {
	return slices.Contains(rs.match(0, msg, 0), len(msg))
}

func (s solver) countMessages(loop bool) int {
	paras := s.Paragraphs()
	rules := parseMsgRules(paras[0])
	if loop {
		rules[8] = msgRule{alts: [][]int{{42}, {42, 8}}}
		rules[11] = msgRule{alts: [][]int{{42, 31}, {42, 11, 31}}}
	}
	return aoc.Count(strings.Split(paras[1], "\n"), rules.matches)
}

/*
want=2

0: 4 1 5
1: 2 3 | 3 2
2: 4 4 | 5 5
3: 4 5 | 5 4
4: "a"
5: "b"

ababbb
bababa
abbbab
aaabbb
aaaabbb
*/
func (s solver) D19p1() any {
	return s.countMessages(false)
}

/*
want=2

0: 8 11
8: 42
11: 42 31
42: 1
31: 2
1: "a"
2: "b"

ab
aab
abb
aabb
aaabb
ba
*/
func (s solver) D19p2() any {
	return s.countMessages(true)
}
