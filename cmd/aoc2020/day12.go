package main

import (
	"fmt"

	"github.com/maisem/aoc2020"
)

type navInstr struct {
	action byte
	value  int
}

func (s solver) navigation() []navInstr {
	var out []navInstr
	s.ForLines(func(line string) {
		out = append(out, navInstr{line[0], aoc.Int(line[1:])})
	})
	return out
}

var compass = map[byte]aoc.Direction{
	'N': aoc.Up,
	'E': aoc.Right,
	'S': aoc.Down,
	'W': aoc.Left,
}

// quarterTurns returns the number of right quarter turns for an L or R
// instruction.
func quarterTurns(in navInstr) int {
	if in.value%90 != 0 {
		panic(fmt.Sprintf("bad turn %c%d", in.action, in.value))
	}
	n := in.value / 90
	if in.action == 'L' {
		n = -n
	}
	return aoc.Mod(n, 4)
}

/*
want=25

F10
N3
F7
R90
F11
*/
func (s solver) D12p1() any {
	var pos aoc.Pt
	heading := aoc.Right
	for _, in := range s.navigation() {
		switch in.action {
		case 'N', 'E', 'S', 'W':
			pos = pos.Add(compass[in.action].Delta().Mul(in.value))
		case 'L', 'R':
			for i := quarterTurns(in); i > 0; i-- {
				heading = heading.Turn(true)
			}
		case 'F':
			pos = pos.Add(heading.Delta().Mul(in.value))
		default:
			panic(fmt.Sprintf("bad action %c", in.action))
		}
	}
	return pos.MDist(aoc.Pt{})
}

// want=286
func (s solver) D12p2() any {
	var ship aoc.Pt
	// Y grows southwards.
	waypoint := aoc.Pt{X: 10, Y: -1}
	for _, in := range s.navigation() {
		switch in.action {
		case 'N', 'E', 'S', 'W':
			waypoint = waypoint.Add(compass[in.action].Delta().Mul(in.value))
		case 'L', 'R':
			for i := quarterTurns(in); i > 0; i-- {
				waypoint = aoc.Pt{X: -waypoint.Y, Y: waypoint.X}
			}
		case 'F':
			ship = ship.Add(waypoint.Mul(in.value))
		default:
			panic(fmt.Sprintf("bad action %c", in.action))
		}
	}
	return ship.MDist(aoc.Pt{})
}
