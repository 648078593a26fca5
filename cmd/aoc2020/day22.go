package main

import (
	"github.com/maisem/aoc2020"
	"github.com/maisem/aoc2020/internal/combat"
)

func (s solver) playCombat(play func(p1, p2 []int) combat.Result) int {
	p1, p2, err := combat.Parse(s.InputString())
	aoc.MustDo(err)
	r := play(p1, p2)
	s.Logger().Debugw("game over", "winner", r.Winner, "rounds", r.Rounds, "games", r.Games)
	return r.Score()
}

/*
want=306

Player 1:
9
2
6
3
1

Player 2:
5
8
4
7
10
*/
func (s solver) D22p1() any {
	return s.playCombat(combat.Play)
}

// want=291
func (s solver) D22p2() any {
	return s.playCombat(combat.PlayRecursive)
}
