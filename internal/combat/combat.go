// Package combat plays the space card game Combat and its recursive variant.
package combat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/maisem/aoc2020"
	"tailscale.com/util/deephash"
)

type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

func (p Player) String() string {
	return fmt.Sprintf("Player %d", int(p))
}

// Parse parses the two hands, each introduced by a "Player N:" line and
// separated by a blank line.
func Parse(text string) (p1, p2 []int, err error) {
	blocks := strings.Split(strings.TrimSpace(text), "\n\n")
	if len(blocks) != 2 {
		return nil, nil, fmt.Errorf("got %d hands, want 2", len(blocks))
	}
	seen := map[int]bool{}
	var hands [2][]int
	for i, b := range blocks {
		lines := strings.Split(strings.TrimSpace(b), "\n")
		if want := fmt.Sprintf("Player %d:", i+1); strings.TrimSpace(lines[0]) != want {
			return nil, nil, fmt.Errorf("hand %d: got header %q, want %q", i+1, lines[0], want)
		}
		for _, l := range lines[1:] {
			c, err := strconv.Atoi(strings.TrimSpace(l))
			if err != nil {
				return nil, nil, fmt.Errorf("hand %d: %w", i+1, err)
			}
			if c <= 0 {
				return nil, nil, fmt.Errorf("hand %d: card %d is not positive", i+1, c)
			}
			if seen[c] {
				return nil, nil, fmt.Errorf("hand %d: duplicate card %d", i+1, c)
			}
			seen[c] = true
			hands[i] = append(hands[i], c)
		}
	}
	return hands[0], hands[1], nil
}

// Result is the outcome of a game.
type Result struct {
	Winner Player
	Deck   []int // the winner's deck, top first
	Rounds int   // rounds played, including those of sub-games
	Games  int   // games played, including the top-level one
}

// Score returns the score of the winning deck.
func (r Result) Score() int {
	return Score(r.Deck)
}

// Score returns the sum of each card multiplied by its position counted
// from the bottom of the deck, starting at 1.
func Score(deck []int) int {
	s := 0
	for i, c := range deck {
		s += c * (len(deck) - i)
	}
	return s
}

type game struct {
	decks  [2]aoc.Queue[int]
	rounds int
	games  int
}

func newGame(p1, p2 []int) *game {
	return &game{
		decks: [2]aoc.Queue[int]{
			aoc.NewQueue(append([]int(nil), p1...)...),
			aoc.NewQueue(append([]int(nil), p2...)...),
		},
		games: 1,
	}
}

// over reports whether a player has run out of cards, and if so who won.
func (g *game) over() (Player, bool) {
	switch {
	case g.decks[1].Len() == 0:
		return Player1, true
	case g.decks[0].Len() == 0:
		return Player2, true
	}
	return 0, false
}

// deal pops the top card of both decks.
func (g *game) deal() (c1, c2 int) {
	c1, _ = g.decks[0].Pop()
	c2, _ = g.decks[1].Pop()
	return c1, c2
}

// award gives both cards to the winner, the winner's card first.
func (g *game) award(w Player, c1, c2 int) {
	g.rounds++
	if w == Player1 {
		g.decks[0].Push(c1, c2)
	} else {
		g.decks[1].Push(c2, c1)
	}
}

func (g *game) result(w Player) Result {
	return Result{
		Winner: w,
		Deck:   g.decks[w-1].Slice(),
		Rounds: g.rounds,
		Games:  g.games,
	}
}

func higher(c1, c2 int) Player {
	if c1 > c2 {
		return Player1
	}
	return Player2
}

// Play plays a game of Combat: the higher card wins each round until one
// player holds every card.
func Play(p1, p2 []int) Result {
	g := newGame(p1, p2)
	for {
		if w, ok := g.over(); ok {
			return g.result(w)
		}
		c1, c2 := g.deal()
		g.award(higher(c1, c2), c1, c2)
	}
}

// state is the arrangement of both decks at the start of a round.
type state struct {
	P1, P2 []int
}

// ErrCardsEqual is the panic value when two players reveal the same card,
// which Parse rules out.
var ErrCardsEqual = errors.New("combat: both players revealed the same card")

// PlayRecursive plays a game of Recursive Combat.
//
// Before each round, if the decks are in an arrangement already seen in
// this game, Player 1 wins the game. If both players have at least as many
// cards left as the value of the card they revealed, the round is decided
// by a sub-game played with copies of that many cards from the top of each
// deck; otherwise the higher card wins.
func PlayRecursive(p1, p2 []int) Result {
	g := newGame(p1, p2)
	w := g.playRecursive()
	return g.result(w)
}

func (g *game) playRecursive() Player {
	seen := make(map[deephash.Sum]bool)
	for {
		if w, ok := g.over(); ok {
			return w
		}
		st := state{g.decks[0].Slice(), g.decks[1].Slice()}
		h := deephash.Hash(&st)
		if seen[h] {
			return Player1
		}
		seen[h] = true

		c1, c2 := g.deal()
		if c1 == c2 {
			panic(ErrCardsEqual)
		}
		var w Player
		if g.decks[0].Len() >= c1 && g.decks[1].Len() >= c2 {
			sub := newGame(g.decks[0].Head(c1), g.decks[1].Head(c2))
			w = sub.playRecursive()
			g.rounds += sub.rounds
			g.games += sub.games
		} else {
			w = higher(c1, c2)
		}
		g.award(w, c1, c2)
	}
}
