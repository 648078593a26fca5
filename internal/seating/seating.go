// Package seating simulates the ferry waiting area: a grid of seats that
// people fill and leave according to how crowded their surroundings are,
// until nobody moves any more.
package seating

import (
	"fmt"

	"github.com/maisem/aoc2020"
)

// Seat is the state of one grid cell.
type Seat byte

const (
	// OffGrid is returned for coordinates outside the grid.
	OffGrid  Seat = 0
	Floor    Seat = '.'
	Empty    Seat = 'L'
	Occupied Seat = '#'
)

func (s Seat) String() string {
	if s == OffGrid {
		return " "
	}
	return string(rune(s))
}

// Parse parses the seat layout, one row per line.
func Parse(text string) (aoc.Grid[Seat], error) {
	return aoc.ParseGrid(text, func(r rune) (Seat, error) {
		switch s := Seat(r); s {
		case Floor, Empty, Occupied:
			return s, nil
		}
		return OffGrid, fmt.Errorf("unknown seat %q", r)
	})
}

// Policy decides which seats a person looks at.
type Policy int

const (
	// Adjacent looks at the 8 surrounding cells; 4 occupied seats make a
	// person leave.
	Adjacent Policy = iota
	// Visible looks at the first seat in each of the 8 directions,
	// skipping floor; 5 occupied seats make a person leave.
	Visible
)

func (p Policy) String() string {
	switch p {
	case Adjacent:
		return "adjacent"
	case Visible:
		return "visible"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

func (p Policy) threshold() int {
	switch p {
	case Adjacent:
		return 4
	case Visible:
		return 5
	}
	panic(fmt.Sprintf("seating: unknown policy %d", p))
}

// neighbors returns the seats that the seat at pt takes into account.
// The relation is symmetric under both policies.
func (p Policy) neighbors(g aoc.Grid[Seat], pt aoc.Pt) []aoc.Pt {
	var out []aoc.Pt
	for _, d := range aoc.Neighbors8 {
		q := pt.Add(d)
		if p == Visible {
			for g.AtOr(q, OffGrid) == Floor {
				q = q.Add(d)
			}
		}
		if s := g.AtOr(q, OffGrid); s == Empty || s == Occupied {
			out = append(out, q)
		}
	}
	return out
}

// Mode selects how a Sim finds the cells to re-evaluate.
type Mode int

const (
	// Full re-evaluates every cell each generation.
	Full Mode = iota
	// Incremental only re-evaluates the cells that changed in the previous
	// generation and the seats that look at them.
	Incremental
)

// Sim is a running simulation.
type Sim struct {
	policy    Policy
	mode      Mode
	threshold int

	cur, next aoc.Grid[Seat]
	neighbors map[aoc.Pt][]aoc.Pt

	// candidates are the cells to re-evaluate in Incremental mode.
	candidates aoc.Set[aoc.Pt]
	gens       int
}

// New returns a simulation starting from a copy of g.
func New(g aoc.Grid[Seat], policy Policy, mode Mode) *Sim {
	s := &Sim{
		policy:     policy,
		mode:       mode,
		threshold:  policy.threshold(),
		cur:        g.Clone(),
		next:       g.Clone(),
		neighbors:  make(map[aoc.Pt][]aoc.Pt),
		candidates: aoc.NewSet[aoc.Pt](),
	}
	g.ForEach(func(p aoc.Pt, v Seat) {
		if v == Floor {
			return
		}
		s.neighbors[p] = policy.neighbors(g, p)
		s.candidates.Add(p)
	})
	return s
}

// at returns the current state of p, or OffGrid.
func (s *Sim) at(p aoc.Pt) Seat {
	return s.cur.AtOr(p, OffGrid)
}

// rule returns the next state of the seat at p.
func (s *Sim) rule(p aoc.Pt) Seat {
	v := s.at(p)
	if v == Floor || v == OffGrid {
		return v
	}
	n := 0
	for _, q := range s.neighbors[p] {
		if s.at(q) == Occupied {
			n++
		}
	}
	switch {
	case v == Empty && n == 0:
		return Occupied
	case v == Occupied && n >= s.threshold:
		return Empty
	}
	return v
}

// Step applies the rule to every cell at once and returns the number of
// cells that changed.
func (s *Sim) Step() int {
	var changed int
	switch s.mode {
	case Full:
		changed = s.stepFull()
	case Incremental:
		changed = s.stepIncremental()
	default:
		panic(fmt.Sprintf("seating: unknown mode %d", s.mode))
	}
	if changed > 0 {
		s.gens++
	}
	return changed
}

func (s *Sim) stepFull() int {
	changed := 0
	s.cur.ForEach(func(p aoc.Pt, v Seat) {
		nv := s.rule(p)
		if nv != v {
			changed++
		}
		s.next.Set(p, nv)
	})
	s.cur, s.next = s.next, s.cur
	return changed
}

func (s *Sim) stepIncremental() int {
	type change struct {
		p aoc.Pt
		v Seat
	}
	var changes []change
	for p := range s.candidates {
		if nv := s.rule(p); nv != s.at(p) {
			changes = append(changes, change{p, nv})
		}
	}
	next := aoc.NewSet[aoc.Pt]()
	for _, c := range changes {
		s.cur.Set(c.p, c.v)
		next.Add(c.p)
		for _, q := range s.neighbors[c.p] {
			next.Add(q)
		}
	}
	s.candidates = next
	return len(changes)
}

// Run steps until the layout stops changing and returns the number of
// occupied seats.
func (s *Sim) Run() int {
	if s.mode == Full {
		prev := s.cur.Hash()
		for {
			s.Step()
			h := s.cur.Hash()
			if h == prev {
				return s.Occupied()
			}
			prev = h
		}
	}
	for s.Step() > 0 {
	}
	return s.Occupied()
}

// Occupied returns the number of occupied seats.
func (s *Sim) Occupied() int {
	return s.cur.Count(func(v Seat) bool { return v == Occupied })
}

// Generations returns the number of steps that changed at least one seat.
func (s *Sim) Generations() int {
	return s.gens
}

// Grid returns a copy of the current layout.
func (s *Sim) Grid() aoc.Grid[Seat] {
	return s.cur.Clone()
}
