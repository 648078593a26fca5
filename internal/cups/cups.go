// Package cups simulates the crab's cup game: a circle of labelled cups
// where each move picks up the three cups after the current one and puts
// them back down after a destination chosen by label.
package cups

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrTooFewCups     = errors.New("need at least 4 cups")
	ErrDuplicateLabel = errors.New("duplicate cup label")
	ErrNotContiguous  = errors.New("cup labels are not a contiguous range")
)

const pickUp = 3

// Circle is a circle of cups with labels in [min, min+len).
//
// The circle is stored as a successor table indexed by label offset, so
// that both "the cup after x" and "the cup labelled x" are O(1).
type Circle struct {
	next    []int32 // next[l-min] is the offset of the cup after the cup labelled l
	min     int
	current int32
}

// New returns a circle with the given labels in clockwise order, the first
// being the current cup. If total is larger than len(labels), the circle
// is extended with cups labelled max+1, max+2, ... until it holds total
// cups.
func New(labels []int, total int) (*Circle, error) {
	n := max(len(labels), total)
	if len(labels) == 0 || n < pickUp+1 {
		return nil, fmt.Errorf("%d cups: %w", n, ErrTooFewCups)
	}
	lo, hi := slices.Min(labels), slices.Max(labels)
	if hi-lo+1 != len(labels) {
		return nil, fmt.Errorf("labels span %d..%d with %d cups: %w", lo, hi, len(labels), ErrNotContiguous)
	}
	c := &Circle{
		next: make([]int32, n),
		min:  lo,
	}
	seen := make([]bool, len(labels))
	order := make([]int32, 0, n)
	for _, l := range labels {
		off := l - lo
		if seen[off] {
			return nil, fmt.Errorf("label %d: %w", l, ErrDuplicateLabel)
		}
		seen[off] = true
		order = append(order, int32(off))
	}
	for off := len(labels); off < n; off++ {
		order = append(order, int32(off))
	}
	for i, off := range order {
		c.next[off] = order[(i+1)%n]
	}
	c.current = order[0]
	return c, nil
}

// Parse parses a string of single-digit labels such as "389125467". See New
// for total.
func Parse(s string, total int) (*Circle, error) {
	s = strings.TrimSpace(s)
	labels := make([]int, 0, len(s))
	for i, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("position %d: %q is not a cup label", i, r)
		}
		labels = append(labels, int(r-'0'))
	}
	if len(labels) == 0 {
		return nil, ErrTooFewCups
	}
	return New(labels, total)
}

// Len returns the number of cups.
func (c *Circle) Len() int {
	return len(c.next)
}

// Current returns the label of the current cup.
func (c *Circle) Current() int {
	return int(c.current) + c.min
}

// Move performs one move of the game.
func (c *Circle) Move() {
	n := int32(len(c.next))
	cur := c.current

	// Pick up the three cups after current and close the gap.
	a := c.next[cur]
	b := c.next[a]
	z := c.next[b]
	c.next[cur] = c.next[z]

	// At most pickUp labels are skipped, so the search ends within
	// pickUp+1 steps.
	dest := cur
	for i := 0; ; i++ {
		if i > pickUp {
			panic(fmt.Sprintf("cups: no destination for cup %d", c.Current()))
		}
		dest--
		if dest < 0 {
			dest = n - 1
		}
		if dest != a && dest != b && dest != z {
			break
		}
	}

	// Put them down after dest.
	c.next[z] = c.next[dest]
	c.next[dest] = a

	c.current = c.next[cur]
}

// Play performs rounds moves.
func (c *Circle) Play(rounds int) {
	for i := 0; i < rounds; i++ {
		c.Move()
	}
}

// After returns the labels of the n cups clockwise of the cup labelled label.
func (c *Circle) After(label, n int) []int {
	if label < c.min || label >= c.min+len(c.next) {
		panic(fmt.Sprintf("cups: no cup labelled %d", label))
	}
	out := make([]int, 0, n)
	off := int32(label - c.min)
	for i := 0; i < n; i++ {
		off = c.next[off]
		out = append(out, int(off)+c.min)
	}
	return out
}

// Labels returns every label once, clockwise from the current cup.
func (c *Circle) Labels() []int {
	out := make([]int, 0, len(c.next))
	off := c.current
	for {
		out = append(out, int(off)+c.min)
		off = c.next[off]
		if off == c.current || len(out) > len(c.next) {
			return out
		}
	}
}

// LabelsAfter returns the labels clockwise of label, excluding label itself,
// concatenated.
func (c *Circle) LabelsAfter(label int) string {
	var sb strings.Builder
	for _, l := range c.After(label, len(c.next)-1) {
		fmt.Fprint(&sb, l)
	}
	return sb.String()
}

func (c *Circle) String() string {
	var sb strings.Builder
	for i, l := range c.Labels() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if i == 0 {
			fmt.Fprintf(&sb, "(%d)", l)
		} else {
			fmt.Fprint(&sb, l)
		}
	}
	return sb.String()
}
