package aoc

import (
	"slices"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

// Queue is a FIFO queue. The zero value is an empty queue.
type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v ...T) {
	q.q = append(q.q, v...)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

// Head returns a copy of the first n elements of the queue.
func (q *Queue[T]) Head(n int) []T {
	return slices.Clone(q.q[:n])
}

// Slice returns a copy of the queue contents, head first.
func (q *Queue[T]) Slice() []T {
	return slices.Clone(q.q)
}

func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

// Set is a set of comparable values.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	s.Add(vals...)
	return s
}

func (s Set[T]) Add(vals ...T) {
	for _, v := range vals {
		s[v] = struct{}{}
	}
}

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Remove(v T) {
	delete(s, v)
}

// Toggle adds v if absent and removes it otherwise.
func (s Set[T]) Toggle(v T) {
	if s.Has(v) {
		delete(s, v)
		return
	}
	s[v] = struct{}{}
}

func (s Set[T]) Clone() Set[T] {
	return maps.Clone(s)
}

// Union returns a new set with the elements of s and all others.
func (s Set[T]) Union(others ...Set[T]) Set[T] {
	out := s.Clone()
	for _, o := range others {
		for v := range o {
			out[v] = struct{}{}
		}
	}
	return out
}

// Intersect returns a new set with the elements present in s and all others.
func (s Set[T]) Intersect(others ...Set[T]) Set[T] {
	out := make(Set[T])
outer:
	for v := range s {
		for _, o := range others {
			if !o.Has(v) {
				continue outer
			}
		}
		out[v] = struct{}{}
	}
	return out
}

// Minus returns a new set with the elements of s not present in o.
func (s Set[T]) Minus(o Set[T]) Set[T] {
	out := make(Set[T])
	for v := range s {
		if !o.Has(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// Only returns the single element of s. ok is false if s does not have
// exactly one element.
func (s Set[T]) Only() (v T, ok bool) {
	if len(s) != 1 {
		return v, false
	}
	for v = range s {
	}
	return v, true
}

// Sorted returns the elements of an ordered set in ascending order.
func Sorted[T constraints.Ordered](s Set[T]) []T {
	out := maps.Keys(s)
	slices.Sort(out)
	return out
}
