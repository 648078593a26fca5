package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3, 4)
	assert.Equal(t, 4, q.Len())
	v, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	head := q.Head(2)
	head[0] = 99
	assert.Equal(t, []int{2, 3, 4}, q.Slice())

	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		return v < 3
	})
	assert.Equal(t, []int{2, 3}, got)
	assert.Equal(t, 1, q.Len())

	var empty Queue[string]
	_, ok = empty.Pop()
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	a := NewSet(1, 2, 3)
	b := NewSet(2, 3, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, Sorted(a.Union(b)))
	assert.Equal(t, []int{2, 3}, Sorted(a.Intersect(b)))
	assert.Equal(t, []int{1}, Sorted(a.Minus(b)))

	a.Toggle(1)
	a.Toggle(5)
	assert.Equal(t, []int{2, 3, 5}, Sorted(a))
	a.Remove(5)
	assert.False(t, a.Has(5))

	_, ok := a.Only()
	assert.False(t, ok)
	v, ok := NewSet("x").Only()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}
