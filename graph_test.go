package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraph(t *testing.T) {
	var g Graph[string]
	g.AddArc("a", "b", 1)
	g.AddArc("b", "c", 2)
	g.AddNode("d")

	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, g.ReachableNodes("a"))
	assert.Equal(t, map[string]bool{"d": true}, g.ReachableNodes("d"))

	r := g.Reverse()
	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, r.ReachableNodes("c"))
	assert.Equal(t, 2, r.Edges["c"]["b"])
	assert.True(t, r.Nodes["d"])

	c := g.Clone()
	c.AddEdge("c", "d", 5)
	assert.Equal(t, 5, c.Edges["d"]["c"])
	assert.NotContains(t, g.Edges, "d")
	c.RemoveEdge("c", "d")
	assert.Empty(t, c.Edges["d"])
}
