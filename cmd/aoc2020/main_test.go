package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/maisem/aoc2020"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slow are the days whose samples take a while: they play millions of
// turns even on the sample input.
var slow = map[int]bool{15: true, 23: true}

func TestSamples(t *testing.T) {
	for day := 1; day <= 25; day++ {
		t.Run(fmt.Sprintf("day%02d", day), func(t *testing.T) {
			if slow[day] && testing.Short() {
				t.Skip("slow sample")
			}
			var out bytes.Buffer
			cmd := aoc.Command(2020, sources, &solver{})
			cmd.SetOut(&out)
			cmd.SetArgs([]string{"--sample", "--day", fmt.Sprint(day)})
			require.NoError(t, cmd.Execute(), out.String())
			assert.Contains(t, out.String(), "✅")
			assert.NotContains(t, out.String(), "❌")
		})
	}
}

func TestAnswersEmbedded(t *testing.T) {
	answers, err := aoc.LoadAnswers(sources, "answers.yaml")
	require.NoError(t, err)
	want, ok := answers.Lookup(23, "1")
	require.True(t, ok)
	assert.Equal(t, "29385746", want)
	_, ok = answers.Lookup(25, "2")
	assert.False(t, ok)
}

func TestExpenses(t *testing.T) {
	vals := []int{1721, 979, 366, 299, 675, 1456}
	assert.Equal(t, 514579, expenses(vals, 2, 2020))
	assert.Equal(t, 241861950, expenses(vals, 3, 2020))
	assert.Zero(t, expenses(vals, 2, 1))
}

func TestTrees(t *testing.T) {
	g := aoc.ByteGrid("..\n.#\n#.")
	assert.Equal(t, 2, trees(g, aoc.Pt{X: 3, Y: 1}))
	assert.Equal(t, 1, trees(g, aoc.Pt{X: 2, Y: 2}))
}

func TestMemoryGame(t *testing.T) {
	tests := []struct {
		start []int
		want  int
	}{
		{[]int{1, 3, 2}, 1},
		{[]int{2, 1, 3}, 10},
		{[]int{1, 2, 3}, 27},
		{[]int{2, 3, 1}, 78},
		{[]int{3, 2, 1}, 438},
		{[]int{3, 1, 2}, 1836},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, memoryGame(tt.start, 2020), "%v", tt.start)
	}
	// The first turns are the starting numbers, then 0, 3, 3, 1, 0, 4, 0.
	for turn, want := range []int{0, 3, 6, 0, 3, 3, 1, 0, 4, 0} {
		assert.Equal(t, want, memoryGame([]int{0, 3, 6}, turn+1), "turn %d", turn+1)
	}
	// Starting numbers may exceed the turn count.
	for turn, want := range []int{100, 7, 0, 0, 1, 0} {
		assert.Equal(t, want, memoryGame([]int{100, 7}, turn+1), "turn %d", turn+1)
	}
}

func TestParseMask(t *testing.T) {
	m := parseMask("XXXXXXXXXXXXXXXXXXXXXXXXXXXXX1XXXX0X")
	assert.Equal(t, uint64(0b1000000), m.ones)
	assert.Equal(t, uint64(0b10), m.zeros)

	mem := map[uint64]uint64{}
	addressDecoder.write(mem, parseMask("000000000000000000000000000000X1001X"), 42, 100)
	assert.Equal(t, map[uint64]uint64{26: 100, 27: 100, 58: 100, 59: 100}, mem)
}

func TestHexWalk(t *testing.T) {
	assert.Equal(t, hex{X: 1, Y: -1}, walk("esew"))
	assert.Equal(t, hex{}, walk("nwwswee"))
}

func TestLoopSize(t *testing.T) {
	assert.Equal(t, 8, loopSize(5764801))
	assert.Equal(t, 11, loopSize(17807724))
}

func TestEdgeKey(t *testing.T) {
	assert.Equal(t, edgeKey("#..."), edgeKey("...#"))
	g := aoc.ByteGrid("#..\n..#\n.##")
	top, right, bottom, left := borders(g)
	assert.Equal(t, []string{"#..", ".##", ".##", "#.."}, []string{top, right, bottom, left})
}

func TestMessages(t *testing.T) {
	rules := parseMsgRules(strings.Join([]string{
		`0: 1 2`,
		`1: "a"`,
		`2: 1 3 | 3 1`,
		`3: "b"`,
	}, "\n"))
	for msg, want := range map[string]bool{
		"aab":  true,
		"aba":  true,
		"abb":  false,
		"aa":   false,
		"aabx": false,
	} {
		assert.Equal(t, want, rules.matches(msg), msg)
	}
}
