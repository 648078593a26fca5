package cups

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "389125467"

func TestPlay(t *testing.T) {
	tests := []struct {
		rounds int
		want   string
	}{
		{0, "25467389"},
		{10, "92658374"},
		{100, "67384529"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.rounds), func(t *testing.T) {
			c, err := Parse(sample, 0)
			require.NoError(t, err)
			c.Play(tt.rounds)
			assert.Equal(t, tt.want, c.LabelsAfter(1))
		})
	}
}

func TestMove(t *testing.T) {
	c, err := Parse(sample, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Current())
	c.Move()
	assert.Equal(t, []int{2, 8, 9, 1, 5, 4, 6, 7, 3}, c.Labels())
	assert.Equal(t, "(2) 8 9 1 5 4 6 7 3", c.String())
}

func TestMoveFourCups(t *testing.T) {
	// With four cups every other label is picked up, so the destination
	// wraps back to the current cup.
	c, err := New([]int{1, 2, 3, 4}, 0)
	require.NoError(t, err)
	c.Move()
	assert.Equal(t, []int{2, 3, 4, 1}, c.Labels())
}

func TestLabelsNotStartingAtOne(t *testing.T) {
	c, err := New([]int{5, 3, 6, 2, 4}, 0)
	require.NoError(t, err)
	c.Play(7)
	assert.Equal(t, []int{4, 3, 6, 2, 5}, c.Labels())
	assert.Equal(t, []int{5, 4, 3, 6}, c.After(2, 4))
}

func TestCircleKeepsEveryLabel(t *testing.T) {
	c, err := Parse(sample, 50)
	require.NoError(t, err)
	want := make([]int, 50)
	for i := range want {
		want[i] = i + 1
	}
	for round := 0; round < 500; round++ {
		got := c.Labels()
		require.Len(t, got, 50, "round %d", round)
		slices.Sort(got)
		require.Equal(t, want, got, "round %d", round)
		c.Move()
	}
}

func TestExtend(t *testing.T) {
	c, err := Parse(sample, 15)
	require.NoError(t, err)
	assert.Equal(t, 15, c.Len())
	assert.Equal(t, []int{3, 8, 9, 1, 2, 5, 4, 6, 7, 10, 11, 12, 13, 14, 15}, c.Labels())
	assert.Equal(t, []int{3, 8}, c.After(15, 2))
	assert.PanicsWithValue(t, "cups: no cup labelled 16", func() { c.After(16, 1) })
	assert.PanicsWithValue(t, "cups: no cup labelled 0", func() { c.After(0, 1) })
}

func TestMillionCups(t *testing.T) {
	if testing.Short() {
		t.Skip("slow")
	}
	c, err := Parse(sample, 1_000_000)
	require.NoError(t, err)
	c.Play(10_000_000)
	after := c.After(1, 2)
	assert.Equal(t, 149245887792, after[0]*after[1])
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		labels []int
		total  int
		want   error
	}{
		{"empty", nil, 10, ErrTooFewCups},
		{"three", []int{1, 2, 3}, 0, ErrTooFewCups},
		{"duplicate", []int{1, 2, 2, 3, 4}, 0, ErrNotContiguous},
		{"duplicate-in-range", []int{1, 2, 2, 4}, 0, ErrDuplicateLabel},
		{"gap", []int{1, 2, 3, 5}, 0, ErrNotContiguous},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.labels, tt.total)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("38912x467", 0)
	assert.Error(t, err)
	_, err = Parse("", 0)
	assert.ErrorIs(t, err, ErrTooFewCups)
}
