package seating

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/maisem/aoc2020"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL
`

var modes = map[string]Mode{"full": Full, "incremental": Incremental}

func mustParse(t *testing.T, text string) aoc.Grid[Seat] {
	t.Helper()
	g, err := Parse(text)
	require.NoError(t, err)
	return g
}

func TestRun(t *testing.T) {
	tests := []struct {
		policy   Policy
		occupied int
		gens     int
	}{
		{Adjacent, 37, 5},
		{Visible, 26, 6},
	}
	for _, tt := range tests {
		for name, mode := range modes {
			t.Run(tt.policy.String()+"/"+name, func(t *testing.T) {
				s := New(mustParse(t, sample), tt.policy, mode)
				assert.Equal(t, tt.occupied, s.Run())
				assert.Equal(t, tt.occupied, s.Occupied())
				assert.Equal(t, tt.gens, s.Generations())
				assert.Zero(t, s.Step())
			})
		}
	}
}

func TestStep(t *testing.T) {
	for name, mode := range modes {
		t.Run(name, func(t *testing.T) {
			s := New(mustParse(t, sample), Adjacent, mode)
			s.Step()
			assert.Equal(t, strings.ReplaceAll(sample, "L", "#"), s.Grid().String())
			s.Step()
			want := `#.LL.L#.##
#LLLLLL.L#
L.L.L..L..
#LLL.LL.L#
#.LL.LL.LL
#.LLLL#.##
..L.L.....
#LLLLLLLL#
#.LLLLLL.L
#.#LLLL.##
`
			assert.Equal(t, want, s.Grid().String())
		})
	}
}

func TestAllFloor(t *testing.T) {
	g := mustParse(t, "...\n...\n")
	for name, mode := range modes {
		t.Run(name, func(t *testing.T) {
			s := New(g, Visible, mode)
			assert.Zero(t, s.Step())
			assert.Zero(t, s.Run())
			assert.Zero(t, s.Generations())
		})
	}
}

func TestSingleOccupied(t *testing.T) {
	for name, mode := range modes {
		t.Run(name, func(t *testing.T) {
			s := New(mustParse(t, "#LLLL"), Adjacent, mode)
			assert.Equal(t, 1, s.Occupied())
			assert.Equal(t, 3, s.Step())
			assert.Equal(t, "#L###\n", s.Grid().String())
			assert.Equal(t, 4, s.Run())
			assert.Equal(t, 1, s.Generations())
		})
	}
}

func TestVisibleSkipsFloor(t *testing.T) {
	g := mustParse(t, "L...#\n.....\n#...L\n")
	assert.ElementsMatch(t, []aoc.Pt{{X: 4, Y: 0}, {X: 0, Y: 2}}, Visible.neighbors(g, aoc.Pt{}))
	assert.Empty(t, Adjacent.neighbors(g, aoc.Pt{}))
}

func TestOffGrid(t *testing.T) {
	s := New(mustParse(t, "L#"), Adjacent, Full)
	assert.Equal(t, OffGrid, s.at(aoc.Pt{X: -1}))
	assert.Equal(t, OffGrid, s.at(aoc.Pt{X: 2}))
	assert.Equal(t, Occupied, s.at(aoc.Pt{X: 1}))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("L.L\nL.\n")
	assert.True(t, errors.Is(err, aoc.ErrNotRectangular), "got %v", err)

	_, err = Parse("L.x\n")
	assert.ErrorContains(t, err, "unknown seat")

	_, err = Parse("")
	assert.Error(t, err)
}

func randomGrid(r *rand.Rand, w, h int) aoc.Grid[Seat] {
	seats := []Seat{Floor, Empty, Empty, Occupied}
	g := aoc.MakeGrid[Seat](w, h)
	for y := range g {
		for x := range g[y] {
			g[y][x] = seats[r.Intn(len(seats))]
		}
	}
	return g
}

// The incremental mode must reach the same layout, through the same
// generations, as re-evaluating every cell.
func TestIncrementalMatchesFull(t *testing.T) {
	r := rand.New(rand.NewSource(2020))
	for i := 0; i < 50; i++ {
		g := randomGrid(r, 1+r.Intn(20), 1+r.Intn(20))
		for _, policy := range []Policy{Adjacent, Visible} {
			full := New(g, policy, Full)
			inc := New(g, policy, Incremental)
			steps := 0
			for ; steps < 1000; steps++ {
				a, b := full.Step(), inc.Step()
				require.Equal(t, a, b, "grid %d %v:\n%v", i, policy, g)
				require.Equal(t, full.Grid(), inc.Grid())
				if a == 0 {
					break
				}
			}
			require.Less(t, steps, 1000, "grid %d %v did not settle", i, policy)
			assert.Equal(t, full.Generations(), inc.Generations())
		}
	}
}
