package aoc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// ErrNotRectangular is returned by ParseGrid when the rows of the input do
// not all have the same length.
var ErrNotRectangular = errors.New("grid is not rectangular")

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) In(p Pt) bool {
	return len(g) > 0 && p.X >= 0 && p.Y >= 0 && p.X < len(g[0]) && p.Y < len(g)
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// AtOr returns the value at p, or def if p is outside the grid.
func (g Grid[T]) AtOr(p Pt, def T) T {
	if !g.In(p) {
		return def
	}
	return g[p.Y][p.X]
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid parses text as a grid with one row per line, converting each
// rune with cell. Trailing newlines are ignored.
func ParseGrid[T any](text string, cell func(rune) (T, error)) (Grid[T], error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, errors.New("empty grid")
	}
	width := len([]rune(lines[0]))
	g := make(Grid[T], 0, len(lines))
	for y, line := range lines {
		row := make([]T, 0, width)
		for x, r := range []rune(line) {
			v, err := cell(r)
			if err != nil {
				return nil, fmt.Errorf("cell %d,%d: %w", x, y, err)
			}
			row = append(row, v)
		}
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), width, ErrNotRectangular)
		}
		g = append(g, row)
	}
	return g, nil
}

// ByteGrid parses text as a grid of raw bytes.
func ByteGrid(text string) Grid[byte] {
	return MustGet(ParseGrid(text, func(r rune) (byte, error) {
		return byte(r), nil
	}))
}

// Hash returns a hash of the grid contents.
func (g Grid[T]) Hash() deephash.Sum {
	return deephash.Hash(&g)
}

func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for i, row := range g {
		out[i] = append([]T(nil), row...)
	}
	return out
}

// Count returns the number of cells for which f returns true.
func (g Grid[T]) Count(f func(T) bool) int {
	n := 0
	for _, row := range g {
		n += Count(row, f)
	}
	return n
}

// ForEach calls f for every cell in row-major order.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

func (g Grid[T]) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			switch v := any(v).(type) {
			case byte:
				sb.WriteByte(v)
			case rune:
				sb.WriteRune(v)
			case fmt.Stringer:
				sb.WriteString(v.String())
			default:
				fmt.Fprint(&sb, v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

func (g Grid[T]) RotateCounterClockwiseInto(out Grid[T]) {
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out[size.X-1-x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) RotateCounterClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.RotateCounterClockwiseInto(out)
	return out
}

// FlipHorizontal returns the grid mirrored left to right.
func (g Grid[T]) FlipHorizontal() Grid[T] {
	out := g.Clone()
	for _, row := range out {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	return out
}

// Orientations returns the 8 rotations and reflections of the grid.
func (g Grid[T]) Orientations() []Grid[T] {
	out := make([]Grid[T], 0, 8)
	cur := g
	for i := 0; i < 4; i++ {
		out = append(out, cur, cur.FlipHorizontal())
		cur = cur.RotateCounterClockwise()
	}
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) Turn(right bool) Direction {
	switch d {
	case Up:
		if right {
			return Right
		}
		return Left
	case Right:
		if right {
			return Down
		}
		return Up
	case Down:
		if right {
			return Left
		}
		return Right
	case Left:
		if right {
			return Up
		}
		return Down
	}
	panic("bad")
}

// Delta returns the unit step for d, with Y growing downwards.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Neighbors8 are the offsets of the 8 cells surrounding a point.
var Neighbors8 = []Pt{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) Mul(k T) Pt2[T] {
	return Pt2[T]{p.X * k, p.Y * k}
}

// StandardizePt wraps p into the rectangle [0,size).
func StandardizePt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}
