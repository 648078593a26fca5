package main

import (
	"slices"
	"strings"

	"github.com/maisem/aoc2020"
)

type tile struct {
	id int
	g  aoc.Grid[byte]
}

func (s solver) tiles() []tile {
	var out []tile
	for _, para := range s.Paragraphs() {
		head, body, _ := strings.Cut(para, "\n")
		id := aoc.Int(strings.TrimSuffix(aoc.TrimPrefix(head, "Tile "), ":"))
		out = append(out, tile{id: id, g: aoc.ByteGrid(body)})
	}
	return out
}

// borders returns the top, right, bottom and left edges of g, each read
// left to right or top to bottom.
func borders(g aoc.Grid[byte]) (top, right, bottom, left string) {
	t := g.Transpose()
	return string(g[0]), string(t[len(t)-1]), string(g[len(g)-1]), string(t[0])
}

// edgeKey identifies an edge regardless of which way round it is read.
func edgeKey(e string) string {
	r := []byte(e)
	slices.Reverse(r)
	return min(e, string(r))
}

type jigsaw struct {
	tiles []tile
	edges map[string]int // edgeKey -> number of tiles with that edge
}

func newJigsaw(tiles []tile) *jigsaw {
	j := &jigsaw{tiles: tiles, edges: map[string]int{}}
	for _, t := range tiles {
		top, right, bottom, left := borders(t.g)
		for _, e := range []string{top, right, bottom, left} {
			j.edges[edgeKey(e)]++
		}
	}
	return j
}

// outer reports whether e is on the edge of the whole image, that is no
// other tile shares it.
func (j *jigsaw) outer(e string) bool {
	return j.edges[edgeKey(e)] == 1
}

func (j *jigsaw) corners() []tile {
	var out []tile
	for _, t := range j.tiles {
		top, right, bottom, left := borders(t.g)
		n := aoc.Count([]string{top, right, bottom, left}, j.outer)
		if n == 2 {
			out = append(out, t)
		}
	}
	return out
}

// assemble places every tile, oriented to match its neighbours, starting
// from a corner in the top left.
func (j *jigsaw) assemble() [][]aoc.Grid[byte] {
	n := 1
	for n*n < len(j.tiles) {
		n++
	}
	if n*n != len(j.tiles) {
		panic("tiles do not make a square")
	}
	placed := make([][]aoc.Grid[byte], n)
	for i := range placed {
		placed[i] = make([]aoc.Grid[byte], n)
	}
	used := aoc.NewSet[int]()
	fits := func(g aoc.Grid[byte], r, c int) bool {
		top, _, _, left := borders(g)
		if (c == 0 && !j.outer(left)) || (r == 0 && !j.outer(top)) {
			return false
		}
		if c > 0 {
			if _, right, _, _ := borders(placed[r][c-1]); right != left {
				return false
			}
		}
		if r > 0 {
			if _, _, bottom, _ := borders(placed[r-1][c]); bottom != top {
				return false
			}
		}
		return true
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
		search:
			for _, t := range j.tiles {
				if used.Has(t.id) {
					continue
				}
				for _, g := range t.g.Orientations() {
					if fits(g, r, c) {
						placed[r][c] = g
						used.Add(t.id)
						break search
					}
				}
			}
			if placed[r][c] == nil {
				panic("no tile fits")
			}
		}
	}
	return placed
}

// image joins the placed tiles with their borders removed.
func image(placed [][]aoc.Grid[byte]) aoc.Grid[byte] {
	var img aoc.Grid[byte]
	for _, row := range placed {
		h := len(row[0])
		for y := 1; y < h-1; y++ {
			var line []byte
			for _, g := range row {
				line = append(line, g[y][1:len(g[y])-1]...)
			}
			img = append(img, line)
		}
	}
	return img
}

var seaMonster = aoc.ByteGrid(strings.Join([]string{
	"                  # ",
	"#    ##    ##    ###",
	" #  #  #  #  #  #   ",
}, "\n"))

// roughness counts the # cells that are not part of a sea monster, in the
// orientation of img where monsters appear.
func roughness(img aoc.Grid[byte]) int {
	var monster []aoc.Pt
	seaMonster.ForEach(func(p aoc.Pt, v byte) {
		if v == '#' {
			monster = append(monster, p)
		}
	})
	for _, o := range img.Orientations() {
		seen := aoc.NewSet[aoc.Pt]()
		o.ForEach(func(p aoc.Pt, _ byte) {
			for _, d := range monster {
				if o.AtOr(p.Add(d), '.') != '#' {
					return
				}
			}
			for _, d := range monster {
				seen.Add(p.Add(d))
			}
		})
		if len(seen) > 0 {
			return o.Count(func(v byte) bool { return v == '#' }) - len(seen)
		}
	}
	panic("no sea monsters")
}

/*
want=10190112770250

Tile 2907:
#..##.##.#
#..#.#.#.#
#.#......#
#...#.....
..#....###
...#.##..#
...#..###.
.#.#.#.#..
#..##...#.
#.#####..#

Tile 1075:
#....##..#
.####...##
#.#..#.#..
#..#...##.
.#.#......
##.##.#.#.
..###....#
#.#.......
#.##.#...#
####..###.

Tile 1348:
.....##.##
#...#...#.
#......#..
#....#####
..#...#.##
#..##.##..
###....#..
...#..#...
.#.#..#.#.
.#.....#.#

Tile 1733:
#...##.###
#...#.#.#.
##.#.....#
#...#.##..
#.#.#..#..
#.#.##....
.###.#...#
#.#.##....
#.......##
####...##.

Tile 2956:
......####
...#..#...
#.....###.
..##....##
#.#.#....#
.##.#....#
##....##.#
...#.....#
...#.##...
..#...#..#

Tile 2885:
....###..#
...#.#..##
..#.######
#......##.
.#..##..##
.#.#......
.#...#.#.#
....##.#.#
#...#.....
#..##...##

Tile 2518:
##..##.##.
###....###
.#..#....#
.##.##...#
....#.##..
...#.....#
.#.....#.#
##.#...#..
#....#..#.
...#.#.#..

Tile 2129:
......####
###....#.#
.#.......#
..#...#..#
.....#.#.#
....#....#
......##..
##.##....#
.#.#....##
##...##..#

Tile 1295:
.......#..
..##..###.
###.####..
....#..#.#
#.#.##....
...###....
...##...#.
..#..#....
#...#....#
.##...####
*/
func (s solver) D20p1() any {
	prod := 1
	for _, t := range newJigsaw(s.tiles()).corners() {
		prod *= t.id
	}
	return prod
}

// want=169
func (s solver) D20p2() any {
	img := image(newJigsaw(s.tiles()).assemble())
	s.Debugf("image:\n%v", img)
	return roughness(img)
}
