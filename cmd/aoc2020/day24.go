package main

import "github.com/maisem/aoc2020"

// hex is a tile of the hexagonal floor in axial coordinates: X grows east,
// Y grows north-east.
type hex = aoc.Pt

var hexDirs = map[string]hex{
	"e":  {X: 1, Y: 0},
	"ne": {X: 0, Y: 1},
	"nw": {X: -1, Y: 1},
	"w":  {X: -1, Y: 0},
	"sw": {X: 0, Y: -1},
	"se": {X: 1, Y: -1},
}

// walk follows a line of undelimited directions from the reference tile.
func walk(line string) hex {
	var h hex
	for i := 0; i < len(line); {
		n := 1
		if line[i] == 'n' || line[i] == 's' {
			n = 2
		}
		d, ok := hexDirs[line[i:min(i+n, len(line))]]
		if !ok {
			panic("bad direction in " + line)
		}
		h = h.Add(d)
		i += n
	}
	return h
}

func (s solver) blackTiles() aoc.Set[hex] {
	black := aoc.NewSet[hex]()
	s.ForLines(func(line string) {
		black.Toggle(walk(line))
	})
	return black
}

/*
want=12

wnwseseseseseneneeneseneswneewwne
eenwsewnewneswweneswnwseneswsw
nwneswneeseswswne
swesenenwsewswsw
neswseenwwseneseswwsenenwsew
swnwsenwseeneseswswnenwnesewse
swwewswswswsenenwwswsesweewnesww
eeeswnewwnwwnwnwwwsesw
swswseswneenwneeswnwe
newwnewswswwwneswswneewewwe
sesenwnenwsewsesee
eeseenwnewese
sweseesenwenwnwwnwnesw
nenewwnewwneneseswe
nwsesesewswswsenenwse
eswnenenwnwseswwese
wnwnwwnwswwneseese
seneseeseswswwnenw
nwseswswseswwnwsweseswnenwnwswseswse
nwwsweeswwwswwwnwwseeesenwesw
swesenenwsewswsw
eeeswnewwnwwnwnwwwsesw
*/
func (s solver) D24p1() any {
	return len(s.blackTiles())
}

// want=2256
func (s solver) D24p2() any {
	black := s.blackTiles()
	for day := 0; day < 100; day++ {
		counts := map[hex]int{}
		for h := range black {
			for _, d := range hexDirs {
				counts[h.Add(d)]++
			}
		}
		next := aoc.NewSet[hex]()
		for h, n := range counts {
			if n == 2 || (n == 1 && black.Has(h)) {
				next.Add(h)
			}
		}
		black = next
	}
	return len(black)
}
