// Command aoc2020 runs the Advent of Code 2020 solutions.
//
// Inputs are read from <input-dir>/2020/<day>.input, and fetched with the
// session key in ~/keys/aoc.session when missing.
package main

import (
	"embed"

	"github.com/maisem/aoc2020"
)

func main() {
	aoc.Run(2020, sources, &solver{})
}

// sources holds the solutions, whose doc comments carry the samples, and
// the recorded answers.
//
//go:embed *.go answers.yaml
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}
