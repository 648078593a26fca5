package main

import "github.com/maisem/aoc2020"

const (
	handshakeMod     = 20201227
	handshakeSubject = 7
)

// loopSize finds the number of transforms of the subject number that
// produce the public key.
func loopSize(pub int) int {
	v, n := 1, 0
	for v != pub {
		v = v * handshakeSubject % handshakeMod
		n++
	}
	return n
}

/*
want=14897079

5764801
17807724
*/
func (s solver) D25p1() any {
	keys := aoc.Ints(s.Lines()...)
	if len(keys) != 2 {
		panic("want two public keys")
	}
	return aoc.ModPow(keys[1], loopSize(keys[0]), handshakeMod)
}
