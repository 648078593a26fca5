package main

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2020"
)

// decoder is the version of the docking program decoder chip.
type decoder int

const (
	// valueDecoder applies the mask to the values written.
	valueDecoder decoder = iota + 1
	// addressDecoder applies the mask to the addresses written to, X bits
	// floating over both values.
	addressDecoder
)

type bitmask struct {
	ones, zeros, floating uint64
}

func parseMask(s string) bitmask {
	var m bitmask
	for _, c := range s {
		m.ones <<= 1
		m.zeros <<= 1
		m.floating <<= 1
		switch c {
		case '1':
			m.ones |= 1
		case '0':
			m.zeros |= 1
		case 'X':
			m.floating |= 1
		default:
			panic(fmt.Sprintf("bad mask %q", s))
		}
	}
	return m
}

// write stores v at addr in mem as the decoder version dictates.
func (d decoder) write(mem map[uint64]uint64, m bitmask, addr, v uint64) {
	switch d {
	case valueDecoder:
		mem[addr] = v&^m.zeros | m.ones
	case addressDecoder:
		base := (addr | m.ones) &^ m.floating
		// Enumerate every subset of the floating bits.
		for sub := m.floating; ; sub = (sub - 1) & m.floating {
			mem[base|sub] = v
			if sub == 0 {
				break
			}
		}
	default:
		panic(fmt.Sprintf("unknown decoder %d", d))
	}
}

func (s solver) initialize(d decoder) uint64 {
	mem := map[uint64]uint64{}
	var m bitmask
	s.ForLines(func(line string) {
		if v, ok := strings.CutPrefix(line, "mask = "); ok {
			m = parseMask(v)
			return
		}
		var addr, v uint64
		aoc.MustGet(fmt.Sscanf(line, "mem[%d] = %d", &addr, &v))
		d.write(mem, m, addr, v)
	})
	var sum uint64
	for _, v := range mem {
		sum += v
	}
	return sum
}

/*
want=165

mask = XXXXXXXXXXXXXXXXXXXXXXXXXXXXX1XXXX0X
mem[8] = 11
mem[7] = 101
mem[8] = 0
*/
func (s solver) D14p1() any {
	return s.initialize(valueDecoder)
}

/*
want=208

mask = 000000000000000000000000000000X1001X
mem[42] = 100
mask = 00000000000000000000000000000000X0XX
mem[26] = 1
*/
func (s solver) D14p2() any {
	return s.initialize(addressDecoder)
}
