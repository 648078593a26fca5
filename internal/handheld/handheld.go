// Package handheld runs the boot code of the handheld game console: a tiny
// machine with an accumulator and three opcodes.
package handheld

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/maisem/aoc2020"
)

// ErrNoRepair is returned when no single jmp/nop flip makes a program
// terminate.
var ErrNoRepair = errors.New("no single-instruction repair terminates")

type Opcode uint8

const (
	Acc Opcode = iota
	Jmp
	Nop
)

var opcodeNames = [...]string{Acc: "acc", Jmp: "jmp", Nop: "nop"}

func (o Opcode) String() string {
	if int(o) < len(opcodeNames) {
		return opcodeNames[o]
	}
	return fmt.Sprintf("Opcode(%d)", o)
}

// ParseOpcode parses the mnemonic of an opcode.
func ParseOpcode(s string) (Opcode, error) {
	for op, name := range opcodeNames {
		if s == name {
			return Opcode(op), nil
		}
	}
	return 0, fmt.Errorf("unknown opcode %q", s)
}

type Instruction struct {
	Op  Opcode
	Arg int
	Pos int
}

func (in Instruction) String() string {
	return fmt.Sprintf("%v %+d", in.Op, in.Arg)
}

// next returns the position executed after in.
func (in Instruction) next() int {
	if in.Op == Jmp {
		return in.Pos + in.Arg
	}
	return in.Pos + 1
}

// Program is a sequence of instructions; Program[i].Pos == i.
type Program []Instruction

// Parse parses one instruction per line, such as "acc +3" or "jmp -4".
func Parse(text string) (Program, error) {
	var p Program
	for i, line := range strings.Split(strings.TrimSpace(text), "\n") {
		op, arg, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok {
			return nil, fmt.Errorf("line %d: malformed instruction %q", i+1, line)
		}
		o, err := ParseOpcode(op)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad argument: %w", i+1, err)
		}
		p = append(p, Instruction{Op: o, Arg: n, Pos: i})
	}
	return p, nil
}

// Status is how a run of a program ended.
type Status uint8

const (
	// Terminated means execution stepped to the position just past the
	// last instruction.
	Terminated Status = iota
	// Looped means an instruction was about to run a second time.
	Looped
	// Faulted means a jump left the program.
	Faulted
)

func (s Status) String() string {
	switch s {
	case Terminated:
		return "terminated"
	case Looped:
		return "looped"
	case Faulted:
		return "faulted"
	}
	return fmt.Sprintf("Status(%d)", s)
}

// Result is the outcome of running a program.
type Result struct {
	Acc    int
	Status Status
	Steps  int // instructions executed
	Pos    int // position at which execution stopped
}

// Run executes p from position 0 with a zero accumulator until it
// terminates, faults or is about to execute an instruction for the second
// time.
func (p Program) Run() Result {
	visited := make([]bool, len(p))
	var r Result
	for {
		switch {
		case r.Pos == len(p):
			r.Status = Terminated
			return r
		case r.Pos < 0 || r.Pos > len(p):
			r.Status = Faulted
			return r
		case visited[r.Pos]:
			r.Status = Looped
			return r
		}
		visited[r.Pos] = true
		in := p[r.Pos]
		if in.Op == Acc {
			r.Acc += in.Arg
		}
		r.Pos = in.next()
		r.Steps++
	}
}

// trace returns the positions executed by Run, in order.
func (p Program) trace() []int {
	visited := make([]bool, len(p))
	var out []int
	for pos := 0; pos >= 0 && pos < len(p) && !visited[pos]; pos = p[pos].next() {
		visited[pos] = true
		out = append(out, pos)
	}
	return out
}

// Flip returns a copy of p with the jmp or nop at pos swapped for the other.
func (p Program) Flip(pos int) (Program, error) {
	if pos < 0 || pos >= len(p) {
		return nil, fmt.Errorf("position %d out of range", pos)
	}
	out := append(Program(nil), p...)
	switch p[pos].Op {
	case Jmp:
		out[pos].Op = Nop
	case Nop:
		out[pos].Op = Jmp
	default:
		return nil, fmt.Errorf("cannot flip %v at %d", p[pos], pos)
	}
	return out, nil
}

// Repair finds the first position whose jmp/nop flip makes the program
// terminate, trying every candidate in order. It returns the result of the
// terminating run and the flipped position.
func (p Program) Repair() (Result, int, error) {
	for pos, in := range p {
		if in.Op == Acc {
			continue
		}
		q := aoc.MustGet(p.Flip(pos))
		if r := q.Run(); r.Status == Terminated {
			return r, pos, nil
		}
	}
	return Result{}, -1, ErrNoRepair
}

// flowGraph returns the execution graph of p with arcs reversed, so that
// the nodes reachable from len(p) are the positions that terminate.
func (p Program) flowGraph() *aoc.Graph[int] {
	var g aoc.Graph[int]
	g.AddNode(len(p))
	for _, in := range p {
		g.AddArc(in.next(), in.Pos, 1)
	}
	return &g
}

// Terminating returns the positions from which execution reaches the end
// of the program.
func (p Program) Terminating() map[int]bool {
	return p.flowGraph().ReachableNodes(len(p))
}

// RepairReachable is Repair restricted to flips on the original execution
// path whose new successor is known to reach the end of the program.
func (p Program) RepairReachable() (Result, int, error) {
	term := p.Terminating()
	for _, pos := range p.trace() {
		in := p[pos]
		var alt int
		switch in.Op {
		case Jmp:
			alt = pos + 1
		case Nop:
			alt = pos + in.Arg
		default:
			continue
		}
		if !term[alt] {
			continue
		}
		q := aoc.MustGet(p.Flip(pos))
		if r := q.Run(); r.Status == Terminated {
			return r, pos, nil
		}
	}
	return Result{}, -1, ErrNoRepair
}
