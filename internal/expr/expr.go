// Package expr evaluates the homework arithmetic of the airplane kid: integer
// expressions over + and * with parentheses, where the precedence of the
// two operators is configurable.
package expr

import (
	"fmt"
	"math/big"
	"strings"
)

// Op is a binary operator.
type Op byte

const (
	Add Op = '+'
	Mul Op = '*'
)

func (o Op) String() string { return string(o) }

// Precedence is the operator precedence used to build a tree.
type Precedence uint8

const (
	// LeftToRight gives + and * equal precedence, applied left to right.
	LeftToRight Precedence = iota
	// AdditionFirst binds + tighter than *.
	AdditionFirst
)

// SyntaxError describes malformed input.
type SyntaxError struct {
	Pos int // byte offset into the input
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Pos, e.Msg)
}

// Expr is a parsed expression. Each parenthesised level is kept as a flat
// sequence of operands and operators so that it can be turned into a tree
// under either precedence.
type Expr struct {
	operands []operand
	ops      []Op // len(ops) == len(operands)-1
}

// operand is either a literal or a parenthesised subexpression.
type operand struct {
	lit *big.Int
	sub *Expr
}

// Parse parses a single-line expression such as "2 * 3 + (4 * 5)".
func Parse(s string) (*Expr, error) {
	p := &parser{s: s}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.s) {
		if p.s[p.pos] == ')' {
			return nil, p.errorf("unbalanced )")
		}
		return nil, p.errorf("unexpected %q", p.s[p.pos])
	}
	return e, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) && p.s[p.pos] == ' ' {
		p.pos++
	}
}

// expr parses operand (op operand)* up to the end of input or a closing
// parenthesis, which is left unconsumed.
func (p *parser) expr() (*Expr, error) {
	e := &Expr{}
	for {
		o, err := p.operand()
		if err != nil {
			return nil, err
		}
		e.operands = append(e.operands, o)

		p.skipSpace()
		if p.pos == len(p.s) || p.s[p.pos] == ')' {
			return e, nil
		}
		switch c := Op(p.s[p.pos]); c {
		case Add, Mul:
			e.ops = append(e.ops, c)
			p.pos++
		default:
			return nil, p.errorf("want operator, got %q", p.s[p.pos])
		}
	}
}

func (p *parser) operand() (operand, error) {
	p.skipSpace()
	if p.pos == len(p.s) {
		return operand{}, p.errorf("want operand, got end of input")
	}
	c := p.s[p.pos]
	switch {
	case c == '(':
		open := p.pos
		p.pos++
		sub, err := p.expr()
		if err != nil {
			return operand{}, err
		}
		if p.pos == len(p.s) {
			return operand{}, &SyntaxError{Pos: open, Msg: "unbalanced ("}
		}
		p.pos++ // ')'
		return operand{sub: sub}, nil
	case c >= '0' && c <= '9':
		start := p.pos
		for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
			p.pos++
		}
		v, _ := new(big.Int).SetString(p.s[start:p.pos], 10)
		return operand{lit: v}, nil
	default:
		return operand{}, p.errorf("want operand, got %q", c)
	}
}

// Node is a node of an expression tree: either a literal or an operation
// over an ordered list of operands. Trees are not modified once built.
type Node struct {
	Lit      *big.Int // set for literals
	Op       Op       // set for operations
	Operands []*Node
}

// IsLit reports whether n is a literal.
func (n *Node) IsLit() bool {
	return n.Lit != nil
}

// Eval evaluates the tree.
func (n *Node) Eval() *big.Int {
	if n.IsLit() {
		return new(big.Int).Set(n.Lit)
	}
	acc := n.Operands[0].Eval()
	for _, o := range n.Operands[1:] {
		switch n.Op {
		case Add:
			acc.Add(acc, o.Eval())
		case Mul:
			acc.Mul(acc, o.Eval())
		default:
			panic(fmt.Sprintf("expr: unknown op %q", n.Op))
		}
	}
	return acc
}

// String renders the tree fully parenthesised.
func (n *Node) String() string {
	if n.IsLit() {
		return n.Lit.String()
	}
	parts := make([]string, len(n.Operands))
	for i, o := range n.Operands {
		parts[i] = o.String()
	}
	return "(" + strings.Join(parts, " "+n.Op.String()+" ") + ")"
}

func (o operand) tree(prec Precedence) *Node {
	if o.sub != nil {
		return o.sub.Tree(prec)
	}
	return &Node{Lit: o.lit}
}

// Tree builds the expression tree of e under prec.
func (e *Expr) Tree(prec Precedence) *Node {
	switch prec {
	case LeftToRight:
		return e.leftToRight()
	case AdditionFirst:
		return e.additionFirst()
	}
	panic(fmt.Sprintf("expr: unknown precedence %d", prec))
}

// leftToRight nests every operation left-associatively, merging runs of
// the same operator into one node.
func (e *Expr) leftToRight() *Node {
	n := e.operands[0].tree(LeftToRight)
	for i, op := range e.ops {
		rhs := e.operands[i+1].tree(LeftToRight)
		if !n.IsLit() && n.Op == op && i > 0 {
			n.Operands = append(n.Operands, rhs)
			continue
		}
		n = &Node{Op: op, Operands: []*Node{n, rhs}}
	}
	return n
}

// additionFirst folds each chain of additions into a single Add node and
// multiplies the chains together.
func (e *Expr) additionFirst() *Node {
	var factors []*Node
	sum := []*Node{e.operands[0].tree(AdditionFirst)}
	flush := func() {
		if len(sum) == 1 {
			factors = append(factors, sum[0])
		} else {
			factors = append(factors, &Node{Op: Add, Operands: sum})
		}
		sum = nil
	}
	for i, op := range e.ops {
		if op == Mul {
			flush()
		}
		sum = append(sum, e.operands[i+1].tree(AdditionFirst))
	}
	flush()
	if len(factors) == 1 {
		return factors[0]
	}
	return &Node{Op: Mul, Operands: factors}
}

// Eval evaluates e under prec.
func (e *Expr) Eval(prec Precedence) *big.Int {
	return e.Tree(prec).Eval()
}

// Sum parses every non-blank line of text and returns the sum of their
// values under prec.
func Sum(text string, prec Precedence) (*big.Int, error) {
	total := new(big.Int)
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		total.Add(total, e.Eval(prec))
	}
	return total, nil
}
