// Copyright 2026 The CEC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"github.com/irifrance/cec/z"
)

// Type C represents a combinational circuit over and gates and
// negation, with designated inputs and outputs.
//
// Nodes are numbered from 1 and the node numbering is topological: the
// fan-ins of node i have numbers smaller than i.  Node 1 is reserved
// for the constants T and F.  Outputs are literals and record output
// polarity: a negative output literal is a complemented output.
type C struct {
	nodes  []node   // list of all nodes
	strash []uint32 // strash
	ins    []z.Lit  // inputs, in creation order
	outs   []z.Lit  // outputs, in creation order
	F      z.Lit    // false literal
	T      z.Lit
}

type node struct {
	a z.Lit  // input a
	b z.Lit  // input b
	n uint32 // next strash
}

// NewC creates a new circuit.
func NewC() *C {
	c := &C{}
	initC(c, 128)
	return c
}

// NewCCap creates a new circuit with initial capacity capHint.
func NewCCap(capHint int) *C {
	c := &C{}
	initC(c, capHint)
	return c
}

func initC(c *C, capHint int) {
	if capHint < 2 {
		capHint = 2
	}
	c.nodes = make([]node, 2, capHint)
	c.strash = make([]uint32, capHint)
	c.F = z.Var(1).Neg()
	c.T = c.F.Not()
}

// Len returns the number of nodes used to represent c, including the
// reserved constant node.
func (c *C) Len() int {
	return len(c.nodes)
}

// At returns the i'th node as a positive literal.  Elements from
// 1..Len(c) are in topological order: if i < j then c.At(j) is not
// reachable from c.At(i) via the edge relation defined by c.Ins().
//
// One variable for internal use, with index 1, is created when c is
// created.  All other variables created by Lit and And are created in
// sequence starting with index 2.  Hence At(i) is simply
// z.Var(i).Pos().
func (c *C) At(i int) z.Lit {
	return z.Var(i).Pos()
}

// Lit creates a new input and returns it as a positive literal.
func (c *C) Lit() z.Lit {
	m := len(c.nodes)
	c.newNode()
	in := z.Var(m).Pos()
	c.ins = append(c.ins, in)
	return in
}

// NumIns returns the number of inputs of c.
func (c *C) NumIns() int {
	return len(c.ins)
}

// InAt returns the i'th input of c, in creation order.
func (c *C) InAt(i int) z.Lit {
	return c.ins[i]
}

// SetOutput marks m as an output of c.  If m is a negative literal,
// the output is complemented.
func (c *C) SetOutput(m z.Lit) {
	c.outs = append(c.outs, m)
}

// NumOuts returns the number of outputs of c.
func (c *C) NumOuts() int {
	return len(c.outs)
}

// OutAt returns the i'th output literal of c, in creation order.
func (c *C) OutAt(i int) z.Lit {
	return c.outs[i]
}

// Ins returns the children/operands of m.
//
//	If m is an input or the constant node, Ins returns z.LitNull, z.LitNull
//	If m is an and, then Ins returns the two conjuncts
func (c *C) Ins(m z.Lit) (z.Lit, z.Lit) {
	n := c.nodes[m.Var()]
	return n.a, n.b
}

// Eval evaluates the circuit under the values vs, where for each
// literal m in the circuit, vs[i] contains the value for m's variable
// if m.Var() == i.
//
// vs should contain values for all inputs; values of all other nodes
// are overwritten.
func (c *C) Eval(vs []bool) {
	vs[1] = true // T
	for i := 2; i < len(c.nodes); i++ {
		n := &c.nodes[i]
		if n.a == z.LitNull {
			continue
		}
		a, b := n.a, n.b
		va, vb := vs[a.Var()], vs[b.Var()]
		if !a.IsPos() {
			va = !va
		}
		if !b.IsPos() {
			vb = !vb
		}
		vs[i] = va && vb
	}
}

// Eval64 is like Eval but evaluates 64 different inputs in parallel as
// the bits of a uint64.
func (c *C) Eval64(vs []uint64) {
	vs[1] = ^uint64(0)
	for i := 2; i < len(c.nodes); i++ {
		n := &c.nodes[i]
		if n.a == z.LitNull {
			continue
		}
		a, b := n.a, n.b
		va, vb := vs[a.Var()], vs[b.Var()]
		if !a.IsPos() {
			va = ^va
		}
		if !b.IsPos() {
			vb = ^vb
		}
		vs[i] = va & vb
	}
}

// And returns a literal equivalent to "a and b", which may be a new
// node.
func (c *C) And(a, b z.Lit) z.Lit {
	if a == b {
		return a
	}
	if a == b.Not() {
		return c.F
	}
	if a > b {
		a, b = b, a
	}
	if a == c.F {
		return c.F
	}
	if a == c.T {
		return b
	}
	code := strashCode(a, b)
	l := uint32(cap(c.nodes))
	i := code % l
	si := c.strash[i]
	for {
		n := &c.nodes[si]
		if n.a == a && n.b == b {
			return z.Var(si).Pos()
		}
		if n.n == 0 {
			break
		}
		si = n.n
	}
	m, j := c.newNode()
	m.a = a
	m.b = b
	k := code % uint32(cap(c.nodes))
	m.n = c.strash[k]
	c.strash[k] = j
	return z.Var(j).Pos()
}

// Ands constructs a conjunction of a sequence of literals.  If ms is
// empty, then Ands returns c.T.
func (c *C) Ands(ms ...z.Lit) z.Lit {
	a := c.T
	for _, m := range ms {
		a = c.And(a, m)
	}
	return a
}

// Or constructs a literal which is the disjunction of a and b.
func (c *C) Or(a, b z.Lit) z.Lit {
	nor := c.And(a.Not(), b.Not())
	return nor.Not()
}

// Ors constructs a literal which is the disjunction of the literals in
// ms.  If ms is empty, then Ors returns c.F.
func (c *C) Ors(ms ...z.Lit) z.Lit {
	d := c.F
	for _, m := range ms {
		d = c.Or(d, m)
	}
	return d
}

// Implies constructs a literal which is equivalent to (a implies b).
func (c *C) Implies(a, b z.Lit) z.Lit {
	return c.Or(a.Not(), b)
}

// Xor constructs a literal which is equivalent to (a xor b).
func (c *C) Xor(a, b z.Lit) z.Lit {
	return c.Or(c.And(a, b.Not()), c.And(a.Not(), b))
}

// Choice constructs a literal which is equivalent to
//
//	if i then t else e
func (c *C) Choice(i, t, e z.Lit) z.Lit {
	return c.Or(c.And(i, t), c.And(i.Not(), e))
}

func (c *C) newNode() (*node, uint32) {
	if len(c.nodes) == cap(c.nodes) {
		c.grow()
	}
	id := len(c.nodes)
	c.nodes = c.nodes[:id+1]
	return &c.nodes[id], uint32(id)
}

func (c *C) grow() {
	newCap := cap(c.nodes) * 2
	nodes := make([]node, len(c.nodes), newCap)
	strash := make([]uint32, newCap)
	copy(nodes, c.nodes)
	ucap := uint32(newCap)
	for i := range nodes {
		n := &nodes[i]
		if n.a == z.LitNull || n.a == c.F || n.a == c.T {
			continue
		}
		code := strashCode(n.a, n.b)
		j := code % ucap
		n.n = strash[j]
		strash[j] = uint32(i)
	}
	c.nodes = nodes
	c.strash = strash
}

func strashCode(a, b z.Lit) uint32 {
	return uint32((a << 13) * b)
}
