// Copyright 2026 The CEC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"errors"

	"github.com/irifrance/cec/z"
)

// Errors related to miter construction.
var (
	ErrMiterIns  = errors.New("input count mismatch")
	ErrMiterOuts = errors.New("output count mismatch")
)

// Miter constructs a single circuit from a and b whose i'th output is
// the exclusive or of a's and b's i'th outputs over a shared copy of
// the inputs.  The miter computes constant 0 on every output exactly
// when a and b are equivalent.
//
// Miter returns a non-nil error when a and b do not have the same
// number of inputs and outputs.  Inputs are identified by position in
// creation order.
func Miter(a, b *C) (*C, error) {
	if a.NumIns() != b.NumIns() {
		return nil, ErrMiterIns
	}
	if a.NumOuts() != b.NumOuts() {
		return nil, ErrMiterOuts
	}
	m := NewCCap(a.Len() + b.Len())
	ins := make([]z.Lit, a.NumIns())
	for i := range ins {
		ins[i] = m.Lit()
	}
	amap := a.copyInto(m, ins)
	bmap := b.copyInto(m, ins)
	for i := 0; i < a.NumOuts(); i++ {
		ga := lift(amap, a.OutAt(i))
		gb := lift(bmap, b.OutAt(i))
		m.SetOutput(m.Xor(ga, gb))
	}
	return m, nil
}

// copyInto replays the nodes of c in dst over the input literals ins
// and returns the map from c's variables to the corresponding literals
// in dst.
func (c *C) copyInto(dst *C, ins []z.Lit) []z.Lit {
	vmap := make([]z.Lit, c.Len())
	vmap[1] = dst.T
	for i, in := range c.ins {
		vmap[in.Var()] = ins[i]
	}
	for v := 2; v < c.Len(); v++ {
		n := &c.nodes[v]
		if n.a == z.LitNull {
			continue // input, mapped above
		}
		vmap[v] = dst.And(lift(vmap, n.a), lift(vmap, n.b))
	}
	return vmap
}

// lift translates literal m of the source circuit via vmap, keeping
// m's polarity.
func lift(vmap []z.Lit, m z.Lit) z.Lit {
	g := vmap[m.Var()]
	if !m.IsPos() {
		return g.Not()
	}
	return g
}
