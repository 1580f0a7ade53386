// Copyright 2026 The CEC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package sim propagates truth tables through a combinational network,
// evaluating every node under 2^w input assignments in parallel.
package sim

import (
	"github.com/irifrance/cec/inter"
	"github.com/irifrance/cec/tt"
	"github.com/irifrance/cec/z"
)

// Type Map stores the current truth table of every node of a network,
// indexed by variable.  Entries are overwritten in place on each call
// to Simulate; no history is kept.
type Map struct {
	w    int
	tabs []*tt.T
}

// NewMap creates a Map for the nodes of n with tables over w
// variables.
func NewMap(n inter.Net, w int) *Map {
	return &Map{w: w, tabs: make([]*tt.T, n.Len())}
}

// NumVars returns the width w of the tables held by m.
func (m *Map) NumVars() int {
	return m.w
}

// At returns the table of x's variable, or nil if it has not been set.
// The polarity of x is ignored.
func (m *Map) At(x z.Lit) *tt.T {
	return m.tabs[x.Var()]
}

// Set associates t with x's variable.
func (m *Map) Set(x z.Lit, t *tt.T) {
	m.tabs[x.Var()] = t
}

// Simulate computes the truth table of every non-input node of n from
// its fan-ins, walking the nodes once in topological order.  The
// tables of all inputs must be present in m; they are read, not
// written.  Tables of internal nodes are reused across calls.
func Simulate(n inter.Net, m *Map) {
	if m.tabs[1] == nil {
		m.tabs[1] = tt.Ones(m.w) // constant true
	}
	e := n.Len()
	for i := 2; i < e; i++ {
		a, b := n.Ins(z.Var(i).Pos())
		if a == z.LitNull {
			continue // input
		}
		dst := m.tabs[i]
		if dst == nil {
			dst = tt.New(m.w)
			m.tabs[i] = dst
		}
		dst.CopyFrom(m.tabs[a.Var()])
		if !a.IsPos() {
			dst.FlipInPlace()
		}
		if b.IsPos() {
			dst.AndInPlace(m.tabs[b.Var()])
		} else {
			dst.AndNotInPlace(m.tabs[b.Var()])
		}
	}
}
