// Copyright 2026 The CEC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cec

import (
	log "github.com/sirupsen/logrus"

	"github.com/irifrance/cec/inter"
	"github.com/irifrance/cec/sim"
)

// run drives the simulation of the miter network n to completion under
// the split plan in st and reports whether every output computed
// constant 0 in every round.
//
// Each round regenerates the input patterns, propagates them through n
// and folds the output patterns into the running result.  All rounds
// always execute; the fold is a plain conjunction with no early exit,
// so the result cannot flip back once falsified.
func run(n inter.Net, st *Stats) bool {
	m := sim.NewMap(n, st.SplitVars)
	eq := true
	for r := uint64(0); r < st.Rounds; r++ {
		for i := 0; i < n.NumIns(); i++ {
			m.Set(n.InAt(i), pattern(i+1, r, st.SplitVars))
		}
		sim.Simulate(n, m)
		eq = foldOuts(n, m) && eq
		log.Debugf("cec: round %d of %d, eq %t", r+1, st.Rounds, eq)
	}
	return eq
}

// foldOuts tests whether every output pattern of n in m is the
// constant-0 table, complementing the pattern of complemented outputs
// first.
func foldOuts(n inter.Net, m *sim.Map) bool {
	eq := true
	for i := 0; i < n.NumOuts(); i++ {
		f := n.OutAt(i)
		p := m.At(f)
		if !f.IsPos() {
			eq = p.Not().IsConst0() && eq
		} else {
			eq = p.IsConst0() && eq
		}
	}
	return eq
}
