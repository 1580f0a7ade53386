// Copyright 2026 The CEC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package cec decides whether two combinational circuits with the same
// input/output interface compute the same Boolean functions, by
// bit-parallel logic simulation of their miter.
//
// The check simulates the first splitVars inputs of the miter with
// genuine truth table variables and enumerates all assignments to the
// remaining inputs round by round, where splitVars is chosen so that
// the truth tables of all nodes fit a fixed memory budget.  The
// approach is limited to networks with at most MaxIns inputs; larger
// instances yield Unknown.
package cec

import (
	log "github.com/sirupsen/logrus"

	"github.com/irifrance/cec/logic"
)

// Type Verdict is the ternary result of an equivalence check.
//
//	1  the circuits are equivalent
//	0  the check was not attempted
//	-1 the circuits are not equivalent
type Verdict int

const (
	NotEquivalent Verdict = -1
	Unknown       Verdict = 0
	Equivalent    Verdict = 1
)

func (v Verdict) String() string {
	switch v {
	case Equivalent:
		return "equivalent"
	case NotEquivalent:
		return "not-equivalent"
	default:
		return "unknown"
	}
}

// Type Stats reports how a check was split.  SplitVars is the number
// of inputs simulated with variable patterns and Rounds the number of
// enumeration rounds run.  Stats are diagnostic only.
type Stats struct {
	SplitVars int
	Rounds    uint64
}

// Check decides whether circuits a and b compute the same functions.
//
// Check builds the miter of a and b and simulates it to completion.
// If a has more than MaxIns inputs the check is not attempted and the
// verdict is Unknown.  If the miter cannot be built because a and b
// have mismatched input or output counts, the verdict is
// NotEquivalent.
//
// If st is non-nil, the split plan of the run is published into it
// regardless of outcome.  Check is deterministic: repeated calls on
// the same circuits give the same verdict and stats.
func Check(a, b *logic.C, st *Stats) Verdict {
	if st == nil {
		st = &Stats{}
	}
	*st = Stats{}
	if a.NumIns() > MaxIns {
		return Unknown
	}
	m, err := logic.Miter(a, b)
	if err != nil {
		log.Debugf("cec: miter: %v", err)
		return NotEquivalent
	}
	st.SplitVars, st.Rounds = plan(m.Len(), m.NumIns())
	if run(m, st) {
		return Equivalent
	}
	return NotEquivalent
}
