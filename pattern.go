// Copyright 2026 The CEC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cec

import "github.com/irifrance/cec/tt"

// pattern produces the truth table input i holds during round r, for a
// split of splitVars variables.  i is 1 based over the network's input
// enumeration order.
//
// The first splitVars inputs hold their canonical variable pattern,
// identical in every round.  Every later input is pinned to a constant
// chosen by bit i-splitVars-1 of the round index, so that across all
// rounds the constants enumerate every assignment to the non-split
// inputs exactly once.  Round bit 1 selects constant 0 and round bit 0
// selects constant 1.
func pattern(i int, r uint64, splitVars int) *tt.T {
	if i <= splitVars {
		return tt.Vars(splitVars, i-1)
	}
	if r>>uint(i-splitVars-1)&1 == 1 {
		return tt.New(splitVars)
	}
	return tt.Ones(splitVars)
}
