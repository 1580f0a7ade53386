// Copyright 2026 The CEC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cec

import "math"

const (
	// memBits is the total memory budget, in bits, for the truth
	// tables of all nodes of the network under simulation.
	memBits = 1 << 29

	// nodeBits is the fixed per-node bookkeeping overhead in bits.
	nodeBits = 32

	// MaxIns is the hard ceiling on the number of network inputs for
	// which a check is attempted.  Beyond it the round enumeration
	// blows up and Check returns Unknown.
	MaxIns = 40
)

// plan decides how many inputs of a network with nNodes nodes and nIns
// inputs are simulated with genuine bit-parallel variable patterns
// (splitVars) and how many enumeration rounds are needed to cover the
// remaining inputs exhaustively (rounds).
//
// A table over w variables costs 2^w bits per node, so splitVars is
// capped such that all tables fit in memBits.  Every input past the
// cap is pinned to a constant per round, with rounds =
// 2^(nIns-splitVars) rounds overall.
func plan(nNodes, nIns int) (splitVars int, rounds uint64) {
	if nNodes < 1 {
		panic("cec: network with no nodes")
	}
	// the +3 is an empirical margin; kept as is so the published
	// stats stay stable.
	maxSplit := 1
	if arg := float64(memBits)/float64(nNodes) - nodeBits; arg > 0 {
		maxSplit = int(math.Log2(arg)) + 3
	}
	splitVars = nIns
	if splitVars > maxSplit {
		splitVars = maxSplit
	}
	if splitVars < 1 && nIns > 0 {
		// a pathological node count relative to memBits drives the
		// formula to zero or below; one split variable always fits.
		splitVars = 1
	}
	rounds = uint64(1) << uint(nIns-splitVars)
	return splitVars, rounds
}
