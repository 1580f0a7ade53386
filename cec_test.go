// Copyright 2026 The CEC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irifrance/cec/gen"
	"github.com/irifrance/cec/logic"
	"github.com/irifrance/cec/sim"
	"github.com/irifrance/cec/tt"
)

func TestPlanBounds(t *testing.T) {
	for _, nNodes := range []int{1, 2, 17, 1024, 1 << 20, 1 << 24} {
		for nIns := 1; nIns <= MaxIns; nIns++ {
			split, rounds := plan(nNodes, nIns)
			require.Greater(t, split, 0, "nodes=%d ins=%d", nNodes, nIns)
			require.LessOrEqual(t, split, nIns, "nodes=%d ins=%d", nNodes, nIns)
			require.Equal(t, uint64(1)<<uint(nIns-split), rounds)
		}
	}
}

func TestPlanSingleRound(t *testing.T) {
	// few inputs on a small network need no enumeration
	split, rounds := plan(100, 8)
	require.Equal(t, 8, split)
	require.Equal(t, uint64(1), rounds)
}

func TestPlanMemoryBound(t *testing.T) {
	// a large node count must force a split below the input count
	split, rounds := plan(1<<24, 40)
	require.Less(t, split, 40)
	require.Equal(t, uint64(1)<<uint(40-split), rounds)
	// and a larger network a smaller split than a smaller one
	split2, _ := plan(1<<26, 40)
	require.LessOrEqual(t, split2, split)
}

func TestPlanNoNodes(t *testing.T) {
	require.Panics(t, func() { plan(0, 3) })
}

func TestPatternSplitVars(t *testing.T) {
	const split = 3
	for i := 1; i <= split; i++ {
		want := tt.Vars(split, i-1)
		for r := uint64(0); r < 4; r++ {
			require.True(t, pattern(i, r, split).Equal(want),
				"split input %d changed in round %d", i, r)
		}
	}
}

// Round bit 1 selects the constant-0 pattern, round bit 0 the
// constant-1 pattern.
func TestPatternConstMapping(t *testing.T) {
	const split = 2
	p := pattern(3, 1, split) // round bit 1
	require.True(t, p.IsConst0())
	p = pattern(3, 0, split) // round bit 0
	require.True(t, p.Equal(tt.Ones(split)))
}

// Across all rounds the constants pinned onto the non-split inputs
// enumerate every assignment exactly once.
func TestPatternCoverage(t *testing.T) {
	const nIns, split = 5, 2
	rounds := uint64(1) << (nIns - split)
	seen := make(map[string]bool, rounds)
	for r := uint64(0); r < rounds; r++ {
		key := ""
		for i := split + 1; i <= nIns; i++ {
			p := pattern(i, r, split)
			require.True(t, p.IsConst0() || p.Equal(tt.Ones(split)))
			if p.IsConst0() {
				key += "0"
			} else {
				key += "1"
			}
		}
		require.False(t, seen[key], "assignment %s repeated", key)
		seen[key] = true
	}
	require.Len(t, seen, int(rounds))
}

func TestFoldOuts(t *testing.T) {
	c := logic.NewC()
	c.Lit()
	c.SetOutput(c.F) // complemented constant 0
	m := sim.NewMap(c, 1)
	m.Set(c.InAt(0), tt.Vars(1, 0))
	sim.Simulate(c, m)
	require.True(t, foldOuts(c, m))

	c.SetOutput(c.T) // uncomplemented, constant 1
	require.False(t, foldOuts(c, m))
}

// Forcing a one-variable split must give the same answer as the
// single-round full-width run.
func TestRunForcedSplit(t *testing.T) {
	for _, eq := range []bool{true, false} {
		c1 := logic.NewC()
		a, b := c1.Lit(), c1.Lit()
		c1.SetOutput(c1.And(a, b))
		c2 := logic.NewC()
		a, b = c2.Lit(), c2.Lit()
		if eq {
			c2.SetOutput(c2.And(a, b))
		} else {
			c2.SetOutput(c2.Or(a, b))
		}
		m, err := logic.Miter(c1, c2)
		require.NoError(t, err)

		full := &Stats{}
		full.SplitVars, full.Rounds = plan(m.Len(), m.NumIns())
		require.Equal(t, uint64(1), full.Rounds)
		forced := &Stats{SplitVars: 1, Rounds: 2}
		require.Equal(t, eq, run(m, full))
		require.Equal(t, eq, run(m, forced))
	}
}

func randPair(seed int64, nIns, nGates, nOuts int) (*logic.C, *logic.C) {
	gen.Seed(seed)
	c1 := gen.RandC(nIns, nGates, nOuts)
	gen.Seed(seed)
	c2 := gen.RandC(nIns, nGates, nOuts)
	return c1, c2
}

func TestCheckSelfEquivalence(t *testing.T) {
	for seed := int64(1); seed <= 16; seed++ {
		c1, c2 := randPair(seed, 2+int(seed)%7, 50, 3)
		require.Equal(t, Equivalent, Check(c1, c2, nil), "seed %d", seed)
	}
}

func TestCheckAndOr(t *testing.T) {
	c1 := logic.NewC()
	a, b := c1.Lit(), c1.Lit()
	c1.SetOutput(c1.And(a, b))
	c2 := logic.NewC()
	a, b = c2.Lit(), c2.Lit()
	c2.SetOutput(c2.Or(a, b))
	require.Equal(t, NotEquivalent, Check(c1, c2, nil))
}

func TestCheckCeiling(t *testing.T) {
	c1 := logic.NewC()
	for i := 0; i < MaxIns+1; i++ {
		c1.Lit()
	}
	c1.SetOutput(c1.InAt(0))
	st := &Stats{SplitVars: 99, Rounds: 99}
	require.Equal(t, Unknown, Check(c1, c1, st))
	require.Equal(t, Stats{}, *st, "stats not reset on unknown")
}

func TestCheckMismatch(t *testing.T) {
	c1 := logic.NewC()
	c1.SetOutput(c1.Lit())
	c2 := logic.NewC()
	a, b := c2.Lit(), c2.Lit()
	c2.SetOutput(c2.And(a, b))
	// incompatible networks are reported as not equivalent
	require.Equal(t, NotEquivalent, Check(c1, c2, nil))
}

func TestCheckPolarity(t *testing.T) {
	// one output is the complemented constant-0 node, the other an
	// and gate reduced to constant 0; both must check equivalent.
	c1 := logic.NewC()
	c1.Lit()
	c1.SetOutput(c1.F)
	c2 := logic.NewC()
	a := c2.Lit()
	c2.SetOutput(c2.And(a, a.Not()))
	require.Equal(t, Equivalent, Check(c1, c2, nil))
	require.Equal(t, Equivalent, Check(c2, c1, nil))
}

func TestCheckIdempotent(t *testing.T) {
	c1, c2 := randPair(7, 6, 30, 2)
	st1, st2 := &Stats{}, &Stats{}
	v1 := Check(c1, c2, st1)
	v2 := Check(c1, c2, st2)
	require.Equal(t, v1, v2)
	require.Equal(t, *st1, *st2)
}

func TestCheckStats(t *testing.T) {
	c1, c2 := randPair(11, 5, 40, 2)
	st := &Stats{}
	require.Equal(t, Equivalent, Check(c1, c2, st))
	m, err := logic.Miter(c1, c2)
	require.NoError(t, err)
	split, rounds := plan(m.Len(), m.NumIns())
	require.Equal(t, split, st.SplitVars)
	require.Equal(t, rounds, st.Rounds)
}

func BenchmarkCheck(b *testing.B) {
	c1, c2 := randPair(5, 12, 400, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if Check(c1, c2, nil) != Equivalent {
			b.Fatal("not equivalent")
		}
	}
}

func ExampleCheck() {
	c1 := logic.NewC()
	a, b, c := c1.Lit(), c1.Lit(), c1.Lit()
	g1 := c1.And(c1.Ors(a, b, c), c1.Ors(a, b, c.Not()))
	c1.SetOutput(g1)

	c2 := logic.NewC()
	a, b, c = c2.Lit(), c2.Lit(), c2.Lit()
	c2.SetOutput(c2.Or(a, b))

	// "(a+b+c)(a+b+-c)" computes the same function as "a+b".
	fmt.Println(Check(c1, c2, nil))
	// Output: equivalent
}
