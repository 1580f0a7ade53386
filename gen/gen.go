// Copyright 2026 The CEC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen generates random combinational circuits for testing and
// benchmarking.
package gen

import (
	"math/rand"
	"sync"

	"github.com/irifrance/cec/logic"
	"github.com/irifrance/cec/z"
)

// make the rng seedable
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

// Seed seeds the package level rng, making subsequent generation
// deterministic per seed.
func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// RandC generates a random circuit with nIns inputs, up to nGates and
// gates over random, possibly negated fan-ins, and nOuts outputs drawn
// from the generated literals.  Strashing may merge generated gates,
// so the node count can come in under nGates.  nIns must be positive.
func RandC(nIns, nGates, nOuts int) *logic.C {
	mu.Lock()
	defer mu.Unlock()
	c := logic.NewCCap(2 + nIns + nGates)
	ms := make([]z.Lit, 0, nIns+nGates)
	for i := 0; i < nIns; i++ {
		ms = append(ms, c.Lit())
	}
	for i := 0; i < nGates; i++ {
		a := randLit(ms)
		b := randLit(ms)
		if b.Var() == a.Var() {
			// one retry; And simplifies duplicates anyway
			b = randLit(ms)
		}
		ms = append(ms, c.And(a, b))
	}
	for i := 0; i < nOuts; i++ {
		c.SetOutput(randLit(ms))
	}
	return c
}

func randLit(ms []z.Lit) z.Lit {
	m := ms[rng.Intn(len(ms))]
	if rng.Intn(2) == 1 {
		return m.Not()
	}
	return m
}
