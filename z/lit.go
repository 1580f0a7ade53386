// Copyright 2026 The CEC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Type Lit is a representation of a Boolean literal, a variable or its
// negation.  The least significant bit holds the sign, so v.Pos() is
// 2*v and v.Neg() is 2*v+1.
type Lit uint32

// LitNull is a meaningless literal, used as a marker in fan-in slots
// and the like.
const LitNull = Lit(0)

// IsPos tells whether the literal is un-negated.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

// Var returns the variable underlying m.
func (m Lit) Var() Var {
	return Var(m >> 1)
}

// Sign returns 1 if m is positive, -1 otherwise.
func (m Lit) Sign() int {
	if m&1 == 0 {
		return 1
	}
	return -1
}

// Dimacs returns the dimacs representation of m: the variable number,
// negated if m is a negative literal.
func (m Lit) Dimacs() int {
	n := int(m >> 1)
	if m&1 == 1 {
		return -n
	}
	return n
}

// Dimacs2Lit inverts Lit.Dimacs().
func Dimacs2Lit(d int) Lit {
	if d < 0 {
		return Var(-d).Neg()
	}
	return Var(d).Pos()
}

func (m Lit) String() string {
	if m.IsPos() {
		return fmt.Sprintf("%s", m.Var())
	}
	return fmt.Sprintf("-%s", m.Var())
}
