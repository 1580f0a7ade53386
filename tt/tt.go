// Copyright 2026 The CEC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package tt implements truth tables, fixed-width bit vectors which give
// the value of a Boolean function under every assignment to its
// variables at once.
package tt

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Type T is a truth table over w variables.  Bit i of the table is the
// value of the function under the assignment encoded by i:  variable j
// is 1 in assignment i iff bit j of i is 1.  A table over w variables
// holds 2^w bits.
type T struct {
	w    int
	bits *bitset.BitSet
}

// New creates a constant-0 truth table over w variables.
func New(w int) *T {
	return &T{w: w, bits: bitset.New(1 << uint(w))}
}

// Ones creates a constant-1 truth table over w variables.
func Ones(w int) *T {
	t := New(w)
	t.bits.FlipRange(0, uint(t.Len()))
	return t
}

// Vars creates the canonical truth table of variable i (0 based) over w
// variables: bit k is set iff bit i of k is set, so the pattern
// alternates with period 2^i.
func Vars(w, i int) *T {
	t := New(w)
	period := uint(1) << uint(i)
	n := uint(t.Len())
	for lo := period; lo < n; lo += 2 * period {
		t.bits.FlipRange(lo, lo+period)
	}
	return t
}

// NumVars returns the number of variables of t.
func (t *T) NumVars() int {
	return t.w
}

// Len returns the number of bits of t, 2^NumVars().
func (t *T) Len() int {
	return 1 << uint(t.w)
}

// Get returns bit i of t.
func (t *T) Get(i int) bool {
	return t.bits.Test(uint(i))
}

// Clone returns a copy of t.
func (t *T) Clone() *T {
	return &T{w: t.w, bits: t.bits.Clone()}
}

// CopyFrom overwrites t with the contents of o and returns t.
//
// o must have the same number of variables as t.
func (t *T) CopyFrom(o *T) *T {
	o.bits.Copy(t.bits)
	return t
}

// Not returns the bitwise complement of t as a new table.
func (t *T) Not() *T {
	return &T{w: t.w, bits: t.bits.Complement()}
}

// FlipInPlace complements t in place and returns t.
func (t *T) FlipInPlace() *T {
	t.bits.FlipRange(0, uint(t.Len()))
	return t
}

// AndInPlace ands o into t and returns t.
func (t *T) AndInPlace(o *T) *T {
	t.bits.InPlaceIntersection(o.bits)
	return t
}

// AndNotInPlace ands the complement of o into t and returns t.
func (t *T) AndNotInPlace(o *T) *T {
	t.bits.InPlaceDifference(o.bits)
	return t
}

// And returns the conjunction of t and o as a new table.
func (t *T) And(o *T) *T {
	return t.Clone().AndInPlace(o)
}

// Or returns the disjunction of t and o as a new table.
func (t *T) Or(o *T) *T {
	r := t.Clone()
	r.bits.InPlaceUnion(o.bits)
	return r
}

// Xor returns the exclusive or of t and o as a new table.
func (t *T) Xor(o *T) *T {
	r := t.Clone()
	r.bits.InPlaceSymmetricDifference(o.bits)
	return r
}

// IsConst0 tells whether t is the constant-0 function.
func (t *T) IsConst0() bool {
	return t.bits.None()
}

// Equal tells whether t and o have the same width and contents.
func (t *T) Equal(o *T) bool {
	return t.w == o.w && t.bits.Equal(o.bits)
}

// String gives the bits of t, most significant first.
func (t *T) String() string {
	var sb strings.Builder
	for i := t.Len() - 1; i >= 0; i-- {
		if t.bits.Test(uint(i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
