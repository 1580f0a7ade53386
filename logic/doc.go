// Copyright 2026 The CEC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package logic provides representation of Boolean combinational logic.
//
// Package logic uses a standard AIG (and-inverter graph) to represent
// combinational circuits.  They are simplified using simple rules and
// structural hashing, implemented in the type C.  Circuits carry
// explicit input and output lists; output literals record polarity, so
// a negative output literal is a complemented output.
//
// The Miter function combines two circuits with matching interfaces
// into one whose outputs are the pairwise exclusive ors of the inputs'
// outputs, the standard reduction of equivalence checking to testing
// for constant 0.
package logic
