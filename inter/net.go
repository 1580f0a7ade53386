// Copyright 2026 The CEC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package inter contains interfaces for the objects the equivalence
// checker operates on, decoupling it from any concrete circuit
// representation.
package inter

import "github.com/irifrance/cec/z"

// Interface Net encapsulates the capability set the checker needs
// from a combinational network.
//
// A Net presents its nodes as variables numbered 1..Len()-1 in
// topological order: the fan-ins of node i have numbers smaller than
// i.  Variable 1 is the constant node, whose positive literal is the
// constant true.  Inputs are the nodes whose fan-ins are both
// z.LitNull.
type Net interface {

	// Len returns the number of nodes, including the reserved
	// constant node.
	Len() int

	// Ins returns the fan-ins of m, z.LitNull fan-ins for inputs
	// and the constant node.
	Ins(m z.Lit) (z.Lit, z.Lit)

	// NumIns returns the number of inputs.
	NumIns() int

	// InAt returns the i'th input as a positive literal.  The
	// enumeration order is fixed per network.
	InAt(i int) z.Lit

	// NumOuts returns the number of outputs.
	NumOuts() int

	// OutAt returns the i'th output literal.  A negative literal is
	// a complemented output.
	OutAt(i int) z.Lit
}
