// Copyright 2026 The CEC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aiger implements reading and writing of combinational
// circuits in the aiger ascii (aag) format.
//
// The aiger objects are backed by combinational circuits as
// represented in *logic.C.  Sequential features of the format
// (latches) are not supported.
package aiger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/irifrance/cec/logic"
	"github.com/irifrance/cec/z"
)

// Errors related to IO and formatting.
var (
	BadHeader          = errors.New("bad header")
	BadUInt            = errors.New("malformed literal")
	BinaryMismatch     = errors.New("binary mismatch")
	HasLatches         = errors.New("file has latches")
	LitOOB             = errors.New("literal out of bounds")
	SignedInput        = errors.New("input is negated")
	SignedAnd          = errors.New("and gate def is negated")
	AndMultiplyDefined = errors.New("and gate multiply defined")
	InputRedefined     = errors.New("input multiply defined")
	UndefinedLit       = errors.New("literal not defined")
	CombLoop           = errors.New("combinational logic has a loop")
)

type header struct {
	Max, In, Latch, Out, And uint
}

// ReadAscii reads an ascii coded combinational aiger file.  ReadAscii
// returns a possibly nil circuit paired with a possibly nil error.  If
// the circuit is nil, the error is non-nil and indicates the
// underlying problem.
func ReadAscii(r io.Reader) (*logic.C, error) {
	br := bufio.NewReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if hdr.Latch != 0 {
		return nil, HasLatches
	}
	ar := &aigerReader{
		c:    logic.NewCCap(int(hdr.Max) + 2),
		hdr:  hdr,
		ins:  make(map[uint]z.Lit, hdr.In),
		ands: make(map[uint][2]uint, hdr.And),
		memo: make(map[uint]z.Lit, hdr.Max)}
	if err := ar.readInputs(br); err != nil {
		return nil, err
	}
	outs, err := ar.readOutputs(br)
	if err != nil {
		return nil, err
	}
	if err := ar.readAnds(br); err != nil {
		return nil, err
	}
	for _, o := range outs {
		m, err := ar.build(o)
		if err != nil {
			return nil, err
		}
		ar.c.SetOutput(m)
	}
	return ar.c, nil
}

// WriteAscii writes c in the combinational aag format, inputs first
// and and gates in topological order.
func WriteAscii(w io.Writer, c *logic.C) error {
	bw := bufio.NewWriter(w)
	base, nAnds := aigMap(c)
	fmt.Fprintf(bw, "aag %d %d 0 %d %d\n", c.NumIns()+nAnds, c.NumIns(), c.NumOuts(), nAnds)
	for i := 0; i < c.NumIns(); i++ {
		fmt.Fprintf(bw, "%d\n", aigFor(base, c.InAt(i)))
	}
	for i := 0; i < c.NumOuts(); i++ {
		fmt.Fprintf(bw, "%d\n", aigFor(base, c.OutAt(i)))
	}
	for v := 2; v < c.Len(); v++ {
		m := c.At(v)
		a, b := c.Ins(m)
		if a == z.LitNull {
			continue // input
		}
		fmt.Fprintf(bw, "%d %d %d\n", aigFor(base, m), aigFor(base, a), aigFor(base, b))
	}
	return bw.Flush()
}

// aigMap assigns aiger variable numbers: inputs 1..I in enumeration
// order, then and gates in node order.  The constant node maps to
// aiger lit 1 (true).
func aigMap(c *logic.C) (base []uint, nAnds int) {
	base = make([]uint, c.Len())
	base[1] = 1
	next := uint(1)
	for i := 0; i < c.NumIns(); i++ {
		base[c.InAt(i).Var()] = next * 2
		next++
	}
	for v := 2; v < c.Len(); v++ {
		a, _ := c.Ins(c.At(v))
		if a == z.LitNull {
			continue
		}
		base[v] = next * 2
		next++
		nAnds++
	}
	return base, nAnds
}

func aigFor(base []uint, m z.Lit) uint {
	g := base[m.Var()]
	if !m.IsPos() {
		return g ^ 1
	}
	return g
}

type aigerReader struct {
	c    *logic.C
	hdr  *header
	ins  map[uint]z.Lit   // aiger var -> input lit
	ands map[uint][2]uint // aiger var -> fan-in aiger lits
	memo map[uint]z.Lit   // aiger var -> built lit
	mark map[uint]bool    // dfs stack marks
}

func readHeader(br *bufio.Reader) (*header, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return nil, BadHeader
	}
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) != 6 {
		return nil, BadHeader
	}
	if fields[0] == "aig" {
		return nil, BinaryMismatch
	}
	if fields[0] != "aag" {
		return nil, BadHeader
	}
	var ns [5]uint
	for i, f := range fields[1:] {
		u, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, BadHeader
		}
		ns[i] = uint(u)
	}
	hdr := &header{Max: ns[0], In: ns[1], Latch: ns[2], Out: ns[3], And: ns[4]}
	if hdr.Max < hdr.In+hdr.Latch+hdr.And {
		return nil, BadHeader
	}
	return hdr, nil
}

func (ar *aigerReader) readUInts(br *bufio.Reader, n int) ([]uint, error) {
	line, err := br.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return nil, BadUInt
	}
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) != n {
		return nil, BadUInt
	}
	us := make([]uint, n)
	for i, f := range fields {
		u, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, BadUInt
		}
		us[i] = uint(u)
	}
	return us, nil
}

func (ar *aigerReader) readInputs(br *bufio.Reader) error {
	for i := uint(0); i < ar.hdr.In; i++ {
		us, err := ar.readUInts(br, 1)
		if err != nil {
			return err
		}
		u := us[0]
		if u&1 == 1 {
			return SignedInput
		}
		if u/2 > ar.hdr.Max || u < 2 {
			return LitOOB
		}
		if _, ok := ar.ins[u/2]; ok {
			return InputRedefined
		}
		ar.ins[u/2] = ar.c.Lit()
	}
	return nil
}

func (ar *aigerReader) readOutputs(br *bufio.Reader) ([]uint, error) {
	outs := make([]uint, 0, ar.hdr.Out)
	for i := uint(0); i < ar.hdr.Out; i++ {
		us, err := ar.readUInts(br, 1)
		if err != nil {
			return nil, err
		}
		if us[0]/2 > ar.hdr.Max {
			return nil, LitOOB
		}
		outs = append(outs, us[0])
	}
	return outs, nil
}

func (ar *aigerReader) readAnds(br *bufio.Reader) error {
	for i := uint(0); i < ar.hdr.And; i++ {
		us, err := ar.readUInts(br, 3)
		if err != nil {
			return err
		}
		g, a, b := us[0], us[1], us[2]
		if g&1 == 1 {
			return SignedAnd
		}
		if g/2 > ar.hdr.Max || a/2 > ar.hdr.Max || b/2 > ar.hdr.Max {
			return LitOOB
		}
		if _, ok := ar.ands[g/2]; ok {
			return AndMultiplyDefined
		}
		if _, ok := ar.ins[g/2]; ok {
			return AndMultiplyDefined
		}
		ar.ands[g/2] = [2]uint{a, b}
	}
	return nil
}

// build constructs the literal for aiger literal u, memoized per
// variable and detecting cycles in the and definitions.
func (ar *aigerReader) build(u uint) (z.Lit, error) {
	av := u / 2
	if av == 0 {
		return ar.sign(ar.c.F, u), nil // lit 0 is false, 1 is true
	}
	if m, ok := ar.memo[av]; ok {
		return ar.sign(m, u), nil
	}
	if m, ok := ar.ins[av]; ok {
		return ar.sign(m, u), nil
	}
	fanins, ok := ar.ands[av]
	if !ok {
		return z.LitNull, UndefinedLit
	}
	if ar.mark == nil {
		ar.mark = make(map[uint]bool, len(ar.ands))
	}
	if ar.mark[av] {
		return z.LitNull, CombLoop
	}
	ar.mark[av] = true
	a, err := ar.build(fanins[0])
	if err != nil {
		return z.LitNull, err
	}
	b, err := ar.build(fanins[1])
	if err != nil {
		return z.LitNull, err
	}
	ar.mark[av] = false
	m := ar.c.And(a, b)
	ar.memo[av] = m
	return ar.sign(m, u), nil
}

func (ar *aigerReader) sign(m z.Lit, u uint) z.Lit {
	if u&1 == 1 {
		return m.Not()
	}
	return m
}
