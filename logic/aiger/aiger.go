// Copyright 2026 The Quiver Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-eda/quiver/logic"
)

// Errors related to IO and formatting
var (
	PrematureEOF       = errors.New("premature EOF")
	BadHeader          = errors.New("bad header")
	BadUInt            = errors.New("malformed literal")
	BinaryMismatch     = errors.New("binary mismatch")
	Sequential         = errors.New("sequential elements not supported")
	LitOOB             = errors.New("literal out of bounds")
	BadDeltaEncoding   = errors.New("bad delta encoding")
	SignedInput        = errors.New("input is negated")
	SignedAnd          = errors.New("and gate def is negated")
	AndMultiplyDefined = errors.New("and gate multiply defined")
	UndefinedLit       = errors.New("literal not defined")
)

type header struct {
	max, in, latch, out, and uint
	binary                   bool
}

// Read reads a combinational circuit in AIGER format version 1.9 from
// r, dispatching on the header between the ASCII and binary codings.
func Read(r io.Reader) (*logic.C, error) {
	br := bufio.NewReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if hdr.binary {
		return readBinary(br, hdr)
	}
	return readAscii(br, hdr)
}

// ReadAscii reads an ASCII coded ("aag") combinational AIGER file.
// And gate definitions must precede their uses, which holds for
// topologically emitted files such as those written by WriteAscii.
func ReadAscii(r io.Reader) (*logic.C, error) {
	br := bufio.NewReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if hdr.binary {
		return nil, BinaryMismatch
	}
	return readAscii(br, hdr)
}

// ReadBinary reads a binary coded ("aig") combinational AIGER file.
func ReadBinary(r io.Reader) (*logic.C, error) {
	br := bufio.NewReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if !hdr.binary {
		return nil, BinaryMismatch
	}
	return readBinary(br, hdr)
}

func readHeader(br *bufio.Reader) (*header, error) {
	line, err := readLine(br)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) != 6 {
		return nil, BadHeader
	}
	hdr := &header{}
	switch fields[0] {
	case "aag":
	case "aig":
		hdr.binary = true
	default:
		return nil, BadHeader
	}
	dst := [...]*uint{&hdr.max, &hdr.in, &hdr.latch, &hdr.out, &hdr.and}
	for i, p := range dst {
		u, err := strconv.ParseUint(fields[i+1], 10, 32)
		if err != nil {
			return nil, BadHeader
		}
		*p = uint(u)
	}
	if hdr.latch != 0 {
		return nil, Sequential
	}
	if hdr.in+hdr.and > hdr.max {
		return nil, BadHeader
	}
	return hdr, nil
}

func readAscii(br *bufio.Reader, hdr *header) (*logic.C, error) {
	c := logic.NewCCap(int(hdr.max) + 2)
	vmap := make([]logic.Lit, hdr.max+1)
	vmap[0] = c.F
	for i := uint(0); i < hdr.in; i++ {
		u, err := readUIntLine(br)
		if err != nil {
			return nil, err
		}
		if u%2 == 1 {
			return nil, SignedInput
		}
		if u == 0 || u/2 > hdr.max {
			return nil, LitOOB
		}
		if vmap[u/2] != logic.LitNull {
			return nil, AndMultiplyDefined
		}
		vmap[u/2] = c.Lit()
	}
	rawOuts, err := readOutputs(br, hdr)
	if err != nil {
		return nil, err
	}
	for i := uint(0); i < hdr.and; i++ {
		line, err := readLine(br)
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, BadUInt
		}
		var us [3]uint
		for j, f := range fields {
			u, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return nil, BadUInt
			}
			us[j] = uint(u)
		}
		lhs, a, b := us[0], us[1], us[2]
		if lhs%2 == 1 {
			return nil, SignedAnd
		}
		if lhs == 0 || lhs/2 > hdr.max || a > 2*hdr.max+1 || b > 2*hdr.max+1 {
			return nil, LitOOB
		}
		if vmap[lhs/2] != logic.LitNull {
			return nil, AndMultiplyDefined
		}
		ma, err := toLit(c, vmap, a)
		if err != nil {
			return nil, err
		}
		mb, err := toLit(c, vmap, b)
		if err != nil {
			return nil, err
		}
		vmap[lhs/2] = c.And(ma, mb)
	}
	return commitOutputs(c, vmap, hdr, rawOuts)
}

func readBinary(br *bufio.Reader, hdr *header) (*logic.C, error) {
	c := logic.NewCCap(int(hdr.max) + 2)
	vmap := make([]logic.Lit, hdr.max+1)
	vmap[0] = c.F
	for i := uint(1); i <= hdr.in; i++ {
		vmap[i] = c.Lit()
	}
	rawOuts, err := readOutputs(br, hdr)
	if err != nil {
		return nil, err
	}
	for i := uint(0); i < hdr.and; i++ {
		lhs := 2 * (hdr.in + 1 + i)
		d0, err := readVarUInt(br)
		if err != nil {
			return nil, err
		}
		d1, err := readVarUInt(br)
		if err != nil {
			return nil, err
		}
		if d0 > lhs || d1 > lhs-d0 {
			return nil, BadDeltaEncoding
		}
		a := lhs - d0
		b := a - d1
		ma, err := toLit(c, vmap, a)
		if err != nil {
			return nil, err
		}
		mb, err := toLit(c, vmap, b)
		if err != nil {
			return nil, err
		}
		if vmap[lhs/2] != logic.LitNull {
			return nil, AndMultiplyDefined
		}
		vmap[lhs/2] = c.And(ma, mb)
	}
	return commitOutputs(c, vmap, hdr, rawOuts)
}

func readOutputs(br *bufio.Reader, hdr *header) ([]uint, error) {
	outs := make([]uint, hdr.out)
	for i := range outs {
		u, err := readUIntLine(br)
		if err != nil {
			return nil, err
		}
		if u > 2*hdr.max+1 {
			return nil, LitOOB
		}
		outs[i] = u
	}
	return outs, nil
}

func commitOutputs(c *logic.C, vmap []logic.Lit, hdr *header, rawOuts []uint) (*logic.C, error) {
	for _, u := range rawOuts {
		m, err := toLit(c, vmap, u)
		if err != nil {
			return nil, err
		}
		c.Out(m)
	}
	return c, nil
}

// toLit maps an aiger literal to a circuit literal.  Aiger literal 0
// is the constant false, 1 the constant true; variable v maps through
// vmap[v] with the low bit of the aiger literal as complement flag.
func toLit(c *logic.C, vmap []logic.Lit, u uint) (logic.Lit, error) {
	m := vmap[u/2]
	if m == logic.LitNull {
		return logic.LitNull, UndefinedLit
	}
	if u%2 == 1 {
		m = m.Not()
	}
	return m, nil
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		if err == io.EOF {
			return "", PrematureEOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\n"), nil
}

func readUIntLine(br *bufio.Reader) (uint, error) {
	line, err := readLine(br)
	if err != nil {
		return 0, err
	}
	u, err := strconv.ParseUint(strings.TrimSpace(line), 10, 32)
	if err != nil {
		return 0, BadUInt
	}
	return uint(u), nil
}

// readVarUInt reads one little endian base 128 coded number, the
// binary aiger delta coding.
func readVarUInt(br *bufio.Reader) (uint, error) {
	var u uint
	var shift uint
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return 0, PrematureEOF
			}
			return 0, err
		}
		u |= uint(b&0x7f) << shift
		if b&0x80 == 0 {
			return u, nil
		}
		shift += 7
		if shift > 35 {
			return 0, BadDeltaEncoding
		}
	}
}

func putVarUInt(bw *bufio.Writer, u uint) {
	for u >= 0x80 {
		bw.WriteByte(byte(u) | 0x80)
		u >>= 7
	}
	bw.WriteByte(byte(u))
}

// ids assigns aiger variables to the nodes of c: inputs first in input
// order, then and gates in topological order.  The returned map is
// indexed by circuit variable.
func ids(c *logic.C) ([]uint, uint) {
	idOf := make([]uint, c.Len())
	next := uint(1)
	for _, m := range c.PIs() {
		idOf[m.Var()] = next
		next++
	}
	for i := 2; i < c.Len(); i++ {
		m := c.At(i)
		if a, _ := c.Ins(m); a == logic.LitNull {
			continue
		}
		idOf[m.Var()] = next
		next++
	}
	return idOf, next - 1
}

// fromLit maps a circuit literal to an aiger literal.
func fromLit(c *logic.C, idOf []uint, m logic.Lit) uint {
	switch m {
	case c.T:
		return 1
	case c.F:
		return 0
	}
	u := 2 * idOf[m.Var()]
	if !m.IsPos() {
		u++
	}
	return u
}

// WriteAscii writes c in ASCII AIGER format (version 1.9) to w.
func WriteAscii(w io.Writer, c *logic.C) error {
	idOf, max := ids(c)
	nAnds := max - uint(c.NumPIs())
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "aag %d %d 0 %d %d\n", max, c.NumPIs(), c.NumPOs(), nAnds)
	for _, m := range c.PIs() {
		fmt.Fprintf(bw, "%d\n", fromLit(c, idOf, m))
	}
	for _, m := range c.Outs() {
		fmt.Fprintf(bw, "%d\n", fromLit(c, idOf, m))
	}
	for i := 2; i < c.Len(); i++ {
		m := c.At(i)
		a, b := c.Ins(m)
		if a == logic.LitNull {
			continue
		}
		fmt.Fprintf(bw, "%d %d %d\n", fromLit(c, idOf, m), fromLit(c, idOf, a), fromLit(c, idOf, b))
	}
	writeComment(bw)
	return bw.Flush()
}

// WriteBinary writes c in binary AIGER format (version 1.9) to w.
func WriteBinary(w io.Writer, c *logic.C) error {
	idOf, max := ids(c)
	nAnds := max - uint(c.NumPIs())
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "aig %d %d 0 %d %d\n", max, c.NumPIs(), c.NumPOs(), nAnds)
	for _, m := range c.Outs() {
		fmt.Fprintf(bw, "%d\n", fromLit(c, idOf, m))
	}
	for i := 2; i < c.Len(); i++ {
		m := c.At(i)
		a, b := c.Ins(m)
		if a == logic.LitNull {
			continue
		}
		lhs := 2 * idOf[m.Var()]
		ua, ub := fromLit(c, idOf, a), fromLit(c, idOf, b)
		if ua < ub {
			ua, ub = ub, ua
		}
		putVarUInt(bw, lhs-ua)
		putVarUInt(bw, ua-ub)
	}
	writeComment(bw)
	return bw.Flush()
}

// writes a trailing comment saying that quiver wrote the file
func writeComment(bw *bufio.Writer) {
	bw.WriteString("c\naiger file version 1.9 created by quiver\n")
}
