// Copyright 2026 The Quiver Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "fmt"

// Miter builds the difference circuit of a and b: a circuit over the
// shared primary inputs whose output i is the exclusive or of output i
// of a and output i of b.  The result computes constant false on all
// inputs if and only if a and b are functionally equivalent.
//
// Miter returns an error when a and b do not have the same number of
// primary inputs and primary outputs.
func Miter(a, b *C) (*C, error) {
	if a.NumPIs() != b.NumPIs() {
		return nil, fmt.Errorf("logic: miter: input count mismatch %d != %d", a.NumPIs(), b.NumPIs())
	}
	if a.NumPOs() != b.NumPOs() {
		return nil, fmt.Errorf("logic: miter: output count mismatch %d != %d", a.NumPOs(), b.NumPOs())
	}
	m := NewCCap(a.Len() + b.Len())
	ins := make([]Lit, a.NumPIs())
	for i := range ins {
		ins[i] = m.Lit()
	}
	aOuts := m.graft(a, ins)
	bOuts := m.graft(b, ins)
	for i := range aOuts {
		m.Out(m.Xor(aOuts[i], bOuts[i]))
	}
	return m, nil
}

// graft copies src into c, identifying the i'th primary input of src
// with ins[i], and returns the translated primary outputs of src.
func (c *C) graft(src *C, ins []Lit) []Lit {
	xlat := make([]Lit, src.Len())
	xlat[src.T.Var()] = c.T
	pi := 0
	for i := 2; i < src.Len(); i++ {
		sa, sb := src.Ins(src.At(i))
		if sa == LitNull {
			xlat[i] = ins[pi]
			pi++
			continue
		}
		xlat[i] = c.And(c.xlit(xlat, sa), c.xlit(xlat, sb))
	}
	outs := make([]Lit, src.NumPOs())
	for i, sm := range src.Outs() {
		outs[i] = c.xlit(xlat, sm)
	}
	return outs
}

func (c *C) xlit(xlat []Lit, m Lit) Lit {
	d := xlat[m.Var()]
	if !m.IsPos() {
		d = d.Not()
	}
	return d
}
