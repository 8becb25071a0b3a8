// Copyright 2026 The Quiver Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package sim provides truth table simulation of combinational
// circuits and a simulation based combinational equivalence checker.
package sim

import (
	"github.com/go-eda/quiver/logic"
	"github.com/go-eda/quiver/ttab"
)

// Network describes the circuit capabilities the simulation engine
// consumes.  *logic.C satisfies Network; any other representation
// offering topologically ordered node enumeration with stable input
// and output order may be simulated as well.
type Network interface {
	// NumPIs returns the number of primary inputs.
	NumPIs() int
	// NumPOs returns the number of primary outputs.
	NumPOs() int
	// Len returns the number of nodes, including the reserved node 0
	// and the constant node 1.
	Len() int
	// At returns the i'th node in topological order as a positive
	// literal.
	At(i int) logic.Lit
	// Ins returns the fanins of a node, LitNull for inputs and the
	// constant.
	Ins(m logic.Lit) (logic.Lit, logic.Lit)
	// PIs enumerates the primary inputs in stable order.
	PIs() []logic.Lit
	// Outs enumerates the primary outputs in stable order.
	Outs() []logic.Lit
}

var _ Network = (*logic.C)(nil)

// Simulator assigns truth tables to the leaves of a network and
// propagates complement flags.  Gate functions are applied by the
// engine itself using truth table operations.
type Simulator interface {
	// Constant returns the table of the constant val.
	Constant(val bool) ttab.T
	// PI returns the table of the i'th primary input.
	PI(i int) ttab.T
	// Not returns the complement of t.
	Not(t ttab.T) ttab.T
}

// Simulate evaluates every node of n in topological order, leaves
// through s and gates through truth table conjunction, and returns one
// table per primary output, in output order.
func Simulate(n Network, s Simulator) []ttab.T {
	vals := eval(n, s)
	outs := n.Outs()
	tts := make([]ttab.T, len(outs))
	for i, m := range outs {
		tts[i] = outValue(vals, s, m)
	}
	return tts
}

// SimulateEach is like Simulate but hands each primary output table to
// f in output order, stopping early when f returns false.
func SimulateEach(n Network, s Simulator, f func(i int, tt ttab.T) bool) {
	vals := eval(n, s)
	for i, m := range n.Outs() {
		if !f(i, outValue(vals, s, m)) {
			return
		}
	}
}

// eval computes the table of every node of n.  The result is indexed
// by node variable and is only valid for the simulator it was built
// with.
func eval(n Network, s Simulator) []ttab.T {
	vals := make([]ttab.T, n.Len())
	vals[1] = s.Constant(true)
	for i, m := range n.PIs() {
		vals[m.Var()] = s.PI(i)
	}
	for i := 2; i < n.Len(); i++ {
		m := n.At(i)
		a, b := n.Ins(m)
		if a == logic.LitNull {
			continue
		}
		va := vals[a.Var()]
		if !a.IsPos() {
			va = s.Not(va)
		}
		vb := vals[b.Var()]
		if !b.IsPos() {
			vb = s.Not(vb)
		}
		vals[m.Var()] = va.And(vb)
	}
	return vals
}

func outValue(vals []ttab.T, s Simulator, m logic.Lit) ttab.T {
	tt := vals[m.Var()]
	if !m.IsPos() {
		tt = s.Not(tt)
	}
	return tt
}
