// Copyright 2026 The Quiver Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

// Type C represents a combinational circuit as a strashed
// and-inverter graph with explicit primary inputs and outputs.
type C struct {
	nodes  []node   // list of all nodes, in topological order
	strash []uint32 // structural hash buckets
	ins    []Lit    // primary inputs in creation order
	outs   []Lit    // primary outputs in declaration order
	F      Lit      // false literal
	T      Lit      // true literal
}

type node struct {
	a Lit    // input a
	b Lit    // input b
	n uint32 // next strash
}

// NewC creates a new circuit.
func NewC() *C {
	c := &C{}
	initC(c, 128)
	return c
}

// NewCCap creates a new circuit with initial capacity capHint.
func NewCCap(capHint int) *C {
	if capHint < 2 {
		capHint = 2
	}
	c := &C{}
	initC(c, capHint)
	return c
}

func initC(c *C, capHint int) {
	c.nodes = make([]node, 2, capHint)
	c.strash = make([]uint32, capHint)
	c.T = Var(1).Pos()
	c.F = c.T.Not()
}

// Len returns the number of nodes used to represent c, including the
// reserved node 0 and the constant node 1.
func (c *C) Len() int {
	return len(c.nodes)
}

// At returns the i'th node as a positive literal.  Nodes from 0 to
// Len(c)-1 are in topological order: if i < j then c.At(j) is not
// reachable from c.At(i) via the fanin relation given by c.Ins().
func (c *C) At(i int) Lit {
	return Var(i).Pos()
}

// Lit creates a new primary input of c.
func (c *C) Lit() Lit {
	_, v := c.newNode()
	m := Var(v).Pos()
	c.ins = append(c.ins, m)
	return m
}

// Out declares m a primary output of c and returns its output index.
// A literal may be declared an output more than once.
func (c *C) Out(m Lit) int {
	c.outs = append(c.outs, m)
	return len(c.outs) - 1
}

// NumPIs returns the number of primary inputs of c.
func (c *C) NumPIs() int {
	return len(c.ins)
}

// NumPOs returns the number of primary outputs of c.
func (c *C) NumPOs() int {
	return len(c.outs)
}

// PIs returns the primary inputs of c in creation order.  The result
// is shared with c and should not be modified.
func (c *C) PIs() []Lit {
	return c.ins
}

// Outs returns the primary outputs of c in declaration order.  The
// result is shared with c and should not be modified.
func (c *C) Outs() []Lit {
	return c.outs
}

// Ins returns the fanins of m.
//
//	If m is an input or the constant, Ins returns LitNull, LitNull.
//	If m is an and gate, Ins returns the two conjuncts.
func (c *C) Ins(m Lit) (Lit, Lit) {
	n := c.nodes[m.Var()]
	return n.a, n.b
}

// IsInput tells whether m names a primary input of c.
func (c *C) IsInput(m Lit) bool {
	v := m.Var()
	if v < 2 || int(v) >= len(c.nodes) {
		return false
	}
	n := c.nodes[v]
	return n.a == LitNull && n.b == LitNull
}

// And returns a literal equivalent to "a and b", which may be a new
// node.  Structurally equal gates are shared.
func (c *C) And(a, b Lit) Lit {
	if a == b {
		return a
	}
	if a == b.Not() {
		return c.F
	}
	if a > b {
		a, b = b, a
	}
	if a == c.F {
		return c.F
	}
	if a == c.T {
		return b
	}
	h := strashCode(a, b)
	i := h % uint32(cap(c.nodes))
	si := c.strash[i]
	for si != 0 {
		n := &c.nodes[si]
		if n.a == a && n.b == b {
			return Var(si).Pos()
		}
		si = n.n
	}
	m, j := c.newNode()
	m.a = a
	m.b = b
	k := h % uint32(cap(c.nodes))
	m.n = c.strash[k]
	c.strash[k] = j
	return Var(j).Pos()
}

// Ands constructs a conjunction of a sequence of literals.  If ms is
// empty, then Ands returns c.T.
func (c *C) Ands(ms ...Lit) Lit {
	a := c.T
	for _, m := range ms {
		a = c.And(a, m)
	}
	return a
}

// Or constructs a literal which is the disjunction of a and b.
func (c *C) Or(a, b Lit) Lit {
	return c.And(a.Not(), b.Not()).Not()
}

// Ors constructs a literal which is the disjunction of the literals
// in ms.  If ms is empty, then Ors returns c.F.
func (c *C) Ors(ms ...Lit) Lit {
	d := c.F
	for _, m := range ms {
		d = c.Or(d, m)
	}
	return d
}

// Implies constructs a literal which is equivalent to (a implies b).
func (c *C) Implies(a, b Lit) Lit {
	return c.Or(a.Not(), b)
}

// Xor constructs a literal which is equivalent to (a xor b).
func (c *C) Xor(a, b Lit) Lit {
	return c.Or(c.And(a, b.Not()), c.And(a.Not(), b))
}

// Choice constructs a literal which is equivalent to
//
//	if i then t else e
func (c *C) Choice(i, t, e Lit) Lit {
	return c.Or(c.And(i, t), c.And(i.Not(), e))
}

// Eval evaluates the circuit with values vs, where for each literal m
// in the circuit, vs[i] contains the value for m's variable if
// m.Var() == i.  vs should contain values for all inputs; values for
// the constant and all gates are filled in.
func (c *C) Eval(vs []bool) {
	vs[c.T.Var()] = true
	for i := 2; i < len(c.nodes); i++ {
		n := &c.nodes[i]
		if n.a == LitNull {
			continue
		}
		a, b := n.a, n.b
		va, vb := vs[a.Var()], vs[b.Var()]
		if !a.IsPos() {
			va = !va
		}
		if !b.IsPos() {
			vb = !vb
		}
		vs[i] = va && vb
	}
}

// Eval64 is like Eval but evaluates 64 different inputs in parallel
// as the bits of a uint64.
func (c *C) Eval64(vs []uint64) {
	vs[c.T.Var()] = ^uint64(0)
	for i := 2; i < len(c.nodes); i++ {
		n := &c.nodes[i]
		if n.a == LitNull {
			continue
		}
		a, b := n.a, n.b
		va, vb := vs[a.Var()], vs[b.Var()]
		if !a.IsPos() {
			va = ^va
		}
		if !b.IsPos() {
			vb = ^vb
		}
		vs[i] = va & vb
	}
}

func (c *C) newNode() (*node, uint32) {
	if len(c.nodes) == cap(c.nodes) {
		c.grow()
	}
	id := len(c.nodes)
	c.nodes = c.nodes[:id+1]
	return &c.nodes[id], uint32(id)
}

func (c *C) grow() {
	newCap := cap(c.nodes) * 2
	nodes := make([]node, len(c.nodes), newCap)
	strash := make([]uint32, newCap)
	copy(nodes, c.nodes)
	ucap := uint32(newCap)
	for i := range nodes {
		n := &nodes[i]
		if n.a == LitNull || n.a == c.F || n.a == c.T {
			continue
		}
		h := strashCode(n.a, n.b)
		j := h % ucap
		n.n = strash[j]
		strash[j] = uint32(i)
	}
	c.nodes = nodes
	c.strash = strash
}

func strashCode(a, b Lit) uint32 {
	return uint32((a << 13) * b)
}
