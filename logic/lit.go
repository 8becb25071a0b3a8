// Copyright 2026 The Quiver Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "fmt"

// Var is a node index in a circuit.  Var 0 is reserved and invalid,
// var 1 carries the constant true value.
type Var uint32

// Lit is a signal: a variable together with a polarity.  The least
// significant bit holds the polarity, 0 for positive.
type Lit uint32

// LitNull is the zero value of Lit and is not a valid signal.
const LitNull Lit = 0

// Pos returns the positive literal of v.
func (v Var) Pos() Lit {
	return Lit(v << 1)
}

// Neg returns the negative literal of v.
func (v Var) Neg() Lit {
	return Lit(v<<1 | 1)
}

// Var returns the variable of m.
func (m Lit) Var() Var {
	return Var(m >> 1)
}

// Not returns the complement of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

// IsPos tells whether m has positive polarity.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

func (m Lit) String() string {
	if m.IsPos() {
		return fmt.Sprintf("%d", uint32(m.Var()))
	}
	return fmt.Sprintf("-%d", uint32(m.Var()))
}
