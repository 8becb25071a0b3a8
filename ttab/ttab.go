// Copyright 2026 The Quiver Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package ttab provides dynamically sized truth tables.
//
// A truth table over v variables stores one bit per input assignment,
// 2**v bits in all, with assignment i at bit position i.  Tables have
// value semantics: operations return new tables and never modify their
// operands.
package ttab

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// T is a Boolean function over a fixed number of variables,
// represented explicitly as a bit vector of length 2**Vars().
type T struct {
	vars int
	bits *bitset.BitSet
}

// word patterns for the first six variables; variable i has
// period 2**(i+1) within a 64 bit word.
var nthWord = [6]uint64{
	0xaaaaaaaaaaaaaaaa,
	0xcccccccccccccccc,
	0xf0f0f0f0f0f0f0f0,
	0xff00ff00ff00ff00,
	0xffff0000ffff0000,
	0xffffffff00000000,
}

// New returns the all-zero table over vars variables.
func New(vars int) T {
	if vars < 0 {
		panic("ttab: negative variable count")
	}
	return T{vars: vars, bits: bitset.New(uint(1) << uint(vars))}
}

// Const returns the constant-false or constant-true table
// over vars variables.
func Const(vars int, val bool) T {
	if !val {
		return New(vars)
	}
	n := wordCount(vars)
	ws := make([]uint64, n)
	for i := range ws {
		ws[i] = ^uint64(0)
	}
	return fromWords(vars, ws)
}

// Nth returns the indicator table of variable i over vars variables:
// the function which is true exactly when bit i of the input
// assignment is 1.
func Nth(vars, i int) T {
	if i < 0 || i >= vars {
		panic(fmt.Sprintf("ttab: variable %d out of range [0,%d)", i, vars))
	}
	ws := make([]uint64, wordCount(vars))
	if i < 6 {
		for j := range ws {
			ws[j] = nthWord[i]
		}
	} else {
		for j := range ws {
			if (j>>uint(i-6))&1 == 1 {
				ws[j] = ^uint64(0)
			}
		}
	}
	return fromWords(vars, ws)
}

func wordCount(vars int) int {
	if vars < 6 {
		return 1
	}
	return 1 << uint(vars-6)
}

func fromWords(vars int, ws []uint64) T {
	n := uint(1) << uint(vars)
	if r := n % 64; r != 0 {
		ws[len(ws)-1] &= (uint64(1) << r) - 1
	}
	return T{vars: vars, bits: bitset.FromWithLength(n, ws)}
}

// Vars returns the number of variables of t.
func (t T) Vars() int { return t.vars }

// Len returns the number of bits of t, 2**Vars().
func (t T) Len() int { return 1 << uint(t.vars) }

// Get returns the value of t on input assignment i.
func (t T) Get(i int) bool { return t.bits.Test(uint(i)) }

// Not returns the complement of t.
func (t T) Not() T {
	return T{vars: t.vars, bits: t.bits.Complement()}
}

// And returns the conjunction of t and o.  t and o must
// range over the same number of variables.
func (t T) And(o T) T {
	t.check(o)
	return T{vars: t.vars, bits: t.bits.Intersection(o.bits)}
}

// Or returns the disjunction of t and o.
func (t T) Or(o T) T {
	t.check(o)
	return T{vars: t.vars, bits: t.bits.Union(o.bits)}
}

// Xor returns the exclusive or of t and o.
func (t T) Xor(o T) T {
	t.check(o)
	return T{vars: t.vars, bits: t.bits.SymmetricDifference(o.bits)}
}

// IsZero tells whether t is the constant-false function.
func (t T) IsZero() bool { return t.bits.None() }

// Equal tells whether t and o compute the same function over the
// same number of variables.
func (t T) Equal(o T) bool {
	return t.vars == o.vars && t.bits.Equal(o.bits)
}

func (t T) check(o T) {
	if t.vars != o.vars {
		panic(fmt.Sprintf("ttab: variable count mismatch %d != %d", t.vars, o.vars))
	}
}

// String renders t as a binary string, assignment 2**Vars()-1 first.
func (t T) String() string {
	n := t.Len()
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		if t.bits.Test(uint(n - 1 - i)) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}
