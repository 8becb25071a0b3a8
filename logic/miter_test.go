// Copyright 2026 The Quiver Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-eda/quiver/logic"
)

func and2() *logic.C {
	c := logic.NewC()
	c.Out(c.And(c.Lit(), c.Lit()))
	return c
}

func xor2() *logic.C {
	c := logic.NewC()
	c.Out(c.Xor(c.Lit(), c.Lit()))
	return c
}

func TestMiterShape(t *testing.T) {
	a := and2()
	m, err := logic.Miter(a, xor2())
	require.NoError(t, err)
	require.Equal(t, 2, m.NumPIs())
	require.Equal(t, 1, m.NumPOs())

	b := logic.NewC()
	b.Out(b.Lit())
	_, err = logic.Miter(a, b)
	require.Error(t, err)

	c := and2()
	c.Out(c.Outs()[0])
	_, err = logic.Miter(a, c)
	require.Error(t, err)
}

// evalOuts evaluates the outputs of c for one input assignment given
// as the bits of x, in input order.
func evalOuts(c *logic.C, x int) []bool {
	vs := make([]bool, c.Len())
	for i, m := range c.PIs() {
		vs[m.Var()] = (x>>uint(i))&1 == 1
	}
	c.Eval(vs)
	res := make([]bool, c.NumPOs())
	for i, m := range c.Outs() {
		v := vs[m.Var()]
		if !m.IsPos() {
			v = !v
		}
		res[i] = v
	}
	return res
}

func TestMiterXorSemantics(t *testing.T) {
	a, b := and2(), xor2()
	m, err := logic.Miter(a, b)
	require.NoError(t, err)
	for x := 0; x < 4; x++ {
		want := evalOuts(a, x)[0] != evalOuts(b, x)[0]
		require.Equal(t, want, evalOuts(m, x)[0], "input %d", x)
	}
}

func TestMiterOfEqualCircuits(t *testing.T) {
	a, b := and2(), and2()
	m, err := logic.Miter(a, b)
	require.NoError(t, err)
	for x := 0; x < 4; x++ {
		require.False(t, evalOuts(m, x)[0], "input %d", x)
	}
}
