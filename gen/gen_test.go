// Copyright 2026 The Quiver Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen_test

import (
	"math/rand"
	"testing"

	"github.com/go-eda/quiver/gen"
	"github.com/go-eda/quiver/logic"
)

func TestRandDeterministic(t *testing.T) {
	a := gen.Rand(rand.New(rand.NewSource(11)), 5, 30, 2)
	b := gen.Rand(rand.New(rand.NewSource(11)), 5, 30, 2)
	if a.Len() != b.Len() || a.NumPOs() != b.NumPOs() {
		t.Fatalf("same seed gave different shapes")
	}
	for i, m := range a.Outs() {
		if m != b.Outs()[i] {
			t.Errorf("same seed gave different output %d", i)
		}
	}
}

func TestRandShape(t *testing.T) {
	c := gen.Rand(rand.New(rand.NewSource(5)), 4, 50, 3)
	if c.NumPIs() != 4 {
		t.Errorf("got %d inputs, want 4", c.NumPIs())
	}
	if c.NumPOs() != 3 {
		t.Errorf("got %d outputs, want 3", c.NumPOs())
	}
	if c.Len() > 2+4+50 {
		t.Errorf("more nodes than drawn gates: %d", c.Len())
	}
}

func evalAll(c *logic.C, x int) []bool {
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

func TestCopyPreservesFunction(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	for trial := 0; trial < 10; trial++ {
		c := gen.Rand(rnd, 5, 25, 2)
		d := gen.Copy(c)
		for x := 0; x < 32; x++ {
			cv, dv := evalAll(c, x), evalAll(d, x)
			for j := range cv {
				if cv[j] != dv[j] {
					t.Fatalf("copy differs at input %d output %d", x, j)
				}
			}
		}
	}
}

func TestFlipOut(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	c := gen.Rand(rnd, 4, 20, 2)
	d := gen.FlipOut(c, 1)
	for x := 0; x < 16; x++ {
		cv, dv := evalAll(c, x), evalAll(d, x)
		if cv[0] != dv[0] {
			t.Errorf("output 0 changed at input %d", x)
		}
		if cv[1] == dv[1] {
			t.Errorf("output 1 not complemented at input %d", x)
		}
	}
}
