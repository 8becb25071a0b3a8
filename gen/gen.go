// Copyright 2026 The Quiver Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen generates random combinational circuits.
//
// The generators are deterministic in the supplied rand source, which
// makes them usable for reproducible tests and benchmarks.
package gen

import (
	"math/rand"

	"github.com/go-eda/quiver/logic"
)

// Rand returns a random strashed circuit over pis primary inputs with
// up to gates and gates and pos primary outputs drawn from r.
//
// Gate fanins are drawn uniformly from the already constructed
// literals with random polarity, so the circuit is connected but
// otherwise unbiased.  Structural hashing may merge drawn gates, hence
// "up to".
func Rand(r *rand.Rand, pis, gates, pos int) *logic.C {
	c := logic.NewCCap(2 + pis + gates)
	pool := make([]logic.Lit, 0, pis+gates)
	for i := 0; i < pis; i++ {
		pool = append(pool, c.Lit())
	}
	for i := 0; i < gates; i++ {
		a := draw(r, pool)
		b := draw(r, pool)
		g := c.And(a, b)
		if g != c.T && g != c.F {
			pool = append(pool, g.Var().Pos())
		}
	}
	for i := 0; i < pos; i++ {
		c.Out(draw(r, pool))
	}
	return c
}

// Copy returns a structurally fresh circuit computing the same
// functions as c, with inputs and outputs in the same order.
func Copy(c *logic.C) *logic.C {
	return copyFlip(c, -1)
}

// FlipOut returns a copy of c with output i complemented.  The result
// disagrees with c on every input, which makes it a convenient
// counterpart for distinguishability tests.
func FlipOut(c *logic.C, i int) *logic.C {
	return copyFlip(c, i)
}

func copyFlip(c *logic.C, flip int) *logic.C {
	d := logic.NewCCap(c.Len())
	xlat := make([]logic.Lit, c.Len())
	xlat[c.T.Var()] = d.T
	for i := 2; i < c.Len(); i++ {
		a, b := c.Ins(c.At(i))
		if a == logic.LitNull {
			xlat[i] = d.Lit()
			continue
		}
		xlat[i] = d.And(follow(xlat, a), follow(xlat, b))
	}
	for i, m := range c.Outs() {
		x := follow(xlat, m)
		if i == flip {
			x = x.Not()
		}
		d.Out(x)
	}
	return d
}

func follow(xlat []logic.Lit, m logic.Lit) logic.Lit {
	x := xlat[m.Var()]
	if !m.IsPos() {
		x = x.Not()
	}
	return x
}

func draw(r *rand.Rand, pool []logic.Lit) logic.Lit {
	m := pool[r.Intn(len(pool))]
	if r.Intn(2) == 1 {
		m = m.Not()
	}
	return m
}
