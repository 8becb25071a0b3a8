// Copyright 2026 The Quiver Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package quiver checks combinational logic circuits for functional
// equivalence by exhaustive truth table simulation.
//
// The underlying circuit representation lives in package logic, the
// simulation engine and the checker in package sim.  This package
// provides the top level entry point.
package quiver

import (
	"github.com/go-eda/quiver/logic"
	"github.com/go-eda/quiver/sim"
)

// CEC checks whether the circuits a and b compute the same outputs on
// every input.  CEC returns
//
//	1  a and b are equivalent
//	0  undetermined
//	-1 a and b differ on at least one input
//
// These result codes are used throughout quiver.  If st is non-nil it
// receives the simulation partition statistics.
func CEC(a, b *logic.C, st *sim.Stats) int {
	return sim.CEC(a, b, st)
}
