// Copyright 2026 The Quiver Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sim

import (
	"github.com/go-eda/quiver/logger"
	"github.com/go-eda/quiver/logic"
	"github.com/go-eda/quiver/ttab"
)

// maxCECInputs bounds the number of primary inputs the checker
// accepts.  Beyond it the exhaustive sweep is considered out of reach
// and CEC reports 0.
const maxCECInputs = 40

// Stats reports how the checker partitioned the input space.
type Stats struct {
	// SplitVar is the number of primary inputs encoded as truth table
	// variables and simulated in parallel.
	SplitVar uint32
	// Rounds is the number of sequential sweeps over the remaining
	// inputs, always 1 << (numPIs - SplitVar).
	Rounds uint64
}

// CEC checks whether the two combinational circuits a and b compute
// the same outputs on every input, by exhaustive truth table
// simulation of their difference circuit.  CEC returns
//
//	1  a and b are equivalent
//	0  undetermined: a has more than 40 inputs, or the circuits
//	   have mismatched interface shapes
//	-1 a and b differ on at least one input
//
// If st is non-nil, the split variable count and round count are
// stored in it, whatever the verdict.
func CEC(a, b *logic.C, st *Stats) int {
	if st == nil {
		st = &Stats{}
	}
	*st = Stats{}
	if a.NumPIs() > maxCECInputs {
		return 0
	}
	m, err := logic.Miter(a, b)
	if err != nil {
		return 0
	}
	return cecRun(m, st)
}

// cecRun drives the per-round simulation of the difference circuit m.
// Every round fixes the inputs beyond the split point to one value
// combination, so the union of all rounds covers each of the
// 2**numPIs input vectors exactly once.
func cecRun(m Network, st *Stats) int {
	numPIs := m.NumPIs()
	st.SplitVar = splitVars(numPIs, m.Len())
	st.Rounds = uint64(1) << uint(numPIs-int(st.SplitVar))

	log := logger.Logger().With().Str("component", "cec").Logger()
	log.Debug().
		Int("inputs", numPIs).
		Uint32("splitVar", st.SplitVar).
		Uint64("rounds", st.Rounds).
		Msg("simulation plan")

	for round := uint64(0); round < st.Rounds; round++ {
		eq := true
		SimulateEach(m, roundSim{splitVar: st.SplitVar, round: round}, func(i int, tt ttab.T) bool {
			if tt.IsZero() {
				return true
			}
			log.Debug().Uint64("round", round).Int("output", i).Msg("distinguishing input")
			eq = false
			return false
		})
		if !eq {
			return -1
		}
	}
	return 1
}

// splitVars decides how many of numPIs inputs get a truth table
// variable of their own.  The bound keeps the per round memory, one
// table of 1<<m bits per node counted in 32 bit words, under 2**29.
func splitVars(numPIs, numNodes int) uint32 {
	if numPIs <= 6 {
		return uint32(numPIs)
	}
	m := 7
	for m <= numPIs && 32+(uint64(1)<<uint(m-3))*uint64(numNodes) <= 1<<29 {
		m++
	}
	return uint32(m - 1)
}

// roundSim assigns leaf values for one simulation round.  Inputs below
// the split point get their canonical indicator table; every input
// beyond it is pinned to a constant chosen by its bit of the round
// index.  A round bit of 0 pins the input to true and a bit of 1 pins
// it to false.  The inverted polarity is deliberate: only the
// bijection between (table position, round) pairs and input vectors
// matters, and this mapping is the one the checker's round accounting
// is written against.
type roundSim struct {
	splitVar uint32
	round    uint64
}

func (s roundSim) Constant(val bool) ttab.T {
	return ttab.Const(int(s.splitVar), val)
}

func (s roundSim) PI(i int) ttab.T {
	if i < int(s.splitVar) {
		return ttab.Nth(int(s.splitVar), i)
	}
	bit := (s.round >> uint(i-int(s.splitVar))) & 1
	return ttab.Const(int(s.splitVar), bit == 0)
}

func (s roundSim) Not(t ttab.T) ttab.T {
	return t.Not()
}
