// Copyright 2026 The Quiver Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package logic provides representation of Boolean combinational logic.
//
// Package logic uses a standard AIG (and-inverter graph) to represent
// combinational circuits.  Circuits are simplified using simple rules
// and structural hashing, implemented in the type C.  A circuit keeps
// its primary inputs and primary outputs in stable order, which is what
// the simulation and equivalence checking machinery in package sim
// builds on.
//
// Miter combines two circuits of equal interface shape into a single
// difference circuit whose outputs are the pairwise exclusive or of
// the original outputs.
package logic
