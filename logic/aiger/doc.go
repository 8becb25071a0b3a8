// Copyright 2026 The Quiver Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aiger reads and writes combinational circuits in AIGER
// format, version 1.9, in both the ASCII ("aag") and binary ("aig")
// codings.
//
// Only the combinational subset of the format is supported: files with
// latches are rejected, and the bad state, constraint, justice and
// fairness sections are not written.  Symbol tables and comments are
// skipped on read.
package aiger
