// Copyright 2026 The Quiver Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger_test

import (
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-eda/quiver/gen"
	"github.com/go-eda/quiver/logic"
	"github.com/go-eda/quiver/logic/aiger"
	"github.com/go-eda/quiver/sim"
)

func TestReadAsciiAnd2(t *testing.T) {
	src := "aag 3 2 0 1 1\n2\n4\n6\n6 2 4\n"
	c, err := aiger.ReadAscii(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 2, c.NumPIs())
	require.Equal(t, 1, c.NumPOs())

	want := logic.NewC()
	want.Out(want.And(want.Lit(), want.Lit()))
	require.Equal(t, 1, sim.CEC(c, want, nil))
}

func TestReadAsciiConstAndNegation(t *testing.T) {
	// single output: not(and(x, true)) == not x
	src := "aag 2 1 0 1 1\n2\n5\n4 2 1\n"
	c, err := aiger.ReadAscii(strings.NewReader(src))
	require.NoError(t, err)

	want := logic.NewC()
	want.Out(want.Lit().Not())
	require.Equal(t, 1, sim.CEC(c, want, nil))
}

func TestReadRejectsSequential(t *testing.T) {
	_, err := aiger.ReadAscii(strings.NewReader("aag 2 1 1 1 0\n2\n4 2\n4\n"))
	require.ErrorIs(t, err, aiger.Sequential)
}

func TestReadErrors(t *testing.T) {
	for _, tc := range []struct {
		name, src string
		err       error
	}{
		{"empty", "", nil},
		{"bad magic", "agg 1 1 0 0 0\n", aiger.BadHeader},
		{"short header", "aag 1 1 0\n", aiger.BadHeader},
		{"count overflow", "aag 1 2 0 0 0\n2\n4\n", aiger.BadHeader},
		{"signed input", "aag 1 1 0 0 0\n3\n", aiger.SignedInput},
		{"input oob", "aag 1 1 0 0 0\n4\n", aiger.LitOOB},
		{"output oob", "aag 1 1 0 1 0\n2\n5\n", aiger.LitOOB},
		{"signed and", "aag 3 2 0 0 1\n2\n4\n7 2 4\n", aiger.SignedAnd},
		{"and redefined", "aag 3 2 0 0 1\n2\n4\n4 2 2\n", aiger.AndMultiplyDefined},
		{"operand oob", "aag 3 2 0 0 1\n2\n4\n6 2 8\n", aiger.LitOOB},
		{"operand undefined", "aag 4 2 0 0 2\n2\n4\n6 2 8\n8 2 4\n", aiger.UndefinedLit},
		{"truncated", "aag 3 2 0 1 1\n2\n4\n", aiger.PrematureEOF},
		{"garbage literal", "aag 1 1 0 0 0\nx\n", aiger.BadUInt},
	} {
		_, err := aiger.ReadAscii(strings.NewReader(tc.src))
		require.Error(t, err, tc.name)
		if tc.err != nil {
			require.ErrorIs(t, err, tc.err, tc.name)
		}
	}
}

func TestFormatDispatch(t *testing.T) {
	c := logic.NewC()
	c.Out(c.Or(c.Lit(), c.Lit()))

	var ascii, bin bytes.Buffer
	require.NoError(t, aiger.WriteAscii(&ascii, c))
	require.NoError(t, aiger.WriteBinary(&bin, c))

	_, err := aiger.ReadAscii(bytes.NewReader(bin.Bytes()))
	require.ErrorIs(t, err, aiger.BinaryMismatch)
	_, err = aiger.ReadBinary(bytes.NewReader(ascii.Bytes()))
	require.ErrorIs(t, err, aiger.BinaryMismatch)

	d, err := aiger.Read(bytes.NewReader(ascii.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 1, sim.CEC(c, d, nil))
	d, err = aiger.Read(bytes.NewReader(bin.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 1, sim.CEC(c, d, nil))
}

func TestRoundTripAscii(t *testing.T) {
	testRoundTrip(t, aiger.WriteAscii, aiger.ReadAscii)
}

func TestRoundTripBinary(t *testing.T) {
	testRoundTrip(t, aiger.WriteBinary, aiger.ReadBinary)
}

func testRoundTrip(t *testing.T, write func(w io.Writer, c *logic.C) error, read func(r io.Reader) (*logic.C, error)) {
	t.Helper()
	rnd := rand.New(rand.NewSource(21))
	for trial := 0; trial < 10; trial++ {
		c := gen.Rand(rnd, 1+rnd.Intn(8), 40, 3)
		var buf bytes.Buffer
		require.NoError(t, write(&buf, c))
		d, err := read(&buf)
		require.NoError(t, err)
		require.Equal(t, c.NumPIs(), d.NumPIs())
		require.Equal(t, c.NumPOs(), d.NumPOs())
		require.Equal(t, 1, sim.CEC(c, d, nil), "trial %d", trial)
	}
}
