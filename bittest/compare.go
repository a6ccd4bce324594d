// Package bittest provides utility functions for testing gate
// implementations.
package bittest

import (
	"testing"

	"github.com/bitsim/bitsim"
)

// A GateFn is a two-input gate under test.
type GateFn func(a, b bitsim.Bit) (bitsim.Bit, error)

// inputs covers the whole two-bit input space, in truth-table order.
var inputs = [4][2]bitsim.Bit{
	{bitsim.Lo, bitsim.Lo},
	{bitsim.Lo, bitsim.Hi},
	{bitsim.Hi, bitsim.Lo},
	{bitsim.Hi, bitsim.Hi},
}

// CompareGate takes two gate implementations and compares their outputs
// over every input pair. The input space is only four vectors, so the
// sweep is exhaustive.
func CompareGate(t *testing.T, name string, gate, ref GateFn) {
	t.Helper()

	for _, in := range inputs {
		a, b := in[0], in[1]
		got, err := gate(a, b)
		if err != nil {
			t.Fatalf("%s(%v, %v): %v", name, a, b, err)
		}
		want, err := ref(a, b)
		if err != nil {
			t.Fatalf("%s reference (%v, %v): %v", name, a, b, err)
		}
		if got != want {
			t.Fatalf("%s(%v, %v) = %v, reference says %v", name, a, b, got, want)
		}
	}
}

// TruthTable checks a gate against its expected outputs, in the input
// order (Lo,Lo), (Lo,Hi), (Hi,Lo), (Hi,Hi).
func TruthTable(t *testing.T, name string, gate GateFn, want [4]bitsim.Bit) {
	t.Helper()

	for i, in := range inputs {
		a, b := in[0], in[1]
		got, err := gate(a, b)
		if err != nil {
			t.Fatalf("%s(%v, %v): %v", name, a, b, err)
		}
		if got != want[i] {
			t.Fatalf("%s(%v, %v) = %v, want %v", name, a, b, got, want[i])
		}
	}
}
