package bittest_test

import (
	"testing"

	"github.com/bitsim/bitsim"
	"github.com/bitsim/bitsim/bittest"
)

func TestCompareGate(t *testing.T) {
	bittest.CompareGate(t, "AND", bitsim.And,
		func(a, b bitsim.Bit) (bitsim.Bit, error) { return a & b, nil })
	bittest.CompareGate(t, "NAND", bitsim.Nand,
		func(a, b bitsim.Bit) (bitsim.Bit, error) { return 1 - a&b, nil })
}

func TestTruthTable(t *testing.T) {
	bittest.TruthTable(t, "OR", bitsim.Or,
		[4]bitsim.Bit{bitsim.Lo, bitsim.Hi, bitsim.Hi, bitsim.Hi})
}
