package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitwiseAndOrXor(t *testing.T) {
	a := New(4, 0b1100)
	b := New(4, 0b1010)

	require.Equal(t, uint64(0b1000), a.Clone().And(b).ToInt())
	require.Equal(t, uint64(0b1110), a.Clone().Or(b).ToInt())
	require.Equal(t, uint64(0b0110), a.Clone().Xor(b).ToInt())
}

func TestBitwiseWidensToMax(t *testing.T) {
	a := New(4, 0b1111)
	b := New(8, 0b00000000)
	r := a.And(b)
	require.Equal(t, 8, r.Width())
}

func TestXnorIsNotOfXor(t *testing.T) {
	a := New(4, 0b1100)
	b := New(4, 0b1010)
	got := a.Clone().Xnor(b)
	want := a.Clone().Xor(b).Not()
	require.True(t, got.Equal(want))
}

// L1: NOT(NOT a) = a.
func TestNotInvolution(t *testing.T) {
	a := New(6, 0b101011)
	got := a.Clone().Not().Not()
	require.True(t, got.Equal(a))
}

func TestShiftLeftDropsOverflow(t *testing.T) {
	b := New(4, 0b1111)
	b.Sll(New(8, 1))
	require.Equal(t, 4, b.Width())
	require.Equal(t, uint64(0b1110), b.ToInt())
}

func TestShiftLeftByWidthIsZero(t *testing.T) {
	b := New(8, 0xFF)
	b.Sll(New(8, 8))
	require.Equal(t, uint64(0), b.ToInt())
}

func TestLogicalRightShift(t *testing.T) {
	b := New(8, 0xF0)
	b.Slr(New(8, 4))
	require.Equal(t, uint64(0x0F), b.ToInt())
}

// Scenario 3 from spec.md §8: Bits(8,0x80).bitwise_sar(Bits(8,3)) -> 0xF0.
func TestScenarioArithmeticRightShiftSignExtends(t *testing.T) {
	b := New(8, 0x80)
	b.Sar(New(8, 3))
	require.Equal(t, uint64(0xF0), b.ToInt())
}

func TestArithmeticRightShiftNoSignExtendWhenMSBClear(t *testing.T) {
	b := New(8, 0x40)
	b.Sar(New(8, 3))
	require.Equal(t, uint64(0x08), b.ToInt())
}

// B2: shift by w(a) yields 0 (logical) or all-zero/all-one (arithmetic).
func TestShiftByWidthBoundary(t *testing.T) {
	zeroSign := New(8, 0x40)
	zeroSign.Sar(New(8, 8))
	require.Equal(t, uint64(0), zeroSign.ToInt())

	oneSign := New(8, 0x80)
	oneSign.Sar(New(8, 8))
	require.Equal(t, uint64(0xFF), oneSign.ToInt())

	logical := New(8, 0xFF)
	logical.Slr(New(8, 8))
	require.Equal(t, uint64(0), logical.ToInt())
}
