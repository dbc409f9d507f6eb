package bitvec

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrWidthOverflow is returned by Concat when the combined width would
// exceed MaxWidth. This package errors rather than saturating or
// silently widening past MaxWidth, which would produce a BitVec that
// violates the width invariant.
var ErrWidthOverflow = errors.New("bitvec: concat width exceeds MaxWidth")

// Concat computes b ← (m_b << w_other) | m_other, w ← w_b + w_other, and
// returns b. Returns ErrWidthOverflow (leaving b unmodified) if the
// combined width would exceed MaxWidth.
func (b *BitVec) Concat(other *BitVec) (*BitVec, error) {
	newWidth := b.w + other.w
	if newWidth > MaxWidth {
		return b, ErrWidthOverflow
	}
	b.m.Lsh(&b.m, uint(other.w))
	b.m.Or(&b.m, &other.m)
	b.w = newWidth
	return b, nil
}

func checkIndex(w, i int) {
	if i < 0 || i >= w {
		panic(fmt.Sprintf("bitvec: index %d out of range for width %d", i, w))
	}
}

func checkRange(w, msb, lsb int) {
	if msb >= w || msb < lsb || lsb < 0 {
		panic(fmt.Sprintf("bitvec: range [%d:%d] invalid for width %d", msb, lsb, w))
	}
}

// SliceBit returns the single bit at position i as a width-1 BitVec.
// Panics if i is out of range for b's width.
func (b *BitVec) SliceBit(i int) *BitVec {
	checkIndex(b.w, i)
	return New(1, uint64(b.m.Bit(i)))
}

// Slice returns the bits [lsb, msb] (inclusive) as a BitVec of width
// msb-lsb+1. Panics if the range is invalid for b's width.
func (b *BitVec) Slice(msb, lsb int) *BitVec {
	checkRange(b.w, msb, lsb)
	width := msb - lsb + 1
	out := new(big.Int).Rsh(&b.m, uint(lsb))
	return NewFromBigInt(width, out.And(out, maskBits(width)))
}

// maskBits returns a mask of n ones: 2^n - 1.
func maskBits(n int) *big.Int {
	return new(big.Int).Sub(mod2w(n), bigOne)
}

// Flip toggles the bit at position i in place. Width is unchanged.
// Panics if i is out of range.
func (b *BitVec) Flip(i int) *BitVec {
	checkIndex(b.w, i)
	if b.m.Bit(i) == 1 {
		b.m.SetBit(&b.m, i, 0)
	} else {
		b.m.SetBit(&b.m, i, 1)
	}
	return b
}

// SetBit sets the bit at position i to 0 or 1 in place. Width is
// unchanged. Panics if i is out of range.
func (b *BitVec) SetBit(i int, bit uint) *BitVec {
	checkIndex(b.w, i)
	b.m.SetBit(&b.m, i, bit&1)
	return b
}

// Assign copies rhs's magnitude into b, then canonicalizes to b's own
// (unchanged) width.
func (b *BitVec) Assign(rhs *BitVec) *BitVec {
	b.m.Set(&rhs.m)
	b.trim()
	return b
}

// AssignBit sets bit i of b to rhs's bit 0. Panics if i is out of range
// for b's width.
func (b *BitVec) AssignBit(i int, rhs *BitVec) *BitVec {
	return b.SetBit(i, rhs.m.Bit(0))
}

// AssignRange replaces bits [lsb, msb] of b with the low (msb-lsb+1) bits
// of rhs. Panics if the range is invalid for b's width.
func (b *BitVec) AssignRange(msb, lsb int, rhs *BitVec) *BitVec {
	checkRange(b.w, msb, lsb)
	width := msb - lsb + 1
	mask := maskBits(width)

	clearMask := new(big.Int).Lsh(mask, uint(lsb))
	clearMask.Not(clearMask)
	// big.Int.Not on a non-negative value yields a negative result
	// (infinite two's complement); AND against it still clears exactly
	// the target window because Go's big.Int AND treats both operands'
	// infinite sign-extension correctly for this masking idiom.
	b.m.And(&b.m, clearMask)

	lowBits := new(big.Int).And(&rhs.m, mask)
	lowBits.Lsh(lowBits, uint(lsb))
	b.m.Or(&b.m, lowBits)
	return b
}

// EqBit reports whether bit i of b equals rhs's bit 0. Panics if i is out
// of range for b's width.
func (b *BitVec) EqBit(rhs *BitVec, i int) bool {
	checkIndex(b.w, i)
	return b.m.Bit(i) == rhs.m.Bit(0)
}

// EqRange reports whether the slice [lsb, msb] of b equals rhs's
// magnitude. Panics if the range is invalid for b's width.
func (b *BitVec) EqRange(rhs *BitVec, msb, lsb int) bool {
	checkRange(b.w, msb, lsb)
	width := msb - lsb + 1
	slice := new(big.Int).Rsh(&b.m, uint(lsb))
	slice.And(slice, maskBits(width))
	return slice.Cmp(&rhs.m) == 0
}
