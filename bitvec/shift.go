package bitvec

import "math/big"

var bigOne = big.NewInt(1)

// Shifts keep the receiver's (left operand's) width. Amounts are taken
// from the right operand via ToInt; amounts at or beyond the receiver's
// width are not special-cased beyond the eventual trim/sign-extend,
// except where doing so lets us skip allocating a shift of absurd size.

// Sll is the logical left shift: bits shifted past w-1 are dropped.
func (b *BitVec) Sll(amt *BitVec) *BitVec {
	return b.shiftLeft(amt)
}

// Sal is the arithmetic left shift. For BitVec's unsigned-magnitude
// storage this is identical to the logical left shift: Verilog's
// logical and arithmetic left shifts share one rule, unlike their right
// shifts.
func (b *BitVec) Sal(amt *BitVec) *BitVec {
	return b.shiftLeft(amt)
}

func (b *BitVec) shiftLeft(amt *BitVec) *BitVec {
	k := shiftCount(amt, b.w)
	if k >= uint(b.w) {
		b.m.SetUint64(0)
		return b
	}
	b.m.Lsh(&b.m, k)
	b.trim()
	return b
}

// Slr is the logical right shift: zero-filled from the top.
func (b *BitVec) Slr(amt *BitVec) *BitVec {
	k := shiftCount(amt, b.w)
	if k >= uint(b.w) {
		b.m.SetUint64(0)
		return b
	}
	b.m.Rsh(&b.m, k)
	return b
}

// Sar is the arithmetic right shift by k: divide by 2^k, then if the
// sign bit (bit w-1 before the shift, which the shift moves to w-k-1)
// was set, OR in a mask of k ones occupying positions [w-k, w-1],
// sign-extending the result. When k >= w the result is all ones if the
// sign bit was set and zero otherwise.
func (b *BitVec) Sar(amt *BitVec) *BitVec {
	w := uint(b.w)
	k := shiftCount(amt, b.w)
	signSet := b.m.Bit(b.w-1) == 1

	if k >= w {
		if signSet {
			b.m.Set(mod2w(b.w))
			b.m.Sub(&b.m, bigOne)
		} else {
			b.m.SetUint64(0)
		}
		return b
	}

	b.m.Rsh(&b.m, k)
	if signSet {
		// mask of k ones at [w-k, w-1]: ((1<<k)-1) << (w-k)
		mask := new(big.Int).Lsh(bigOne, k)
		mask.Sub(mask, bigOne)
		mask.Lsh(mask, w-k)
		b.m.Or(&b.m, mask)
	}
	return b
}

// shiftCount extracts the shift amount from amt, clamped to a sane
// machine-width count (the exact value only matters up to the receiver's
// own width, and widths never exceed MaxWidth).
func shiftCount(amt *BitVec, selfWidth int) uint {
	if amt.w > 64 {
		// ToInt rejects widths over 64, so read the magnitude directly. A
		// magnitude that needs more than 64 bits can only mean "shift past
		// the end"; the caller-visible effect is identical to
		// amt == selfWidth.
		if amt.m.BitLen() > 64 {
			return uint(selfWidth)
		}
		return uint(amt.m.Uint64())
	}
	return uint(amt.ToInt())
}
