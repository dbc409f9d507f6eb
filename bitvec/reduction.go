package bitvec

import "math/bits"

// popcount returns the number of set bits in the magnitude, limited to
// the receiver's own width (the invariant already guarantees no bit at
// or above w is set, so this is just a wrapper that walks big.Int words).
func (b *BitVec) popcount() int {
	count := 0
	for _, word := range b.m.Bits() {
		count += bits.OnesCount(uint(word))
	}
	return count
}

// ReduceAnd is the unary reduction '&': 1 iff every bit in the width is
// set, i.e. popcount(m) == w.
func (b *BitVec) ReduceAnd() *BitVec {
	return b.setBool(b.popcount() == b.w)
}

// ReduceNand is the complement of ReduceAnd.
func (b *BitVec) ReduceNand() *BitVec {
	return b.setBool(b.popcount() != b.w)
}

// ReduceOr is the unary reduction '|': 1 iff the magnitude is non-zero.
func (b *BitVec) ReduceOr() *BitVec {
	return b.setBool(b.ToBool())
}

// ReduceNor is the complement of ReduceOr.
func (b *BitVec) ReduceNor() *BitVec {
	return b.setBool(!b.ToBool())
}

// ReduceXor is the unary reduction '^': the parity of the magnitude's
// popcount.
func (b *BitVec) ReduceXor() *BitVec {
	return b.setBool(b.popcount()%2 == 1)
}

// ReduceXnor is the complement of ReduceXor.
func (b *BitVec) ReduceXnor() *BitVec {
	return b.setBool(b.popcount()%2 == 0)
}
