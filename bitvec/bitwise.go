package bitvec

import "math/big"

// widen sets b's width to the wider of its current width and other's,
// without touching the magnitude (the caller computes the new magnitude
// and trims afterward).
func (b *BitVec) widen(other *BitVec) {
	if other.w > b.w {
		b.w = other.w
	}
}

// And computes the bitwise AND of b and other, width max(widths). Mutates
// and returns b.
func (b *BitVec) And(other *BitVec) *BitVec {
	b.widen(other)
	b.m.And(&b.m, &other.m)
	return b
}

// Or computes the bitwise OR of b and other, width max(widths).
func (b *BitVec) Or(other *BitVec) *BitVec {
	b.widen(other)
	b.m.Or(&b.m, &other.m)
	return b
}

// Xor computes the bitwise XOR of b and other, width max(widths).
func (b *BitVec) Xor(other *BitVec) *BitVec {
	b.widen(other)
	b.m.Xor(&b.m, &other.m)
	return b
}

// Xnor computes NOT(XOR(b, other)), width max(widths).
func (b *BitVec) Xnor(other *BitVec) *BitVec {
	b.Xor(other)
	return b.bitwiseNotInPlace()
}

// Not computes the bitwise NOT of b within its own width: (2^w - 1) - m.
func (b *BitVec) Not() *BitVec {
	return b.bitwiseNotInPlace()
}

func (b *BitVec) bitwiseNotInPlace() *BitVec {
	mask := new(big.Int).Sub(mod2w(b.w), big.NewInt(1))
	b.m.Sub(mask, &b.m)
	// Result is in [0, 2^w), no trim needed: mask is 2^w-1 and m was
	// already < 2^w, so mask - m is non-negative and < 2^w.
	return b
}
