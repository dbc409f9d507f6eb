package bitvec

import "fmt"

// ToBool reports whether the magnitude is non-zero.
func (b *BitVec) ToBool() bool {
	return b.m.Sign() != 0
}

// ToInt returns the low 64 bits of the magnitude as a uint64.
//
// It panics if Width() > 64: callers that might hold a wider value must
// slice or mask it down first.
func (b *BitVec) ToInt() uint64 {
	if b.w > 64 {
		panic(fmt.Sprintf("bitvec: ToInt on width %d > 64", b.w))
	}
	// The canonical-form invariant (0 <= m < 2^w <= 2^64) guarantees this
	// always fits.
	return b.m.Uint64()
}
