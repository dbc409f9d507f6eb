package bitvec

import "math/big"

// word is the set of unsigned integer types ReadWord/WriteWord can
// target.
type word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func wordBits[T word]() int {
	n := 0
	for v := ^T(0); v != 0; v >>= 1 {
		n++
	}
	return n
}

// ReadWord extracts the n-th window of sizeof(T) bytes (bits
// [n*8*sizeof(T), (n+1)*8*sizeof(T))), clipped to b's width, as an
// unsigned integer of type T.
func ReadWord[T word](b *BitVec, n int) T {
	bitsPerWord := wordBits[T]()
	lo := n * bitsPerWord
	if lo >= b.w {
		return 0
	}
	hi := lo + bitsPerWord
	if hi > b.w {
		hi = b.w
	}
	width := hi - lo
	win := new(big.Int).Rsh(&b.m, uint(lo))
	win.And(win, maskBits(width))
	return T(win.Uint64())
}

// WriteWord clears the n-th window of sizeof(T) bytes and ORs in t. b's
// width is unchanged.
func WriteWord[T word](b *BitVec, n int, t T) {
	bitsPerWord := wordBits[T]()
	lo := n * bitsPerWord
	if lo >= b.w {
		return
	}
	hi := lo + bitsPerWord
	if hi > b.w {
		hi = b.w
	}
	width := hi - lo

	clear := new(big.Int).Lsh(maskBits(width), uint(lo))
	clear.Not(clear)
	b.m.And(&b.m, clear)

	val := new(big.Int).SetUint64(uint64(t))
	val.And(val, maskBits(width))
	val.Lsh(val, uint(lo))
	b.m.Or(&b.m, val)
}
