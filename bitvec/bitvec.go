// Package bitvec implements BitVec, the sized unsigned bit-vector value
// that carries every Verilog signal, register, wire, literal, and
// intermediate expression result inside Cascade.
//
// A BitVec is a pair (width, magnitude): width is a declared bit length in
// [1, 65535], magnitude is an arbitrary-precision unsigned integer always
// held in [0, 2^width). Every exported operation restores that invariant
// before returning, canonicalizing ("trimming") the magnitude when the
// underlying math could have produced bits at or above the width.
//
// BitVec is unsigned-magnitude storage: operators that need a signed
// interpretation (arithmetic right shift, nothing else in this package)
// treat bit width-1 as the sign bit explicitly, rather than the value
// carrying signedness itself.
package bitvec

import (
	"fmt"
	"math/big"
)

// MaxWidth is the largest width a BitVec may carry (2^16 - 1), matching the
// u16 width field of the binary codec in package valueio.
const MaxWidth = 1<<16 - 1

// BitVec is a sized, unsigned bit-vector value. The zero value is not
// valid; use New or one of the parse/decode constructors.
//
// BitVec is owned exclusively by whatever cell holds it (an input slot, a
// state slot, an AST literal, an expression temporary) and is never
// aliased; callers that want an independent copy must call Clone.
type BitVec struct {
	w int
	m big.Int

	// scratch is a per-instance big.Int for operations that need an
	// intermediate value without an allocation per call. No current
	// operation uses it; it is never observed externally and Clone does
	// not copy it.
	scratch big.Int
}

// New constructs a BitVec of width w holding the low w bits of v.
//
// It panics if w is outside [1, MaxWidth]. A width outside that range is
// a programmer error, not a recoverable condition, so this fails fast
// rather than returning an error value.
func New(w int, v uint64) *BitVec {
	checkWidth(w)
	b := &BitVec{w: w}
	b.m.SetUint64(v)
	b.trim()
	return b
}

// NewFromBigInt constructs a BitVec of width w from a non-negative
// arbitrary-precision magnitude. v is copied; the caller retains ownership
// of the big.Int it passed in.
func NewFromBigInt(w int, v *big.Int) *BitVec {
	checkWidth(w)
	b := &BitVec{w: w}
	b.m.Set(v)
	if b.m.Sign() < 0 {
		panic(fmt.Sprintf("bitvec: negative magnitude %s", v.String()))
	}
	b.trim()
	return b
}

// Clone returns an independent copy of b.
func (b *BitVec) Clone() *BitVec {
	c := &BitVec{w: b.w}
	c.m.Set(&b.m)
	return c
}

// Width returns the declared bit length of b.
func (b *BitVec) Width() int { return b.w }

// Magnitude returns the value's magnitude as a big.Int. The returned value
// shares no state with b; mutating it does not mutate b.
func (b *BitVec) Magnitude() *big.Int {
	return new(big.Int).Set(&b.m)
}

func checkWidth(w int) {
	if w < 1 || w > MaxWidth {
		panic(fmt.Sprintf("bitvec: width %d out of range [1, %d]", w, MaxWidth))
	}
}

// mod2w is 2^w as a big.Int, computed fresh on every call (trim, NOT,
// Sar, maskBits and Pow call it); it is not cached.
func mod2w(w int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(w))
}

// trim restores the canonical-form invariant 0 <= m < 2^w. Operations
// whose mathematical result is provably already in range (see callers)
// skip this step.
func (b *BitVec) trim() *BitVec {
	mod := mod2w(b.w)
	if b.m.Sign() < 0 {
		b.m.Mod(&b.m, mod)
		return b
	}
	if b.m.Cmp(mod) >= 0 {
		b.m.Mod(&b.m, mod)
	}
	return b
}

// resizeWidth changes b's width in place. Callers that grow width never
// lose bits (mod2w only gets bigger); callers that shrink truncate via
// trim.
func (b *BitVec) resizeWidth(n int) {
	b.w = n
}

// Resize changes b's width to n in place and returns b. If n < Width(),
// the magnitude is truncated to n bits; growing the width never changes
// the magnitude. Panics if n is outside [1, MaxWidth].
func (b *BitVec) Resize(n int) *BitVec {
	checkWidth(n)
	b.resizeWidth(n)
	b.trim()
	return b
}

// ResizeToBool collapses b to width 1, keeping only its least significant
// bit: the value becomes its own LSB, and the width becomes 1.
func (b *BitVec) ResizeToBool() *BitVec {
	bit := b.m.Bit(0)
	b.w = 1
	b.m.SetUint64(uint64(bit))
	return b
}

// Equal reports whether a and b have the same width and the same
// magnitude. Two values with equal magnitude but different widths are
// not Equal.
func (a *BitVec) Equal(b *BitVec) bool {
	return a.w == b.w && a.m.Cmp(&b.m) == 0
}

// Less is an ordering suitable for keying BitVecs in ordered containers:
// it compares width first, then magnitude. It is deliberately distinct
// from LessThan, which is Verilog's unsigned magnitude comparison. Do not
// conflate the two.
func Less(a, b *BitVec) bool {
	if a.w != b.w {
		return a.w < b.w
	}
	return a.m.Cmp(&b.m) < 0
}

// String renders the value as "width'dmagnitude", e.g. "8'd255". It is a
// debug aid, not the canonical text form (see package valueio for that).
func (b *BitVec) String() string {
	return fmt.Sprintf("%d'd%s", b.w, b.m.String())
}
