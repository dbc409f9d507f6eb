package bitvec

import (
	"errors"
	"math/big"
)

// ErrDivideByZero is returned by Div and Mod when the divisor's magnitude
// is zero. Verilog's own semantics would yield 'x'; this package does not
// model four-state logic, so the conventional behavior here is to return
// a zero-magnitude result alongside this error.
var ErrDivideByZero = errors.New("bitvec: divide by zero")

// Plus is the unary '+': identity.
func (b *BitVec) Plus() *BitVec {
	return b
}

// Minus is the unary '-': two's-complement negation within b's own
// width.
func (b *BitVec) Minus() *BitVec {
	b.m.Neg(&b.m)
	b.trim()
	return b
}

// Add computes b + other, truncated to max(widths) bits.
func (b *BitVec) Add(other *BitVec) *BitVec {
	b.widen(other)
	b.m.Add(&b.m, &other.m)
	b.trim()
	return b
}

// Sub computes b - other, truncated to max(widths) bits. When other's
// magnitude exceeds b's, the result wraps to 2^w + b - other.
func (b *BitVec) Sub(other *BitVec) *BitVec {
	b.widen(other)
	b.m.Sub(&b.m, &other.m)
	b.trim()
	return b
}

// Mul computes b * other, truncated to max(widths) bits.
func (b *BitVec) Mul(other *BitVec) *BitVec {
	b.widen(other)
	b.m.Mul(&b.m, &other.m)
	b.trim()
	return b
}

// Div computes truncated (toward zero) division b / other, width
// max(widths). If other's magnitude is zero, b is set to zero-magnitude
// and ErrDivideByZero is returned; b's width is still updated to
// max(widths) as it would be for any word-valued result.
func (b *BitVec) Div(other *BitVec) (*BitVec, error) {
	b.widen(other)
	if other.m.Sign() == 0 {
		b.m.SetUint64(0)
		return b, ErrDivideByZero
	}
	// big.Int.Quo truncates toward zero; both operands are non-negative
	// magnitudes here so Div and Quo coincide, but Quo states the
	// rounding rule explicitly.
	b.m.Quo(&b.m, &other.m)
	return b, nil
}

// Mod computes truncated division's remainder, b % other, width
// max(widths). Same divide-by-zero handling as Div.
func (b *BitVec) Mod(other *BitVec) (*BitVec, error) {
	b.widen(other)
	if other.m.Sign() == 0 {
		b.m.SetUint64(0)
		return b, ErrDivideByZero
	}
	b.m.Rem(&b.m, &other.m)
	return b, nil
}

// Pow raises b's magnitude to the exponent's value (other.ToInt(), a
// non-negative integer), truncated to b's own width. Unlike the other
// binary arithmetic operators, the result width is b's width, not
// max(widths): Verilog's power operator keeps the base operand's width.
func (b *BitVec) Pow(other *BitVec) *BitVec {
	exp := new(big.Int).SetUint64(other.ToInt())
	b.m.Exp(&b.m, exp, mod2w(b.w))
	return b
}
