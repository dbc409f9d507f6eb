package bitvec

// Logical and relational operators collapse the receiver to width 1,
// holding 0 or 1.

func (b *BitVec) setBool(v bool) *BitVec {
	b.w = 1
	if v {
		b.m.SetUint64(1)
	} else {
		b.m.SetUint64(0)
	}
	return b
}

// LogicalAnd is Verilog's '&&': both operands' truthiness, ANDed.
func (b *BitVec) LogicalAnd(other *BitVec) *BitVec {
	return b.setBool(b.ToBool() && other.ToBool())
}

// LogicalOr is Verilog's '||'.
func (b *BitVec) LogicalOr(other *BitVec) *BitVec {
	return b.setBool(b.ToBool() || other.ToBool())
}

// LogicalNot is Verilog's unary '!'.
func (b *BitVec) LogicalNot() *BitVec {
	return b.setBool(!b.ToBool())
}

// Eq is Verilog's '==': unsigned magnitude comparison (ignores width).
func (b *BitVec) Eq(other *BitVec) *BitVec {
	return b.setBool(b.m.Cmp(&other.m) == 0)
}

// Neq is Verilog's '!='.
func (b *BitVec) Neq(other *BitVec) *BitVec {
	return b.setBool(b.m.Cmp(&other.m) != 0)
}

// LessThan is Verilog's '<': unsigned magnitude comparison. Do not
// confuse with the package-level Less, which orders by width first and
// exists only to key BitVecs in containers.
func (b *BitVec) LessThan(other *BitVec) *BitVec {
	return b.setBool(b.m.Cmp(&other.m) < 0)
}

// LessOrEqual is Verilog's '<='.
func (b *BitVec) LessOrEqual(other *BitVec) *BitVec {
	return b.setBool(b.m.Cmp(&other.m) <= 0)
}

// GreaterThan is Verilog's '>'.
func (b *BitVec) GreaterThan(other *BitVec) *BitVec {
	return b.setBool(b.m.Cmp(&other.m) > 0)
}

// GreaterOrEqual is Verilog's '>='.
func (b *BitVec) GreaterOrEqual(other *BitVec) *BitVec {
	return b.setBool(b.m.Cmp(&other.m) >= 0)
}
