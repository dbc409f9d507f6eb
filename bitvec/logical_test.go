package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogicalOperators(t *testing.T) {
	one := New(8, 1)
	zero := New(8, 0)

	require.Equal(t, uint64(1), one.Clone().LogicalAnd(one).ToInt())
	require.Equal(t, uint64(0), one.Clone().LogicalAnd(zero).ToInt())
	require.Equal(t, uint64(1), one.Clone().LogicalOr(zero).ToInt())
	require.Equal(t, uint64(1), zero.Clone().LogicalNot().ToInt())
	require.Equal(t, 1, zero.Clone().LogicalNot().Width())
}

func TestComparisons(t *testing.T) {
	a := New(8, 5)
	b := New(16, 7)

	require.Equal(t, uint64(1), a.Clone().LessThan(b).ToInt())
	require.Equal(t, uint64(0), a.Clone().GreaterThan(b).ToInt())
	require.Equal(t, uint64(1), a.Clone().LessOrEqual(a.Clone()).ToInt())
	require.Equal(t, uint64(1), a.Clone().GreaterOrEqual(a.Clone()).ToInt())
	require.Equal(t, uint64(0), a.Clone().Eq(b).ToInt())
	require.Equal(t, uint64(1), a.Clone().Neq(b).ToInt())
}

func TestEqIgnoresWidthUnlikePackageEqual(t *testing.T) {
	// Eq is Verilog's magnitude-only '==' — distinct from (*BitVec).Equal,
	// which also requires matching width (P3).
	a := New(4, 5)
	b := New(16, 5)
	require.Equal(t, uint64(1), a.Clone().Eq(b).ToInt())
	require.False(t, a.Equal(b))
}
