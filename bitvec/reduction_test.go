package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// L7: reduction identities.
func TestReductionIdentities(t *testing.T) {
	allOnes := New(4, 0b1111)
	require.Equal(t, uint64(1), allOnes.Clone().ReduceAnd().ToInt())
	notAllOnes := New(4, 0b1110)
	require.Equal(t, uint64(0), notAllOnes.Clone().ReduceAnd().ToInt())

	zero := New(4, 0)
	require.Equal(t, uint64(0), zero.Clone().ReduceOr().ToInt())
	nonzero := New(4, 0b0001)
	require.Equal(t, uint64(1), nonzero.Clone().ReduceOr().ToInt())

	evenParity := New(4, 0b0011) // two bits set
	require.Equal(t, uint64(0), evenParity.Clone().ReduceXor().ToInt())
	oddParity := New(4, 0b0111) // three bits set
	require.Equal(t, uint64(1), oddParity.Clone().ReduceXor().ToInt())
}

func TestReductionResultIsWidth1(t *testing.T) {
	b := New(16, 0xFFFF)
	require.Equal(t, 1, b.Clone().ReduceAnd().Width())
	require.Equal(t, 1, b.Clone().ReduceOr().Width())
	require.Equal(t, 1, b.Clone().ReduceXor().Width())
}

func TestReductionComplements(t *testing.T) {
	b := New(4, 0b1010)
	require.NotEqual(t, b.Clone().ReduceAnd().ToInt(), b.Clone().ReduceNand().ToInt())
	require.NotEqual(t, b.Clone().ReduceOr().ToInt(), b.Clone().ReduceNor().ToInt())
	require.NotEqual(t, b.Clone().ReduceXor().ToInt(), b.Clone().ReduceXnor().ToInt())
}
