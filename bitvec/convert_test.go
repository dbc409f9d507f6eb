package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToBool(t *testing.T) {
	require.False(t, New(8, 0).ToBool())
	require.True(t, New(8, 1).ToBool())
}

func TestToIntPanicsOverWidth64(t *testing.T) {
	require.Panics(t, func() { New(65, 0).ToInt() })
}

func TestToIntAtBoundaryWidth(t *testing.T) {
	b := New(64, 0xFFFFFFFFFFFFFFFF)
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), b.ToInt())
}
