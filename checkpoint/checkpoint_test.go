package checkpoint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fiking/cascade/bitvec"
)

func TestWriteReadRoundTrip(t *testing.T) {
	cp := New()
	cp.Set("clk", bitvec.New(1, 1))
	cp.Set("counter", bitvec.New(32, 0xDEADBEEF))
	cp.Set("zero_width_32", bitvec.New(32, 0)) // leading zero bytes must survive

	var buf bytes.Buffer
	require.NoError(t, cp.Write(&buf))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, cp.SessionID, got.SessionID)
	require.Len(t, got.Values, 3)
	for name, v := range cp.Values {
		require.True(t, got.Get(name).Equal(v), "mismatch for %q", name)
	}
}

func TestReadDetectsCorruption(t *testing.T) {
	cp := New()
	cp.Set("a", bitvec.New(8, 5))

	var buf bytes.Buffer
	require.NoError(t, cp.Write(&buf))

	corrupted := buf.Bytes()
	// flip a byte inside the compressed payload, well past the header.
	corrupted[len(corrupted)-1] ^= 0xFF

	_, err := Read(bytes.NewReader(corrupted))
	require.Error(t, err)
}

func TestNamesAreSorted(t *testing.T) {
	cp := New()
	cp.Set("zeta", bitvec.New(1, 0))
	cp.Set("alpha", bitvec.New(1, 0))
	cp.Set("mid", bitvec.New(1, 0))

	require.Equal(t, []string{"alpha", "mid", "zeta"}, cp.Names())
}

func TestEachCheckpointGetsAFreshSessionID(t *testing.T) {
	a, b := New(), New()
	require.NotEqual(t, a.SessionID, b.SessionID)
}
