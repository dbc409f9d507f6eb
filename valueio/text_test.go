package valueio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fiking/cascade/bitvec"
)

func TestReadDecimal(t *testing.T) {
	v := Read(strings.NewReader("255"), Decimal)
	require.Equal(t, uint64(255), v.ToInt())
	require.Equal(t, 8, v.Width()) // 255 needs 8 significant bits
}

func TestReadHex(t *testing.T) {
	v := Read(strings.NewReader("ff"), Hexadecimal)
	require.Equal(t, uint64(255), v.ToInt())
}

func TestReadSkipsLeadingWhitespaceAndStopsAtToken(t *testing.T) {
	v := Read(strings.NewReader("  \t 42 99"), Decimal)
	require.Equal(t, uint64(42), v.ToInt())
}

func TestReadZeroGetsWidthOne(t *testing.T) {
	v := Read(strings.NewReader("0"), Decimal)
	require.Equal(t, 1, v.Width())
	require.Equal(t, uint64(0), v.ToInt())
}

func TestReadParseFailureYieldsZeroWidthOne(t *testing.T) {
	v := Read(strings.NewReader("not-a-number"), Decimal)
	require.Equal(t, 1, v.Width())
	require.Equal(t, uint64(0), v.ToInt())
}

func TestReadEmptyStreamYieldsZeroWidthOne(t *testing.T) {
	v := Read(strings.NewReader(""), Decimal)
	require.Equal(t, 1, v.Width())
	require.Equal(t, uint64(0), v.ToInt())
}

func TestWriteEmitsBareDigits(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write(&sb, bitvec.New(8, 255), Hexadecimal))
	require.Equal(t, "ff", sb.String())
}

// L6: parse_b(write_b(a)) has magnitude m(a) (width may differ).
func TestTextRoundTripPreservesMagnitude(t *testing.T) {
	for _, base := range []Base{Binary, Octal, Decimal, Hexadecimal} {
		a := bitvec.New(16, 0xBEEF)
		var sb strings.Builder
		require.NoError(t, Write(&sb, a, base))
		got := Read(strings.NewReader(sb.String()), base)
		require.Equal(t, a.Magnitude().String(), got.Magnitude().String())
	}
}
