package valueio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/fiking/cascade/bitvec"
)

// MaxMagnitudeBytes is the binary codec's cap on the magnitude byte
// length L, an implementation detail of the wire format independent of
// bitvec.MaxWidth.
const MaxMagnitudeBytes = 1024

// HeaderSize is the size in bytes of the fixed width/byte_len header
// that precedes every encoded magnitude.
const HeaderSize = 4

// ErrTruncated is returned by Decode when the stream ends before a full
// record (header or magnitude) has been read.
var ErrTruncated = errors.New("valueio: truncated binary record")

// ErrMagnitudeTooLarge is returned by Decode when the record's declared
// byte_len exceeds MaxMagnitudeBytes.
var ErrMagnitudeTooLarge = errors.New("valueio: magnitude byte length exceeds cap")

// Encode appends v's binary representation to dst and returns the
// extended slice:
//
//	offset 0  u16 width     (little-endian)
//	offset 2  u16 byte_len  (little-endian), L <= MaxMagnitudeBytes
//	offset 4  L×u8 magnitude (big-endian, MSB-first; empty when m == 0)
//
// Total size is HeaderSize + L. The format is width-explicit so that
// leading zero bytes in the magnitude (e.g. a width-32 value holding 5)
// survive a round trip.
func Encode(dst []byte, v *bitvec.BitVec) ([]byte, error) {
	raw := v.Magnitude().Bytes() // big-endian, no leading zero byte, empty for 0
	if len(raw) > MaxMagnitudeBytes {
		return dst, fmt.Errorf("valueio: encode: magnitude needs %d bytes, cap is %d", len(raw), MaxMagnitudeBytes)
	}

	var header [HeaderSize]byte
	binary.LittleEndian.PutUint16(header[0:2], uint16(v.Width()))
	binary.LittleEndian.PutUint16(header[2:4], uint16(len(raw)))

	dst = append(dst, header[:]...)
	dst = append(dst, raw...)
	return dst, nil
}

// Decode reads one binary record from the front of src and returns the
// decoded BitVec together with the number of bytes consumed.
//
// On ErrTruncated or ErrMagnitudeTooLarge, the returned BitVec is the
// defined empty state (width 1, magnitude 0), and consumed is 0.
func Decode(src []byte) (v *bitvec.BitVec, consumed int, err error) {
	empty := bitvec.New(1, 0)

	if len(src) < HeaderSize {
		return empty, 0, ErrTruncated
	}
	width := int(binary.LittleEndian.Uint16(src[0:2]))
	byteLen := int(binary.LittleEndian.Uint16(src[2:4]))

	if byteLen > MaxMagnitudeBytes {
		return empty, 0, ErrMagnitudeTooLarge
	}
	total := HeaderSize + byteLen
	if len(src) < total {
		return empty, 0, ErrTruncated
	}

	if width < 1 {
		// The stored width can't construct a valid BitVec; treat as a
		// malformed record the same way a truncated one is handled.
		return empty, 0, ErrTruncated
	}

	m := new(big.Int).SetBytes(src[HeaderSize:total])
	return bitvec.NewFromBigInt(width, m), total, nil
}

// DecodeAll decodes a back-to-back run of records (as written by
// repeated Encode calls), stopping at the first error. Records decoded
// before the error are still returned.
func DecodeAll(src []byte) ([]*bitvec.BitVec, error) {
	var out []*bitvec.BitVec
	for len(src) > 0 {
		v, n, err := Decode(src)
		if err != nil {
			return out, err
		}
		out = append(out, v)
		src = src[n:]
	}
	return out, nil
}
