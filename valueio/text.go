// Package valueio implements the human-readable and binary (de)serialized
// forms of a bitvec.BitVec: the textual parse/print used for debug
// dumps and REPL input, and the fixed-layout binary codec that is the
// on-disk/over-the-wire representation of every signal value in a
// Cascade checkpoint or inter-process message.
package valueio

import (
	"fmt"
	"io"
	"math/big"

	"github.com/fiking/cascade/bitvec"
)

// Base is a numeric radix accepted by Read/Write.
type Base int

// The four radixes Verilog number literals are written in.
const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// Read consumes one whitespace-delimited token from r and parses it as an
// unsigned integer in base. On parse failure (including EOF with no
// token), it returns a BitVec with magnitude 0 and width 1 rather than
// propagating an error: a parse failure is a defined result here, not an
// exception. The width of a successful parse is the number of
// significant binary digits of the parsed magnitude (minimum 1).
func Read(r io.Reader, base Base) *bitvec.BitVec {
	tok, ok := nextToken(r)
	if !ok {
		return bitvec.New(1, 0)
	}

	m, ok := new(big.Int).SetString(tok, int(base))
	if !ok || m.Sign() < 0 {
		return bitvec.New(1, 0)
	}

	width := m.BitLen()
	if width < 1 {
		width = 1
	}
	return bitvec.NewFromBigInt(width, m)
}

// nextToken reads past leading whitespace, then returns the following
// run of non-whitespace bytes. It reads r one byte at a time, so nothing
// past the single whitespace byte that ends the token is consumed.
func nextToken(r io.Reader) (string, bool) {
	var one [1]byte
	var b []byte
	sawAny := false
	for {
		if _, err := io.ReadFull(r, one[:]); err != nil {
			break
		}
		c := one[0]
		if isSpace(c) {
			if sawAny {
				break
			}
			continue
		}
		sawAny = true
		b = append(b, c)
	}
	if len(b) == 0 {
		return "", false
	}
	return string(b), true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Write emits v's magnitude in base, with no sign, no prefix, and no
// digit grouping, followed by nothing else (the caller supplies any
// surrounding whitespace).
func Write(w io.Writer, v *bitvec.BitVec, base Base) error {
	_, err := fmt.Fprint(w, v.Magnitude().Text(int(base)))
	return err
}
