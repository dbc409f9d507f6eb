// Package checkpoint bundles many named BitVec values, the signals of
// one simulation snapshot, into a single portable file, building on
// package valueio's per-value binary codec without altering it.
//
// A checkpoint is identified by a session UUID (google/uuid), its value
// stream is compressed with zstd (klauspost/compress) before being
// written, and a blake2b-256 digest (golang.org/x/crypto) over the
// decompressed stream lets a reader detect corruption before decoding a
// single BitVec out of it, giving checkpoints cross-host portability
// even when the write and read happen on different machines.
package checkpoint

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/maps"

	"github.com/fiking/cascade/bitvec"
	"github.com/fiking/cascade/valueio"
)

// magic identifies the checkpoint container format, independent of the
// per-value binary layout it wraps.
var magic = [4]byte{'C', 'P', 'K', '1'}

// ErrCorrupt is returned by Read when the stored digest doesn't match the
// decompressed value stream.
var ErrCorrupt = errors.New("checkpoint: digest mismatch, file is corrupt")

// Checkpoint is one simulation snapshot: a named set of BitVec values
// tagged with a session identifier.
type Checkpoint struct {
	SessionID uuid.UUID
	Values    map[string]*bitvec.BitVec
}

// New returns an empty checkpoint with a freshly generated session id.
func New() *Checkpoint {
	return &Checkpoint{
		SessionID: uuid.New(),
		Values:    map[string]*bitvec.BitVec{},
	}
}

// Set stores v under name, overwriting any previous value.
func (c *Checkpoint) Set(name string, v *bitvec.BitVec) {
	c.Values[name] = v
}

// Get returns the value stored under name, or nil if absent.
func (c *Checkpoint) Get(name string) *bitvec.BitVec {
	return c.Values[name]
}

// Names returns the checkpoint's value names, sorted for a deterministic
// write order (so two checkpoints holding the same values serialize to
// the same bytes regardless of map iteration order).
func (c *Checkpoint) Names() []string {
	names := maps.Keys(c.Values)
	sort.Strings(names)
	return names
}

// Write serializes c to w: magic, session id, digest, the compressed
// length (u64, little-endian), then the zstd-compressed value stream.
func (c *Checkpoint) Write(w io.Writer) error {
	stream, err := c.encodeStream()
	if err != nil {
		return fmt.Errorf("checkpoint: encode: %w", err)
	}
	digest := blake2b.Sum256(stream)

	compressed, err := compress(stream)
	if err != nil {
		return fmt.Errorf("checkpoint: compress: %w", err)
	}

	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if _, err := w.Write(c.SessionID[:]); err != nil {
		return err
	}
	if _, err := w.Write(digest[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(compressed))); err != nil {
		return err
	}
	_, err = w.Write(compressed)
	return err
}

func (c *Checkpoint) encodeStream() ([]byte, error) {
	var buf []byte
	for _, name := range c.Names() {
		v := c.Values[name]
		nameBytes := []byte(name)
		if len(nameBytes) > 0xFFFF {
			return nil, fmt.Errorf("checkpoint: value name %q too long", name)
		}
		var lenHdr [2]byte
		binary.LittleEndian.PutUint16(lenHdr[:], uint16(len(nameBytes)))
		buf = append(buf, lenHdr[:]...)
		buf = append(buf, nameBytes...)

		var err error
		buf, err = valueio.Encode(buf, v)
		if err != nil {
			return nil, fmt.Errorf("checkpoint: encode value %q: %w", name, err)
		}
	}
	return buf, nil
}

// Read deserializes a checkpoint previously written by Write, verifying
// its digest before decoding any value.
func Read(r io.Reader) (*Checkpoint, error) {
	var hdr [4 + 16 + 32]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("checkpoint: read header: %w", err)
	}
	if !bytes.Equal(hdr[0:4], magic[:]) {
		return nil, errors.New("checkpoint: bad magic")
	}
	var sessionID uuid.UUID
	copy(sessionID[:], hdr[4:20])
	wantDigest := hdr[20:52]

	var lenBuf [8]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("checkpoint: read length: %w", err)
	}
	compressedLen := binary.LittleEndian.Uint64(lenBuf[:])

	compressed := make([]byte, compressedLen)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, fmt.Errorf("checkpoint: read payload: %w", err)
	}

	stream, err := decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: decompress: %w", err)
	}

	gotDigest := blake2b.Sum256(stream)
	if !bytes.Equal(gotDigest[:], wantDigest) {
		return nil, ErrCorrupt
	}

	values, err := decodeStream(stream)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: decode: %w", err)
	}

	return &Checkpoint{SessionID: sessionID, Values: values}, nil
}

func decodeStream(stream []byte) (map[string]*bitvec.BitVec, error) {
	values := map[string]*bitvec.BitVec{}
	for len(stream) > 0 {
		if len(stream) < 2 {
			return nil, errors.New("checkpoint: truncated name length")
		}
		nameLen := int(binary.LittleEndian.Uint16(stream[0:2]))
		stream = stream[2:]
		if len(stream) < nameLen {
			return nil, errors.New("checkpoint: truncated name")
		}
		name := string(stream[:nameLen])
		stream = stream[nameLen:]

		v, n, err := valueio.Decode(stream)
		if err != nil {
			return nil, fmt.Errorf("decode value %q: %w", name, err)
		}
		values[name] = v
		stream = stream[n:]
	}
	return values, nil
}

func compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}
