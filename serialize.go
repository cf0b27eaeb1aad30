package bitkit

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Binary format: the capacity as a little-endian uint64, followed by
// ceil(capacity/64) little-endian uint64 words. Byte-exact across processes
// regardless of host endianness.

// WriteTo writes the bitset to w in the binary format.
func (b *BitSet) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.LittleEndian, uint64(b.size)); err != nil {
		return 0, fmt.Errorf("write size: %w", err)
	}
	n := int64(8)

	for _, word := range b.words {
		if err := binary.Write(w, binary.LittleEndian, word); err != nil {
			return n, fmt.Errorf("write word: %w", err)
		}
		n += 8
	}
	return n, nil
}

// readChunkWords caps the initial word buffer at 512 KiB; past that the
// buffer grows only as words actually arrive.
const readChunkWords = 1 << 16

// ReadFrom replaces the bitset's content with one read from r in the binary
// format. The previous capacity and bits are discarded.
//
// The size prefix is untrusted input: prefixes whose word count would
// overflow are rejected with ErrMalformedStream, and a prefix claiming more
// words than the stream delivers fails at the first missing word rather than
// allocating the claimed buffer up front.
func (b *BitSet) ReadFrom(r io.Reader) (int64, error) {
	var size uint64
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return 0, fmt.Errorf("read size: %w", err)
	}
	n := int64(8)

	if size > math.MaxUint-(wordBits-1) {
		return n, fmt.Errorf("size prefix %d: %w", size, ErrMalformedStream)
	}
	numWords := (size + wordBits - 1) >> log2WordBits

	words := make([]uint64, 0, min(numWords, readChunkWords))
	for i := uint64(0); i < numWords; i++ {
		var w uint64
		if err := binary.Read(r, binary.LittleEndian, &w); err != nil {
			return n, fmt.Errorf("read word %d: %w", i, err)
		}
		words = append(words, w)
		n += 8
	}

	b.words = words
	b.size = uint(size)
	// Restore the padding invariant for non-canonical input streams.
	b.canonicalize()
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the binary format.
func (b *BitSet) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(8 + len(b.words)*8)
	if _, err := b.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *BitSet) UnmarshalBinary(data []byte) error {
	_, err := b.ReadFrom(bytes.NewReader(data))
	return err
}
