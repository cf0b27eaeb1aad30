package bitkit

import (
	"errors"
	"fmt"
)

var (
	// ErrRoaringOverflow is returned when converting a bitset whose capacity
	// exceeds the 32-bit index space of a roaring bitmap.
	ErrRoaringOverflow = errors.New("bitset capacity exceeds roaring 32-bit index space")

	// ErrMalformedStream is returned when a serialized bitset carries a size
	// prefix that no well-formed encoder produces.
	ErrMalformedStream = errors.New("malformed bitset stream")
)

// ErrIndexOutOfRange indicates a bit index at or past the bitset's capacity.
type ErrIndexOutOfRange struct {
	Index uint
	Size  uint
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bit index %d out of range [0, %d)", e.Index, e.Size)
}

// ErrSizeMismatch indicates a set operation between bitsets of different capacity.
//
// Bitkit takes the strict position: combining bitsets of unequal capacity is a
// programming error, never silently zero-padded. Resize an operand first if
// padding is what you want.
type ErrSizeMismatch struct {
	Expected uint
	Actual   uint
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("size mismatch: expected %d bits, got %d", e.Expected, e.Actual)
}

// ErrInvalidBitString indicates a character other than '0' or '1' in a bit string.
type ErrInvalidBitString struct {
	Offset int
}

func (e *ErrInvalidBitString) Error() string {
	return fmt.Sprintf("invalid bit string: unexpected character at offset %d", e.Offset)
}

// ErrInvalidRange indicates a malformed half-open range [From, To).
type ErrInvalidRange struct {
	From uint
	To   uint
	Size uint
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid bit range [%d, %d) for capacity %d", e.From, e.To, e.Size)
}
