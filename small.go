package bitkit

import (
	"iter"
	"math/bits"
)

// Uint is the set of unsigned word types usable as Small storage.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Small is a fixed-capacity bitset stored in a single unsigned word.
//
// The capacity is the bit width of T and cannot change; pick T to match the
// target's native word for register-level throughput. Small is a plain value:
// copy it freely, compare it with ==.
//
// Binary operations never fail since two Small[T] always share a capacity;
// point operations keep the same out-of-range error contract as BitSet.
type Small[T Uint] struct {
	word T
}

// SmallOf creates a Small holding the bits of v.
func SmallOf[T Uint](v T) Small[T] {
	return Small[T]{word: v}
}

// Len returns the capacity in bits, the bit width of T.
func (s Small[T]) Len() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// Word returns the backing word.
func (s Small[T]) Word() T {
	return s.word
}

// Set sets the bit at index i.
func (s *Small[T]) Set(i uint) error {
	if i >= s.Len() {
		return &ErrIndexOutOfRange{Index: i, Size: s.Len()}
	}
	s.word |= 1 << i
	return nil
}

// Clear clears the bit at index i.
func (s *Small[T]) Clear(i uint) error {
	if i >= s.Len() {
		return &ErrIndexOutOfRange{Index: i, Size: s.Len()}
	}
	s.word &^= 1 << i
	return nil
}

// Toggle flips the bit at index i.
func (s *Small[T]) Toggle(i uint) error {
	if i >= s.Len() {
		return &ErrIndexOutOfRange{Index: i, Size: s.Len()}
	}
	s.word ^= 1 << i
	return nil
}

// Get returns the bit at index i.
func (s Small[T]) Get(i uint) (bool, error) {
	if i >= s.Len() {
		return false, &ErrIndexOutOfRange{Index: i, Size: s.Len()}
	}
	return s.word&(1<<i) != 0, nil
}

// Count returns the number of set bits.
func (s Small[T]) Count() int {
	return bits.OnesCount64(uint64(s.word))
}

// IsEmpty reports whether no bit is set.
func (s Small[T]) IsEmpty() bool {
	return s.word == 0
}

// Any reports whether at least one bit is set.
func (s Small[T]) Any() bool {
	return s.word != 0
}

// All reports whether every bit is set.
func (s Small[T]) All() bool {
	return s.word == ^T(0)
}

// Union returns s OR o.
func (s Small[T]) Union(o Small[T]) Small[T] {
	return Small[T]{word: s.word | o.word}
}

// Intersect returns s AND o.
func (s Small[T]) Intersect(o Small[T]) Small[T] {
	return Small[T]{word: s.word & o.word}
}

// Difference returns s AND NOT o.
func (s Small[T]) Difference(o Small[T]) Small[T] {
	return Small[T]{word: s.word &^ o.word}
}

// SymmetricDifference returns s XOR o.
func (s Small[T]) SymmetricDifference(o Small[T]) Small[T] {
	return Small[T]{word: s.word ^ o.word}
}

// Complement returns s with every bit flipped. T's width is the capacity, so
// no padding needs masking.
func (s Small[T]) Complement() Small[T] {
	return Small[T]{word: ^s.word}
}

// Iterator returns a lazy, restartable sequence of set bit indices in
// ascending order.
func (s Small[T]) Iterator() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		word := uint64(s.word)
		for word != 0 {
			if !yield(uint(bits.TrailingZeros64(word))) {
				return
			}
			word &= word - 1
		}
	}
}

// BitSet widens s into a heap-backed BitSet of the same capacity.
func (s Small[T]) BitSet() *BitSet {
	return FromWords(s.Len(), []uint64{uint64(s.word)})
}
