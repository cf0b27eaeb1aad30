package bitkit

import (
	"encoding/binary"
	"math/bits"
)

const (
	wordBits     = 64
	log2WordBits = 6
	allOnes      = ^uint64(0)
)

// wordsNeeded returns the number of 64-bit words covering size bits.
func wordsNeeded(size uint) int {
	return int((size + wordBits - 1) >> log2WordBits)
}

// BitSet is a dense bit vector over a growable sequence of 64-bit words.
//
// Bit i lives in word i/64 at offset i%64. Bits at or past the capacity within
// the final word are kept at zero at all times, so two bitsets with equal
// logical content are equal word for word.
//
// A BitSet is not safe for concurrent mutation; callers that share one across
// goroutines must synchronize externally.
type BitSet struct {
	words []uint64
	size  uint
}

// New creates a BitSet with the given capacity in bits, all bits zero.
//
// A capacity of zero is allowed and yields an empty set that admits no indices.
func New(size uint) *BitSet {
	return &BitSet{
		words: make([]uint64, wordsNeeded(size)),
		size:  size,
	}
}

// FromIndices creates a BitSet of the given capacity with the listed bits set.
func FromIndices(size uint, indices ...uint) (*BitSet, error) {
	b := New(size)
	for _, i := range indices {
		if err := b.Set(i); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// FromWords creates a BitSet of the given capacity backed by a copy of words.
//
// Missing trailing words are treated as zero; excess words and any bits at or
// past size are discarded to restore the canonical padding.
func FromWords(size uint, words []uint64) *BitSet {
	b := New(size)
	copy(b.words, words)
	b.canonicalize()
	return b
}

// FromUint64 creates a 64-bit BitSet holding the bits of v.
func FromUint64(v uint64) *BitSet {
	return &BitSet{
		words: []uint64{v},
		size:  wordBits,
	}
}

// FromBytes creates a BitSet from little-endian bytes, one bit per stored bit,
// with capacity 8*len(data).
func FromBytes(data []byte) *BitSet {
	b := New(uint(len(data)) * 8)
	for i, w := 0, 0; i < len(data); i += 8 {
		if len(data)-i >= 8 {
			b.words[w] = binary.LittleEndian.Uint64(data[i:])
		} else {
			var tail [8]byte
			copy(tail[:], data[i:])
			b.words[w] = binary.LittleEndian.Uint64(tail[:])
		}
		w++
	}
	return b
}

// ParseBitString creates a BitSet from a string of '0' and '1' characters,
// where s[0] is bit 0.
func ParseBitString(s string) (*BitSet, error) {
	b := New(uint(len(s)))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			b.words[i>>log2WordBits] |= 1 << (uint(i) & (wordBits - 1))
		case '0':
		default:
			return nil, &ErrInvalidBitString{Offset: i}
		}
	}
	return b, nil
}

// canonicalize zeroes any bits at or past size in the final word.
func (b *BitSet) canonicalize() {
	if rem := b.size & (wordBits - 1); rem != 0 {
		b.words[len(b.words)-1] &= (1 << rem) - 1
	}
}

func (b *BitSet) checkIndex(i uint) error {
	if i >= b.size {
		return &ErrIndexOutOfRange{Index: i, Size: b.size}
	}
	return nil
}

// Len returns the capacity of the bitset in bits.
func (b *BitSet) Len() uint {
	return b.size
}

// WordCount returns the number of 64-bit backing words.
func (b *BitSet) WordCount() int {
	return len(b.words)
}

// Set sets the bit at index i.
func (b *BitSet) Set(i uint) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.words[i>>log2WordBits] |= 1 << (i & (wordBits - 1))
	return nil
}

// Clear clears the bit at index i.
func (b *BitSet) Clear(i uint) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.words[i>>log2WordBits] &^= 1 << (i & (wordBits - 1))
	return nil
}

// Toggle flips the bit at index i.
func (b *BitSet) Toggle(i uint) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.words[i>>log2WordBits] ^= 1 << (i & (wordBits - 1))
	return nil
}

// Get returns the bit at index i.
func (b *BitSet) Get(i uint) (bool, error) {
	if err := b.checkIndex(i); err != nil {
		return false, err
	}
	return b.words[i>>log2WordBits]&(1<<(i&(wordBits-1))) != 0, nil
}

// test reports the bit at index i without a range check. Internal fast path;
// callers guarantee i < size.
func (b *BitSet) test(i uint) bool {
	return b.words[i>>log2WordBits]&(1<<(i&(wordBits-1))) != 0
}

// SetAll sets every bit in [0, Len), preserving the padding on the final word.
func (b *BitSet) SetAll() {
	for i := range b.words {
		b.words[i] = allOnes
	}
	b.canonicalize()
}

// ClearAll clears every bit.
func (b *BitSet) ClearAll() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// SetRange sets every bit in the half-open range [from, to).
func (b *BitSet) SetRange(from, to uint) error {
	if from > to || to > b.size {
		return &ErrInvalidRange{From: from, To: to, Size: b.size}
	}
	forEachRangeWord(from, to, func(w int, mask uint64) {
		b.words[w] |= mask
	})
	return nil
}

// ClearRange clears every bit in the half-open range [from, to).
func (b *BitSet) ClearRange(from, to uint) error {
	if from > to || to > b.size {
		return &ErrInvalidRange{From: from, To: to, Size: b.size}
	}
	forEachRangeWord(from, to, func(w int, mask uint64) {
		b.words[w] &^= mask
	})
	return nil
}

// forEachRangeWord visits each word overlapping [from, to) with the mask of
// range bits inside that word.
func forEachRangeWord(from, to uint, fn func(w int, mask uint64)) {
	if from == to {
		return
	}
	first := int(from >> log2WordBits)
	last := int((to - 1) >> log2WordBits)

	startMask := allOnes << (from & (wordBits - 1))
	endMask := allOnes >> ((wordBits - to&(wordBits-1)) & (wordBits - 1))

	if first == last {
		fn(first, startMask&endMask)
		return
	}
	fn(first, startMask)
	for w := first + 1; w < last; w++ {
		fn(w, allOnes)
	}
	fn(last, endMask)
}

// Count returns the number of set bits.
func (b *BitSet) Count() int {
	count := 0
	for _, w := range b.words {
		if w != 0 {
			count += bits.OnesCount64(w)
		}
	}
	return count
}

// IsEmpty reports whether no bit is set.
func (b *BitSet) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Any reports whether at least one bit is set.
func (b *BitSet) Any() bool {
	return !b.IsEmpty()
}

// All reports whether every bit in [0, Len) is set. An empty bitset
// vacuously satisfies All.
func (b *BitSet) All() bool {
	return b.Count() == int(b.size)
}

// Equal reports whether o has the same capacity and the same logical content.
// The padding invariant makes a word-wise comparison sound.
func (b *BitSet) Equal(o *BitSet) bool {
	if b.size != o.size {
		return false
	}
	for i, w := range b.words {
		if w != o.words[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (b *BitSet) Clone() *BitSet {
	c := &BitSet{
		words: make([]uint64, len(b.words)),
		size:  b.size,
	}
	copy(c.words, b.words)
	return c
}

// Resize changes the capacity to size, preserving bits below min(old, new) and
// zero-initializing any growth.
func (b *BitSet) Resize(size uint) {
	need := wordsNeeded(size)
	switch {
	case need > len(b.words):
		if need <= cap(b.words) {
			b.words = b.words[:need]
		} else {
			words := make([]uint64, need)
			copy(words, b.words)
			b.words = words
		}
	case need < len(b.words):
		clear(b.words[need:])
		b.words = b.words[:need]
	}
	b.size = size
	b.canonicalize()
}

// Grow ensures the capacity is at least size bits. Shrinking never happens.
func (b *BitSet) Grow(size uint) {
	if size > b.size {
		b.Resize(size)
	}
}

// Append concatenates o's bits after the receiver's, growing the receiver by
// o.Len() bits. o is not modified; appending a bitset to itself is allowed.
func (b *BitSet) Append(o *BitSet) {
	oldSize := b.size
	oWords := o.words
	oSize := o.size
	if o == b {
		oWords = append([]uint64(nil), b.words...)
	}
	b.Resize(oldSize + oSize)

	shift := oldSize & (wordBits - 1)
	base := int(oldSize >> log2WordBits)
	for i, w := range oWords {
		b.words[base+i] |= w << shift
		if shift != 0 && base+i+1 < len(b.words) {
			b.words[base+i+1] |= w >> (wordBits - shift)
		}
	}
	b.canonicalize()
}

// Compact reallocates the backing slice to exactly fit the current capacity,
// releasing slack left behind by shrinking.
func (b *BitSet) Compact() {
	if cap(b.words) == len(b.words) {
		return
	}
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	b.words = words
}

// Bytes returns the backing words as little-endian bytes, padded to a multiple
// of eight bytes.
func (b *BitSet) Bytes() []byte {
	out := make([]byte, len(b.words)*8)
	for i, w := range b.words {
		binary.LittleEndian.PutUint64(out[i*8:], w)
	}
	return out
}
