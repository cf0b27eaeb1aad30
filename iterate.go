package bitkit

import (
	"iter"
	"math/bits"
	"strconv"
	"strings"
)

// NextSet returns the index of the first set bit at or after i, and false when
// no such bit exists. Starting past the capacity is allowed and yields false.
func (b *BitSet) NextSet(i uint) (uint, bool) {
	if i >= b.size {
		return 0, false
	}
	w := int(i >> log2WordBits)

	// Mask out bits below i in the first word.
	word := b.words[w] &^ ((1 << (i & (wordBits - 1))) - 1)
	for {
		if word != 0 {
			return uint(w)<<log2WordBits + uint(bits.TrailingZeros64(word)), true
		}
		w++
		if w >= len(b.words) {
			return 0, false
		}
		word = b.words[w]
	}
}

// FirstSet returns the index of the lowest set bit.
func (b *BitSet) FirstSet() (uint, bool) {
	return b.NextSet(0)
}

// LastSet returns the index of the highest set bit.
func (b *BitSet) LastSet() (uint, bool) {
	for w := len(b.words) - 1; w >= 0; w-- {
		if b.words[w] != 0 {
			return uint(w)<<log2WordBits + uint(bits.Len64(b.words[w])) - 1, true
		}
	}
	return 0, false
}

// Iterator returns a lazy, restartable sequence of set bit indices in
// ascending order. Bits are extracted per word by isolating and clearing the
// lowest set bit; no intermediate slice is built.
//
// Mutating the bitset during iteration is undefined.
func (b *BitSet) Iterator() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for w, word := range b.words {
			for word != 0 {
				i := uint(w)<<log2WordBits + uint(bits.TrailingZeros64(word))
				if !yield(i) {
					return
				}
				word &= word - 1
			}
		}
	}
}

// String renders the set bit indices, e.g. "{1, 5, 9}".
func (b *BitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for i := range b.Iterator() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.FormatUint(uint64(i), 10))
	}
	sb.WriteByte('}')
	return sb.String()
}
