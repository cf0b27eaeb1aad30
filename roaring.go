package bitkit

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Roaring interop. BitSet stays a dense, uncompressed representation; these
// conversions bridge to the ecosystem's standard compressed bitmap when a
// sparse or very large universe makes roaring the better fit. Roaring indices
// are 32-bit, so only bitsets with capacity up to 1<<32 convert.

// ToRoaring returns a roaring bitmap holding the same set bit indices.
// The bitset's capacity is not carried over; roaring has no notion of one.
func (b *BitSet) ToRoaring() (*roaring.Bitmap, error) {
	if uint64(b.size) > math.MaxUint32+1 {
		return nil, ErrRoaringOverflow
	}
	rb := roaring.New()
	for i := range b.Iterator() {
		rb.Add(uint32(i))
	}
	return rb, nil
}

// FromRoaring creates a BitSet of the given capacity from a roaring bitmap.
// Members of rb at or past size are rejected as out of range.
func FromRoaring(size uint, rb *roaring.Bitmap) (*BitSet, error) {
	b := New(size)
	it := rb.Iterator()
	for it.HasNext() {
		if err := b.Set(uint(it.Next())); err != nil {
			return nil, err
		}
	}
	return b, nil
}
