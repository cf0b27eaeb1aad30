package bitkit

// Set algebra.
//
// All binary operations require operands of equal capacity and return
// *ErrSizeMismatch otherwise; shorter operands are never zero-padded.
// Each operation comes in two documented styles: the plain form allocates a
// fresh result and leaves both operands untouched, the ...With form mutates
// the receiver in place.

func (b *BitSet) checkSize(o *BitSet) error {
	if b.size != o.size {
		return &ErrSizeMismatch{Expected: b.size, Actual: o.size}
	}
	return nil
}

// Union returns a new bitset holding b OR o.
func (b *BitSet) Union(o *BitSet) (*BitSet, error) {
	if err := b.checkSize(o); err != nil {
		return nil, err
	}
	r := b.Clone()
	for i, w := range o.words {
		r.words[i] |= w
	}
	return r, nil
}

// UnionWith sets b to b OR o in place.
func (b *BitSet) UnionWith(o *BitSet) error {
	if err := b.checkSize(o); err != nil {
		return err
	}
	for i, w := range o.words {
		b.words[i] |= w
	}
	return nil
}

// Intersect returns a new bitset holding b AND o.
func (b *BitSet) Intersect(o *BitSet) (*BitSet, error) {
	if err := b.checkSize(o); err != nil {
		return nil, err
	}
	r := b.Clone()
	for i, w := range o.words {
		r.words[i] &= w
	}
	return r, nil
}

// IntersectWith sets b to b AND o in place.
func (b *BitSet) IntersectWith(o *BitSet) error {
	if err := b.checkSize(o); err != nil {
		return err
	}
	for i, w := range o.words {
		b.words[i] &= w
	}
	return nil
}

// Difference returns a new bitset holding b AND NOT o.
func (b *BitSet) Difference(o *BitSet) (*BitSet, error) {
	if err := b.checkSize(o); err != nil {
		return nil, err
	}
	r := b.Clone()
	for i, w := range o.words {
		r.words[i] &^= w
	}
	return r, nil
}

// DifferenceWith sets b to b AND NOT o in place.
func (b *BitSet) DifferenceWith(o *BitSet) error {
	if err := b.checkSize(o); err != nil {
		return err
	}
	for i, w := range o.words {
		b.words[i] &^= w
	}
	return nil
}

// SymmetricDifference returns a new bitset holding b XOR o.
func (b *BitSet) SymmetricDifference(o *BitSet) (*BitSet, error) {
	if err := b.checkSize(o); err != nil {
		return nil, err
	}
	r := b.Clone()
	for i, w := range o.words {
		r.words[i] ^= w
	}
	return r, nil
}

// SymmetricDifferenceWith sets b to b XOR o in place.
func (b *BitSet) SymmetricDifferenceWith(o *BitSet) error {
	if err := b.checkSize(o); err != nil {
		return err
	}
	for i, w := range o.words {
		b.words[i] ^= w
	}
	return nil
}

// Complement returns a new bitset with every bit in [0, Len) flipped.
func (b *BitSet) Complement() *BitSet {
	r := b.Clone()
	r.Negate()
	return r
}

// Negate flips every bit in [0, Len) in place, preserving the padding on the
// final word.
func (b *BitSet) Negate() {
	for i := range b.words {
		b.words[i] = ^b.words[i]
	}
	b.canonicalize()
}

// Intersects reports whether b and o share at least one set bit.
func (b *BitSet) Intersects(o *BitSet) (bool, error) {
	if err := b.checkSize(o); err != nil {
		return false, err
	}
	for i, w := range o.words {
		if b.words[i]&w != 0 {
			return true, nil
		}
	}
	return false, nil
}

// IsDisjoint reports whether b and o share no set bit.
func (b *BitSet) IsDisjoint(o *BitSet) (bool, error) {
	ok, err := b.Intersects(o)
	return !ok && err == nil, err
}

// IsSubsetOf reports whether every set bit of b is also set in o.
func (b *BitSet) IsSubsetOf(o *BitSet) (bool, error) {
	if err := b.checkSize(o); err != nil {
		return false, err
	}
	for i, w := range b.words {
		if w&^o.words[i] != 0 {
			return false, nil
		}
	}
	return true, nil
}

// IsSupersetOf reports whether every set bit of o is also set in b.
func (b *BitSet) IsSupersetOf(o *BitSet) (bool, error) {
	return o.IsSubsetOf(b)
}
