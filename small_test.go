package bitkit

import (
	"errors"
	"slices"
	"testing"
)

func TestSmall_Width(t *testing.T) {
	if got := (Small[uint8]{}).Len(); got != 8 {
		t.Errorf("Small[uint8] len = %d, want 8", got)
	}
	if got := (Small[uint16]{}).Len(); got != 16 {
		t.Errorf("Small[uint16] len = %d, want 16", got)
	}
	if got := (Small[uint32]{}).Len(); got != 32 {
		t.Errorf("Small[uint32] len = %d, want 32", got)
	}
	if got := (Small[uint64]{}).Len(); got != 64 {
		t.Errorf("Small[uint64] len = %d, want 64", got)
	}
}

func TestSmall_PointOps(t *testing.T) {
	var s Small[uint8]

	if err := s.Set(7); err != nil {
		t.Fatalf("Set(7) failed: %v", err)
	}
	if on, _ := s.Get(7); !on {
		t.Error("expected bit 7 set")
	}

	err := s.Set(8)
	var oor *ErrIndexOutOfRange
	if !errors.As(err, &oor) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if oor.Size != 8 {
		t.Errorf("unexpected error size: %d", oor.Size)
	}

	_ = s.Toggle(0)
	_ = s.Toggle(7)
	if s.Count() != 1 {
		t.Errorf("expected count 1, got %d", s.Count())
	}
	_ = s.Clear(0)
	if !s.IsEmpty() {
		t.Error("expected empty")
	}
}

func TestSmall_Algebra(t *testing.T) {
	a := SmallOf[uint16](0b0000_1110) // {1,2,3}
	b := SmallOf[uint16](0b0001_1100) // {2,3,4}

	if got := a.Union(b).Word(); got != 0b0001_1110 {
		t.Errorf("Union = %016b", got)
	}
	if got := a.Intersect(b).Word(); got != 0b0000_1100 {
		t.Errorf("Intersect = %016b", got)
	}
	if got := a.Difference(b).Word(); got != 0b0000_0010 {
		t.Errorf("Difference = %016b", got)
	}
	if got := a.SymmetricDifference(b).Word(); got != 0b0001_0010 {
		t.Errorf("SymmetricDifference = %016b", got)
	}
	if got := a.Complement().Count(); got != 13 {
		t.Errorf("Complement count = %d, want 13", got)
	}

	if a.Complement().Complement() != a {
		t.Error("double complement should compare equal with ==")
	}
}

func TestSmall_FullEmpty(t *testing.T) {
	var s Small[uint8]
	if s.Any() || !s.IsEmpty() || s.All() {
		t.Error("zero value should be empty")
	}
	s = s.Complement()
	if !s.All() || s.Count() != 8 {
		t.Errorf("complement of empty should be full, count=%d", s.Count())
	}
}

func TestSmall_Iterator(t *testing.T) {
	s := SmallOf[uint64](1<<0 | 1<<33 | 1<<63)

	var got []uint
	for i := range s.Iterator() {
		got = append(got, i)
	}
	if !slices.Equal(got, []uint{0, 33, 63}) {
		t.Errorf("Iterator = %v", got)
	}
	if len(got) != s.Count() {
		t.Errorf("iterator yielded %d bits, Count reports %d", len(got), s.Count())
	}
}

func TestSmall_BitSet(t *testing.T) {
	s := SmallOf[uint8](0b1000_0001)
	b := s.BitSet()

	if b.Len() != 8 || b.String() != "{0, 7}" {
		t.Errorf("unexpected widened set: len=%d %s", b.Len(), b)
	}
}
