package bitkit

import (
	"math/rand"
	"slices"
	"testing"
)

func TestIterator_Ascending(t *testing.T) {
	want := []uint{0, 1, 63, 64, 65, 127, 128, 255}
	b, err := FromIndices(256, want...)
	if err != nil {
		t.Fatalf("FromIndices failed: %v", err)
	}

	var got []uint
	for i := range b.Iterator() {
		got = append(got, i)
	}
	if !slices.Equal(got, want) {
		t.Errorf("Iterator = %v, want %v", got, want)
	}
}

func TestIterator_Restartable(t *testing.T) {
	b, _ := FromIndices(64, 1, 5, 9)
	seq := b.Iterator()

	var first, second []uint
	for i := range seq {
		first = append(first, i)
	}
	for i := range seq {
		second = append(second, i)
	}
	if !slices.Equal(first, second) {
		t.Errorf("second pass %v differs from first %v", second, first)
	}
}

func TestIterator_EarlyStop(t *testing.T) {
	b, _ := FromIndices(64, 1, 5, 9)

	var got []uint
	for i := range b.Iterator() {
		got = append(got, i)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []uint{1, 5}) {
		t.Errorf("got %v, want [1 5]", got)
	}
}

func TestIterator_CountConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := New(1000)
	for range 300 {
		_ = b.Set(uint(rng.Intn(1000)))
	}

	n := 0
	for range b.Iterator() {
		n++
	}
	if n != b.Count() {
		t.Errorf("iterator yielded %d bits, Count reports %d", n, b.Count())
	}
}

func TestNextSet(t *testing.T) {
	b, _ := FromIndices(200, 3, 64, 199)

	tests := []struct {
		from   uint
		want   uint
		wantOK bool
	}{
		{0, 3, true},
		{3, 3, true},
		{4, 64, true},
		{65, 199, true},
		{199, 199, true},
		{200, 0, false},
		{100000, 0, false},
	}
	for _, tt := range tests {
		got, ok := b.NextSet(tt.from)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NextSet(%d) = (%d, %v), want (%d, %v)", tt.from, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFirstLastSet(t *testing.T) {
	b := New(130)
	if _, ok := b.FirstSet(); ok {
		t.Error("FirstSet on empty set should report false")
	}
	if _, ok := b.LastSet(); ok {
		t.Error("LastSet on empty set should report false")
	}

	_ = b.Set(7)
	_ = b.Set(129)

	if first, ok := b.FirstSet(); !ok || first != 7 {
		t.Errorf("FirstSet = (%d, %v), want (7, true)", first, ok)
	}
	if last, ok := b.LastSet(); !ok || last != 129 {
		t.Errorf("LastSet = (%d, %v), want (129, true)", last, ok)
	}
}

func TestString(t *testing.T) {
	b, _ := FromIndices(16, 1, 5, 9)
	if s := b.String(); s != "{1, 5, 9}" {
		t.Errorf("String = %q", s)
	}
	if s := New(16).String(); s != "{}" {
		t.Errorf("String of empty = %q", s)
	}
}
