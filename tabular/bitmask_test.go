package tabular_test

import (
	"testing"

	"github.com/katalvlaran/predicatesearch/tabular"
)

func TestBitMaskAndOr(t *testing.T) {
	a := tabular.NewBitMask(6)
	a.Set(0)
	a.Set(2)
	a.Set(4)

	b := tabular.NewBitMask(6)
	b.Set(2)
	b.Set(3)
	b.Set(4)

	and := a.And(b)
	if got, want := and.Indices(), []int{2, 4}; !equalInts(got, want) {
		t.Errorf("And = %v, want %v", got, want)
	}

	or := a.Or(b)
	if got, want := or.Indices(), []int{0, 2, 3, 4}; !equalInts(got, want) {
		t.Errorf("Or = %v, want %v", got, want)
	}

	if and.PopCount() != 2 {
		t.Errorf("PopCount(and) = %d, want 2", and.PopCount())
	}
}

func TestBitMaskNotClearsTail(t *testing.T) {
	m := tabular.NewBitMask(5)
	m.Set(0)
	not := m.Not()
	if not.PopCount() != 4 {
		t.Fatalf("PopCount(not) = %d, want 4 (tail bits beyond len must stay clear)", not.PopCount())
	}
	for i := 0; i < 5; i++ {
		want := i != 0
		if not.Get(i) != want {
			t.Errorf("Not().Get(%d) = %v, want %v", i, not.Get(i), want)
		}
	}
}

func TestBitMaskEqual(t *testing.T) {
	a := tabular.NewBitMask(4)
	a.Set(1)
	b := tabular.NewBitMask(4)
	b.Set(1)
	if !a.Equal(b) {
		t.Errorf("expected equal masks")
	}
	b.Set(2)
	if a.Equal(b) {
		t.Errorf("expected unequal masks")
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
