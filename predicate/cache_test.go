package predicate_test

import (
	"testing"

	"github.com/katalvlaran/predicatesearch/predicate"
	"github.com/katalvlaran/predicatesearch/tabular"
)

func TestCachedScoreMemoizes(t *testing.T) {
	tbl := mustTable(t, map[string][]any{"a": {"x", "x", "y"}})
	p, _ := predicate.NewBase(tbl, "a", predicate.StrValue("x"))

	calls := 0
	f := func(m tabular.BitMask) float64 {
		calls++
		return float64(m.PopCount())
	}

	if got := p.CachedScore(f); got != 2 {
		t.Fatalf("CachedScore = %v, want 2", got)
	}
	if got := p.CachedScore(f); got != 2 {
		t.Fatalf("second CachedScore = %v, want 2", got)
	}
	if calls != 1 {
		t.Fatalf("score function invoked %d times, want 1", calls)
	}
}

func TestCachedScoreDistinctFunctionsDistinctSlots(t *testing.T) {
	tbl := mustTable(t, map[string][]any{"a": {"x", "x", "y"}})
	p, _ := predicate.NewBase(tbl, "a", predicate.StrValue("x"))

	ones := func(m tabular.BitMask) float64 { return float64(m.PopCount()) }
	zeros := func(m tabular.BitMask) float64 { return 0 }

	if got := p.CachedScore(ones); got != 2 {
		t.Fatalf("ones score = %v, want 2", got)
	}
	if got := p.CachedScore(zeros); got != 0 {
		t.Fatalf("zeros score = %v, want 0", got)
	}
}
