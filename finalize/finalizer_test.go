package finalize_test

import (
	"testing"

	"github.com/katalvlaran/predicatesearch/finalize"
	"github.com/katalvlaran/predicatesearch/predicate"
	"github.com/katalvlaran/predicatesearch/tabular"
)

// ordinalTable builds spec S3's fixture: ordinal column a ∈ {0,1,2,3},
// anomaly (kept out of band) is 1 iff a ∈ {2,3}.
func ordinalTable(t *testing.T) (*tabular.Table, []int) {
	t.Helper()
	tbl, err := tabular.Load(map[string][]any{
		"a": {0, 0, 1, 1, 2, 2, 3, 3},
	}, map[string]tabular.Dtype{"a": tabular.Ordinal})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	anomaly := []int{0, 0, 0, 0, 1, 1, 1, 1}
	return tbl, anomaly
}

func scoreAgainst(anomaly []int) predicate.ScoreFunc {
	return func(mask tabular.BitMask) float64 {
		hits := 0.0
		for _, i := range mask.Indices() {
			if anomaly[i] == 1 {
				hits++
			}
		}
		return hits - 0.5*float64(mask.PopCount())
	}
}

func TestFinalizeGreedilyCoalescesAdjacentBins(t *testing.T) {
	tbl, anomaly := ordinalTable(t)
	base, err := predicate.BottomUpInit(tbl, []string{"a"})
	if err != nil {
		t.Fatalf("BottomUpInit: %v", err)
	}
	scoreFn := scoreAgainst(anomaly)

	var a2, a3 *predicate.Conjunction
	for _, p := range base {
		v, _ := p.Values("a")
		if v.Contains(predicate.IntValue(2)) {
			a2 = p
		}
		if v.Contains(predicate.IntValue(3)) {
			a3 = p
		}
	}
	if a2 == nil || a3 == nil {
		t.Fatal("expected base predicates for a=2 and a=3")
	}

	result, err := finalize.Finalize(scoreFn, []*predicate.Conjunction{a2, a3}, nil, nil)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("result = %d predicates, want 1 (merged a∈{2,3}): %+v", len(result), result)
	}
	v, ok := result[0].Values("a")
	if !ok || v.Len() != 2 || !v.Contains(predicate.IntValue(2)) || !v.Contains(predicate.IntValue(3)) {
		t.Fatalf("expected merged value set {2,3}, got %v", v)
	}
}

// nominalTable builds spec S4's fixture: nominal column a ∈ {x,y,z},
// anomaly (kept out of band) is 1 iff a ∈ {x,y}.
func nominalTable(t *testing.T) (*tabular.Table, []int) {
	t.Helper()
	tbl, err := tabular.Load(map[string][]any{
		"a": {"x", "x", "y", "y", "z", "z"},
	}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	anomaly := []int{1, 1, 1, 1, 0, 0}
	return tbl, anomaly
}

func TestFinalizeGreedilyCoalescesAdjacentNominalValues(t *testing.T) {
	tbl, anomaly := nominalTable(t)
	base, err := predicate.BottomUpInit(tbl, []string{"a"})
	if err != nil {
		t.Fatalf("BottomUpInit: %v", err)
	}
	scoreFn := scoreAgainst(anomaly)

	var ax, ay *predicate.Conjunction
	for _, p := range base {
		v, _ := p.Values("a")
		if v.Contains(predicate.StrValue("x")) {
			ax = p
		}
		if v.Contains(predicate.StrValue("y")) {
			ay = p
		}
	}
	if ax == nil || ay == nil {
		t.Fatal("expected base predicates for a=x and a=y")
	}
	if !ax.AdjacentAlong("a", ay) {
		t.Fatal("nominal base predicates on the same column must be mutually adjacent")
	}

	result, err := finalize.Finalize(scoreFn, []*predicate.Conjunction{ax, ay}, nil, nil)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("result = %d predicates, want 1 (merged a∈{x,y}): %+v", len(result), result)
	}
	v, ok := result[0].Values("a")
	if !ok || v.Len() != 2 || !v.Contains(predicate.StrValue("x")) || !v.Contains(predicate.StrValue("y")) {
		t.Fatalf("expected merged value set {x,y}, got %v", v)
	}
}

func TestFinalizeEmptyInputsReturnEmpty(t *testing.T) {
	scoreFn := scoreAgainst([]int{})
	result, err := finalize.Finalize(scoreFn, nil, nil, nil)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("result = %+v, want empty", result)
	}
}

func TestFinalizeNilScoreFuncErrors(t *testing.T) {
	if _, err := finalize.Finalize(nil, nil, nil, nil); err != finalize.ErrScoreFuncNil {
		t.Fatalf("err = %v, want ErrScoreFuncNil", err)
	}
}

func TestFinalizeReconcileDropsDominatedConditionallyAccepted(t *testing.T) {
	tbl, err := tabular.Load(map[string][]any{
		"a": {"x", "y"},
	}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	px, err := predicate.NewBase(tbl, "a", predicate.StrValue("x"))
	if err != nil {
		t.Fatalf("NewBase: %v", err)
	}
	py, err := predicate.NewBase(tbl, "a", predicate.StrValue("y"))
	if err != nil {
		t.Fatalf("NewBase: %v", err)
	}
	merged := px.Merge(py)

	// popcount 1 (px) scores 1, popcount 2 (merged) scores 10. px ⊑
	// merged (same key, px's value set {x} is a subset of merged's
	// {x,y}), so the pair is comparable and merged's higher score wins.
	popcountScore := func(mask tabular.BitMask) float64 {
		if mask.PopCount() == 1 {
			return 1
		}
		return 10
	}

	result, err := finalize.Finalize(popcountScore, []*predicate.Conjunction{px}, []*predicate.Conjunction{merged}, nil)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if len(result) != 1 || result[0] != merged {
		t.Fatalf("result = %+v, want [merged] (px dominated and dropped)", result)
	}
}

func TestFinalizeConditionalThresholdDropsLowScorers(t *testing.T) {
	tbl, anomaly := ordinalTable(t)
	base, err := predicate.BottomUpInit(tbl, []string{"a"})
	if err != nil {
		t.Fatalf("BottomUpInit: %v", err)
	}
	scoreFn := scoreAgainst(anomaly)

	var a0, a1 *predicate.Conjunction
	for _, p := range base {
		v, _ := p.Values("a")
		if v.Contains(predicate.IntValue(0)) {
			a0 = p
		}
		if v.Contains(predicate.IntValue(1)) {
			a1 = p
		}
	}

	threshold := 0.0
	result, err := finalize.Finalize(scoreFn, []*predicate.Conjunction{a0, a1}, nil, &threshold)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	// a0 and a1 both score -1.0 (0 hits, popcount 2), below the
	// conditional threshold of 0, so neither survives into the result.
	if len(result) != 0 {
		t.Fatalf("result = %+v, want empty (all below conditional threshold)", result)
	}
}
