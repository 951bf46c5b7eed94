package tabular_test

import (
	"testing"

	"github.com/katalvlaran/predicatesearch/tabular"
)

func TestConvertNumericToOrdinal(t *testing.T) {
	rows := map[string][]any{
		"x": {0.0, 1.0, 2.0, 3.0, 100.0},
	}
	tbl, err := tabular.Load(rows, nil, tabular.WithNumBins(4))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := tbl.Convert("x", tabular.Numeric, tabular.Ordinal); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	dt, _ := tbl.Dtype("x")
	if dt != tabular.Ordinal {
		t.Fatalf("Dtype(x) = %v, want Ordinal", dt)
	}
	if !tbl.HasShadow() {
		t.Fatal("expected shadow table after first conversion")
	}
	col, _ := tbl.Column("x")
	if len(col.Ints) != 5 {
		t.Fatalf("converted column has %d rows, want 5", len(col.Ints))
	}
	// Values should be monotonic non-decreasing since the source was sorted.
	for i := 1; i < len(col.Ints); i++ {
		if col.Ints[i] < col.Ints[i-1] {
			t.Errorf("bin indices not monotone: %v", col.Ints)
			break
		}
	}
}

func TestConvertIsIdempotent(t *testing.T) {
	rows := map[string][]any{"x": {1.0, 2.0, 3.0}}
	tbl, _ := tabular.Load(rows, nil)
	if err := tbl.Convert("x", tabular.Numeric, tabular.Ordinal); err != nil {
		t.Fatalf("first Convert: %v", err)
	}
	// Second call: oldDtype no longer matches (column is now Ordinal), so
	// it must be a silent no-op, not an error.
	if err := tbl.Convert("x", tabular.Numeric, tabular.Ordinal); err != nil {
		t.Fatalf("second Convert should be a no-op, got error: %v", err)
	}
}

func TestConvertUnsupportedPairIsNoop(t *testing.T) {
	rows := map[string][]any{"x": {"a", "b", "c"}}
	tbl, _ := tabular.Load(rows, nil)
	if err := tbl.Convert("x", tabular.Nominal, tabular.Ordinal); err != nil {
		t.Fatalf("unsupported conversion should be a no-op, got error: %v", err)
	}
	dt, _ := tbl.Dtype("x")
	if dt != tabular.Nominal {
		t.Errorf("Dtype(x) = %v, want unchanged Nominal", dt)
	}
}

func TestConvertAllSkipsAdmissible(t *testing.T) {
	rows := map[string][]any{
		"n": {1.0, 2.0, 3.0},
		"k": {"a", "b", "c"},
	}
	tbl, _ := tabular.Load(rows, nil)
	admissible := map[tabular.Dtype]bool{tabular.Nominal: true, tabular.Ordinal: true}
	mapping := map[tabular.Dtype]tabular.Dtype{tabular.Numeric: tabular.Ordinal}
	if err := tbl.ConvertAll(admissible, mapping, []string{"n", "k"}); err != nil {
		t.Fatalf("ConvertAll: %v", err)
	}
	if dt, _ := tbl.Dtype("n"); dt != tabular.Ordinal {
		t.Errorf("Dtype(n) = %v, want Ordinal", dt)
	}
	if dt, _ := tbl.Dtype("k"); dt != tabular.Nominal {
		t.Errorf("Dtype(k) = %v, want Nominal (already admissible, untouched)", dt)
	}
}

func TestConvertIncoherentConfig(t *testing.T) {
	rows := map[string][]any{"x": {1.0, 2.0, 3.0}}
	tbl, _ := tabular.Load(rows, nil, tabular.WithNumPointsPerBin(100))
	if err := tbl.Convert("x", tabular.Numeric, tabular.Ordinal); err == nil {
		t.Fatal("expected ErrIncoherentConfig for num_points_per_bin yielding zero bins")
	}
}
