// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: Construction (Load) and dtype inference; row extraction
// (Select) lives in select.go. Mirrors matrix/dense.go's
// validate-then-allocate constructor style and core/api.go's
// thin-facade philosophy: no algorithmic complexity beyond dtype
// inference.

package tabular

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Load adopts rows (one []any slice per column, all of equal length)
// into a new Table. If dtypes is nil, each column's dtype is inferred
// per the rule in Dtype's doc comment. Supported element types per
// raw value: string, bool, int, int64, float64, float32.
//
// Complexity: O(rows * columns).
func Load(rows map[string][]any, dtypes map[string]Dtype, opts ...TableOption) (*Table, error) {
	_ = gatherTableOptions(opts...) // validated eagerly for fail-fast option errors; resolved lazily in Convert

	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	numRows := -1
	order := make([]string, 0, len(rows))
	for name, vals := range rows {
		if numRows == -1 {
			numRows = len(vals)
		} else if len(vals) != numRows {
			return nil, fmt.Errorf("tabular: column %q has %d rows, want %d", name, len(vals), numRows)
		}
		order = append(order, name)
	}
	if numRows == 0 {
		return nil, ErrEmptyTable
	}
	sort.Strings(order)

	columns := make(map[string]Column, len(rows))
	for _, name := range order {
		dt := Dtype(-1)
		if dtypes != nil {
			if d, ok := dtypes[name]; ok {
				dt = d
			}
		}
		col, err := buildColumn(rows[name], dt)
		if err != nil {
			return nil, fmt.Errorf("tabular: column %q: %w", name, err)
		}
		columns[name] = col
	}

	return &Table{
		RunID:   uuid.New(),
		numRows: numRows,
		columns: columns,
		order:   order,
	}, nil
}

// buildColumn converts a raw value slice into a typed Column, using
// explicitDtype if >= 0, else inferring per infer_column_dtype's rule
// (original_source/predicate_induction/data_type.py): binary if every
// value is in {0,1}; else numeric if any value is floating point;
// else ordinal if every value is integer; else nominal.
func buildColumn(vals []any, explicitDtype Dtype) (Column, error) {
	dt := explicitDtype
	if dt < 0 {
		dt = inferDtype(vals)
	}

	switch dt {
	case Nominal:
		out := make([]string, len(vals))
		for i, v := range vals {
			out[i] = toNominal(v)
		}
		return Column{Dtype: Nominal, Strings: out}, nil
	case Ordinal, Binary:
		out := make([]int, len(vals))
		for i, v := range vals {
			iv, ok := toInt(v)
			if !ok {
				return Column{}, fmt.Errorf("value %v is not integer-valued for dtype %s", v, dt)
			}
			out[i] = iv
		}
		return Column{Dtype: dt, Ints: out}, nil
	case Numeric:
		out := make([]float64, len(vals))
		for i, v := range vals {
			fv, ok := toFloat(v)
			if !ok {
				return Column{}, fmt.Errorf("value %v is not numeric", v)
			}
			out[i] = fv
		}
		return Column{Dtype: Numeric, Floats: out}, nil
	default:
		return Column{}, fmt.Errorf("unknown dtype %v", dt)
	}
}

// inferDtype implements the dtype-inference rule documented on Dtype,
// mirroring infer_column_dtype's check order: binary (isin{0,1}) is
// tested first regardless of underlying numeric kind, then float-typed
// values win numeric, then integer-typed values win ordinal, else
// nominal.
func inferDtype(vals []any) Dtype {
	allBinary := true
	anyFloatKind := false
	allIntKind := true

	for _, v := range vals {
		iv, isInt := toInt(v)
		if !isInt || (iv != 0 && iv != 1) {
			allBinary = false
		}
		switch v.(type) {
		case float64, float32:
			anyFloatKind = true
			allIntKind = false
		case int, int64, bool:
			// int-kind; allIntKind unaffected
		default:
			allIntKind = false
		}
	}

	switch {
	case allBinary:
		return Binary
	case anyFloatKind:
		return Numeric
	case allIntKind:
		return Ordinal
	default:
		return Nominal
	}
}

func toNominal(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case float64:
		if x == float64(int64(x)) {
			return int(x), true
		}
		return 0, false
	case float32:
		f := float64(x)
		if f == float64(int64(f)) {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
