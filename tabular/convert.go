// SPDX-License-Identifier: MIT
//
// File: convert.go
// Role: numeric→ordinal equal-width binning, with write-once
// shadow-table semantics.
//
// Grounded on original_source/predicate_induction/data_type.py's
// bin_numeric/convert_dtype: cut into num_bins equal-width intervals,
// drop empty intervals, renumber the survivors 0..k-1 in ascending
// order, and keep a pre-conversion shadow on first conversion only.

package tabular

import "sort"

// ConvertAll converts every column in keys whose dtype is not in
// admissible but has an entry in mapping, by calling Convert. Columns
// already admissible, or with no entry in mapping, are left alone:
// callers are expected to pre-filter by the admissible set, so
// ConvertAll silently skips rather than erroring on those.
//
// ConvertAll is idempotent: once a shadow exists, re-running it is a
// no-op for columns already converted (Convert itself is idempotent;
// see its doc comment).
func (t *Table) ConvertAll(admissible map[Dtype]bool, mapping map[Dtype]Dtype, keys []string, opts ...TableOption) error {
	for _, k := range keys {
		dt, ok := t.Dtype(k)
		if !ok {
			continue
		}
		if admissible[dt] {
			continue
		}
		newDt, ok := mapping[dt]
		if !ok {
			continue
		}
		if err := t.Convert(k, dt, newDt, opts...); err != nil {
			return err
		}
	}
	return nil
}

// Convert converts column from oldDtype to newDtype. Only
// numeric→ordinal is defined; any other pair is an intentional no-op,
// not an error. On the first successful conversion across the table's
// lifetime, a shadow of the pre-conversion columns is saved so Select
// can still recover original values.
//
// Convert is idempotent: converting an already-Ordinal column (because
// a previous Convert call already flipped its dtype) is a no-op, since
// the column's current dtype, read fresh from t.columns, is no longer
// Numeric.
func (t *Table) Convert(column string, oldDtype, newDtype Dtype, opts ...TableOption) error {
	if !(oldDtype == Numeric && newDtype == Ordinal) {
		return nil // unsupported transition: intentional no-op
	}

	t.convMu.Lock()
	defer t.convMu.Unlock()

	current, ok := t.columns[column]
	if !ok {
		return ErrUnknownColumn
	}
	if current.Dtype != Numeric {
		return nil // already converted, or never was numeric: no-op
	}

	o := gatherTableOptions(opts...)
	numBins, err := o.resolveNumBins(t.numRows)
	if err != nil {
		return err
	}

	binned, err := binEqualWidth(current.Floats, numBins)
	if err != nil {
		return err
	}

	if !t.shadowOn {
		t.shadow = cloneColumns(t.columns)
		t.shadowOn = true
	}
	t.columns[column] = Column{Dtype: Ordinal, Ints: binned}
	return nil
}

// binEqualWidth cuts vals into numBins equal-width intervals over
// [min, max], then drops intervals no value falls into and renumbers
// the survivors 0..k-1 in ascending order.
func binEqualWidth(vals []float64, numBins int) ([]int, error) {
	if len(vals) == 0 {
		return nil, ErrEmptyTable
	}
	if numBins < 1 {
		return nil, ErrIncoherentConfig
	}

	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	raw := make([]int, len(vals))
	if hi == lo {
		// Degenerate column (constant value): everything falls in bin 0.
		return raw, nil
	}
	width := (hi - lo) / float64(numBins)
	for i, v := range vals {
		b := int((v - lo) / width)
		if b >= numBins {
			b = numBins - 1 // the max value lands exactly on the upper edge
		}
		if b < 0 {
			b = 0
		}
		raw[i] = b
	}

	// Renumber occupied bins to consecutive ordinals, ascending.
	occupied := make(map[int]bool, numBins)
	for _, b := range raw {
		occupied[b] = true
	}
	sortedBins := make([]int, 0, len(occupied))
	for b := range occupied {
		sortedBins = append(sortedBins, b)
	}
	sort.Ints(sortedBins)
	renumber := make(map[int]int, len(sortedBins))
	for i, b := range sortedBins {
		renumber[b] = i
	}

	out := make([]int, len(raw))
	for i, b := range raw {
		out[i] = renumber[b]
	}
	return out, nil
}

func cloneColumns(m map[string]Column) map[string]Column {
	out := make(map[string]Column, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
