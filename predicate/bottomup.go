// SPDX-License-Identifier: MIT
//
// File: bottomup.go
// Role: bottom-up base-predicate enumeration: one Conjunction per
// distinct value of each admissible column, with ordinal columns
// chained into adjacency lists by ascending bin index and nominal/
// binary columns made all-pairs mutually adjacent within their column
// (no linear order to chain, so every same-column pair is a neighbor).
//
// Grounded on original_source/predicate_induction/predicate.py's
// Conjunction.bottom_up_init and set_adjacent; the all-pairs
// nominal/binary case is this implementation's own extension of that
// routine, needed so same-column nominal values can still be unioned
// by the engine's Expand rule and the finaliser's greedy coalescence
// (both gate strictly on adjacency).

package predicate

import (
	"sort"

	"github.com/katalvlaran/predicatesearch/tabular"
)

// admissible is the set of dtypes BottomUpInit enumerates base
// predicates from: Nominal and Ordinal columns are used as-is, and
// Binary columns are treated as admissible-as-nominal. conversionMap
// gives the target dtype for the one convertible dtype: Numeric
// columns are converted to Ordinal first (equal-width binning).
var admissible = map[tabular.Dtype]bool{
	tabular.Nominal: true,
	tabular.Ordinal: true,
	tabular.Binary:  true,
}

var conversionMap = map[tabular.Dtype]tabular.Dtype{
	tabular.Numeric: tabular.Ordinal,
}

// BottomUpInit builds the initial base-predicate set: for each column
// in columns, one single-column Conjunction per distinct value, plus
// an adjacency relation between same-column values so the engine's
// Expand operation and the finaliser's greedy coalescence have
// something to walk. Ordinal columns get a doubly-linked chain between
// successive values in ascending order (one bin at a time); Nominal
// and Binary columns have no linear order to chain, so every pair of
// same-column values is made mutually adjacent instead — there is
// nothing to prefer one unordered label over another.
//
// If table has no shadow yet (no prior numeric→ordinal conversion),
// BottomUpInit converts every Numeric column in columns to Ordinal
// first, mirroring bottom_up_init's "if data_obj.original_data is
// None: convert_all(...)" guard.
func BottomUpInit(table *tabular.Table, columns []string) ([]*Conjunction, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	if !table.HasShadow() {
		if err := table.ConvertAll(admissible, conversionMap, columns); err != nil {
			return nil, err
		}
	}

	var predicates []*Conjunction
	for _, column := range columns {
		dt, ok := table.Dtype(column)
		if !ok {
			return nil, ErrUnknownColumn
		}
		if !admissible[dt] {
			continue
		}

		values, err := distinctValues(table, column, dt)
		if err != nil {
			return nil, err
		}

		columnPredicates := make([]*Conjunction, len(values))
		for i, v := range values {
			p, err := NewBase(table, column, v)
			if err != nil {
				return nil, err
			}
			columnPredicates[i] = p
		}

		if dt == tabular.Ordinal {
			for i := 1; i < len(columnPredicates); i++ {
				setAdjacent(column, columnPredicates[i], columnPredicates[i-1])
			}
		} else {
			for i := 0; i < len(columnPredicates); i++ {
				for j := i + 1; j < len(columnPredicates); j++ {
					setAdjacent(column, columnPredicates[i], columnPredicates[j])
				}
			}
		}

		predicates = append(predicates, columnPredicates...)
	}

	if len(predicates) == 0 {
		return nil, ErrNoColumns
	}
	return predicates, nil
}

// distinctValues returns column's distinct values in sorted order
// (ints ascending for ordinal/binary, strings lexicographically for
// nominal), mirroring sorted(data_obj.data[column].unique()).
func distinctValues(table *tabular.Table, column string, dt tabular.Dtype) ([]Value, error) {
	col, ok := table.Column(column)
	if !ok {
		return nil, ErrUnknownColumn
	}

	switch dt {
	case tabular.Nominal:
		seen := make(map[string]bool)
		var out []string
		for _, s := range col.Strings {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
		sort.Strings(out)
		values := make([]Value, len(out))
		for i, s := range out {
			values[i] = StrValue(s)
		}
		return values, nil
	default: // Ordinal, Binary
		seen := make(map[int]bool)
		var out []int
		for _, iv := range col.Ints {
			if !seen[iv] {
				seen[iv] = true
				out = append(out, iv)
			}
		}
		sort.Ints(out)
		values := make([]Value, len(out))
		for i, iv := range out {
			values[i] = IntValue(iv)
		}
		return values, nil
	}
}

// setAdjacent links a and b as mutual neighbors along column, mirroring
// Predicate.set_adjacent's bidirectional update.
func setAdjacent(column string, a, b *Conjunction) {
	a.setAdjacentPredicate(column, b)
	b.setAdjacentPredicate(column, a)
}

func (c *Conjunction) setAdjacentPredicate(column string, o *Conjunction) {
	c.adjMu.Lock()
	defer c.adjMu.Unlock()
	if c.adjacent == nil {
		c.adjacent = make(map[string][]*Conjunction)
	}
	c.adjacent[column] = append(c.adjacent[column], o)
}
