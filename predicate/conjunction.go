// SPDX-License-Identifier: MIT
//
// File: conjunction.go
// Role: Conjunction construction, merge algebra, and the
// containment/adjacency/subsumption relations the search engine
// and finaliser both depend on.
//
// Grounded line-for-line on original_source/predicate_induction/
// predicate.py's Conjunction class (get_column_to_mask, merge,
// is_contained_key), restated in Go idiom: explicit per-field caches
// instead of None-checks, direct pointer adjacency instead of
// object back-references.

package predicate

import (
	"sort"
	"strconv"
	"sync"

	"github.com/katalvlaran/predicatesearch/tabular"
)

// Conjunction is an axis-aligned selector AND_c (row[c] ∈ V_c).
//
// Conjunctions are immutable after construction except for their lazy
// score cache (mask is always computed eagerly at construction time —
// see the doc comment on CachedMask for why spec's "lazy" mask never
// actually observes a cache miss in this implementation).
type Conjunction struct {
	keys        []string // sorted
	columnValue map[string]ValueSet
	columnMask  map[string]tabular.BitMask
	mask        tabular.BitMask
	isBase      bool
	parents     [2]*Conjunction // nil, nil for base predicates

	adjMu    sync.Mutex
	adjacent map[string][]*Conjunction

	scoreMu sync.Mutex
	score   map[ScoreKey]float64
}

// Keys returns the sorted column names this conjunction constrains.
func (c *Conjunction) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Values returns the admissible ValueSet for column, and whether
// column is among this conjunction's keys.
func (c *Conjunction) Values(column string) (ValueSet, bool) {
	v, ok := c.columnValue[column]
	return v, ok
}

// IsBase reports whether this was constructed as a single-column,
// single-value base predicate.
func (c *Conjunction) IsBase() bool { return c.isBase }

// Parents returns the two predicates this conjunction was merged
// from, or (nil, nil) for a base predicate.
func (c *Conjunction) Parents() (*Conjunction, *Conjunction) {
	return c.parents[0], c.parents[1]
}

// CachedMask implements tabular.Masked. Because both base-predicate
// construction and Merge compute the mask eagerly (the merge algebra
// defines mask(r) in terms of values already on hand), this
// implementation's mask cache never actually starts empty — "lazy"
// describes a contract future predicate kinds might need to honor,
// not a code path exercised by Conjunction today.
func (c *Conjunction) CachedMask() (tabular.BitMask, bool) {
	return c.mask, true
}

// NewBase builds a single-column, single-value base predicate from
// table's data: V_c = {value}, per_column_mask[c] = (table[c] == value).
func NewBase(table *tabular.Table, column string, value Value) (*Conjunction, error) {
	col, ok := table.Column(column)
	if !ok {
		return nil, ErrUnknownColumn
	}
	m := maskForValue(col, table.NumRows(), value)
	return &Conjunction{
		keys:        []string{column},
		columnValue: map[string]ValueSet{column: NewValueSet(value)},
		columnMask:  map[string]tabular.BitMask{column: m},
		mask:        m,
		isBase:      true,
	}, nil
}

// maskForValue returns the BitMask of rows whose value in col equals v.
func maskForValue(col tabular.Column, numRows int, v Value) tabular.BitMask {
	out := tabular.NewBitMask(numRows)
	switch col.Dtype {
	case tabular.Nominal:
		for i, s := range col.Strings {
			if !v.IsInt && s == v.Str {
				out.Set(i)
			}
		}
	default: // Ordinal, Binary
		for i, iv := range col.Ints {
			if v.IsInt && iv == v.Int {
				out.Set(i)
			}
		}
	}
	return out
}

// Merge combines c and o into a new conjunction per the merge algebra:
//
//	keys(r)   = keys(c) ∪ keys(o)
//	V_c(r)    = V_c(c) ∪ V_c(o)            for c present in both
//	mask(r)   = AND over keys(r) of per_column_mask[c]
//	adjacent(r)[c] = the union-minus-absorbed rule described below
//
// Merge never mutates c or o; both remain usable afterward.
func (c *Conjunction) Merge(o *Conjunction) *Conjunction {
	columnValue := make(map[string]ValueSet, len(c.columnValue)+len(o.columnValue))
	columnMask := make(map[string]tabular.BitMask, len(c.columnMask)+len(o.columnMask))
	adjacent := make(map[string][]*Conjunction)

	for col, v := range c.columnValue {
		columnValue[col] = v
		columnMask[col] = c.columnMask[col]
	}

	for col, ov := range o.columnValue {
		if cv, inBoth := columnValue[col]; inBoth {
			columnValue[col] = cv.Union(ov)
			columnMask[col] = c.columnMask[col].Or(o.columnMask[col])
			adjacent[col] = mergeAdjacentBoth(c, o, col)
		} else {
			columnValue[col] = ov
			columnMask[col] = o.columnMask[col]
			adjacent[col] = inheritAdjacentOneSided(o, col, c)
		}
	}
	// Columns present only in c: inherit c's adjacency list minus o itself.
	for col := range c.columnValue {
		if _, inO := o.columnValue[col]; !inO {
			adjacent[col] = inheritAdjacentOneSided(c, col, o)
		}
	}

	keys := make([]string, 0, len(columnValue))
	for col := range columnValue {
		keys = append(keys, col)
	}
	sort.Strings(keys)

	mask := andAll(keys, columnMask)

	r := &Conjunction{
		keys:        keys,
		columnValue: columnValue,
		columnMask:  columnMask,
		mask:        mask,
		isBase:      false,
		adjacent:    adjacent,
	}
	r.parents[0], r.parents[1] = c, o
	return r
}

// mergeAdjacentBoth implements the both-present branch of the
// adjacency rule: the union of (c's adjacents along col that are
// neither contained-along-col by o nor themselves adjacent to o) with
// the symmetric set from o.
func mergeAdjacentBoth(c, o *Conjunction, col string) []*Conjunction {
	var out []*Conjunction
	for _, p := range c.adjacentAlong(col) {
		if p.containsAlongUnlocked(col, o) {
			continue
		}
		if o.isAdjacentAlongUnlocked(col, p) {
			continue
		}
		out = append(out, p)
	}
	for _, p := range o.adjacentAlong(col) {
		if p.containsAlongUnlocked(col, c) {
			continue
		}
		if c.isAdjacentAlongUnlocked(col, p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// inheritAdjacentOneSided implements the one-operand-only branch: copy
// that operand's adjacents along col, minus the other operand itself
// (it has just been absorbed into the merge, so it can no longer be a
// distinct neighbor).
func inheritAdjacentOneSided(owner *Conjunction, col string, absorbed *Conjunction) []*Conjunction {
	var out []*Conjunction
	for _, p := range owner.adjacentAlong(col) {
		if p == absorbed {
			continue
		}
		out = append(out, p)
	}
	return out
}

func andAll(keys []string, columnMask map[string]tabular.BitMask) tabular.BitMask {
	if len(keys) == 0 {
		return tabular.BitMask{}
	}
	result := columnMask[keys[0]]
	for _, k := range keys[1:] {
		result = result.And(columnMask[k])
	}
	return result
}

// Equal reports whether c and o have the same column→ValueSet map.
func (c *Conjunction) Equal(o *Conjunction) bool {
	if len(c.columnValue) != len(o.columnValue) {
		return false
	}
	for col, v := range c.columnValue {
		ov, ok := o.columnValue[col]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// String renders column_to_values the way the Python implementation's
// __repr__ does, for debugging and test failure messages.
func (c *Conjunction) String() string {
	out := "{"
	first := true
	for _, col := range c.keys {
		if !first {
			out += ", "
		}
		first = false
		out += col + ": ["
		for i, v := range c.columnValue[col].Values() {
			if i > 0 {
				out += " "
			}
			if v.IsInt {
				out += strconv.Itoa(v.Int)
			} else {
				out += v.Str
			}
		}
		out += "]"
	}
	return out + "}"
}
