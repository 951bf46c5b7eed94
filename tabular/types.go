// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Core data shapes — Dtype, Column, Table.
// Policy: no algorithms here; construction and mutation live in
// table.go and convert.go. Mirrors core/types.go's split between
// "what the struct looks like" and "what you do with it".

package tabular

import (
	"sync"

	"github.com/google/uuid"
)

// Dtype classifies a column for the purposes of predicate search.
//
// Inference rule (infer, see table.go): if every value is in {0,1},
// Binary; else if values are real-valued, Numeric; else if
// integer-typed, Ordinal; otherwise Nominal.
//
// Admissibility: predicate.BottomUpInit enumerates Nominal, Ordinal
// and Binary columns directly; Numeric columns are converted to
// Ordinal first (ConvertAll). A Binary column named in BottomUpInit's
// columns argument is treated as admissible-as-nominal: its values
// {0,1} become two base predicates adjacent to each other, exactly as
// a two-value Nominal column's would. This is a deliberate decision,
// not an oversight.
type Dtype int

const (
	// Nominal columns have unordered, discrete values (strings or
	// small integer codes with no linear order); predicate.BottomUpInit
	// makes every pair of same-column values adjacent.
	Nominal Dtype = iota
	// Ordinal columns have a linear order; base predicates of
	// adjacent bin indices are chained by predicate.BottomUpInit.
	Ordinal
	// Numeric columns are real-valued and must be converted to
	// Ordinal via Convert before they can seed any predicate.
	Numeric
	// Binary columns take only the values {0,1}. See the admissibility
	// note above.
	Binary
)

// String renders the Dtype the way a log line or test failure wants
// to see it.
func (d Dtype) String() string {
	switch d {
	case Nominal:
		return "nominal"
	case Ordinal:
		return "ordinal"
	case Numeric:
		return "numeric"
	case Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// Column is one typed slice of length N (N == Table.NumRows()).
// Exactly one of the three value slices is populated, selected by
// Dtype: Nominal uses Strings, Ordinal/Binary use Ints, Numeric uses
// Floats.
type Column struct {
	Dtype   Dtype
	Strings []string  // populated iff Dtype == Nominal
	Ints    []int     // populated iff Dtype == Ordinal || Dtype == Binary
	Floats  []float64 // populated iff Dtype == Numeric
}

// Len returns the number of rows in the column, regardless of which
// underlying slice is populated.
func (c Column) Len() int {
	switch c.Dtype {
	case Nominal:
		return len(c.Strings)
	case Numeric:
		return len(c.Floats)
	default:
		return len(c.Ints)
	}
}

// Table is the Data component: an ordered sequence of rows, addressed
// by dense integer index [0, N), with a declared dtype per column.
//
// A Table is safe for concurrent read access once Load has returned.
// The only mutation after Load is the one-time numeric→ordinal
// conversion (Convert/ConvertAll), which is guarded by convMu so a
// Table may be shared across goroutines that might race to trigger
// the same conversion — idempotent by construction (see convert.go),
// so the lock exists to avoid duplicate binning work, not to prevent
// a correctness bug.
type Table struct {
	// RunID stamps this Table instance so repeated search runs in a
	// log stream, or in OnStep diagnostics, can be told apart without
	// reusing row or column identity.
	RunID uuid.UUID

	numRows int
	columns map[string]Column
	order   []string // column names in insertion order, for deterministic iteration

	convMu   sync.Mutex
	shadow   map[string]Column // pre-conversion columns, nil until first Convert
	shadowOn bool
}

// NumRows returns the number of rows addressed by [0, NumRows()).
func (t *Table) NumRows() int { return t.numRows }

// Columns returns the column names in the table's insertion order.
// The returned slice is a copy; callers may not mutate table state
// through it.
func (t *Table) Columns() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Dtype returns the current dtype of column, and whether the column
// exists.
func (t *Table) Dtype(column string) (Dtype, bool) {
	c, ok := t.columns[column]
	return c.Dtype, ok
}

// Column returns the (possibly converted) column data, and whether it
// exists.
func (t *Table) Column(column string) (Column, bool) {
	c, ok := t.columns[column]
	return c, ok
}

// HasShadow reports whether a pre-conversion shadow table exists,
// i.e. whether at least one column has been converted.
func (t *Table) HasShadow() bool {
	t.convMu.Lock()
	defer t.convMu.Unlock()
	return t.shadowOn
}
