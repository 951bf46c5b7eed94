// SPDX-License-Identifier: MIT
//
// errors.go — sentinel error set for the predicate package.
// Mirrors matrix/errors.go's policy: sentinels only, errors.Is at
// call sites, no string wrapping at definition site.

package predicate

import "errors"

var (
	// ErrEmptyValueSet reports a column whose value set would be empty.
	// No function in this package returns it: NewBase always builds a
	// one-value set and Merge only takes unions.
	ErrEmptyValueSet = errors.New("predicate: column value set must not be empty")

	// ErrColumnDtypeMismatch reports a column whose dtype is not
	// admissible (not nominal, ordinal or binary). No function in this
	// package returns it: NewBase does not check the dtype, and
	// BottomUpInit skips inadmissible columns.
	ErrColumnDtypeMismatch = errors.New("predicate: column dtype is not admissible")

	// ErrInvariantViolation reports a merged mask that disagrees with
	// the AND of its per-column masks. No function in this package
	// performs that check or returns it.
	ErrInvariantViolation = errors.New("predicate: mask does not equal AND of per-column masks")

	// ErrNoColumns is returned when BottomUpInit finds no admissible
	// column to build base predicates from.
	ErrNoColumns = errors.New("predicate: no admissible columns")

	// ErrUnknownColumn mirrors tabular.ErrUnknownColumn for callers
	// that only import predicate.
	ErrUnknownColumn = errors.New("predicate: unknown column")
)
