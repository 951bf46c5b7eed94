// SPDX-License-Identifier: MIT
//
// errors.go — sentinel error set for the tabular package.
//
// Policy (mirrors matrix/errors.go and builder/errors.go from the
// wider lvlath family this package descends from):
//   - Only package-level sentinels are exposed.
//   - Callers use errors.Is, never string comparison.
//   - Sentinels are never wrapped with %w at the definition site; wrap
//     at the call site if extra context is needed.

package tabular

import "errors"

var (
	// ErrMissingSource is returned by LoadCSV when its reader holds no
	// data at all, not even a header row.
	ErrMissingSource = errors.New("tabular: no data and no source to extract from")

	// ErrUnsupportedSource reports a source locator that matches no
	// recognised scheme. No function in this package takes a source
	// locator, so none returns it.
	ErrUnsupportedSource = errors.New("tabular: unrecognised source locator")

	// ErrMissingMask is returned by Select when a predicate has no
	// cached mask and the table has no data to compute one from.
	ErrMissingMask = errors.New("tabular: predicate has no mask and table has no data")

	// ErrIncoherentConfig is returned when binning configuration
	// cannot produce at least one bin (e.g. num_points_per_bin yields
	// zero bins for the given row count).
	ErrIncoherentConfig = errors.New("tabular: binning configuration yields zero bins")

	// ErrUnknownColumn is returned when a column name is referenced
	// that the table does not contain.
	ErrUnknownColumn = errors.New("tabular: unknown column")

	// ErrEmptyTable is returned when an operation requires at least
	// one row and the table has none.
	ErrEmptyTable = errors.New("tabular: table has no rows")
)
