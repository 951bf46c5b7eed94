// SPDX-License-Identifier: MIT
// Package tabular: functional configuration for Table construction.
//
// Contract (mirrors matrix/options.go and builder/options.go):
//   - Option is functional: type TableOption func(*tableOptions).
//   - Constructors VALIDATE and PANIC on meaningless inputs; Load/LoadCSV
//     themselves never panic on bad option values — by the time they run,
//     the With... constructor has already panicked on them.
//   - Defaults are named constants, the single source of truth.

package tabular

// Defaults for numeric→ordinal binning.
const (
	// DefaultNumBins is the bin count used when NumPointsPerBin is unset.
	DefaultNumBins = 15
)

// TableOption mutates tableOptions before Load/LoadCSV runs.
type TableOption func(*tableOptions)

type tableOptions struct {
	numBins         int
	numPointsPerBin int // 0 means "unset"; overrides numBins when > 0
}

func defaultTableOptions() tableOptions {
	return tableOptions{numBins: DefaultNumBins}
}

// WithNumBins sets the bin count used to convert numeric columns to
// ordinal. Panics if bins < 2 (a single bin can never express an
// adjacency chain of more than one base predicate).
func WithNumBins(bins int) TableOption {
	if bins < 2 {
		panic("tabular: WithNumBins: bins must be >= 2")
	}
	return func(o *tableOptions) { o.numBins = bins }
}

// WithNumPointsPerBin overrides NumBins with
// floor(NumRows / pointsPerBin) once the row count is known. Panics
// if pointsPerBin <= 0.
func WithNumPointsPerBin(pointsPerBin int) TableOption {
	if pointsPerBin <= 0 {
		panic("tabular: WithNumPointsPerBin: pointsPerBin must be > 0")
	}
	return func(o *tableOptions) { o.numPointsPerBin = pointsPerBin }
}

func gatherTableOptions(opts ...TableOption) tableOptions {
	o := defaultTableOptions()
	for _, set := range opts {
		set(&o)
	}
	return o
}

// resolveNumBins applies NumPointsPerBin (if set) against the given
// row count, returning ErrIncoherentConfig if the result is < 1.
func (o tableOptions) resolveNumBins(numRows int) (int, error) {
	if o.numPointsPerBin <= 0 {
		return o.numBins, nil
	}
	bins := numRows / o.numPointsPerBin
	if bins < 1 {
		return 0, ErrIncoherentConfig
	}
	return bins, nil
}
