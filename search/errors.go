// SPDX-License-Identifier: MIT
//
// errors.go — sentinel error set for the search package. Mirrors
// bfs/types.go's policy: sentinels only, wrapped with %w at the call
// site that has the dynamic detail, never re-declared per-site.

package search

import "errors"

var (
	// ErrTableNil is returned when NewEngine is given a nil table.
	ErrTableNil = errors.New("search: table is nil")

	// ErrNoBasePredicates is returned when the base predicate set is
	// empty — there is nothing to seed the frontier with.
	ErrNoBasePredicates = errors.New("search: no base predicates supplied")

	// ErrScoreFuncNil is returned when no scoring function is supplied.
	ErrScoreFuncNil = errors.New("search: score function is nil")

	// ErrOptionViolation is returned when an invalid EngineOption is
	// supplied (e.g. a negative MaxIters).
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrScoreFunction wraps a panic recovered from the caller-supplied
	// scoring function: the scoring function is assumed total, but if
	// it panics, the run fails and all accumulated state is discarded
	// rather than partially returned.
	ErrScoreFunction = errors.New("search: score function failed")
)
