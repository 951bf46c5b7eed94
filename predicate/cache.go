// SPDX-License-Identifier: MIT
//
// File: cache.go
// Role: a lazy, write-once score cache — one slot per scoring
// function, keyed by function identity so a conjunction can be scored
// against several metrics across a run without the caches colliding.
//
// Grounded on original_source/predicate_induction/predicate.py's
// get_score(score_function) lazy-memoization, restated with explicit
// per-function keys since Go functions aren't hashable by value.

package predicate

import (
	"reflect"

	"github.com/katalvlaran/predicatesearch/tabular"
)

// ScoreFunc evaluates a candidate conjunction's selection mask against
// whatever objective the caller is optimizing (e.g. mean of a target
// column restricted to the selected rows, an information-gain measure,
// or a held-out metric). Implementations must be pure functions of the
// mask — CachedScore assumes calling f twice on an equal mask yields
// an equal score, and memoizes on that assumption.
type ScoreFunc func(tabular.BitMask) float64

// ScoreKey identifies a ScoreFunc by its code pointer, so a single
// Conjunction can cache scores for multiple distinct scoring functions
// without one overwriting another.
type ScoreKey uintptr

func scoreKeyOf(f ScoreFunc) ScoreKey {
	return ScoreKey(reflect.ValueOf(f).Pointer())
}

// CachedScore returns f(c's mask), computing and memoizing it on first
// call for this f. Subsequent calls with a function sharing f's code
// pointer (including f itself, or any closure built by the same
// function literal) return the memoized value without invoking f
// again.
//
// Concurrent callers racing on first access may each invoke f once
// before the cache settles, since the guard covers map access but not
// the call to f itself; f is required to be pure, so callers each see
// the one true answer regardless of how many times it was computed —
// see the package doc's note on write-once semantics under
// parallelism.
func (c *Conjunction) CachedScore(f ScoreFunc) float64 {
	key := scoreKeyOf(f)

	c.scoreMu.Lock()
	if v, ok := c.score[key]; ok {
		c.scoreMu.Unlock()
		return v
	}
	c.scoreMu.Unlock()

	v := f(c.mask)

	c.scoreMu.Lock()
	if c.score == nil {
		c.score = make(map[ScoreKey]float64, 1)
	}
	if existing, ok := c.score[key]; ok {
		v = existing
	} else {
		c.score[key] = v
	}
	c.scoreMu.Unlock()

	return v
}
