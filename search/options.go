// SPDX-License-Identifier: MIT
//
// options.go — EngineOption functional-options set, grounded on
// bfs/types.go's Option/BFSOptions/DefaultOptions: invalid options are
// recorded in a private err field and surfaced as ErrOptionViolation
// by NewEngine, rather than panicking at option construction time.

package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/predicatesearch/predicate"
)

// Option configures an Engine's run via functional arguments.
type Option func(*engineOptions)

// OnStep is invoked once per main-loop iteration after a predicate has
// been popped from the frontier and its disposition decided, letting
// callers observe progress without the engine depending on any
// logging library. iter is the 1-based iteration count.
type OnStep func(iter int, popped *predicate.Conjunction, frontierLen, acceptedLen, rejectedLen int)

type engineOptions struct {
	ctx                   context.Context
	threshold             float64
	conditionalThreshold  *float64
	maxIters              int
	columns               []string
	onStep                OnStep
	err                   error
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		ctx:       context.Background(),
		threshold: 0,
		maxIters:  0, // 0 means "no cap" — the frontier must drain or hit ConditionalThreshold
		onStep:    func(int, *predicate.Conjunction, int, int, int) {},
	}
}

// WithContext sets a context checked for cancellation between main
// loop iterations only.
func WithContext(ctx context.Context) Option {
	return func(o *engineOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithThreshold sets the minimum score for acceptance (default 0).
func WithThreshold(threshold float64) Option {
	return func(o *engineOptions) { o.threshold = threshold }
}

// WithConditionalThreshold sets the minimum score for conditional
// acceptance in the finaliser, and the score that — if exceeded by the
// top of frontier or accepted — triggers the main loop's early stop.
func WithConditionalThreshold(threshold float64) Option {
	return func(o *engineOptions) { o.conditionalThreshold = &threshold }
}

// WithMaxIters sets a hard iteration cap. A value <= 0 is rejected
// with ErrOptionViolation, since 0 is the sentinel for "no cap" set by
// defaultEngineOptions and cannot also mean "user explicitly capped
// at zero".
func WithMaxIters(n int) Option {
	return func(o *engineOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIters must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.maxIters = n
	}
}

// WithColumns restricts the search to this column subset: only base
// predicates over these columns seed the frontier, and Refine only
// adds these columns. A nil or empty slice means "use every
// admissible column" (the default).
func WithColumns(columns []string) Option {
	return func(o *engineOptions) {
		o.columns = columns
	}
}

// WithOnStep registers a hook invoked once per main-loop iteration.
func WithOnStep(fn OnStep) Option {
	return func(o *engineOptions) {
		if fn != nil {
			o.onStep = fn
		}
	}
}

func gatherEngineOptions(opts ...Option) engineOptions {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
