// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: the bottom-up frontier search — the main loop over
// frontier/accepted/rejected, the Refine/Expand/ExpandRefine child
// generators, and the Run entry point that hands the leftover frontier
// to the finalize package.
//
// Grounded on original_source/predicate_induction/predicate_induction.py's
// PredicateInduction/BottomUp (insert_sorted, expand_frontier,
// refine_predicate, merge_adjacent_predicate) restated with explicit
// accepted/rejected/all-children-subsumed bookkeeping, and restructured
// around bfs.walker's "encapsulated mutable state in a private struct,
// exported entry point validates then hands off" idiom (bfs/bfs.go).

package search

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/predicatesearch/finalize"
	"github.com/katalvlaran/predicatesearch/predicate"
	"github.com/katalvlaran/predicatesearch/tabular"
)

// Engine runs the bottom-up frontier search over a fixed table, base
// predicate set, and scoring function.
type Engine struct {
	table          *tabular.Table
	basePredicates []*predicate.Conjunction
	scoreFn        predicate.ScoreFunc
	opts           engineOptions

	columns      []string
	baseByColumn map[string][]*predicate.Conjunction
}

// NewEngine validates its inputs and returns an Engine ready to Run,
// Refine, Expand, or ExpandRefine. basePredicates is normally the
// result of predicate.BottomUpInit.
func NewEngine(table *tabular.Table, basePredicates []*predicate.Conjunction, scoreFn predicate.ScoreFunc, opts ...Option) (*Engine, error) {
	if table == nil {
		return nil, ErrTableNil
	}
	if len(basePredicates) == 0 {
		return nil, ErrNoBasePredicates
	}
	if scoreFn == nil {
		return nil, ErrScoreFuncNil
	}

	o := gatherEngineOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}

	baseByColumn := make(map[string][]*predicate.Conjunction)
	for _, p := range basePredicates {
		keys := p.Keys()
		if len(keys) != 1 {
			continue // not a single-column base predicate; Refine/Expand don't index it
		}
		baseByColumn[keys[0]] = append(baseByColumn[keys[0]], p)
	}

	columns := o.columns
	if len(columns) == 0 {
		for col := range baseByColumn {
			columns = append(columns, col)
		}
		sort.Strings(columns)
	}

	return &Engine{
		table:          table,
		basePredicates: basePredicates,
		scoreFn:        scoreFn,
		opts:           o,
		columns:        columns,
		baseByColumn:   baseByColumn,
	}, nil
}

// childMode selects which of the two child generators a main loop run
// uses.
type childMode int

const (
	modeRefine childMode = iota
	modeExpand
	modeExpandRefine
)

// Refine runs the main loop using only the Refine child generator
// (add one more column per step), starting from the base predicates
// supplied to NewEngine.
func (e *Engine) Refine() ([]*predicate.Conjunction, error) {
	return e.run(modeRefine)
}

// Expand runs the main loop using only the Expand child generator
// (widen an existing column via its adjacency chain).
func (e *Engine) Expand() ([]*predicate.Conjunction, error) {
	return e.run(modeExpand)
}

// ExpandRefine runs the main loop using the union of both child
// generators at every step — the engine's default mode.
func (e *Engine) ExpandRefine() ([]*predicate.Conjunction, error) {
	return e.run(modeExpandRefine)
}

// Run is an alias for ExpandRefine, the engine's default search mode.
func (e *Engine) Run() ([]*predicate.Conjunction, error) {
	return e.ExpandRefine()
}

// score evaluates f on p's mask, converting a panic from the
// caller-supplied scoring function into ErrScoreFunction: the scoring
// function is assumed total, so a panic fails the entire run and
// discards its accumulated state.
func (e *Engine) score(p *predicate.Conjunction) (score float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrScoreFunction, r)
		}
	}()
	return p.CachedScore(e.scoreFn), nil
}

// children returns p's candidate children: the Refine candidates, the
// Expand candidates, or their union, depending on mode — filtered to
// those scoring strictly higher than p.
func (e *Engine) children(p *predicate.Conjunction, parentScore float64, mode childMode) ([]*predicate.Conjunction, error) {
	var out []*predicate.Conjunction
	keySet := make(map[string]bool, len(p.Keys()))
	for _, k := range p.Keys() {
		keySet[k] = true
	}

	if mode == modeRefine || mode == modeExpandRefine {
		for _, col := range e.columns {
			if keySet[col] {
				continue
			}
			for _, b := range e.baseByColumn[col] {
				child := p.Merge(b)
				childScore, err := e.score(child)
				if err != nil {
					return nil, err
				}
				if childScore > parentScore {
					out = append(out, child)
				}
			}
		}
	}

	if mode == modeExpand || mode == modeExpandRefine {
		for _, col := range p.Keys() {
			for _, a := range p.AdjacentTo(col) {
				child := p.Merge(a)
				childScore, err := e.score(child)
				if err != nil {
					return nil, err
				}
				if childScore > parentScore {
					out = append(out, child)
				}
			}
		}
	}

	return out, nil
}

// run executes the main loop and, once it stops, hands the leftover
// frontier off to the finalize package's greedy merger. It returns the
// caller's final sorted predicate list (accepted ∪ conditionally
// accepted, after the finaliser's last reconciliation merge).
func (e *Engine) run(mode childMode) ([]*predicate.Conjunction, error) {
	var frontier, accepted, rejected sortedQueue

	allowed := make(map[string]bool, len(e.opts.columns))
	for _, col := range e.opts.columns {
		allowed[col] = true
	}

	for _, p := range e.basePredicates {
		inColumns := true
		for _, k := range p.Keys() {
			if len(allowed) > 0 && !allowed[k] {
				inColumns = false
			}
		}
		if !inColumns {
			continue
		}
		s, err := e.score(p)
		if err != nil {
			return nil, err
		}
		frontier.Insert(p, s)
	}

	iters := 0
	for frontier.Len() > 0 {
		if e.opts.maxIters > 0 && iters >= e.opts.maxIters {
			break
		}

		select {
		case <-e.opts.ctx.Done():
			return nil, e.opts.ctx.Err()
		default:
		}

		if e.opts.conditionalThreshold != nil {
			_, frontTop, frontOK := peekScore(&frontier)
			_, accTop, accOK := peekScore(&accepted)
			top := frontTop
			if accOK && (!frontOK || accTop > top) {
				top = accTop
			}
			if (frontOK || accOK) && top > *e.opts.conditionalThreshold {
				break
			}
		}

		p, pScore, _ := frontier.PopMax()
		iters++

		kids, err := e.children(p, pScore, mode)
		if err != nil {
			return nil, err
		}

		parentDone := true
		allSubsumed := len(kids) > 0
		coveredKeys := make(map[string]bool)

		for _, c := range kids {
			cScore, err := e.score(c)
			if err != nil {
				return nil, err
			}
			subsumedBy := e.findSubsumer(&accepted, c, cScore)
			if subsumedBy == nil {
				parentDone = false
				frontier.Insert(c, cScore)
				continue
			}
			for _, k := range subsumedBy.Keys() {
				coveredKeys[k] = true
			}
		}
		if allSubsumed {
			for _, k := range p.Keys() {
				if !coveredKeys[k] {
					allSubsumed = false
					break
				}
			}
		}

		if !parentDone {
			e.opts.onStep(iters, p, frontier.Len(), accepted.Len(), rejected.Len())
			continue
		}

		switch {
		case allSubsumed:
			rejected.Insert(p, pScore)
		case pScore > e.opts.threshold:
			e.resolveAcceptance(p, pScore, &accepted, &rejected)
		default:
			rejected.Insert(p, pScore)
		}

		e.opts.onStep(iters, p, frontier.Len(), accepted.Len(), rejected.Len())
	}

	leftover := frontier.Slice()
	acceptedOut := accepted.Slice()
	return finalize.Finalize(e.scoreFn, leftover, acceptedOut, e.opts.conditionalThreshold)
}

// resolveAcceptance decides whether to accept p into the result set:
// drop p if a no-worse, more specific predicate is already accepted
// under it, or if p is a base predicate already covered by a no-worse
// accepted predicate above it; otherwise accept p and demote whatever
// it now strictly dominates.
func (e *Engine) resolveAcceptance(p *predicate.Conjunction, pScore float64, accepted, rejected *sortedQueue) {
	var dominated []*predicate.Conjunction
	for _, a := range accepted.Slice() {
		if a.Contains(p) {
			dominated = append(dominated, a)
		}
	}
	for _, b := range dominated {
		bScore := b.CachedScore(e.scoreFn)
		if bScore >= pScore {
			rejected.Insert(p, pScore)
			return
		}
	}

	if p.IsBase() {
		for _, a := range accepted.Slice() {
			if p.Contains(a) && pScore <= a.CachedScore(e.scoreFn) {
				rejected.Insert(p, pScore)
				return
			}
		}
	}

	accepted.Insert(p, pScore)
	for _, b := range dominated {
		bScore := b.CachedScore(e.scoreFn)
		accepted.Remove(b)
		rejected.Insert(b, bScore)
	}
}

// findSubsumer returns the first predicate in accepted that subsumes
// c (c ⊑ a ∧ score(a) > score(c)), or nil.
func (e *Engine) findSubsumer(accepted *sortedQueue, c *predicate.Conjunction, cScore float64) *predicate.Conjunction {
	for _, a := range accepted.Slice() {
		if c.Contains(a) && a.CachedScore(e.scoreFn) > cScore {
			return a
		}
	}
	return nil
}

// peekScore reports the top-of-queue predicate and score, or ok=false
// if empty.
func peekScore(q *sortedQueue) (*predicate.Conjunction, float64, bool) {
	return q.PeekMax()
}

// Rows selects the rows of the engine's table matching p, by way of
// tabular.Table.Select (p satisfies tabular.Masked via CachedMask).
func (e *Engine) Rows(p *predicate.Conjunction) (tabular.Rows, error) {
	return e.table.Select(p)
}
