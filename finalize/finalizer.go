// SPDX-License-Identifier: MIT
//
// File: finalizer.go
// Role: bucket the leftover frontier by key tuple, pre-prune against
// already-conditionally-accepted predicates, greedily coalesce each
// bucket, then reconcile conditionally accepted predicates against
// accepted to produce the run's final sorted output.
//
// Grounded on original_source/predicate_induction/predicate_induction.py's
// greedy_merge/greedy_merge_step/greedy_merge_predicate: "pop highest,
// try to absorb every adjacent-and-no-worse neighbor, restart the scan
// from the merged result" — restated with the deepcopy-before-iteration
// defense modeled as an index-and-skip scan rather than literal
// cloning, grounded on flow/dinic.go's level-graph index bookkeeping
// style.

package finalize

import (
	"sort"
	"strings"

	"github.com/katalvlaran/predicatesearch/predicate"
)

// maxInnerIterations bounds the greedy coalescence's merge-and-restart
// recursion, guaranteeing termination under pathological adjacency
// loops.
const maxInnerIterations = 100_000

// Finalize runs the greedy merger over the search engine's leftover
// frontier and its accepted set, returning the final accepted ∪
// conditionally accepted predicate list sorted by score descending.
//
// conditionalThreshold (nil if unset) is the bar applied to
// conditional acceptance during greedy coalescence: a predicate
// scoring at or below it is dropped rather than conditionally kept.
// The plain acceptance threshold has already been applied by the time
// a predicate reaches accepted, so Finalize does not take it
// separately.
func Finalize(scoreFn predicate.ScoreFunc, leftoverFrontier, accepted []*predicate.Conjunction, conditionalThreshold *float64) ([]*predicate.Conjunction, error) {
	if scoreFn == nil {
		return nil, ErrScoreFuncNil
	}

	buckets := bucketByKeys(leftoverFrontier)

	bucketOrder := make([]string, 0, len(buckets))
	for k := range buckets {
		bucketOrder = append(bucketOrder, k)
	}
	sort.Strings(bucketOrder)

	var conditionallyAccepted []*predicate.Conjunction
	for _, k := range bucketOrder {
		bucket := buckets[k]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].CachedScore(scoreFn) > bucket[j].CachedScore(scoreFn)
		})
		pruned := prePrune(bucket, conditionallyAccepted, scoreFn)
		merged := greedyCoalesce(pruned, scoreFn, conditionalThreshold)
		conditionallyAccepted = append(conditionallyAccepted, merged...)
	}

	final := reconcile(accepted, conditionallyAccepted, scoreFn)
	sort.SliceStable(final, func(i, j int) bool {
		return final[i].CachedScore(scoreFn) > final[j].CachedScore(scoreFn)
	})
	return final, nil
}

// bucketByKeys partitions predicates by tuple(keys): only predicates
// built from exactly the same columns are ever candidates to merge.
func bucketByKeys(predicates []*predicate.Conjunction) map[string][]*predicate.Conjunction {
	buckets := make(map[string][]*predicate.Conjunction)
	for _, p := range predicates {
		k := strings.Join(p.Keys(), "\x1f")
		buckets[k] = append(buckets[k], p)
	}
	return buckets
}

// prePrune discards any p whose value set along some shared key is a
// subset of an already-conditionally-accepted predicate's value set
// along that key, where the conditionally-accepted predicate scores
// higher.
func prePrune(bucket, conditionallyAccepted []*predicate.Conjunction, scoreFn predicate.ScoreFunc) []*predicate.Conjunction {
	if len(conditionallyAccepted) == 0 {
		return bucket
	}
	out := make([]*predicate.Conjunction, 0, len(bucket))
	for _, p := range bucket {
		if isPrePruned(p, conditionallyAccepted, scoreFn) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func isPrePruned(p *predicate.Conjunction, conditionallyAccepted []*predicate.Conjunction, scoreFn predicate.ScoreFunc) bool {
	pScore := p.CachedScore(scoreFn)
	for _, ca := range conditionallyAccepted {
		caScore := ca.CachedScore(scoreFn)
		if caScore <= pScore {
			continue
		}
		for _, col := range p.Keys() {
			if p.ContainsAlong(col, ca) {
				return true
			}
		}
	}
	return false
}

// greedyCoalesce is the greedy coalescence pass: repeatedly pop the
// highest-scoring survivor, absorb every neighbor
// adjacent along every key that merges in without a score regression,
// drop every neighbor it fully (and no-worse-scoringly) contains, and
// emit the result.
func greedyCoalesce(bucket []*predicate.Conjunction, scoreFn predicate.ScoreFunc, conditionalThreshold *float64) []*predicate.Conjunction {
	alive := make([]bool, len(bucket))
	for i := range alive {
		alive[i] = true
	}

	var out []*predicate.Conjunction
	innerIters := 0

	for {
		popIdx := firstAlive(alive)
		if popIdx < 0 {
			break
		}
		p := bucket[popIdx]
		alive[popIdx] = false

		if conditionalThreshold != nil && p.CachedScore(scoreFn) <= *conditionalThreshold {
			continue
		}

		restart := true
		for restart && innerIters < maxInnerIterations {
			restart = false
			for i, q := range bucket {
				if !alive[i] {
					continue
				}
				innerIters++
				if innerIters >= maxInnerIterations {
					break
				}

				if adjacentAlongEveryKey(p, q) {
					merged := p.Merge(q)
					if merged.CachedScore(scoreFn) >= p.CachedScore(scoreFn) {
						alive[i] = false
						p = merged
						restart = true
						break
					}
				} else if q.Contains(p) && q.CachedScore(scoreFn) <= p.CachedScore(scoreFn) {
					alive[i] = false
				}
			}
		}

		out = append(out, p)
	}

	return out
}

func firstAlive(alive []bool) int {
	for i, a := range alive {
		if a {
			return i
		}
	}
	return -1
}

func adjacentAlongEveryKey(p, q *predicate.Conjunction) bool {
	keys := p.Keys()
	if len(keys) == 0 {
		return false
	}
	for _, col := range keys {
		if !p.AdjacentAlong(col, q) {
			return false
		}
	}
	return true
}

// reconcile is the final merge: for every pair (a ∈ accepted,
// c ∈ conditionallyAccepted) with a ⊑ c ∨ c ⊑ a, keep whichever scores
// strictly higher, dropping the other; ties keep a.
func reconcile(accepted, conditionallyAccepted []*predicate.Conjunction, scoreFn predicate.ScoreFunc) []*predicate.Conjunction {
	acceptedDropped := make([]bool, len(accepted))
	caDropped := make([]bool, len(conditionallyAccepted))

	for i, a := range accepted {
		if acceptedDropped[i] {
			continue
		}
		for j, c := range conditionallyAccepted {
			if caDropped[j] {
				continue
			}
			if !(a.Contains(c) || c.Contains(a)) {
				continue
			}
			aScore, cScore := a.CachedScore(scoreFn), c.CachedScore(scoreFn)
			if cScore > aScore {
				acceptedDropped[i] = true
				break
			}
			caDropped[j] = true
		}
	}

	out := make([]*predicate.Conjunction, 0, len(accepted)+len(conditionallyAccepted))
	for i, a := range accepted {
		if !acceptedDropped[i] {
			out = append(out, a)
		}
	}
	for j, c := range conditionallyAccepted {
		if !caDropped[j] {
			out = append(out, c)
		}
	}
	return out
}
