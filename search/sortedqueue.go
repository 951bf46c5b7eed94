// SPDX-License-Identifier: MIT
//
// sortedqueue.go — the score-descending collection backing
// frontier/accepted/rejected: a full-scan sorted
// insert, O(|queue|) per insert, kept simple rather than reaching for
// container/heap — a heap gives up full sort order between pops,
// which PeekMax/Slice both need.

package search

import "github.com/katalvlaran/predicatesearch/predicate"

type queueEntry struct {
	pred  *predicate.Conjunction
	score float64
	seq   int // insertion order, for stable tiebreak among equal scores
}

// sortedQueue holds predicates ordered by score descending, ties
// broken by ascending insertion order.
type sortedQueue struct {
	entries []queueEntry
	nextSeq int
}

// Insert places p into the queue in sorted position. Complexity: O(n).
func (q *sortedQueue) Insert(p *predicate.Conjunction, score float64) {
	e := queueEntry{pred: p, score: score, seq: q.nextSeq}
	q.nextSeq++

	i := 0
	for i < len(q.entries) && q.entries[i].score >= score {
		i++
	}
	q.entries = append(q.entries, queueEntry{})
	copy(q.entries[i+1:], q.entries[i:])
	q.entries[i] = e
}

// PopMax removes and returns the highest-scoring entry. ok is false
// if the queue is empty.
func (q *sortedQueue) PopMax() (*predicate.Conjunction, float64, bool) {
	if len(q.entries) == 0 {
		return nil, 0, false
	}
	e := q.entries[0]
	q.entries = q.entries[1:]
	return e.pred, e.score, true
}

// PeekMax returns the highest-scoring entry without removing it.
func (q *sortedQueue) PeekMax() (*predicate.Conjunction, float64, bool) {
	if len(q.entries) == 0 {
		return nil, 0, false
	}
	e := q.entries[0]
	return e.pred, e.score, true
}

// Remove deletes the first entry whose predicate is p (by pointer
// identity). Reports whether an entry was removed.
func (q *sortedQueue) Remove(p *predicate.Conjunction) bool {
	for i, e := range q.entries {
		if e.pred == p {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (q *sortedQueue) Len() int { return len(q.entries) }

// Slice returns the predicates in score-descending order. The
// returned slice is a copy; callers may not mutate queue state
// through it.
func (q *sortedQueue) Slice() []*predicate.Conjunction {
	out := make([]*predicate.Conjunction, len(q.entries))
	for i, e := range q.entries {
		out[i] = e.pred
	}
	return out
}
