// SPDX-License-Identifier: MIT
//
// File: relations.go
// Role: containment, adjacency, and subsumption relations between
// conjunctions — the predicates the search frontier and the merge
// algebra both consult.
//
// Grounded on original_source/predicate_induction/predicate.py's
// is_contained_key/is_adjacent_key, restated as explicit per-column
// helpers since Go has no implicit None-as-"all columns" shorthand.

package predicate

// ContainsAlong reports whether c ⊑_column o: column is a key of both,
// and c's value set for column is a subset of o's.
func (c *Conjunction) ContainsAlong(column string, o *Conjunction) bool {
	c.adjMu.Lock()
	defer c.adjMu.Unlock()
	return c.containsAlongUnlocked(column, o)
}

// containsAlongUnlocked is ContainsAlong without acquiring adjMu. It
// reads only columnValue, which is write-once after construction, so
// Merge's helpers call it without a lock on the neighbors they get
// from adjacentAlong.
func (c *Conjunction) containsAlongUnlocked(column string, o *Conjunction) bool {
	cv, ok := c.columnValue[column]
	if !ok {
		return false
	}
	ov, ok := o.columnValue[column]
	if !ok {
		return false
	}
	return cv.Subset(ov)
}

// Contains reports whether c ⊑ o: every key of o is also a key of c,
// and c's value set is a subset of o's along every such key. A predicate
// with more column constraints is contained by the looser one — c is
// the more specific side of the relation, o the more general one.
func (c *Conjunction) Contains(o *Conjunction) bool {
	for _, col := range o.keys {
		if !c.containsAlongUnlocked(col, o) {
			return false
		}
	}
	return true
}

// AdjacentAlong reports whether o is in c's adjacency list for column —
// for base predicates, o is one bin-index step away from c along an
// ordinal column, or any other value of the same nominal or binary
// column (Open Question resolution: list membership, not map-key presence,
// since a column can be present in c's adjacent map with an empty
// slice once all of its neighbors have been absorbed by merges).
func (c *Conjunction) AdjacentAlong(column string, o *Conjunction) bool {
	c.adjMu.Lock()
	defer c.adjMu.Unlock()
	return c.isAdjacentAlongUnlocked(column, o)
}

func (c *Conjunction) isAdjacentAlongUnlocked(column string, o *Conjunction) bool {
	for _, p := range c.adjacent[column] {
		if p == o {
			return true
		}
	}
	return false
}

// adjacentAlong returns c's adjacency list for column (nil if c has no
// neighbor along column, e.g. a column with a single distinct value,
// or a merged predicate whose neighbors along column were all
// absorbed).
func (c *Conjunction) adjacentAlong(column string) []*Conjunction {
	c.adjMu.Lock()
	defer c.adjMu.Unlock()
	return c.adjacent[column]
}

// AdjacentTo returns a copy of c's adjacency list along column, for
// callers (the search engine's Expand generator) that need to
// enumerate every neighbor rather than test membership of one.
func (c *Conjunction) AdjacentTo(column string) []*Conjunction {
	list := c.adjacentAlong(column)
	out := make([]*Conjunction, len(list))
	copy(out, list)
	return out
}

// Adjacent reports whether c and o are adjacent along at least one
// shared column.
func (c *Conjunction) Adjacent(o *Conjunction) bool {
	for _, col := range c.keys {
		if c.AdjacentAlong(col, o) {
			return true
		}
	}
	return false
}

// Subsumes reports whether c subsumes o: o ⊑ c (c is the more general
// side of Contains) and score(o) ≤ score(c). Subsumption lets the frontier
// drop a candidate once a more general predicate matches or beats its
// score.
func (c *Conjunction) Subsumes(o *Conjunction, f ScoreFunc) bool {
	if !o.Contains(c) {
		return false
	}
	return c.CachedScore(f) >= o.CachedScore(f)
}
