// Package predicate is the Predicate component of predicatesearch: a
// Conjunction is an axis-aligned selector over a tabular.Table,
// semantically AND_c (row[c] ∈ V_c), together with the merge algebra
// that lets the search engine grow conjunctions one column or one
// adjacent value at a time.
//
// Under the hood:
//
//	ValueSet    — the unordered set of admissible values for one column
//	Conjunction — keys, per-column value sets and masks, adjacency,
//	              and the lazy score cache the engine consults
//
// A Conjunction's mask and score caches are write-once: once
// computed, they are never invalidated, matching the "lazy cell with
// write-once semantics" guidance for the search engine's immutable,
// single-threaded-by-default evaluation model (callers that do
// introduce parallelism get idempotent, if wasteful, races — see
// CachedScore's doc comment).
//
// BottomUpInit builds the base predicates (one per distinct value of
// each admissible column), converting numeric columns to ordinal on
// the caller's table first if that hasn't already happened. Ordinal
// base predicates are chained into adjacency lists by ascending bin
// index; nominal and binary base predicates, having no linear order
// to chain, are made all-pairs mutually adjacent within their column.
package predicate
