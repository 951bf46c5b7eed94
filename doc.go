// Package predicatesearch finds interpretable conjunctive predicates
// over tabular data that best explain a caller-supplied scoring
// function.
//
// A predicate is an axis-aligned selector: a conjunction of per-column
// constraints, each admitting a set of values for that column (e.g.
// `region ∈ {"west", "south"} AND tier = "gold"`). Given a table and a
// function that scores any row subset, predicatesearch performs a
// bottom-up beam search: it starts from every single-column,
// single-value predicate, repeatedly refines (adds a column) or
// expands (widens a column's value set) the highest-scoring
// predicates still on the frontier, and keeps whatever locally
// dominates everything it contains. A final greedy merge coalesces
// whatever is left on the frontier when the search stops.
//
// The module is organized into four packages, each owning one stage
// of the pipeline:
//
//	tabular/   — Table: typed, dtype-inferring column storage and the
//	             dense BitMask row selector every predicate is built on.
//	predicate/ — Conjunction: the predicate type itself, its merge
//	             algebra, containment/adjacency/subsumption relations,
//	             and the bottom-up base-predicate enumerator.
//	search/    — Engine: the frontier/accepted/rejected bookkeeping
//	             that drives refine and expand toward a locally optimal
//	             predicate set.
//	finalize/  — Finalize: the greedy merger that coalesces leftover
//	             frontier predicates and reconciles them against the
//	             accepted set to produce the run's final, ranked
//	             result.
//
// A minimal run looks like:
//
//	tbl, err := tabular.Load(rows, nil)
//	base, err := predicate.BottomUpInit(tbl, tbl.Columns())
//	eng, err := search.NewEngine(tbl, base, scoreFn, search.WithThreshold(0))
//	result, err := eng.Run()
//
// result is a score-descending slice of *predicate.Conjunction; each
// entry's matching rows can be recovered via eng.Rows(p) or
// tbl.Select(p) directly.
package predicatesearch
