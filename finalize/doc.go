// Package finalize is the greedy merger and finaliser component of
// predicatesearch: once the search engine's main loop stops, it
// coalesces whatever is left on the frontier — predicates
// that share the same set of keys but never separately cleared the
// accepted bar — into a smaller conditionally-accepted set, then
// reconciles that set against accepted to produce the run's final,
// score-descending predicate list.
//
// Finalize is invoked automatically at the end of search.Engine's
// Run/Refine/Expand/ExpandRefine; it is exported separately so a
// caller who wants to drive the main loop step by step (e.g. to
// inspect intermediate frontiers) can still finalise a leftover
// frontier on its own terms.
package finalize
