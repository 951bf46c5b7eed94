// Package tabular is the Data component of predicatesearch: an
// in-memory, row-indexed table with a per-column dtype map and the
// numeric→ordinal binning step the search engine needs before it can
// treat a column as an axis of adjacency.
//
// A Table is built once (Load or LoadCSV) and never mutated in place
// except for its one-time numeric→ordinal conversion, which installs a
// "shadow" copy of the pre-conversion columns so callers can still
// recover original values (e.g. a scoring function that wants the raw
// float, or Select() returning human-readable rows).
//
// Under the hood:
//
//	Dtype        — nominal / ordinal / numeric / binary
//	Column       — one typed slice of length N (N = row count)
//	Table        — name → Column, plus the dtype map and shadow state
//	BitMask      — dense bit-per-row selector, the currency predicates
//	               and scores are computed over
//
// Nominal, ordinal and binary columns are admissible to the search
// engine (predicate.BottomUpInit filters on this, treating binary as
// admissible-as-nominal); numeric columns must first be converted via
// ConvertAll. See Dtype's doc comment.
package tabular
