// Package search is the Frontier search component of predicatesearch:
// a bottom-up beam-style search over predicate.Conjunction values,
// growing the frontier one refine or expand step at a time until it
// drains, a caller-set iteration cap is hit, or a conditional
// threshold trips an early stop.
//
// Each run keeps three score-ordered collections — frontier, accepted
// and rejected — local to that call; an Engine holds only its inputs
// and options between runs. When the main loop stops, the leftover
// frontier goes to finalize.Finalize, which builds the conditionally
// accepted set and reconciles it with accepted. NewEngine validates
// once, and the public entry points hand off to the private main loop.
package search
