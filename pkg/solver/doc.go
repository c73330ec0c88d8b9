// Package solver implements a finite-domain constraint solver for integer
// logic puzzles. Callers declare variables over finite sets of integer
// candidates, attach constraints (all-different, linear equality, variable
// unification, or user-defined propagators), and search for one solution,
// the unique solution, or all solutions.
//
// The search engine alternates unit propagation ("gimmes"), propagator
// firing, and depth-first backtracking guided by a minimum-remaining-values
// variable heuristic. Search states are clone-on-write snapshots, so
// branching costs only a per-variable cell copy rather than a deep copy of
// every domain.
package solver
