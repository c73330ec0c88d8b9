package solver

import "errors"

// ErrContradiction is the single sentinel every domain-mutation method and
// propagator callback returns for the expected, ordinary failure channel
// of search (spec.md §7): "this branch is infeasible." It carries no
// payload; propagators forward it unwrapped, and the search engine uses
// it only to decide to back up and try the next candidate.
var ErrContradiction = errors.New("solver: contradiction")

// ErrSubstituteUnsupported is returned by BasePropagator's default
// Substitute for propagators that never participate in unification and so
// decline to implement it (the Open Question default for substitute:
// some propagators, like a nonogram's row/column propagator, are never
// used alongside Unify in practice).
var ErrSubstituteUnsupported = errors.New("solver: substitute not supported by this propagator")
