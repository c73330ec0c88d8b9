package solver

// Propagator removes candidates that cannot participate in any solution
// extending the current partial search state. Propagators are shared
// immutably across every search state in a search tree: they must not
// cache information per branch, since the same propagator instance serves
// every sibling branch (original_source/src/constraint/mod.rs).
type Propagator interface {
	// Vars returns the variable tokens this propagator watches. Called
	// once at registration to build the watcher index, and again after
	// every Substitute to rebuild it.
	Vars() []VarToken

	// OnAssigned runs when a watched variable transitions from
	// Unassigned to Assigned. It is an optimization hint: OnUpdated
	// alone would observe the same change, but a propagator that knows
	// exactly which variable just settled can often avoid recomputing
	// from scratch.
	OnAssigned(search *SearchState, v VarToken, val Val) error

	// OnUpdated runs whenever any watched variable's candidates
	// changed, including the assigned transition.
	OnUpdated(search *SearchState) error

	// Substitute returns a replacement propagator with every occurrence
	// of from rewritten to to, for use after unification. It may return
	// ErrContradiction if the substitution is inconsistent (e.g. it
	// would equate two variables of an all-different).
	Substitute(from, to VarToken) (Propagator, error)
}

// BasePropagator supplies no-op defaults for OnAssigned/OnUpdated and the
// Open Question default for Substitute (spec.md §9). User propagators
// that only need one or two callbacks can embed BasePropagator instead of
// writing out every method.
type BasePropagator struct{}

func (BasePropagator) OnAssigned(*SearchState, VarToken, Val) error { return nil }
func (BasePropagator) OnUpdated(*SearchState) error                 { return nil }
func (BasePropagator) Substitute(VarToken, VarToken) (Propagator, error) {
	return nil, ErrSubstituteUnsupported
}

// propagatorSet is the shared propagator list plus its reverse watcher
// index (variable index -> watching propagator indices). It stands in
// for the original crate's Rc<Vec<Rc<Constraint>>>: a plain Go pointer is
// enough reference-counting, since the garbage collector frees it once
// the last SearchState sharing it is gone. Unification builds a new
// propagatorSet; nothing ever mutates one in place, so unrelated search
// states keep sharing the same pointer.
type propagatorSet struct {
	props    []Propagator
	watchers map[int][]int
}

func newPropagatorSet(props []Propagator) *propagatorSet {
	ps := &propagatorSet{props: props, watchers: make(map[int][]int, len(props))}
	for i, p := range props {
		for _, v := range p.Vars() {
			ps.watchers[v.idx] = append(ps.watchers[v.idx], i)
		}
	}
	return ps
}
