package solver

// Puzzle is the declarative model: the number of declared variables, each
// variable's initial candidate set, the registered propagators, and a
// counter for guesses attributed to the most recent solve call. Factory
// methods (Step/SolveAny/SolveUnique/SolveAll) build a fresh SearchState
// and run the engine in search.go.
//
// Grounded on original_source/src/puzzle.rs for the candidate storage and
// panic-on-fixed-cell-mutation contract, supplemented by the richer
// surface (new_vars_with_candidates_2d, solve_unique, solve_all,
// num_guesses) that the early puzzle.rs snapshot predates but every file
// under original_source/tests exercises.
type Puzzle struct {
	initial []candidateSet
	props   []Propagator

	// Config governs per-solve knobs. Unlike the teacher's pluggable
	// LabelingStrategy, the variable and value orderings are not
	// configurable: MRV/ascending is the only option, fixed by the
	// determinism requirement of spec.md §4.7.
	Config SearchConfig

	guesses        int
	contradictions int
}

// NewPuzzle allocates an empty puzzle.
func NewPuzzle() *Puzzle {
	return &Puzzle{Config: DefaultSearchConfig()}
}

// NewVar allocates a new variable with no candidates.
func (p *Puzzle) NewVar() VarToken {
	idx := len(p.initial)
	p.initial = append(p.initial, emptyDomain)
	return VarToken{puzzle: p, idx: idx}
}

// NewVarWithCandidates allocates a new variable with the given initial
// candidates.
func (p *Puzzle) NewVarWithCandidates(values []Val) VarToken {
	idx := len(p.initial)
	p.initial = append(p.initial, newOpenDomain(values))
	return VarToken{puzzle: p, idx: idx}
}

// NewVars1D allocates n variables, each with no candidates.
func (p *Puzzle) NewVars1D(n int) []VarToken {
	out := make([]VarToken, n)
	for i := range out {
		out[i] = p.NewVar()
	}
	return out
}

// NewVarsWithCandidates1D allocates n variables, each initialized with
// the same candidate set.
func (p *Puzzle) NewVarsWithCandidates1D(n int, values []Val) []VarToken {
	out := make([]VarToken, n)
	for i := range out {
		out[i] = p.NewVarWithCandidates(values)
	}
	return out
}

// NewVars2D allocates a h x w grid of variables, each with no
// candidates, indexed grid[y][x].
func (p *Puzzle) NewVars2D(w, h int) [][]VarToken {
	out := make([][]VarToken, h)
	for y := range out {
		out[y] = p.NewVars1D(w)
	}
	return out
}

// NewVarsWithCandidates2D allocates a h x w grid of variables, each
// initialized with the same candidate set.
func (p *Puzzle) NewVarsWithCandidates2D(w, h int, values []Val) [][]VarToken {
	out := make([][]VarToken, h)
	for y := range out {
		out[y] = p.NewVarsWithCandidates1D(w, values)
	}
	return out
}

// SetValue marks var Fixed(v), recording that v was given as part of the
// problem statement. Panics if var is already fixed to a different value.
func (p *Puzzle) SetValue(tok VarToken, v Val) {
	tok.checkOwner(p)
	d := p.initial[tok.idx]
	if d.isFixed() {
		if fv, _ := d.singleton(); fv != v {
			panic("solver: attempt to set a variable already fixed to a different value")
		}
		return
	}
	p.initial[tok.idx] = newFixedDomain(v)
}

// InsertCandidates adds values to var's initial candidate set. Panics if
// var is Fixed.
func (p *Puzzle) InsertCandidates(tok VarToken, values []Val) {
	tok.checkOwner(p)
	d := p.initial[tok.idx]
	if d.isFixed() {
		panic("solver: attempt to modify a fixed variable's candidates")
	}
	p.initial[tok.idx] = newOpenDomain(append(d.toSlice(), values...))
}

// RemoveCandidates removes values from var's initial candidate set, a
// no-op for values not present. Panics if var is Fixed.
func (p *Puzzle) RemoveCandidates(tok VarToken, values []Val) {
	tok.checkOwner(p)
	d := p.initial[tok.idx]
	if d.isFixed() {
		panic("solver: attempt to modify a fixed variable's candidates")
	}
	for _, v := range values {
		d, _ = d.remove(v)
	}
	p.initial[tok.idx] = d
}

// IntersectCandidates narrows var's initial candidate set to its
// intersection with values. Panics if var is Fixed.
func (p *Puzzle) IntersectCandidates(tok VarToken, values []Val) {
	tok.checkOwner(p)
	d := p.initial[tok.idx]
	if d.isFixed() {
		panic("solver: attempt to modify a fixed variable's candidates")
	}
	if d.isEmpty() {
		return
	}
	nd, _ := d.intersectWith(newOpenDomain(values))
	p.initial[tok.idx] = nd
}

// AddConstraint registers a propagator.
func (p *Puzzle) AddConstraint(prop Propagator) {
	p.props = append(p.props, prop)
}

// AllDifferent is a convenience for AddConstraint(NewAllDifferent(vars)).
func (p *Puzzle) AllDifferent(vars []VarToken) {
	p.AddConstraint(NewAllDifferent(vars))
}

// Equals is a convenience for AddConstraint(NewEquality(lhs - rhs)).
func (p *Puzzle) Equals(lhs, rhs LinExpr) {
	p.AddConstraint(NewEquality(lhs.Sub(rhs)))
}

// Unify is a convenience for AddConstraint(NewUnify(a, b)).
func (p *Puzzle) Unify(a, b VarToken) {
	p.AddConstraint(NewUnify(a, b))
}

// NumGuesses returns the number of branch points taken in the most
// recent solve call: every recursive descent not forced by unit
// propagation.
func (p *Puzzle) NumGuesses() int { return p.guesses }
