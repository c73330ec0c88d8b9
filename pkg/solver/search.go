package solver

// This file is the search engine: gimme sweeps, propagator draining to a
// fixed point, MRV branch selection, clone-and-recurse, and the
// Step/SolveAny/SolveUnique/SolveAll entry points. Grounded on the
// teacher's fd.go queue-drain propagation loop (reworked here from
// trail-based mutate/undo into explicit SearchState cloning, per
// spec.md §3/§9) and labeling.go's MRV/first-fail variable-selection
// shape (fixed rather than pluggable, per spec.md §4.7 and DESIGN.md's
// Open Question resolution).

// propagate runs gimme sweeps and propagator draining to a fixed point,
// per spec.md §4.7's Propagate state: while the wake-set is non-empty,
// sweep for singleton domains (assigning them), then drain the wake-set
// into OnUpdated calls, repeating until nothing is left pending.
func propagate(s *SearchState) error {
	for s.wake.Any() {
		for {
			progressed := false
			for idx := range s.cells {
				c := s.cells[idx]
				if c.kind != cellUnassigned {
					continue
				}
				if c.domain.isEmpty() {
					return ErrContradiction
				}
				if v, ok := c.domain.singleton(); ok {
					if err := s.assign(idx, v); err != nil {
						return err
					}
					progressed = true
				}
			}
			if !progressed {
				break
			}
		}

		pending := s.wake.Clone()
		s.wake.ClearAll()
		for i, ok := pending.NextSet(0); ok; i, ok = pending.NextSet(i + 1) {
			if err := s.props.props[i].OnUpdated(s); err != nil {
				return err
			}
		}
	}
	return nil
}

// selectBranchVar returns the index of the Unassigned variable with the
// fewest remaining candidates, ties broken by declaration order, or false
// if every variable is assigned.
func (s *SearchState) selectBranchVar() (int, bool) {
	best, bestLen := -1, -1
	for idx, c := range s.cells {
		if c.kind != cellUnassigned {
			continue
		}
		n := c.domain.len()
		if best < 0 || n < bestLen {
			best, bestLen = idx, n
		}
	}
	return best, best >= 0
}

// toSolution reads off every variable's assigned value, following
// redirects.
func (s *SearchState) toSolution() *Solution {
	vals := make([]Val, len(s.cells))
	for idx := range s.cells {
		v, _ := s.GetAssigned(VarToken{puzzle: s.puzzle, idx: idx})
		vals[idx] = v
	}
	return &Solution{puzzle: s.puzzle, vals: vals}
}

// search recurses depth-first, appending every Solution found to out,
// stopping once limit solutions have been collected (limit <= 0 means
// unlimited).
func (p *Puzzle) search(s *SearchState, limit int, out *[]*Solution) {
	if limit > 0 && len(*out) >= limit {
		return
	}
	if err := propagate(s); err != nil {
		p.contradictions++
		return
	}

	idx, ok := s.selectBranchVar()
	if !ok {
		*out = append(*out, s.toSolution())
		return
	}

	tok := VarToken{puzzle: p, idx: idx}
	for _, v := range s.cells[idx].domain.toSlice() {
		if limit > 0 && len(*out) >= limit {
			return
		}
		clone := s.clone()
		p.guesses++
		if err := clone.SetCandidate(tok, v); err != nil {
			p.contradictions++
			continue
		}
		p.search(clone, limit, out)
	}
}

func (p *Puzzle) newSolveRun() {
	p.guesses = 0
	p.contradictions = 0
}

func (p *Puzzle) logSolve(call string, solutions int) {
	if !p.Config.Diagnostics {
		return
	}
	diagLog.Debug().
		Str("call", call).
		Int("guesses", p.guesses).
		Int("contradictions", p.contradictions).
		Int("solutions", solutions).
		Msg("solve complete")
}

// Step performs one propagate phase with no branching, returning the
// resulting SearchState, or (nil, false) on contradiction.
func (p *Puzzle) Step() (*SearchState, bool) {
	p.newSolveRun()
	s := newSearchState(p)
	if err := propagate(s); err != nil {
		p.contradictions++
		p.logSolve("step", 0)
		return nil, false
	}
	p.logSolve("step", 0)
	return s, true
}

// SolveAny returns one solution, or (nil, false) if none exists.
func (p *Puzzle) SolveAny() (*Solution, bool) {
	p.newSolveRun()
	var out []*Solution
	p.search(newSearchState(p), 1, &out)
	p.logSolve("solve_any", len(out))
	if len(out) == 0 {
		return nil, false
	}
	return out[0], true
}

// SolveUnique returns the solution only if it is the only one; otherwise
// (nil, false).
func (p *Puzzle) SolveUnique() (*Solution, bool) {
	p.newSolveRun()
	var out []*Solution
	p.search(newSearchState(p), 2, &out)
	p.logSolve("solve_unique", len(out))
	if len(out) != 1 {
		return nil, false
	}
	return out[0], true
}

// SolveAll returns every solution.
func (p *Puzzle) SolveAll() []*Solution {
	p.newSolveRun()
	var out []*Solution
	p.search(newSearchState(p), 0, &out)
	p.logSolve("solve_all", len(out))
	return out
}
