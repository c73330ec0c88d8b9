package solver

// AllDifferent requires every watched variable to take a distinct value.
// Grounded directly on original_source/src/constraint/alldifferent.rs.
type AllDifferent struct {
	BasePropagator
	vars []VarToken
}

// NewAllDifferent allocates an all-different constraint over vars.
func NewAllDifferent(vars []VarToken) *AllDifferent {
	return &AllDifferent{vars: append([]VarToken(nil), vars...)}
}

func (a *AllDifferent) Vars() []VarToken { return a.vars }

// OnAssigned removes val from every other watched variable's candidates.
func (a *AllDifferent) OnAssigned(search *SearchState, v VarToken, val Val) error {
	for _, other := range a.vars {
		if other == v {
			continue
		}
		if err := search.RemoveCandidate(other, val); err != nil {
			return err
		}
	}
	return nil
}

// OnUpdated applies the cheap half of value-pigeonhole: if there are more
// unassigned watched variables than values they could jointly take,
// that's a contradiction; if there are exactly as many, every value is
// forced to appear exactly once, so a value with only one possible
// bearer can be assigned to it immediately.
func (a *AllDifferent) OnUpdated(search *SearchState) error {
	numUnassigned := 0
	soleBearer := make(map[Val]VarToken)
	ambiguous := make(map[Val]bool)

	for _, v := range a.vars {
		if search.IsAssigned(v) {
			continue
		}
		numUnassigned++
		for _, val := range search.GetUnassigned(v) {
			if _, seen := soleBearer[val]; seen {
				ambiguous[val] = true
			} else {
				soleBearer[val] = v
			}
		}
	}

	if numUnassigned > len(soleBearer) {
		return ErrContradiction
	}
	if numUnassigned == len(soleBearer) {
		for val, v := range soleBearer {
			if ambiguous[val] {
				continue
			}
			if err := search.SetCandidate(v, val); err != nil {
				return err
			}
		}
	}
	return nil
}

// Substitute rewrites from to to. Fails if to is already one of the
// watched variables, since that would equate two variables that must
// differ.
func (a *AllDifferent) Substitute(from, to VarToken) (Propagator, error) {
	idx := -1
	for i, v := range a.vars {
		if v == from {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrContradiction
	}
	for _, v := range a.vars {
		if v == to {
			return nil, ErrContradiction
		}
	}
	newVars := append([]VarToken(nil), a.vars...)
	newVars[idx] = to
	return &AllDifferent{vars: newVars}, nil
}
