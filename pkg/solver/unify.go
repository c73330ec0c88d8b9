package solver

// Unify declaratively asks two variables to denote the same unknown. Its
// own OnUpdated just forwards to SearchState.Unify the first time it
// fires, lifting a unification requested at Puzzle-construction time into
// the search state at the start of search.
// Grounded directly on original_source/src/constraint/unify.rs.
type Unify struct {
	BasePropagator
	var1, var2 VarToken
}

// NewUnify allocates a constraint unifying var1 and var2.
func NewUnify(var1, var2 VarToken) *Unify {
	return &Unify{var1: var1, var2: var2}
}

func (u *Unify) Vars() []VarToken {
	if u.var1 == u.var2 {
		return nil
	}
	return []VarToken{u.var1, u.var2}
}

func (u *Unify) OnUpdated(search *SearchState) error {
	if u.var1 == u.var2 {
		return nil
	}
	return search.Unify(u.var1, u.var2)
}

func (u *Unify) Substitute(from, to VarToken) (Propagator, error) {
	var1, var2 := u.var1, u.var2
	if var1 == from {
		var1 = to
	}
	if var2 == from {
		var2 = to
	}
	return &Unify{var1: var1, var2: var2}, nil
}
