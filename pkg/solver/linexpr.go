package solver

// LinExpr is a linear combination of variables plus a constant, with exact
// rational coefficients: constant + sum(coef_i * var_i). Terms with a zero
// coefficient are never stored. Variables are also kept in the order they
// were first introduced into the expression, so propagators built from a
// LinExpr (Equality in particular) watch and iterate variables in a
// deterministic order, matching the declaration-order tie-break the
// search engine relies on for reproducible guess counts (spec.md §4.7).
//
// Go has no operator overloading, so where the original crate builds
// expressions with `+`, `-` and `*` (original_source/src/linexpr.rs), this
// type exposes builder methods instead: Add, Sub, Neg, Scale.
type LinExpr struct {
	constant Coef
	terms    map[VarToken]Coef
	order    []VarToken
}

// LinExprFromVal builds the constant expression v.
func LinExprFromVal(v Val) LinExpr {
	return LinExpr{constant: CoefFromInt(v)}
}

// LinExprFromCoef builds the constant expression c.
func LinExprFromCoef(c Coef) LinExpr {
	return LinExpr{constant: c}
}

// LinExprFromVar builds the expression 1*var.
func LinExprFromVar(v VarToken) LinExpr {
	return LinExpr{constant: coefZero, terms: map[VarToken]Coef{v: coefOne}, order: []VarToken{v}}
}

// Constant returns the expression's constant term.
func (e LinExpr) Constant() Coef { return e.constant }

// NumTerms returns the number of variables with a nonzero coefficient.
func (e LinExpr) NumTerms() int { return len(e.order) }

// Vars returns the expression's variables in first-introduced order.
func (e LinExpr) Vars() []VarToken {
	return append([]VarToken(nil), e.order...)
}

// Coefficient returns the coefficient of var in e (zero if var does not
// appear).
func (e LinExpr) Coefficient(v VarToken) Coef {
	if c, ok := e.terms[v]; ok {
		return c
	}
	return coefZero
}

// ForEachTerm calls f for every variable with a nonzero coefficient, in
// first-introduced order.
func (e LinExpr) ForEachTerm(f func(VarToken, Coef)) {
	for _, v := range e.order {
		f(v, e.terms[v])
	}
}

// clone returns a copy of e whose terms map and order slice can be
// mutated without affecting e.
func (e LinExpr) clone() LinExpr {
	out := LinExpr{constant: e.constant}
	if len(e.order) > 0 {
		out.terms = make(map[VarToken]Coef, len(e.terms))
		for v, c := range e.terms {
			out.terms[v] = c
		}
		out.order = append([]VarToken(nil), e.order...)
	}
	return out
}

// withTerm sets the coefficient of v to c, dropping the term entirely if
// c is zero.
func (e LinExpr) withTerm(v VarToken, c Coef) LinExpr {
	out := e.clone()
	if c.IsZero() {
		if _, ok := out.terms[v]; ok {
			delete(out.terms, v)
			for i, ov := range out.order {
				if ov == v {
					out.order = append(out.order[:i], out.order[i+1:]...)
					break
				}
			}
		}
		return out
	}
	if out.terms == nil {
		out.terms = make(map[VarToken]Coef, 1)
	}
	if _, ok := out.terms[v]; !ok {
		out.order = append(out.order, v)
	}
	out.terms[v] = c
	return out
}

// AddTerm returns e with c added to var's coefficient.
func (e LinExpr) AddTerm(v VarToken, c Coef) LinExpr {
	return e.withTerm(v, e.Coefficient(v).Add(c))
}

// Add returns e + other.
func (e LinExpr) Add(other LinExpr) LinExpr {
	out := e.clone()
	out.constant = out.constant.Add(other.constant)
	other.ForEachTerm(func(v VarToken, c Coef) {
		out = out.AddTerm(v, c)
	})
	return out
}

// Sub returns e - other.
func (e LinExpr) Sub(other LinExpr) LinExpr {
	return e.Add(other.Neg())
}

// Neg returns -e.
func (e LinExpr) Neg() LinExpr {
	return e.Scale(CoefFromInt(-1))
}

// Scale returns c * e.
func (e LinExpr) Scale(c Coef) LinExpr {
	if c.IsZero() {
		return LinExpr{constant: coefZero}
	}
	out := LinExpr{constant: e.constant.Mul(c)}
	if len(e.order) > 0 {
		out.terms = make(map[VarToken]Coef, len(e.terms))
		out.order = append([]VarToken(nil), e.order...)
		for v, tc := range e.terms {
			out.terms[v] = tc.Mul(c)
		}
	}
	return out
}

// substitute returns e with every occurrence of var replaced by repl,
// scaled by var's coefficient in e. Used by the unify propagator to fold
// a redirected variable's constraints onto its representative
// (original_source/src/constraint/unify.rs).
func (e LinExpr) substitute(v VarToken, repl LinExpr) LinExpr {
	c, ok := e.terms[v]
	if !ok {
		return e
	}
	out := e.withTerm(v, coefZero)
	return out.Add(repl.Scale(c))
}

// evaluate returns the expression's value when every term's variable has
// the given fixed value, plus whether every term resolved (lookup
// returned ok for all of them). Callers pass a lookup rather than a full
// assignment so the function works mid-propagation with only some
// variables fixed.
func (e LinExpr) evaluate(lookup func(VarToken) (Val, bool)) (Coef, bool) {
	total := e.constant
	for _, v := range e.order {
		val, ok := lookup(v)
		if !ok {
			return Coef{}, false
		}
		total = total.Add(e.terms[v].Mul(CoefFromInt(val)))
	}
	return total, true
}
