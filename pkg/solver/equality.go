package solver

// Equality represents the constraint constant + sum(coef_i * var_i) = 0.
// Grounded directly on original_source/src/constraint/equality.rs,
// including its round-robin interval bounds propagation.
type Equality struct {
	BasePropagator
	eqn LinExpr
}

// NewEquality allocates an equality constraint from the expression eqn,
// asserting eqn == 0.
func NewEquality(eqn LinExpr) *Equality {
	return &Equality{eqn: eqn}
}

func (e *Equality) Vars() []VarToken { return e.eqn.Vars() }

// OnAssigned sums the assigned terms; if exactly one variable remains
// unassigned, solves for it and accepts only an integral, in-domain
// result.
func (e *Equality) OnAssigned(search *SearchState, _ VarToken, _ Val) error {
	sum := e.eqn.Constant()
	var unassignedVar VarToken
	var unassignedCoef Coef
	hasUnassigned := false

	for _, v := range e.eqn.Vars() {
		coef := e.eqn.Coefficient(v)
		if val, ok := search.GetAssigned(v); ok {
			sum = sum.Add(coef.Mul(CoefFromInt(val)))
			continue
		}
		if hasUnassigned {
			// More than one unassigned variable: nothing forced yet.
			return nil
		}
		unassignedVar, unassignedCoef, hasUnassigned = v, coef, true
	}

	if hasUnassigned {
		val := sum.Neg().Div(unassignedCoef)
		if !val.IsInteger() {
			return ErrContradiction
		}
		return search.SetCandidate(unassignedVar, val.ToInt())
	}
	if !sum.IsZero() {
		return ErrContradiction
	}
	return nil
}

// OnUpdated computes sum_min/sum_max of the whole expression from each
// variable's current (min, max). If the feasible range excludes zero,
// contradiction. Otherwise each unassigned variable in turn is bounded by
// summing the extremes of every other term and solving for its own
// min/max with ceiling/floor as appropriate for its coefficient's sign;
// the round-robin restarts its countdown whenever a bound actually
// tightens, and stops once a full cycle finds nothing left to tighten.
func (e *Equality) OnUpdated(search *SearchState) error {
	vars := e.eqn.Vars()
	if len(vars) == 0 {
		if !e.eqn.Constant().IsZero() {
			return ErrContradiction
		}
		return nil
	}

	sumMin, sumMax := e.eqn.Constant(), e.eqn.Constant()
	for _, v := range vars {
		coef := e.eqn.Coefficient(v)
		minVal, maxVal, err := search.GetMinMax(v)
		if err != nil {
			return err
		}
		if coef.Sign() > 0 {
			sumMin = sumMin.Add(coef.Mul(CoefFromInt(minVal)))
			sumMax = sumMax.Add(coef.Mul(CoefFromInt(maxVal)))
		} else {
			sumMin = sumMin.Add(coef.Mul(CoefFromInt(maxVal)))
			sumMax = sumMax.Add(coef.Mul(CoefFromInt(minVal)))
		}
	}

	iters := len(vars)
	pos := 0
	for iters > 0 {
		iters--
		if sumMin.Sign() > 0 || sumMax.Sign() < 0 {
			return ErrContradiction
		}

		v := vars[pos]
		pos = (pos + 1) % len(vars)
		if search.IsAssigned(v) {
			continue
		}
		coef := e.eqn.Coefficient(v)

		minVal, maxVal, err := search.GetMinMax(v)
		if err != nil {
			return err
		}

		var minBnd, maxBnd Val
		if coef.Sign() > 0 {
			minBnd = coef.Mul(CoefFromInt(maxVal)).Sub(sumMax).Div(coef).Ceil()
			maxBnd = coef.Mul(CoefFromInt(minVal)).Sub(sumMin).Div(coef).Floor()
		} else {
			minBnd = coef.Mul(CoefFromInt(maxVal)).Sub(sumMin).Div(coef).Ceil()
			maxBnd = coef.Mul(CoefFromInt(minVal)).Sub(sumMax).Div(coef).Floor()
		}

		if minVal < minBnd || maxBnd < maxVal {
			newMin, newMax, err := search.BoundCandidateRange(v, minBnd, maxBnd)
			if err != nil {
				return err
			}

			if coef.Sign() > 0 {
				sumMin = sumMin.Add(coef.Mul(CoefFromInt(newMin - minVal)))
				sumMax = sumMax.Add(coef.Mul(CoefFromInt(newMax - maxVal)))
			} else {
				sumMin = sumMin.Add(coef.Mul(CoefFromInt(newMax - maxVal)))
				sumMax = sumMax.Add(coef.Mul(CoefFromInt(newMin - minVal)))
			}
			iters = len(vars)
		}
	}
	return nil
}

// Substitute folds from out of the equation, adding its coefficient's
// contribution to to instead. A variable whose coefficient fully cancels
// is simply dropped.
func (e *Equality) Substitute(from, to VarToken) (Propagator, error) {
	return &Equality{eqn: e.eqn.substitute(from, LinExprFromVar(to))}, nil
}
