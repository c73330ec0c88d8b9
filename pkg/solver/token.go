package solver

import "fmt"

// Val is the type of a puzzle variable's value, and of every candidate in
// its domain.
type Val = int32

// VarToken identifies a variable declared by a Puzzle. Tokens compare by
// identity: two tokens are equal iff they were returned by the same
// declaration call. A token is only valid for the Puzzle that created it
// and for SearchStates derived from that Puzzle; using it against another
// Puzzle is a programming error.
type VarToken struct {
	puzzle *Puzzle
	idx    int
}

// String renders the token for diagnostics. It does not attempt to show
// the variable's current value; callers wanting that should index a
// Solution or SearchState instead.
func (t VarToken) String() string {
	return fmt.Sprintf("var%d", t.idx)
}

func (t VarToken) checkOwner(p *Puzzle) {
	if t.puzzle != p {
		panic("solver: variable token used with the wrong Puzzle")
	}
}

// Expr views t as the linear expression 1*t, the Go stand-in for the
// original crate's implicit VarToken-to-LinExpr conversion.
func (t VarToken) Expr() LinExpr {
	return LinExprFromVar(t)
}

// Times views t as the linear expression coef*t, the builder-method
// equivalent of the original crate's `coef * var` operator overload
// (original_source/src/linexpr.rs).
func (t VarToken) Times(coef Val) LinExpr {
	return LinExprFromVar(t).Scale(CoefFromInt(coef))
}

// Solution is a total assignment of integer values to every variable of a
// Puzzle, produced by a successful search.
type Solution struct {
	puzzle *Puzzle
	vals   []Val
}

// Get returns the value assigned to var in this solution.
func (s *Solution) Get(var_ VarToken) Val {
	var_.checkOwner(s.puzzle)
	return s.vals[var_.idx]
}

// Index is a shorthand for Get, mirroring the original crate's
// solution[var] indexing idiom.
func (s *Solution) Index(var_ VarToken) Val {
	return s.Get(var_)
}

// Vals returns a copy of the solution's values in variable-declaration
// order. Mutating the returned slice does not affect the Solution.
func (s *Solution) Vals() []Val {
	out := make([]Val, len(s.vals))
	copy(out, s.vals)
	return out
}
