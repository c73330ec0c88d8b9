package solver

import "testing"

func TestTwoFixedCandidatesContradictUnderAllDifferent(t *testing.T) {
	// spec.md §8 scenario 1.
	p := NewPuzzle()
	v0 := p.NewVarWithCandidates([]Val{1})
	v1 := p.NewVarWithCandidates([]Val{1})
	p.AllDifferent([]VarToken{v0, v1})

	if _, ok := p.SolveAny(); ok {
		t.Error("expected solve_any to find no solution")
	}
}

func TestStepIsIdempotent(t *testing.T) {
	p := NewPuzzle()
	v0 := p.NewVarWithCandidates([]Val{1, 2, 3})
	v1 := p.NewVarWithCandidates([]Val{1, 2, 3})
	p.Equals(v0.Expr().Add(v1.Expr()), LinExprFromVal(5))

	s1, ok := p.Step()
	if !ok {
		t.Fatal("expected no contradiction")
	}
	if err := propagate(s1); err != nil {
		t.Fatalf("re-propagating a fixed point should not contradict: %v", err)
	}
	if got := s1.GetUnassigned(v0); !equalVals(got, []Val{2, 3}) {
		t.Errorf("v0 candidates after idempotent re-propagation = %v, want [2 3]", got)
	}
}

func TestSolveAllCountsAndSoundness(t *testing.T) {
	p := NewPuzzle()
	vars := p.NewVarsWithCandidates1D(3, []Val{1, 2, 3})
	p.AllDifferent(vars)

	sols := p.SolveAll()
	if len(sols) != 6 {
		t.Fatalf("len(solutions) = %d, want 6 (3!)", len(sols))
	}

	seen := make(map[[3]Val]bool)
	for _, sol := range sols {
		var key [3]Val
		for i, v := range vars {
			key[i] = sol.Get(v)
		}
		if key[0] == key[1] || key[1] == key[2] || key[0] == key[2] {
			t.Errorf("solution %v violates all-different", key)
		}
		if seen[key] {
			t.Errorf("duplicate solution %v", key)
		}
		seen[key] = true
	}
}

func TestSolveUniqueRejectsMultipleSolutions(t *testing.T) {
	p := NewPuzzle()
	vars := p.NewVarsWithCandidates1D(3, []Val{1, 2, 3})
	p.AllDifferent(vars)

	if _, ok := p.SolveUnique(); ok {
		t.Error("solve_unique should reject a puzzle with 6 solutions")
	}
}

func TestSolveUniqueFindsTheOneSolution(t *testing.T) {
	p := NewPuzzle()
	v0 := p.NewVarWithCandidates([]Val{1})
	v1 := p.NewVarWithCandidates([]Val{1, 2, 3})
	p.Equals(v0.Expr().Add(v1.Expr()), LinExprFromVal(4))

	sol, ok := p.SolveUnique()
	if !ok {
		t.Fatal("expected exactly one solution")
	}
	if sol.Get(v0) != 1 || sol.Get(v1) != 3 {
		t.Errorf("solution = (%d,%d), want (1,3)", sol.Get(v0), sol.Get(v1))
	}
}

func TestDeterministicGuessCount(t *testing.T) {
	build := func() *Puzzle {
		p := NewPuzzle()
		vars := p.NewVarsWithCandidates1D(4, []Val{1, 2, 3, 4})
		p.AllDifferent(vars)
		return p
	}

	p1, p2 := build(), build()
	s1 := p1.SolveAll()
	s2 := p2.SolveAll()

	if len(s1) != len(s2) {
		t.Fatalf("solution counts differ: %d vs %d", len(s1), len(s2))
	}
	if p1.NumGuesses() != p2.NumGuesses() {
		t.Errorf("guess counts differ across identical runs: %d vs %d", p1.NumGuesses(), p2.NumGuesses())
	}
}
