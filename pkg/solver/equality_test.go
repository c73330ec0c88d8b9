package solver

import "testing"

// Grounded 1:1 on original_source/src/constraint/equality.rs's test
// module, and spec.md §8 scenarios 4-5.

func TestEqualityContradiction(t *testing.T) {
	p := NewPuzzle()
	v0 := p.NewVarWithCandidates([]Val{3})
	v1 := p.NewVarWithCandidates([]Val{0, 1})

	// v0 + 2*v1 = 4
	p.Equals(v0.Expr().Add(v1.Times(2)), LinExprFromVal(4))

	if _, ok := p.Step(); ok {
		t.Error("expected a contradiction: no combination sums to 4")
	}
}

func TestEqualityAssign(t *testing.T) {
	p := NewPuzzle()
	v0 := p.NewVarWithCandidates([]Val{1})
	v1 := p.NewVarWithCandidates([]Val{1, 2, 3})

	// v0 + v1 = 4
	p.Equals(v0.Expr().Add(v1.Expr()), LinExprFromVal(4))

	s, ok := p.Step()
	if !ok {
		t.Fatal("expected step to find no contradiction")
	}
	if v, _ := s.GetAssigned(v0); v != 1 {
		t.Errorf("v0 = %d, want 1", v)
	}
	if v, _ := s.GetAssigned(v1); v != 3 {
		t.Errorf("v1 = %d, want 3", v)
	}
}

func TestEqualityReduceRange(t *testing.T) {
	p := NewPuzzle()
	v0 := p.NewVarWithCandidates([]Val{1, 2, 3})
	v1 := p.NewVarWithCandidates([]Val{3, 4, 5})

	// v0 + v1 = 5
	p.Equals(v0.Expr().Add(v1.Expr()), LinExprFromVal(5))

	s, ok := p.Step()
	if !ok {
		t.Fatal("expected step to find no contradiction")
	}
	if got := s.GetUnassigned(v0); !equalVals(got, []Val{1, 2}) {
		t.Errorf("v0 candidates = %v, want [1 2]", got)
	}
	if got := s.GetUnassigned(v1); !equalVals(got, []Val{3, 4}) {
		t.Errorf("v1 candidates = %v, want [3 4]", got)
	}
}
