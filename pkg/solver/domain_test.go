package solver

import "testing"

func TestNewOpenDomainDedupsAndSorts(t *testing.T) {
	d := newOpenDomain([]Val{3, 1, 2, 1, 3})
	if got := d.toSlice(); !equalVals(got, []Val{1, 2, 3}) {
		t.Errorf("toSlice() = %v, want [1 2 3]", got)
	}
}

func TestNewOpenDomainEmptyIsEmptyDomain(t *testing.T) {
	d := newOpenDomain(nil)
	if !d.isEmpty() {
		t.Error("empty candidate list should yield an empty domain")
	}
}

func TestCandidateSetMinMax(t *testing.T) {
	d := newOpenDomain([]Val{5, 1, 3})
	if d.min() != 1 {
		t.Errorf("min() = %d, want 1", d.min())
	}
	if d.max() != 5 {
		t.Errorf("max() = %d, want 5", d.max())
	}
}

func TestCandidateSetContains(t *testing.T) {
	d := newOpenDomain([]Val{1, 2, 3})
	if !d.contains(2) {
		t.Error("expected 2 to be a candidate")
	}
	if d.contains(4) {
		t.Error("did not expect 4 to be a candidate")
	}
}

func TestCandidateSetRemove(t *testing.T) {
	d := newOpenDomain([]Val{1, 2, 3})

	d2, changed := d.remove(4)
	if changed {
		t.Error("removing an absent value should report no change")
	}

	d3, changed := d.remove(2)
	if !changed {
		t.Error("removing a present value should report a change")
	}
	if got := d3.toSlice(); !equalVals(got, []Val{1, 3}) {
		t.Errorf("after remove(2): %v, want [1 3]", got)
	}
	_ = d2
}

func TestCandidateSetRemoveToEmptyIsContradiction(t *testing.T) {
	d := newSingletonOpenDomainForTest(1) // single-candidate open set
	d2, changed := d.remove(1)
	if !changed || !d2.isEmpty() {
		t.Error("removing the last candidate should yield the empty domain")
	}
}

func TestCandidateSetRetainOnly(t *testing.T) {
	d := newOpenDomain([]Val{1, 2, 3})

	d2, contra := d.retainOnly(2)
	if contra {
		t.Fatal("retainOnly(2) should not contradict")
	}
	if v, ok := d2.singleton(); !ok || v != 2 {
		t.Errorf("retainOnly(2) singleton = (%d,%v), want (2,true)", v, ok)
	}

	_, contra = d.retainOnly(9)
	if !contra {
		t.Error("retainOnly of an absent value should contradict")
	}
}

func TestCandidateSetRetainRange(t *testing.T) {
	d := newOpenDomain([]Val{1, 2, 3, 4, 5})

	d2, lo, hi, contra := d.retainRange(2, 4)
	if contra {
		t.Fatal("retainRange(2,4) should not contradict")
	}
	if lo != 2 || hi != 4 {
		t.Errorf("retainRange(2,4) bounds = (%d,%d), want (2,4)", lo, hi)
	}
	if got := d2.toSlice(); !equalVals(got, []Val{2, 3, 4}) {
		t.Errorf("retainRange(2,4) = %v, want [2 3 4]", got)
	}

	_, _, _, contra = d.retainRange(10, 20)
	if !contra {
		t.Error("retainRange outside the domain should contradict")
	}
}

func TestCandidateSetIntersectWith(t *testing.T) {
	a := newOpenDomain([]Val{1, 2, 3, 4})
	b := newOpenDomain([]Val{3, 4, 5, 6})

	merged, contra := a.intersectWith(b)
	if contra {
		t.Fatal("intersection should not contradict")
	}
	if got := merged.toSlice(); !equalVals(got, []Val{3, 4}) {
		t.Errorf("intersectWith = %v, want [3 4]", got)
	}

	_, contra = a.intersectWith(newOpenDomain([]Val{100}))
	if !contra {
		t.Error("disjoint intersection should contradict")
	}
}

func TestFixedDomainRejectsMutationExceptNoOp(t *testing.T) {
	d := newFixedDomain(7)
	if !d.isFixed() {
		t.Fatal("expected a Fixed domain")
	}
	if v, ok := d.singleton(); !ok || v != 7 {
		t.Errorf("Fixed(7) singleton = (%d,%v), want (7,true)", v, ok)
	}

	if _, contra := d.retainOnly(7); contra {
		t.Error("retaining the fixed value itself should not contradict")
	}
	if _, contra := d.retainOnly(8); !contra {
		t.Error("retaining a different value should contradict")
	}
}

func equalVals(a, b []Val) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// newSingletonOpenDomainForTest builds a single-element Open domain,
// distinct from the Fixed variant, to exercise remove() reaching the empty set.
func newSingletonOpenDomainForTest(v Val) candidateSet {
	return newOpenDomain([]Val{v})
}
