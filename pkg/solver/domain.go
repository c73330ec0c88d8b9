package solver

import "sort"

// domainKind distinguishes the three candidate-set shapes spec.md requires:
// a variable can have no candidates left (contradiction), one candidate
// fixed by the problem statement, or an open set of remaining candidates.
type domainKind uint8

const (
	kindEmpty domainKind = iota
	kindFixed
	kindOpen
)

// candidateSet is the per-variable set of remaining integer values. It is
// immutable: every mutating method returns a new candidateSet rather than
// modifying the receiver, which is what lets sibling search branches share
// an unchanged candidateSet by pointer (spec.md §3, §9 clone-on-write).
//
// Adapted from the teacher's Domain interface (gitrdm/gokanlogic domain.go):
// same immutable-value contract and the same doc-comment density, but
// backed by a sorted slice of arbitrary (possibly negative) int32 values
// instead of a dense 1..maxValue bitset, since puzzle candidates are not
// restricted to a small positive range.
type candidateSet struct {
	kind   domainKind
	fixed  Val
	values []Val // ascending, no duplicates; only meaningful when kind == kindOpen
}

// emptyDomain is the contradiction sentinel.
var emptyDomain = candidateSet{kind: kindEmpty}

// newFixedDomain returns a domain fixed to v, recording that v was given
// as part of the problem statement.
func newFixedDomain(v Val) candidateSet {
	return candidateSet{kind: kindFixed, fixed: v}
}

// newOpenDomain returns an Open domain over the distinct values of vs, or
// the Empty domain if vs has none. vs need not be sorted or deduplicated.
func newOpenDomain(vs []Val) candidateSet {
	if len(vs) == 0 {
		return emptyDomain
	}
	sorted := append([]Val(nil), vs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	deduped := sorted[:1]
	for _, v := range sorted[1:] {
		if v != deduped[len(deduped)-1] {
			deduped = append(deduped, v)
		}
	}
	return candidateSet{kind: kindOpen, values: deduped}
}

// len returns the number of remaining candidates.
func (d candidateSet) len() int {
	switch d.kind {
	case kindEmpty:
		return 0
	case kindFixed:
		return 1
	default:
		return len(d.values)
	}
}

// isEmpty reports a contradiction: no candidate remains.
func (d candidateSet) isEmpty() bool { return d.len() == 0 }

// isFixed reports whether this cell was given as part of the problem.
func (d candidateSet) isFixed() bool { return d.kind == kindFixed }

// singleton reports whether exactly one candidate remains, and what it is.
// A Fixed domain is always a singleton; an Open domain is a singleton only
// once propagation has narrowed it to one value (a "gimme").
func (d candidateSet) singleton() (Val, bool) {
	switch d.kind {
	case kindFixed:
		return d.fixed, true
	case kindOpen:
		if len(d.values) == 1 {
			return d.values[0], true
		}
	}
	return 0, false
}

// min returns the smallest remaining candidate. Panics if the domain is
// empty: callers must check isEmpty() (or go through the search state,
// which never exposes an empty domain to a propagator) first.
func (d candidateSet) min() Val {
	switch d.kind {
	case kindFixed:
		return d.fixed
	case kindOpen:
		if len(d.values) == 0 {
			panic("solver: min of an empty candidate set")
		}
		return d.values[0]
	default:
		panic("solver: min of an empty candidate set")
	}
}

// max returns the largest remaining candidate. Panics if the domain is
// empty.
func (d candidateSet) max() Val {
	switch d.kind {
	case kindFixed:
		return d.fixed
	case kindOpen:
		if len(d.values) == 0 {
			panic("solver: max of an empty candidate set")
		}
		return d.values[len(d.values)-1]
	default:
		panic("solver: max of an empty candidate set")
	}
}

// contains reports whether v is still a candidate.
func (d candidateSet) contains(v Val) bool {
	switch d.kind {
	case kindFixed:
		return d.fixed == v
	case kindOpen:
		i := sort.Search(len(d.values), func(i int) bool { return d.values[i] >= v })
		return i < len(d.values) && d.values[i] == v
	default:
		return false
	}
}

// forEach calls f for every remaining candidate in ascending order.
func (d candidateSet) forEach(f func(Val)) {
	switch d.kind {
	case kindFixed:
		f(d.fixed)
	case kindOpen:
		for _, v := range d.values {
			f(v)
		}
	}
}

// toSlice returns the remaining candidates in ascending order.
func (d candidateSet) toSlice() []Val {
	out := make([]Val, 0, d.len())
	d.forEach(func(v Val) { out = append(out, v) })
	return out
}

// remove returns the domain with v removed, and whether that actually
// changed anything. Removing from a Fixed domain is only legal as a no-op
// (v must not equal the fixed value; that case is a programmer error
// handled by the caller, mirroring spec.md §4.1's "Fixed domains reject
// all mutation except a no-op matching the fixed value").
func (d candidateSet) remove(v Val) (candidateSet, bool) {
	if d.kind != kindOpen || !d.contains(v) {
		return d, false
	}
	out := make([]Val, 0, len(d.values)-1)
	for _, x := range d.values {
		if x != v {
			out = append(out, x)
		}
	}
	if len(out) == 0 {
		return emptyDomain, true
	}
	return candidateSet{kind: kindOpen, values: out}, true
}

// retainOnly returns the domain narrowed to the single value v, and
// whether the result is a contradiction (v was not already a candidate).
func (d candidateSet) retainOnly(v Val) (candidateSet, bool) {
	if !d.contains(v) {
		return emptyDomain, true
	}
	if d.kind == kindFixed {
		return d, false
	}
	return candidateSet{kind: kindOpen, values: []Val{v}}, false
}

// retainRange returns the domain narrowed to [lo, hi], the resulting
// (min, max), and whether the result is a contradiction.
func (d candidateSet) retainRange(lo, hi Val) (candidateSet, Val, Val, bool) {
	switch d.kind {
	case kindEmpty:
		return emptyDomain, 0, 0, true
	case kindFixed:
		if d.fixed < lo || d.fixed > hi {
			return emptyDomain, 0, 0, true
		}
		return d, d.fixed, d.fixed, false
	default:
		out := make([]Val, 0, len(d.values))
		for _, v := range d.values {
			if v >= lo && v <= hi {
				out = append(out, v)
			}
		}
		if len(out) == 0 {
			return emptyDomain, 0, 0, true
		}
		return candidateSet{kind: kindOpen, values: out}, out[0], out[len(out)-1], false
	}
}

// intersectWith returns the domain narrowed to values also present in
// other, and whether the result is a contradiction.
func (d candidateSet) intersectWith(other candidateSet) (candidateSet, bool) {
	if d.kind == kindFixed {
		if other.contains(d.fixed) {
			return d, false
		}
		return emptyDomain, true
	}
	if other.kind == kindFixed {
		if d.contains(other.fixed) {
			return other, false
		}
		return emptyDomain, true
	}
	out := make([]Val, 0, min(len(d.values), len(other.values)))
	for _, v := range d.values {
		if other.contains(v) {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return emptyDomain, true
	}
	return candidateSet{kind: kindOpen, values: out}, false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
