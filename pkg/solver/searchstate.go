package solver

import "github.com/bits-and-blooms/bitset"

// cellKind distinguishes the three shapes a variable can take during
// search, distinct from a candidateSet's own Empty/Fixed/Open shapes
// (spec.md §3 "Variable cell").
type cellKind uint8

const (
	cellAssigned cellKind = iota
	cellUnassigned
	cellRedirected
)

// cell is one variable's current state within a SearchState.
type cell struct {
	kind     cellKind
	val      Val          // meaningful when kind == cellAssigned
	domain   candidateSet // meaningful when kind == cellUnassigned; kindOpen, or kindEmpty for a variable declared with no candidates
	redirect int          // meaningful when kind == cellRedirected: index of the survivor
}

// asDomain views a cell's remaining candidates as a candidateSet,
// regardless of whether it has already settled to a single value. Used
// by Unify to intersect an Assigned cell's value against the other side.
func (c cell) asDomain() candidateSet {
	if c.kind == cellAssigned {
		return newOpenDomain([]Val{c.val})
	}
	return c.domain
}

// SearchState is the mutable state of one search node: a cell per
// variable, the set of propagators still owed a run, and the (possibly
// unification-substituted) propagator list. Cloning a SearchState copies
// the per-variable cell slice and the wake-set; unmutated
// candidateSets and the propagatorSet stay shared by pointer, which is
// what keeps branching O(variables) rather than O(total candidates)
// (spec.md §5, §9).
type SearchState struct {
	puzzle *Puzzle
	cells  []cell
	wake   *bitset.BitSet
	props  *propagatorSet
}

// newSearchState builds the initial state for a fresh solve call: every
// Puzzle-declared Fixed cell becomes Assigned, every Open cell becomes
// Unassigned, and every propagator is queued to run at least once (spec.md
// §2: "queues every propagator").
func newSearchState(p *Puzzle) *SearchState {
	cells := make([]cell, len(p.initial))
	wake := bitset.New(uint(len(p.props)))
	for i, d := range p.initial {
		switch {
		case d.isEmpty():
			cells[i] = cell{kind: cellUnassigned, domain: d}
		case d.isFixed():
			v, _ := d.singleton()
			cells[i] = cell{kind: cellAssigned, val: v}
		default:
			cells[i] = cell{kind: cellUnassigned, domain: d}
		}
	}
	for i := range p.props {
		wake.Set(uint(i))
	}
	return &SearchState{
		puzzle: p,
		cells:  cells,
		wake:   wake,
		props:  newPropagatorSet(p.props),
	}
}

// clone returns an independent copy whose cell slice can be mutated
// without affecting the receiver. The candidateSet values inside
// Unassigned cells, and the propagatorSet pointer, are shared until a
// mutation produces a new value for just that one variable.
func (s *SearchState) clone() *SearchState {
	cells := make([]cell, len(s.cells))
	copy(cells, s.cells)
	return &SearchState{
		puzzle: s.puzzle,
		cells:  cells,
		wake:   s.wake.Clone(),
		props:  s.props,
	}
}

// resolve follows Redirected links to the surviving representative
// variable. Unify keeps these chains acyclic (it always redirects one
// resolved representative onto another), but a chain can be several hops
// deep: cells already redirected onto a variable keep pointing at it when
// that variable is itself redirected later.
func (s *SearchState) resolve(idx int) int {
	for s.cells[idx].kind == cellRedirected {
		idx = s.cells[idx].redirect
	}
	return idx
}

func (s *SearchState) wakeWatchers(idx int) {
	for _, pi := range s.props.watchers[idx] {
		s.wake.Set(uint(pi))
	}
}

// assign transitions cells[idx] to Assigned(v) and fires OnAssigned on
// every propagator watching it.
func (s *SearchState) assign(idx int, v Val) error {
	s.cells[idx] = cell{kind: cellAssigned, val: v}
	s.wakeWatchers(idx)
	tok := VarToken{puzzle: s.puzzle, idx: idx}
	for _, pi := range s.props.watchers[idx] {
		if err := s.props.props[pi].OnAssigned(s, tok, v); err != nil {
			return err
		}
	}
	return nil
}

// IsAssigned reports whether var currently holds a fixed value.
func (s *SearchState) IsAssigned(v VarToken) bool {
	v.checkOwner(s.puzzle)
	return s.cells[s.resolve(v.idx)].kind == cellAssigned
}

// GetAssigned returns var's value and true if it is currently assigned.
func (s *SearchState) GetAssigned(v VarToken) (Val, bool) {
	v.checkOwner(s.puzzle)
	c := s.cells[s.resolve(v.idx)]
	if c.kind != cellAssigned {
		return 0, false
	}
	return c.val, true
}

// GetUnassigned returns var's remaining candidates in ascending order.
// Panics (a programmer error) if var is already assigned.
func (s *SearchState) GetUnassigned(v VarToken) []Val {
	v.checkOwner(s.puzzle)
	c := s.cells[s.resolve(v.idx)]
	if c.kind != cellUnassigned {
		panic("solver: GetUnassigned called on an assigned variable")
	}
	return c.domain.toSlice()
}

// GetMinMax returns var's current (min, max), treating an assigned
// variable as a one-point range.
func (s *SearchState) GetMinMax(v VarToken) (Val, Val, error) {
	v.checkOwner(s.puzzle)
	c := s.cells[s.resolve(v.idx)]
	if c.kind == cellAssigned {
		return c.val, c.val, nil
	}
	if c.domain.isEmpty() {
		return 0, 0, ErrContradiction
	}
	return c.domain.min(), c.domain.max(), nil
}

// SetCandidate narrows var's domain to exactly v, assigning it. Returns
// ErrContradiction if v is not currently a candidate.
func (s *SearchState) SetCandidate(v VarToken, val Val) error {
	v.checkOwner(s.puzzle)
	idx := s.resolve(v.idx)
	c := s.cells[idx]
	if c.kind == cellAssigned {
		if c.val != val {
			return ErrContradiction
		}
		return nil
	}
	if !c.domain.contains(val) {
		return ErrContradiction
	}
	return s.assign(idx, val)
}

// RemoveCandidate removes val from var's domain. A no-op if val was
// already absent; ErrContradiction if removing it empties the domain.
func (s *SearchState) RemoveCandidate(v VarToken, val Val) error {
	v.checkOwner(s.puzzle)
	idx := s.resolve(v.idx)
	c := s.cells[idx]
	if c.kind == cellAssigned {
		if c.val == val {
			return ErrContradiction
		}
		return nil
	}
	nd, changed := c.domain.remove(val)
	if !changed {
		return nil
	}
	if nd.isEmpty() {
		return ErrContradiction
	}
	if single, ok := nd.singleton(); ok {
		return s.assign(idx, single)
	}
	s.cells[idx] = cell{kind: cellUnassigned, domain: nd}
	s.wakeWatchers(idx)
	return nil
}

// BoundCandidateRange narrows var's domain to [lo, hi], returning the
// resulting (min, max). ErrContradiction if the intersection is empty.
func (s *SearchState) BoundCandidateRange(v VarToken, lo, hi Val) (Val, Val, error) {
	v.checkOwner(s.puzzle)
	idx := s.resolve(v.idx)
	c := s.cells[idx]
	if c.kind == cellAssigned {
		if c.val < lo || c.val > hi {
			return 0, 0, ErrContradiction
		}
		return c.val, c.val, nil
	}
	nd, newMin, newMax, contra := c.domain.retainRange(lo, hi)
	if contra {
		return 0, 0, ErrContradiction
	}
	if single, ok := nd.singleton(); ok {
		if err := s.assign(idx, single); err != nil {
			return 0, 0, err
		}
		return single, single, nil
	}
	s.cells[idx] = cell{kind: cellUnassigned, domain: nd}
	s.wakeWatchers(idx)
	return newMin, newMax, nil
}

// Unify makes a and b denote the same underlying unknown: it intersects
// their domains, rewrites every propagator that watched the redirected
// side, and redirects one cell onto the other (spec.md §4.6).
func (s *SearchState) Unify(a, b VarToken) error {
	a.checkOwner(s.puzzle)
	b.checkOwner(s.puzzle)
	ia, ib := s.resolve(a.idx), s.resolve(b.idx)
	if ia == ib {
		return nil
	}

	ca, cb := s.cells[ia], s.cells[ib]

	var from, to int
	switch {
	case ca.kind == cellAssigned && cb.kind == cellAssigned:
		if ca.val != cb.val {
			return ErrContradiction
		}
		from, to = ia, ib
	case cb.kind == cellAssigned:
		from, to = ia, ib
	case ca.kind == cellAssigned:
		from, to = ib, ia
	default:
		from, to = ia, ib
	}

	fromTok := VarToken{puzzle: s.puzzle, idx: from}
	toTok := VarToken{puzzle: s.puzzle, idx: to}

	// Rewrite every propagator watching from so it refers to to instead,
	// then rebuild the watcher index over the new list.
	newProps := append([]Propagator(nil), s.props.props...)
	for _, pi := range s.props.watchers[from] {
		np, err := newProps[pi].Substitute(fromTok, toTok)
		if err != nil {
			return err
		}
		newProps[pi] = np
	}
	s.props = newPropagatorSet(newProps)

	merged, contra := s.cells[from].asDomain().intersectWith(s.cells[to].asDomain())
	if contra {
		return ErrContradiction
	}

	if single, ok := merged.singleton(); ok {
		s.cells[to] = cell{kind: cellAssigned, val: single}
	} else {
		s.cells[to] = cell{kind: cellUnassigned, domain: merged}
	}
	s.cells[from] = cell{kind: cellRedirected, redirect: to}
	s.wakeWatchers(to)

	if s.cells[to].kind == cellAssigned {
		v := s.cells[to].val
		for _, pi := range s.props.watchers[to] {
			if err := s.props.props[pi].OnAssigned(s, toTok, v); err != nil {
				return err
			}
		}
	}
	return nil
}
