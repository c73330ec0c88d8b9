package solver

// SearchConfig carries per-solve knobs, in the shape of the teacher's
// SolverConfig/StrategyConfig pattern (gitrdm/gokanlogic): a small struct
// of settings with a Default...Config constructor. Unlike the teacher's
// pluggable LabelingStrategy, the variable and candidate orderings are
// not exposed here: spec.md §4.7 fixes MRV/ascending-value branching for
// reproducible guess counts, so the only knob a conforming caller gets is
// whether to emit structured solve diagnostics.
type SearchConfig struct {
	// Diagnostics enables structured per-solve logging (guesses taken,
	// contradictions hit, solutions emitted) via zerolog.
	Diagnostics bool
}

// DefaultSearchConfig returns the config used by a Puzzle that hasn't set
// one explicitly: diagnostics off.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{}
}
