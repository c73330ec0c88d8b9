package solver

import (
	"os"

	"github.com/rs/zerolog"
)

// diagLog is the structured logger used for search diagnostics when a
// Puzzle's SearchConfig.Diagnostics is set. The teacher itself only ever
// reaches for a gated stdlib-log trace line (wfs_trace.go's "[WFS]"
// prefix); this module follows that same "off by default, one line per
// event" restraint but with zerolog's structured fields, since zerolog is
// already part of this module's domain stack (see SPEC_FULL.md §3) and
// the teacher never built a structured-logging facility of its own to
// imitate instead.
var diagLog = zerolog.New(os.Stderr).With().Timestamp().Logger()
