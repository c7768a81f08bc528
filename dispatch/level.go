package dispatch

import "strings"

// Level is a ranked CPU instruction-set tier. Higher values within one
// architecture family imply support for every lower tier of that family
// (monotonic capability containment). Levels from different architecture
// families are never compared at runtime: variant tables are declared in
// per-architecture source files, so a table only ever meets levels of the
// architecture it was built for.
type Level int

// Generic is the universal baseline on every architecture: pure Go code
// with no instruction-set requirements beyond the Go toolchain's own.
// It is the level of last resort that selection falls back to.
const Generic Level = 0

// String returns a human-readable name for the level, as understood by
// the running architecture ("sse41", "avx2", "neon", ...).
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLevel parses a level name for the running architecture. Matching
// is case-insensitive. The second result reports whether the name was
// recognized; unrecognized names parse as Generic.
func ParseLevel(s string) (Level, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for l, name := range levelNames {
		if name == s {
			return l, true
		}
	}
	return Generic, false
}

// Levels returns the capability ladder of the running architecture in
// ascending order, starting at Generic.
func Levels() []Level {
	out := make([]Level, len(levelOrder))
	copy(out, levelOrder)
	return out
}
