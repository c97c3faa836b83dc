package gen

import (
	"runtime"
	"strconv"
)

// Synth derives an identifier from (prefix, shortID, line). It is a pure
// function: equal tuples always map to the same identifier, and tuples
// differing only in line map to different identifiers. The line number is
// the sole disambiguator between textually identical expansions, which
// imitates macro hygiene: every expansion occupying one source line can
// refer to its own synthesized names consistently, while expansions on
// different lines cannot collide.
//
// Granularity is deliberately line-only. Two expansions at the same line
// alias each other's names, and callers rely on that to share a variable
// across nested combinators emitted from one site.
func Synth(prefix, shortID string, line int) string {
	return prefix + shortID + "_" + strconv.Itoa(line)
}

// Sym synthesizes an identifier disambiguated by the caller's source line,
// the implicit position supply used by expansion helpers. Two calls on the
// same line yield the same identifier; calls on different lines never
// collide for the same (prefix, shortID) pair.
func Sym(prefix, shortID string) string {
	_, _, line, ok := runtime.Caller(1)
	if !ok {
		line = 0
	}
	return Synth(prefix, shortID, line)
}
