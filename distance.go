package spell

import "github.com/eskriett/strmet"

// DistanceFunc computes the edit distance between a and b, returning -1
// if it exceeds max. Implementations must honor max as an early-exit
// bound rather than computing the full distance and discarding it.
type DistanceFunc func(a, b string, max int) int

// DistanceAlgorithm selects one of the bundled distance capabilities, or
// a user-supplied one, at construction time.
type DistanceAlgorithm int

const (
	// DamerauOSA is Damerau optimal-string-alignment distance (the
	// default): transpositions of adjacent characters count as a single
	// edit, but only when they don't overlap a later edit of the same
	// characters.
	DamerauOSA DistanceAlgorithm = iota

	// Levenshtein counts insertions, deletions and substitutions only.
	Levenshtein

	// DamerauOSAFast is DamerauOSA backed by the same implementation;
	// the pack carries no separate SIMD/cgo-accelerated variant, so this
	// is an alias kept for API parity with the algorithms spec.md names.
	DamerauOSAFast

	// LevenshteinFast mirrors DamerauOSAFast's relationship to Levenshtein.
	LevenshteinFast

	// UserProvided indicates a DistanceFunc supplied via WithDistanceFunc.
	UserProvided
)

func bundledDistanceFunc(alg DistanceAlgorithm) DistanceFunc {
	switch alg {
	case Levenshtein, LevenshteinFast:
		return strmet.Levenshtein
	default:
		return strmet.DamerauLevenshtein
	}
}
