package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBundledDistanceFuncSelectsAlgorithm(t *testing.T) {
	lev := bundledDistanceFunc(Levenshtein)
	dam := bundledDistanceFunc(DamerauOSA)

	// "ab" -> "ba" is a transposition: distance 1 under Damerau, 2 under
	// plain Levenshtein (which must model it as two substitutions).
	assert.Equal(t, 2, lev("ab", "ba", 2))
	assert.Equal(t, 1, dam("ab", "ba", 2))
}
