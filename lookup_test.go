package spell

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupVerbosityClosestReturnsAllAtMinDistance(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	s.AddEntry("cat", 10)
	s.AddEntry("cut", 5)
	s.AddEntry("category", 1)

	suggestions, err := s.Lookup("cot", WithVerbosity(VerbosityClosest))
	require.NoError(t, err)

	terms := map[string]bool{}
	for _, sug := range suggestions {
		terms[sug.Term] = true
		assert.Equal(t, 1, sug.Distance)
	}
	assert.True(t, terms["cat"])
	assert.True(t, terms["cut"])
	assert.False(t, terms["category"])
}

func TestLookupTransferCasing(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	s.AddEntry("members", 10)

	suggestions, err := s.Lookup("mEmEbers", WithVerbosity(VerbosityClosest), WithMaxEditDistance(2), WithTransferCasing(true))
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "mEmbers", suggestions[0].Term)
}

func TestLookupIgnoreTokenRegexPassesThrough(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	s.AddEntry("example", 10)

	re := regexp.MustCompile(`^\d+$`)
	suggestions, err := s.Lookup("12345", WithIgnoreTokenRegex(re))
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "12345", suggestions[0].Term)
	assert.Equal(t, 0, suggestions[0].Distance)
}
