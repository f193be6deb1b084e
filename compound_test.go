package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompoundSpell(t *testing.T) *Spell {
	t.Helper()
	s, err := New()
	require.NoError(t, err)
	s.AddEntry("going", 50)
	s.AddEntry("home", 50)
	s.AddEntry("whereas", 10)
	return s
}

func TestLookupCompoundCorrectsEachToken(t *testing.T) {
	s := newCompoundSpell(t)

	suggestions, err := s.LookupCompound("gong home")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "going home", suggestions[0].Term)
	assert.Equal(t, 1, suggestions[0].Distance)
}

func TestLookupCompoundEmptyPhrase(t *testing.T) {
	s := newCompoundSpell(t)

	suggestions, err := s.LookupCompound("   ")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "", suggestions[0].Term)
}

func TestLookupCompoundIgnoreNonWords(t *testing.T) {
	s := newCompoundSpell(t)

	suggestions, err := s.LookupCompound("NASA 42 gong", WithIgnoreNonWords(true))
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "NASA 42 going", suggestions[0].Term)
}

func TestLookupCompoundRejectsOversizedMaxEditDistance(t *testing.T) {
	s := newCompoundSpell(t)
	_, err := s.LookupCompound("gong home", WithCompoundMaxEditDistance(99))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLookupCompoundSplitsRunOnToken(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	s.AddEntry("where", 50)
	s.AddEntry("is", 50)

	suggestions, err := s.LookupCompound("whereis")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "where is", suggestions[0].Term)
}

func TestLookupCompoundPrefersObservedBigramSplit(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	s.AddEntry("for", 50)
	s.AddEntry("much", 50)
	s.AddBigram("for", "much", 1000)

	suggestions, err := s.LookupCompound("forImuch")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "for much", suggestions[0].Term)
}

func TestIsAcronymToken(t *testing.T) {
	cases := map[string]bool{
		"NASA": true,
		"A1":   true,
		"a":    false,
		"Go":   false,
		"42":   true, // contains a digit
	}
	for tok, want := range cases {
		assert.Equal(t, want, isAcronymToken(tok), "token %q", tok)
	}
}

func TestIsNumericToken(t *testing.T) {
	assert.True(t, isNumericToken("42"))
	assert.False(t, isNumericToken("42a"))
	assert.False(t, isNumericToken(""))
}
