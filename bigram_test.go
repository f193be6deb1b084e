package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBigramAccumulates(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	s.AddBigram("new", "york", 5)
	s.AddBigram("new", "york", 3)

	count, ok := s.GetBigram("new", "york")
	require.True(t, ok)
	assert.Equal(t, uint64(8), count)
}

func TestBigramFloorDefaultsToOneWhenEmpty(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.bigramFloor())
}

func TestBigramFloorTracksMinimum(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	s.AddBigram("new", "york", 100)
	s.AddBigram("los", "angeles", 4)
	s.AddBigram("san", "francisco", 50)

	assert.Equal(t, uint64(4), s.bigramFloor())
}

func TestBigramScoreUsesObservedCount(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	s.AddBigram("new", "york", 1000)

	seen := s.bigramScore("new", "york")
	unseen := s.bigramScore("new", "jersey")
	assert.Greater(t, seen, unseen, "an observed bigram should score higher than an unseen one")
}
