package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), s.maxDictionaryEditDistance)
	assert.Equal(t, uint32(7), s.prefixLength)
	assert.Equal(t, uint64(1), s.countThreshold)
	assert.Equal(t, DamerauOSA, s.distanceAlgorithm)
}

func TestWithDistanceFuncRequiresNonNil(t *testing.T) {
	_, err := New(WithDistanceFunc(nil))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWithDistanceAlgorithmRejectsUserProvided(t *testing.T) {
	_, err := New(WithDistanceAlgorithm(UserProvided))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWithDistanceFuncInstalled(t *testing.T) {
	called := false
	fn := func(a, b string, max int) int {
		called = true
		return 0
	}
	s, err := New(WithDistanceFunc(fn))
	require.NoError(t, err)

	s.distanceFunc("a", "b", 2)
	assert.True(t, called)
	assert.Equal(t, UserProvided, s.distanceAlgorithm)
}
