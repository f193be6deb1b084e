package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransferCasingMatchingSameLength(t *testing.T) {
	got := transferCasing("EXAMPLE", "axample", false)
	assert.Equal(t, "AXAMPLE", got)
}

func TestTransferCasingSimilarPropagatesAfterDivergence(t *testing.T) {
	// "mEmEbers" (8 runes) is one deletion away from "members" (7 runes).
	// Casing copies through the common "mEm" prefix, then the last-seen
	// case (lowercase, from the second 'm') propagates across the rest.
	got := transferCasing("mEmEbers", "members", false)
	assert.Equal(t, "mEmbers", got)
}

func TestTransferCasingSimilarHandlesGrowth(t *testing.T) {
	got := transferCasing("HI", "hive", false)
	assert.Equal(t, "HIVE", got)
}

func TestTransferCasingEmptyTarget(t *testing.T) {
	assert.Equal(t, "", transferCasing("Anything", "", false))
}
