package spell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorUnwrapsToSentinel(t *testing.T) {
	pe := &ParseError{Line: 3, Source: "dict.txt", Err: errors.New("bad count")}
	assert.True(t, errors.Is(pe, ErrParse))
	assert.Contains(t, pe.Error(), "dict.txt")
	assert.Contains(t, pe.Error(), "line 3")
}
