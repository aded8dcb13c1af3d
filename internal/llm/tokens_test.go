package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountTokens(t *testing.T) {
	assert.Equal(t, 0, CountTokens(""))
	assert.Greater(t, CountTokens("hello world"), 0)

	short := CountTokens("one sentence.")
	long := CountTokens(strings.Repeat("a much longer paragraph of text. ", 20))
	assert.Greater(t, long, short)
}
