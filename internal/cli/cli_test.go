package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[          ]", progressBar(0, 12))
	assert.Equal(t, "[==========]", progressBar(1, 12))
	assert.Equal(t, "[====>     ]", progressBar(0.5, 12))

	// Over-full fractions clamp instead of overflowing the bar.
	assert.Equal(t, "[==========]", progressBar(2, 12))
}

func TestActionList(t *testing.T) {
	list := actionList()
	assert.Contains(t, list, "rewrite")
	assert.Contains(t, list, "custom")
}
