package textedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeValidate(t *testing.T) {
	require.NoError(t, Range{Start: 0, End: 5}.Validate())
	require.NoError(t, Range{Start: 3, End: 3}.Validate())

	assert.Error(t, Range{Start: -1, End: 5}.Validate())
	assert.Error(t, Range{Start: 5, End: 2}.Validate())
}

func TestRangeLen(t *testing.T) {
	assert.Equal(t, 5, Range{Start: 2, End: 7}.Len())
	assert.Zero(t, Range{Start: 7, End: 7}.Len())
}
