package notediff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffLines_Hunks(t *testing.T) {
	type hunkExpectation struct {
		op  Op
		old string
		new string
	}

	tests := []struct {
		name string
		old  string
		new  string
		want []hunkExpectation
	}{
		{
			name: "add whole file",
			old:  "",
			new:  "a\nb\n",
			want: []hunkExpectation{{op: OpInsert, old: "", new: "a\nb\n"}},
		},
		{
			name: "delete whole file",
			old:  "a\nb\n",
			new:  "",
			want: []hunkExpectation{{op: OpDelete, old: "a\nb\n", new: ""}},
		},
		{
			name: "equal",
			old:  "a\nb\n",
			new:  "a\nb\n",
			want: []hunkExpectation{{op: OpEqual, old: "a\nb\n", new: "a\nb\n"}},
		},
		{
			name: "replace middle line",
			old:  "a\nb\nc\n",
			new:  "a\nx\nc\n",
			want: []hunkExpectation{
				{op: OpEqual, old: "a\n", new: "a\n"},
				{op: OpReplace, old: "b\n", new: "x\n"},
				{op: OpEqual, old: "c\n", new: "c\n"},
			},
		},
		{
			name: "append line",
			old:  "a\n",
			new:  "a\nb\n",
			want: []hunkExpectation{
				{op: OpEqual, old: "a\n", new: "a\n"},
				{op: OpInsert, old: "", new: "b\n"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := DiffLines(tt.old, tt.new)
			require.Len(t, diff.Hunks, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.op, diff.Hunks[i].Op, "hunk %d op", i)
				assert.Equal(t, want.old, diff.Hunks[i].OldText, "hunk %d old", i)
				assert.Equal(t, want.new, diff.Hunks[i].NewText, "hunk %d new", i)
			}
		})
	}
}

func TestDiffLines_HasChanges(t *testing.T) {
	assert.False(t, DiffLines("same\n", "same\n").HasChanges())
	assert.True(t, DiffLines("old\n", "new\n").HasChanges())
	assert.False(t, DiffLines("", "").HasChanges())
}

func TestRender(t *testing.T) {
	diff := DiffLines("a\nb\nc\n", "a\nx\nc\n")
	assert.Equal(t, " a\n-b\n+x\n c", diff.Render())
}
