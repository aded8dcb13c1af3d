package worddiff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "single word", in: "hello"},
		{name: "sentence", in: "The cat sat."},
		{name: "consecutive delimiters", in: "wait... what?!"},
		{name: "only whitespace", in: " \t\n "},
		{name: "only punctuation", in: ".,!?;:"},
		{name: "leading and trailing space", in: "  padded  "},
		{name: "unicode words", in: "héllo wörld, נסיון 你好"},
		{name: "mixed newlines", in: "line one\nline two\r\nline three"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.in)
			require.Equal(t, tt.in, strings.Join(tokens, ""))
			for _, tok := range tokens {
				require.NotEmpty(t, tok)
			}
		})
	}
}

func TestTokenize_Splitting(t *testing.T) {
	require.Nil(t, Tokenize(""))

	require.Equal(t, []string{"The", " ", "cat", " ", "sat", "."}, Tokenize("The cat sat."))

	// A maximal whitespace run is one token; each punctuation char is its own token.
	require.Equal(t, []string{"a", " \t ", "b"}, Tokenize("a \t b"))
	require.Equal(t, []string{"wait", ".", ".", ".", "ok"}, Tokenize("wait...ok"))

	// Delimiter-only input yields only delimiter tokens.
	require.Equal(t, []string{",", " ", "!"}, Tokenize(", !"))

	// Unicode word characters are ordinary content; fullwidth punctuation is not
	// in the delimiter set.
	require.Equal(t, []string{"你好，世界"}, Tokenize("你好，世界"))
}

func TestCompute_Identity(t *testing.T) {
	for _, s := range []string{"", "hello", "The cat sat.", "a  b\n c", "héllo, wörld!"} {
		d := Compute(s, s)
		require.False(t, d.HasChanges(), "input %q", s)
		for _, seg := range d.Segments {
			require.Equal(t, OpEqual, seg.Op)
		}
	}
}

func TestCompute_Reconstruction(t *testing.T) {
	tests := []struct {
		old string
		new string
	}{
		{"The cat sat.", "The cat sat quietly."},
		{"fast car", "quick car"},
		{"", "hello world"},
		{"hello world", ""},
		{"a, b, c", "a; b; d"},
		{"one two three", "three two one"},
	}
	for _, tt := range tests {
		d := Compute(tt.old, tt.new)
		var oldSide, newSide strings.Builder
		for _, seg := range d.Segments {
			if seg.Op == OpEqual || seg.Op == OpDelete {
				oldSide.WriteString(seg.Text)
			}
			if seg.Op == OpEqual || seg.Op == OpInsert {
				newSide.WriteString(seg.Text)
			}
		}
		require.Equal(t, tt.old, oldSide.String())
		require.Equal(t, tt.new, newSide.String())
	}
}

// refLCS is an independent LCS length computation used to check minimality of
// the emitted edit script.
func refLCS(a, b []string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func TestCompute_Minimality(t *testing.T) {
	tests := []struct {
		old string
		new string
	}{
		{"The cat sat.", "The cat sat quietly."},
		{"fast car", "quick car"},
		{"one two three four", "four three two one"},
		{"", "hello"},
		{"a b c d e", "a c e"},
		{"x, y; z", "x. y: z"},
	}
	for _, tt := range tests {
		oldTokens := Tokenize(tt.old)
		newTokens := Tokenize(tt.new)
		lcs := refLCS(oldTokens, newTokens)

		d := Compute(tt.old, tt.new)
		var equals, nonEquals int
		for _, seg := range d.Segments {
			if seg.Op == OpEqual {
				equals++
			} else {
				nonEquals++
			}
		}
		require.Equal(t, lcs, equals, "old=%q new=%q", tt.old, tt.new)
		require.Equal(t, (len(oldTokens)-lcs)+(len(newTokens)-lcs), nonEquals, "old=%q new=%q", tt.old, tt.new)
	}
}

func TestCompute_EmptyCases(t *testing.T) {
	d := Compute("", "")
	require.False(t, d.HasChanges())
	require.Empty(t, d.Segments)

	d = Compute("", "hello")
	require.True(t, d.HasChanges())
	require.Equal(t, []Segment{{Op: OpInsert, Text: "hello"}}, d.Segments)

	d = Compute("hello", "")
	require.True(t, d.HasChanges())
	require.Equal(t, []Segment{{Op: OpDelete, Text: "hello"}}, d.Segments)
}

func TestCompute_InsertWordScenario(t *testing.T) {
	d := Compute("The cat sat.", "The cat sat quietly.")
	require.True(t, d.HasChanges())
	require.Equal(t, []Segment{
		{Op: OpEqual, Text: "The"},
		{Op: OpEqual, Text: " "},
		{Op: OpEqual, Text: "cat"},
		{Op: OpEqual, Text: " "},
		{Op: OpEqual, Text: "sat"},
		{Op: OpInsert, Text: " "},
		{Op: OpInsert, Text: "quietly"},
		{Op: OpEqual, Text: "."},
	}, d.Segments)
}

func TestCompute_ReplaceWordScenario(t *testing.T) {
	// The exact operation order follows the documented backtrack: at the tied
	// step, Insert("quick") is chosen before the walk falls back to
	// Delete("fast"), and reversing the right-to-left emission puts the delete
	// first.
	d := Compute("fast car", "quick car")
	require.True(t, d.HasChanges())
	require.Equal(t, []Segment{
		{Op: OpDelete, Text: "fast"},
		{Op: OpInsert, Text: "quick"},
		{Op: OpEqual, Text: " "},
		{Op: OpEqual, Text: "car"},
	}, d.Segments)
}

func TestAlign_TieBreakPrefersInsert(t *testing.T) {
	// With single differing tokens, table[1][0] == table[0][1] == 0 at the
	// backtrack step: Insert must win the tie. Choosing Delete instead would
	// produce [Insert Delete] after reversal; the contract is [Delete Insert].
	segs := Align([]string{"a"}, []string{"b"})
	require.Equal(t, []Segment{
		{Op: OpDelete, Text: "a"},
		{Op: OpInsert, Text: "b"},
	}, segs)
}

func TestCompute_Determinism(t *testing.T) {
	a := "She walked slowly, then ran."
	b := "She sprinted quickly, then walked."
	first := Compute(a, b)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Compute(a, b))
	}
}
