package worddiff

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Op is an operation aligning old text to new text.
type Op int

// Operations from old text to new text.
const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

// String returns the string representation of the Op.
func (op Op) String() string {
	switch op {
	case OpEqual:
		return "Equal"
	case OpInsert:
		return "Insert"
	case OpDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Segment is one unit of an edit script: a token and the operation that aligns
// it between the old and new text.
type Segment struct {
	Op   Op
	Text string
}

// Diff is a word-level diff from old text to new text.
//
// Invariants:
//   - concat(Segments where Op is Equal or Delete) == OldText
//   - concat(Segments where Op is Equal or Insert) == NewText
type Diff struct {
	OldText  string    // Entire original text.
	NewText  string    // Entire revised text.
	Segments []Segment // Ordered edit script covering both texts.
}

// HasChanges reports whether any segment is an insert or a delete.
func (d Diff) HasChanges() bool {
	for _, s := range d.Segments {
		if s.Op != OpEqual {
			return true
		}
	}
	return false
}

// punctuation characters that form their own tokens. Whitespace runs also form
// their own tokens; everything else is word content.
const punctuation = ".,!?;:"

// Tokenize splits text into word, whitespace-run, and punctuation tokens,
// preserving the original character content exactly: concatenating the result
// reproduces text. Empty tokens are never produced. Tokenize("") returns nil.
func Tokenize(text string) []string {
	var tokens []string
	start := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case unicode.IsSpace(r):
			if i > start {
				tokens = append(tokens, text[start:i])
			}
			// Consume the maximal whitespace run as a single token.
			j := i + size
			for j < len(text) {
				r2, size2 := utf8.DecodeRuneInString(text[j:])
				if !unicode.IsSpace(r2) {
					break
				}
				j += size2
			}
			tokens = append(tokens, text[i:j])
			i = j
			start = i
		case strings.ContainsRune(punctuation, r):
			if i > start {
				tokens = append(tokens, text[start:i])
			}
			// Each punctuation character is its own token.
			tokens = append(tokens, text[i:i+size])
			i += size
			start = i
		default:
			i += size
		}
	}
	if start < len(text) {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

// Align computes a minimal edit script from oldTokens to newTokens using the
// standard (m+1)x(n+1) longest-common-subsequence table.
//
// The backtrack tie-break is part of the contract: when the old and new tokens
// at the current position differ, Insert is emitted whenever j > 0 and
// (i == 0 || table[i][j-1] >= table[i-1][j]); otherwise Delete. Ties between
// the two table cells therefore resolve to Insert. The emitted script is the
// one shown to users in previews, so this preference must not change even
// though other minimal scripts exist.
func Align(oldTokens, newTokens []string) []Segment {
	m, n := len(oldTokens), len(newTokens)

	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if oldTokens[i-1] == newTokens[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else if table[i-1][j] >= table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}

	// Backtrack from (m,n); segments come out right-to-left and are reversed.
	segments := make([]Segment, 0, m+n)
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && oldTokens[i-1] == newTokens[j-1]:
			segments = append(segments, Segment{Op: OpEqual, Text: oldTokens[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || table[i][j-1] >= table[i-1][j]):
			segments = append(segments, Segment{Op: OpInsert, Text: newTokens[j-1]})
			j--
		default:
			segments = append(segments, Segment{Op: OpDelete, Text: oldTokens[i-1]})
			i--
		}
	}
	for a, b := 0, len(segments)-1; a < b; a, b = a+1, b-1 {
		segments[a], segments[b] = segments[b], segments[a]
	}
	return segments
}

// Compute tokenizes both texts and aligns them, returning a Diff. It is total:
// any two strings (including empty ones) produce a well-defined result.
func Compute(oldText, newText string) Diff {
	d := Diff{
		OldText:  oldText,
		NewText:  newText,
		Segments: Align(Tokenize(oldText), Tokenize(newText)),
	}
	if err := d.validate(); err != nil {
		panic("worddiff: Compute: " + err.Error())
	}
	return d
}
