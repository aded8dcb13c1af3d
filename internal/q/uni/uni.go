package uni

import (
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"
)

// Options control width calculation in TextWidth.
//
// Currently only relevant for East Asian code points and their locale.
type Options struct {
	EastAsianWidth   bool // if true, treats certain East Asian code points as 2 wide (e.g., Chinese, Japanese, Korean). Use if the locale is one of CJK.
	TreatEmojiAsWide bool // Only considered if EastAsianWidth. If true, treats emoji as wide (2 columns).
}

// TextWidth returns the text width of str for monospace fonts in terminals. If opts is nil, locale is assumed to be non-East Asian.
func TextWidth(str string, opts *Options) int {
	return conditionFromOptions(opts).StringWidth(str)
}

// WordIterator iterates over UAX #29 word segments.
type WordIterator struct {
	iter *words.Iterator[string]
}

// NewWordIterator returns an iterator over the UAX #29 word segments of str.
// Segments include whitespace and punctuation runs; use IsWordLike to filter
// to countable words.
func NewWordIterator(str string) *WordIterator {
	iter := words.FromString(str)
	return &WordIterator{iter: &iter}
}

func (iter *WordIterator) Next() bool {
	return iter.iter.Next()
}

func (iter *WordIterator) Value() string {
	return iter.iter.Value()
}

// CountWords returns the number of word-like UAX #29 segments in str.
// Whitespace and punctuation-only segments are not counted.
func CountWords(str string) int {
	n := 0
	iter := words.FromString(str)
	for iter.Next() {
		if IsWordLike(iter.Value()) {
			n++
		}
	}
	return n
}

// IsWordLike reports whether segment contains at least one letter or digit.
// UAX #29 emits whitespace and punctuation runs as segments too; those don't
// count as words.
func IsWordLike(segment string) bool {
	for i := 0; i < len(segment); {
		r, size := utf8.DecodeRuneInString(segment[i:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
		i += size
	}
	return false
}

func conditionFromOptions(opts *Options) *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true

	if opts == nil {
		return cond
	}

	cond.EastAsianWidth = opts.EastAsianWidth
	if opts.EastAsianWidth && opts.TreatEmojiAsWide {
		cond.StrictEmojiNeutral = false
	}

	return cond
}
