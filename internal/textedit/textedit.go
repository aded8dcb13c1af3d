// Package textedit defines the narrow capability the editing flows depend on:
// read a selection, read its surrounding context, and replace a range. It keeps
// the diff/apply logic decoupled from any concrete document host.
package textedit

import (
	"errors"
	"fmt"
)

// Range is a byte-offset span [Start, End) within a document.
type Range struct {
	Start int
	End   int
}

// Len returns the byte length of the range.
func (r Range) Len() int { return r.End - r.Start }

// Validate checks the range's internal consistency. Bounds against a concrete
// document are checked by the Source.
func (r Range) Validate() error {
	if r.Start < 0 || r.End < r.Start {
		return fmt.Errorf("invalid range [%d, %d)", r.Start, r.End)
	}
	return nil
}

// ErrStale is returned by Replace when the document span no longer matches the
// text the caller's diff was computed against. The caller must report a
// conflict and perform no replacement.
var ErrStale = errors.New("textedit: selection changed since the edit was prepared")

// Source is a document that selections can be read from and edits applied to.
type Source interface {
	// Selection returns the current content of r.
	Selection(r Range) (string, error)

	// Context returns up to radius bytes on either side of r (clamped to the
	// document bounds, then widened outward to rune boundaries). It never
	// includes the selection itself.
	Context(r Range, radius int) (before, after string, err error)

	// Replace replaces r with revised, but only if r's current content still
	// equals original; otherwise it returns ErrStale and writes nothing.
	Replace(r Range, original, revised string) error
}
