package worddiff

import (
	"fmt"
	"strings"
)

// validate checks the Diff invariants and returns an error on the first violation.
func (d Diff) validate() error {
	var oldConcat, newConcat strings.Builder
	for i, s := range d.Segments {
		if s.Text == "" {
			return fmt.Errorf("segment[%d]: empty text", i)
		}
		switch s.Op {
		case OpEqual:
			oldConcat.WriteString(s.Text)
			newConcat.WriteString(s.Text)
		case OpDelete:
			oldConcat.WriteString(s.Text)
		case OpInsert:
			newConcat.WriteString(s.Text)
		default:
			return fmt.Errorf("segment[%d]: unknown op %d", i, int(s.Op))
		}
	}
	if d.OldText != oldConcat.String() {
		return fmt.Errorf("segments do not reconstruct OldText")
	}
	if d.NewText != newConcat.String() {
		return fmt.Errorf("segments do not reconstruct NewText")
	}
	return nil
}
