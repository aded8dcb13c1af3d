package worddiff

import "strings"

// RenderPretty returns a human-oriented rendering of d with the three visual
// categories a reviewer needs: unchanged text plain, deleted tokens on a pink
// background, inserted tokens on a green background.
//
// The output contains ANSI 256-color escape sequences and is intended for
// terminals; it is not machine-readable. For plain output use RenderMarkers.
func (d Diff) RenderPretty() string {
	const (
		reset    = "\x1b[0m"
		blackFG  = "\x1b[30m"
		pinkBG   = "\x1b[48;5;217m" // deleted tokens
		greenBG  = "\x1b[48;5;114m" // inserted tokens
		strikeOn = "\x1b[9m"
	)

	var b strings.Builder
	for _, s := range d.Segments {
		switch s.Op {
		case OpEqual:
			b.WriteString(s.Text)
		case OpDelete:
			b.WriteString(blackFG)
			b.WriteString(pinkBG)
			b.WriteString(strikeOn)
			b.WriteString(s.Text)
			b.WriteString(reset)
		case OpInsert:
			b.WriteString(blackFG)
			b.WriteString(greenBG)
			b.WriteString(s.Text)
			b.WriteString(reset)
		}
	}
	return b.String()
}

// RenderMarkers returns a plain-text rendering of d using wdiff-style markers:
// deletions wrapped in [-...-] and insertions in {+...+}. Adjacent segments
// with the same op are merged into a single marker pair.
func (d Diff) RenderMarkers() string {
	var b strings.Builder
	for i := 0; i < len(d.Segments); {
		s := d.Segments[i]
		if s.Op == OpEqual {
			b.WriteString(s.Text)
			i++
			continue
		}
		j := i
		for j < len(d.Segments) && d.Segments[j].Op == s.Op {
			j++
		}
		var opener, closer string
		if s.Op == OpDelete {
			opener, closer = "[-", "-]"
		} else {
			opener, closer = "{+", "+}"
		}
		b.WriteString(opener)
		for k := i; k < j; k++ {
			b.WriteString(d.Segments[k].Text)
		}
		b.WriteString(closer)
		i = j
	}
	return b.String()
}
