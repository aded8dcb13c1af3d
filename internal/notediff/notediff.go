// Package notediff computes line-level diffs between two note revisions. It is
// used to compare whole files (ex: `quill diff old.md new.md`); the word-level
// engine in internal/worddiff is for in-note selection previews.
package notediff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is an operation from the old revision to the new revision.
type Op int

const (
	OpEqual Op = iota
	OpInsert
	OpDelete
	OpReplace
)

// Diff is a line diff from an old note revision to a new one.
//
// Invariants:
//   - concat(Hunks.OldText) == OldText
//   - concat(Hunks.NewText) == NewText
type Diff struct {
	OldText string
	NewText string
	Hunks   []Hunk
}

// Hunk is a contiguous group of lines. The \n is part of each line.
//
// Operations:
//   - OpEqual: OldText == NewText
//   - OpInsert: OldText=="" && NewText!=""
//   - OpDelete: OldText!="" && NewText==""
//   - OpReplace: OldText != "" && NewText != ""
type Hunk struct {
	Op      Op
	OldText string
	NewText string
}

// HasChanges reports whether any hunk is not OpEqual.
func (d Diff) HasChanges() bool {
	for _, h := range d.Hunks {
		if h.Op != OpEqual {
			return true
		}
	}
	return false
}

// DiffLines diffs oldText to newText line by line, returning a Diff.
func DiffLines(oldText, newText string) Diff {
	dmp := diffmatchpatch.New()

	// Diff based on lines: each distinct line maps to a rune so the diff runs
	// over line identities rather than characters.
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(oldText, newText)
	lineDiffs := dmp.DiffMainRunes(rOld, rNew, false)
	lineDiffs = dmp.DiffCleanupMerge(lineDiffs)

	decode := func(s string) string {
		var b strings.Builder
		for _, r := range s {
			idx := int(r)
			if idx >= 0 && idx < len(lineArray) {
				b.WriteString(lineArray[idx])
			}
		}
		return b.String()
	}

	var hunks []Hunk
	var dels, ins string

	flush := func() {
		if dels == "" && ins == "" {
			return
		}
		var op Op
		switch {
		case dels != "" && ins != "":
			op = OpReplace
		case dels != "":
			op = OpDelete
		default:
			op = OpInsert
		}
		hunks = append(hunks, Hunk{Op: op, OldText: dels, NewText: ins})
		dels, ins = "", ""
	}

	for _, d := range lineDiffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			text := decode(d.Text)
			if text == "" {
				continue
			}
			hunks = append(hunks, Hunk{Op: OpEqual, OldText: text, NewText: text})
		case diffmatchpatch.DiffDelete:
			dels += decode(d.Text)
		case diffmatchpatch.DiffInsert:
			ins += decode(d.Text)
		}
	}
	flush()

	diff := Diff{OldText: oldText, NewText: newText, Hunks: hunks}
	if err := diff.validate(); err != nil {
		panic(fmt.Errorf("DiffLines: validate failed with %v", err))
	}
	return diff
}

// validate checks the Diff invariants and returns an error on the first violation.
func (d Diff) validate() error {
	var oldConcat, newConcat strings.Builder
	for i, h := range d.Hunks {
		switch h.Op {
		case OpEqual:
			if h.OldText != h.NewText {
				return fmt.Errorf("hunk[%d]: OpEqual requires OldText==NewText", i)
			}
		case OpInsert:
			if h.OldText != "" || h.NewText == "" {
				return fmt.Errorf("hunk[%d]: OpInsert requires OldText==\"\" and NewText!=\"\"", i)
			}
		case OpDelete:
			if h.OldText == "" || h.NewText != "" {
				return fmt.Errorf("hunk[%d]: OpDelete requires OldText!=\"\" and NewText==\"\"", i)
			}
		case OpReplace:
			if h.OldText == "" || h.NewText == "" {
				return fmt.Errorf("hunk[%d]: OpReplace requires OldText!=\"\" and NewText!=\"\"", i)
			}
		}
		oldConcat.WriteString(h.OldText)
		newConcat.WriteString(h.NewText)
	}
	if d.OldText != oldConcat.String() {
		return fmt.Errorf("diff: hunks do not reconstruct OldText")
	}
	if d.NewText != newConcat.String() {
		return fmt.Errorf("diff: hunks do not reconstruct NewText")
	}
	return nil
}

// Render returns a unified-style rendering: " " context lines, "-" deletions,
// "+" insertions. Replacements render their "-" lines then their "+" lines.
// Lines are rendered without trailing newlines; the result joins with "\n".
func (d Diff) Render() string {
	var out []string
	emit := func(prefix string, block string) {
		for _, line := range splitLines(block) {
			out = append(out, prefix+strings.TrimSuffix(line, "\n"))
		}
	}
	for _, h := range d.Hunks {
		switch h.Op {
		case OpEqual:
			emit(" ", h.OldText)
		case OpDelete:
			emit("-", h.OldText)
		case OpInsert:
			emit("+", h.NewText)
		case OpReplace:
			emit("-", h.OldText)
			emit("+", h.NewText)
		}
	}
	return strings.Join(out, "\n")
}

// splitLines splits text by \n, preserving the \n on each line except possibly the last.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for {
		idx := strings.IndexByte(text, '\n')
		if idx == -1 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:idx+1])
		text = text[idx+1:]
		if text == "" {
			break
		}
	}
	return lines
}
