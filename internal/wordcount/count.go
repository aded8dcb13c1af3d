// Package wordcount tracks writing progress for the notes folder: markdown-aware
// word counts per file, a persisted start-of-day baseline, and a daily goal.
package wordcount

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/quillnotes/quill/internal/q/uni"
)

// CountMarkdownWords counts the prose words in a markdown document. Code
// blocks, inline code, and raw HTML don't count as writing; neither does YAML
// frontmatter.
func CountMarkdownWords(source []byte) int {
	source = stripFrontmatter(source)

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	total := 0
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.CodeSpan, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			total += uni.CountWords(string(v.Segment.Value(source)))
		case *ast.String:
			total += uni.CountWords(string(v.Value))
		}
		return ast.WalkContinue, nil
	})
	return total
}

// stripFrontmatter removes a leading YAML frontmatter block ("---" fenced).
func stripFrontmatter(source []byte) []byte {
	delim := []byte("---\n")
	if !bytes.HasPrefix(source, delim) && !bytes.HasPrefix(source, []byte("---\r\n")) {
		return source
	}
	rest := source[bytes.IndexByte(source, '\n')+1:]
	for len(rest) > 0 {
		line := rest
		if idx := bytes.IndexByte(rest, '\n'); idx >= 0 {
			line = rest[:idx]
			rest = rest[idx+1:]
		} else {
			rest = nil
		}
		if string(bytes.TrimRight(line, "\r")) == "---" {
			return rest
		}
	}
	// Unterminated frontmatter; treat the document as-is.
	return source
}
