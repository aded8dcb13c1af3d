// Package editmenu implements quill's AI text-edit actions: a user picks an
// action for a selection, the LLM proposes revised text, and a word-level diff
// preview is produced for review before anything is applied.
package editmenu

import (
	"context"
	"fmt"
	"strings"

	"github.com/quillnotes/quill/internal/llm"
	"github.com/quillnotes/quill/internal/q/health"
	"github.com/quillnotes/quill/internal/textedit"
	"github.com/quillnotes/quill/internal/worddiff"
)

// Action is a text-edit operation the user can pick from the edit menu.
type Action string

const (
	ActionRewrite    Action = "rewrite"
	ActionSummarize  Action = "summarize"
	ActionFixGrammar Action = "fix-grammar"
	ActionShorten    Action = "shorten"
	ActionExpand     Action = "expand"
	ActionSynonyms   Action = "synonyms"
	ActionCustom     Action = "custom"
)

// Actions lists all selectable actions in menu order.
func Actions() []Action {
	return []Action{
		ActionRewrite,
		ActionSummarize,
		ActionFixGrammar,
		ActionShorten,
		ActionExpand,
		ActionSynonyms,
		ActionCustom,
	}
}

// ParseAction converts a user-supplied action name.
func ParseAction(s string) (Action, error) {
	for _, a := range Actions() {
		if string(a) == strings.ToLower(strings.TrimSpace(s)) {
			return a, nil
		}
	}
	return "", health.NewErr("editmenu: unknown action", "action", s)
}

// instruction is the per-action task sentence sent to the model.
func (a Action) instruction() string {
	switch a {
	case ActionRewrite:
		return "Rewrite the text to improve clarity and flow while preserving its meaning."
	case ActionSummarize:
		return "Summarize the text concisely, keeping the essential points."
	case ActionFixGrammar:
		return "Fix spelling, grammar, and punctuation mistakes. Change nothing else."
	case ActionShorten:
		return "Shorten the text while preserving its meaning."
	case ActionExpand:
		return "Expand the text with more detail, keeping the author's voice."
	case ActionSynonyms:
		return "Replace overused or repeated words with suitable synonyms. Keep the sentence structure."
	case ActionCustom:
		return "Edit the text according to the user's instructions."
	default:
		return ""
	}
}

// systemPrompt frames every edit-menu request. The model must return only the
// replacement text: the result is spliced verbatim into the user's note.
const systemPrompt = `You are a precise writing assistant embedded in a note-taking tool.
You will be given a passage from the user's note and an editing task.
Respond with ONLY the revised passage: no preamble, no quotes, no code fences, no commentary.
Preserve the passage's markdown formatting unless the task requires changing it.`

// Request describes one edit-menu invocation.
type Request struct {
	Action       Action
	Text         string // the selected passage
	Instructions string // optional free-form guidance; required for ActionCustom
	Context      string // optional surrounding text from the note
}

// Result is a proposed edit plus its preview diff. Nothing has been applied;
// the caller renders Diff, collects an accept/reject decision, and calls Apply.
type Result struct {
	Revised string
	Diff    worddiff.Diff
	Usage   []llm.Usage
}

// Options tune a Run. The zero value disables the token guard.
type Options struct {
	// MaxPromptTokens rejects requests whose prompt exceeds this many tokens
	// (0 = unlimited). Selections are meant to be passages, not documents.
	MaxPromptTokens int
}

// BuildPrompt renders the user prompt for req.
func BuildPrompt(req Request) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", health.NewErr("editmenu: empty selection")
	}
	if req.Action == ActionCustom && strings.TrimSpace(req.Instructions) == "" {
		return "", health.NewErr("editmenu: the custom action requires instructions")
	}
	inst := req.Action.instruction()
	if inst == "" {
		return "", health.NewErr("editmenu: unknown action", "action", string(req.Action))
	}

	var b strings.Builder
	b.WriteString("Task: ")
	b.WriteString(inst)
	b.WriteString("\n")
	if req.Instructions != "" && req.Action != ActionCustom {
		fmt.Fprintf(&b, "Additional instructions: %s\n", req.Instructions)
	}
	if req.Action == ActionCustom {
		fmt.Fprintf(&b, "Instructions: %s\n", req.Instructions)
	}
	if req.Context != "" {
		fmt.Fprintf(&b, "\nSurrounding context (do not include in your answer):\n%s\n", req.Context)
	}
	fmt.Fprintf(&b, "\nText to edit:\n%s", req.Text)
	return b.String(), nil
}

// NewConversation returns a conversation primed with the edit-menu system prompt.
func NewConversation(cfg llm.Config) llm.Conversation {
	return llm.NewConversation(cfg, systemPrompt)
}

// Run sends one edit request and returns the proposed revision with its diff
// preview. The request is made at most once; failures are returned as-is with
// no retry and no partial state.
func Run(ctx context.Context, conv llm.Conversation, req Request, opts Options) (*Result, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return nil, err
	}

	if opts.MaxPromptTokens > 0 {
		if n := llm.CountTokens(prompt); n > opts.MaxPromptTokens {
			return nil, health.NewErr("editmenu: selection too large", "tokens", n, "max", opts.MaxPromptTokens)
		}
	}

	conv.AddUserMessage(prompt)
	msg, err := conv.Send(ctx)
	if err != nil {
		return nil, health.Wrap("editmenu: generate", err)
	}

	revised := cleanResponse(msg.Text)
	if revised == "" {
		return nil, health.NewErr("editmenu: model returned an empty revision")
	}

	return &Result{
		Revised: revised,
		Diff:    worddiff.Compute(req.Text, revised),
		Usage:   conv.Usage(),
	}, nil
}

// Apply commits an accepted edit to the document. The staleness check lives in
// the Source: if the selection no longer matches the text the diff was computed
// against, textedit.ErrStale comes back and nothing is written.
func Apply(src textedit.Source, r textedit.Range, result *Result) error {
	return src.Replace(r, result.Diff.OldText, result.Revised)
}

// cleanResponse strips decoration models sometimes add despite the system
// prompt: surrounding whitespace and a wrapping code fence.
func cleanResponse(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") && strings.HasSuffix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		// Drop an info string like "markdown" on the opening fence.
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			first := strings.TrimSpace(s[:idx])
			if first != "" && !strings.ContainsAny(first, " \t") {
				s = s[idx+1:]
			}
		}
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
