// Package llm is a barebones abstraction over LLM text completion. It purposefully
// does NOT take advantage of provider gimmicks: no tools, no streaming, just
// completions. Quill only needs "prompt in, revised text out".
//
// A Send is at-most-once: errors are classified (Retryable on 429/5xx/network)
// but never retried here. Callers decide whether to re-issue a request; the
// editing flows never do.
package llm

import (
	"context"
	"log/slog"

	"github.com/quillnotes/quill/internal/q/health"
)

// Config configures the provider client for a conversation. It is passed in
// explicitly; this package keeps no process-wide key or model state.
type Config struct {
	APIKey  string // falls back to $OPENAI_API_KEY when empty
	BaseURL string // optional override, for proxies or compatible providers
	Model   string // ex: "gpt-4o-mini"
}

type Role int

const (
	RoleUser Role = iota
	RoleSystem
	RoleAssistant
)

// String returns the string representation of the Role.
func (r Role) String() string {
	switch r {
	case RoleUser:
		return "User"
	case RoleSystem:
		return "System"
	case RoleAssistant:
		return "Assistant"
	default:
		return "Unknown"
	}
}

type Message struct {
	Role             Role
	Text             string
	ResponseMetadata *ResponseMetadata // only set when Role=RoleAssistant
	Errors           []*ResponseError  // only set when Role=RoleUser AND the provider errored or rejected the request
}

// ResponseError captures a failed completion attempt.
type ResponseError struct {
	Err        error // actual error from the client library
	StatusCode int   // HTTP status code, 0 if unknown
	Message    string
	Retryable  bool // 429, 5xx, or a network error; informational only, nothing here retries
}

type ResponseMetadata struct {
	RequestID  string // ex: "chatcmpl-BXYJ0U9PpC3uDzeoP2ZN1nBthfnpu"
	Model      string // the model that actually served the request
	StopReason string // provider's finish reason, ex: "stop"

	TotalTokens     int
	InputTokens     int
	ReasoningTokens int
	OutputTokens    int // total output tokens (includes reasoning tokens)
}

// Usage captures token information for an assistant message.
type Usage struct {
	Model           string
	TotalTokens     int
	InputTokens     int
	ReasoningTokens int
	OutputTokens    int
}

// Conversation is a system message plus alternating user/assistant messages.
type Conversation interface {
	LastMessage() *Message
	Messages() []*Message
	AddUserMessage(message string) *Message
	Send(ctx context.Context) (*Message, error)
	LastError() *ResponseError

	// Usage returns usage for all assistant messages.
	Usage() []Usage

	SetLogger(logger *slog.Logger)
}

type conversation struct {
	cfg      Config
	messages []*Message
	health.Ctx
}

// NewConversation returns an OpenAI-backed Conversation with the given system message.
func NewConversation(cfg Config, systemMessage string) Conversation {
	return &conversation{
		cfg: cfg,
		messages: []*Message{
			{Role: RoleSystem, Text: systemMessage},
		},
		Ctx: health.NewCtx(slog.New(slog.DiscardHandler)),
	}
}

func (c *conversation) Messages() []*Message {
	return c.messages
}

func (c *conversation) LastMessage() *Message {
	return c.messages[len(c.messages)-1]
}

func (c *conversation) AddUserMessage(message string) *Message {
	m := &Message{
		Role: RoleUser,
		Text: message,
	}
	c.messages = append(c.messages, m)
	return m
}

// Send sends the conversation to the model to get a RoleAssistant response message.
// The last message in Messages MUST be a user message. Exactly one attempt is made;
// on failure the last user message carries a ResponseError with classification.
func (c *conversation) Send(ctx context.Context) (*Message, error) {
	if err := c.checkSendable(); err != nil {
		return nil, err
	}

	lastUserMessage := c.LastMessage()
	c.Log("conversation.message", "model", c.cfg.Model, "role", lastUserMessage.Role, "bytes", len(lastUserMessage.Text))

	newMessage, err := c.sendOpenAI(ctx)
	if err != nil {
		return nil, c.LogWrappedErr("conversation.send", err)
	}

	c.Log("conversation.response", "role", newMessage.Role, "bytes", len(newMessage.Text), "model", newMessage.ResponseMetadata.Model)
	return newMessage, nil
}

func (c *conversation) checkSendable() error {
	if c.cfg.Model == "" {
		return c.LogNewErr("conversation.Send: no model configured")
	}
	if len(c.messages) < 2 {
		return c.LogNewErr("in order to send, the Conversation must contain a system and user message")
	}
	if c.messages[0].Role != RoleSystem {
		return c.LogNewErr("in order to send, the first message in the Conversation must be a system message")
	}
	if c.LastMessage().Role != RoleUser {
		return c.LogNewErr("in order to send, the last message in the Conversation must be a user message")
	}
	return nil
}

// LastError returns nil if the last message isn't a user message with an error.
// Otherwise, it returns the last element in Errors.
func (c *conversation) LastError() *ResponseError {
	lastMsg := c.LastMessage()
	if lastMsg.Role == RoleUser && len(lastMsg.Errors) > 0 {
		return lastMsg.Errors[len(lastMsg.Errors)-1]
	}
	return nil
}

func (c *conversation) Usage() []Usage {
	var usages []Usage
	for _, m := range c.messages {
		if m.Role != RoleAssistant || m.ResponseMetadata == nil {
			continue
		}
		rm := m.ResponseMetadata
		usages = append(usages, Usage{
			Model:           rm.Model,
			TotalTokens:     rm.TotalTokens,
			InputTokens:     rm.InputTokens,
			ReasoningTokens: rm.ReasoningTokens,
			OutputTokens:    rm.OutputTokens,
		})
	}
	return usages
}

func (c *conversation) SetLogger(logger *slog.Logger) {
	c.Logger = logger
}
