package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

func getClientOpenAI(cfg Config) *openai.Client {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := openai.NewClient(opts...)
	return &client
}

func (c *conversation) sendOpenAI(ctx context.Context) (*Message, error) {
	client := getClientOpenAI(c.cfg)
	if client == nil {
		return nil, fmt.Errorf("could not get client; likely no API key")
	}

	lastUserMessage := c.LastMessage()

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(c.messages))
	for _, msg := range c.messages {
		switch msg.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Text))
		case RoleUser:
			messages = append(messages, openai.UserMessage(msg.Text))
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Text))
		default:
			return nil, fmt.Errorf("sendOpenAI: unsupported role %s", msg.Role.String())
		}
	}

	request := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.cfg.Model),
		Messages: messages,
	}

	var httpResp *http.Response
	resp, err := client.Chat.Completions.New(ctx, request, option.WithResponseInto(&httpResp))
	if err == nil {
		if resp == nil {
			return nil, fmt.Errorf("chat completion response is nil")
		}
		if len(resp.Choices) != 1 {
			return nil, fmt.Errorf("unexpected choices length: %d", len(resp.Choices))
		}

		choice := resp.Choices[0]
		if role := string(choice.Message.Role); role != "assistant" {
			return nil, fmt.Errorf("unexpected role of last message: %s", role)
		}

		text := choice.Message.Content
		if text == "" {
			text = choice.Message.Refusal
		}
		message := &Message{
			Role: RoleAssistant,
			Text: text,
		}

		responseMetadata := &ResponseMetadata{
			RequestID:    resp.ID,
			StopReason:   choice.FinishReason,
			Model:        resp.Model,
			TotalTokens:  int(resp.Usage.TotalTokens),
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		}
		if resp.Usage.JSON.CompletionTokensDetails.Valid() {
			responseMetadata.ReasoningTokens = int(resp.Usage.CompletionTokensDetails.ReasoningTokens)
		}

		message.ResponseMetadata = responseMetadata
		c.messages = append(c.messages, message)

		return message, nil
	}

	responseErr := &ResponseError{Err: err}
	lastUserMessage.Errors = append(lastUserMessage.Errors, responseErr)

	switch e := err.(type) {
	case *openai.Error:
		responseErr.Message = e.Message
		responseErr.StatusCode = e.StatusCode
		if e.StatusCode == 429 || (e.StatusCode >= 500 && e.StatusCode <= 599) {
			responseErr.Retryable = true
		}
	default:
		responseErr.Message = err.Error()
		var netErr net.Error
		if errors.As(err, &netErr) {
			responseErr.Retryable = true
		}
	}

	if responseErr.StatusCode == 0 && httpResp != nil {
		responseErr.StatusCode = httpResp.StatusCode
	}

	return nil, err
}
