package transcribe

import (
	"context"
	"os"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/quillnotes/quill/internal/q/health"
)

type openAI struct {
	cfg Config
}

var _ Transcriber = (*openAI)(nil)

func (p *openAI) Name() string { return "openai" }

func (p *openAI) client() *openai.Client {
	apiKey := p.cfg.APIKey
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
	if p.cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(p.cfg.BaseURL))
	}
	client := openai.NewClient(opts...)
	return &client
}

func (p *openAI) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	if err := CheckFormat(audioPath); err != nil {
		return nil, err
	}

	client := p.client()
	if client == nil {
		return nil, health.NewErr("transcribe: could not get client; likely no API key")
	}

	f, err := os.Open(audioPath)
	if err != nil {
		return nil, health.Wrap("transcribe: open audio", err, "path", audioPath)
	}
	defer f.Close()

	params := openai.AudioTranscriptionNewParams{
		File:  f,
		Model: openai.AudioModel(p.cfg.Model),
	}
	if p.cfg.Language != "" {
		params.Language = openai.String(p.cfg.Language)
	}

	resp, err := client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return nil, health.Wrap("transcribe: request", err, "model", p.cfg.Model)
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return nil, health.NewErr("transcribe: empty transcript", "model", p.cfg.Model)
	}

	return &Result{Text: text, Model: p.cfg.Model}, nil
}
