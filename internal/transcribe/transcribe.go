// Package transcribe converts audio recordings to text so they can be captured
// as notes.
package transcribe

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/quillnotes/quill/internal/q/health"
)

// Result contains the transcription output.
type Result struct {
	Text  string // the transcript
	Model string // the model that produced it
}

// Transcriber converts an audio file to text.
type Transcriber interface {
	// Transcribe converts the audio file at audioPath to text. It makes at
	// most one remote request; failures are returned with no retry.
	Transcribe(ctx context.Context, audioPath string) (*Result, error)

	// Name returns the provider name.
	Name() string
}

// Config configures a transcription provider. Passed explicitly; no ambient state.
type Config struct {
	APIKey   string
	BaseURL  string
	Model    string // ex: "whisper-1" or "gpt-4o-transcribe"
	Language string // optional BCP-47 hint, ex: "en"
}

// New returns the OpenAI-backed Transcriber.
func New(cfg Config) (Transcriber, error) {
	if cfg.Model == "" {
		return nil, health.NewErr("transcribe: no model configured")
	}
	return &openAI{cfg: cfg}, nil
}

// supportedExtensions are the audio container formats the API accepts.
var supportedExtensions = []string{".flac", ".m4a", ".mp3", ".mp4", ".mpeg", ".mpga", ".oga", ".ogg", ".wav", ".webm"}

// CheckFormat validates that audioPath has a supported audio extension.
func CheckFormat(audioPath string) error {
	ext := strings.ToLower(filepath.Ext(audioPath))
	for _, s := range supportedExtensions {
		if ext == s {
			return nil
		}
	}
	return health.NewErr("transcribe: unsupported audio format", "ext", ext, "supported", strings.Join(supportedExtensions, " "))
}
