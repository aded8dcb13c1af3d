package transcribe

import "context"

// Mock is a Transcriber for tests: it returns Text or Err without touching the
// network or the audio file (beyond the format check).
type Mock struct {
	Text string
	Err  error
}

var _ Transcriber = (*Mock)(nil)

func (m *Mock) Name() string { return "mock" }

func (m *Mock) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	if err := CheckFormat(audioPath); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &Result{Text: m.Text, Model: "mock"}, nil
}
