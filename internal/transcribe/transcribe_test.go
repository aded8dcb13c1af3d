package transcribe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFormat(t *testing.T) {
	require.NoError(t, CheckFormat("memo.mp3"))
	require.NoError(t, CheckFormat("/abs/path/Memo.M4A"))
	require.NoError(t, CheckFormat("talk.webm"))

	require.Error(t, CheckFormat("notes.txt"))
	require.Error(t, CheckFormat("noextension"))
}

func TestNew(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err, "model is required")

	tr, err := New(Config{Model: "whisper-1"})
	require.NoError(t, err)
	assert.Equal(t, "openai", tr.Name())
}

func TestOpenAI_NoKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	tr, err := New(Config{Model: "whisper-1"})
	require.NoError(t, err)

	_, err = tr.Transcribe(context.Background(), "memo.mp3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestMock(t *testing.T) {
	m := &Mock{Text: "hello from the recording"}
	res, err := m.Transcribe(context.Background(), "memo.wav")
	require.NoError(t, err)
	assert.Equal(t, "hello from the recording", res.Text)

	_, err = m.Transcribe(context.Background(), "memo.txt")
	require.Error(t, err)

	m = &Mock{Err: errors.New("quota exceeded")}
	_, err = m.Transcribe(context.Background(), "memo.wav")
	require.ErrorContains(t, err, "quota exceeded")
}
