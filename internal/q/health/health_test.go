package health

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErr(t *testing.T) {
	err := NewErr("boom", "key", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, err.Error(), "key=3")
}

func TestWrap(t *testing.T) {
	inner := errors.New("inner")
	err := Wrap("outer", inner)
	assert.Contains(t, err.Error(), "outer")
	assert.Contains(t, err.Error(), "via inner")
	assert.ErrorIs(t, err, inner)
}

func TestWrapNil(t *testing.T) {
	err := Wrap("outer", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outer")
}

func TestLogErr(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	inner := errors.New("inner")
	err := LogErr(logger, Wrap("outer", inner, "k", "v"))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "outer")
	assert.Contains(t, buf.String(), "k=v")
	assert.Contains(t, buf.String(), "via")

	// nil logger is a no-op passthrough.
	assert.Same(t, err, LogErr(nil, err))
	assert.NoError(t, LogErr(logger, nil))
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := NewCtx(logger)

	ctx.Log("hello", "a", 1)
	assert.Contains(t, buf.String(), "hello")

	err := ctx.LogNewErr("bad thing", "b", 2)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "bad thing")

	// Zero-value Ctx must not panic.
	var empty Ctx
	empty.Log("ignored")
	require.Error(t, empty.LogNewErr("still an error"))
}
