package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversation_SendPreconditions(t *testing.T) {
	// No model configured.
	conv := NewConversation(Config{}, "system")
	conv.AddUserMessage("hi")
	_, err := conv.Send(context.Background())
	require.Error(t, err)

	// No user message yet.
	conv = NewConversation(Config{Model: "gpt-4o-mini"}, "system")
	_, err = conv.Send(context.Background())
	require.Error(t, err)
}

func TestConversation_SendWithoutKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	conv := NewConversation(Config{Model: "gpt-4o-mini"}, "system")
	conv.AddUserMessage("hi")
	_, err := conv.Send(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestUsage(t *testing.T) {
	conv := NewMockConversation("system", map[string]string{"hello": "world"})
	conv.AddUserMessage("hello")
	_, err := conv.Send(context.Background())
	require.NoError(t, err)

	usages := conv.Usage()
	require.Len(t, usages, 1)
	assert.Equal(t, "mock", usages[0].Model)
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "User", RoleUser.String())
	assert.Equal(t, "System", RoleSystem.String())
	assert.Equal(t, "Assistant", RoleAssistant.String())
}
