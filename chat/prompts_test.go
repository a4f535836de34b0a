package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessages(t *testing.T) {
	history := []Message{
		{Role: "user", Content: "Hi"},
		{Role: "assistant", Content: "Hello! How can I help?"},
	}

	messages := BuildMessages("How much is an adult ticket?", history)

	require.Len(t, messages, 4)
	assert.Equal(t, "system", messages[0].Role)
	assert.True(t, strings.Contains(messages[0].Content, "Global Museum of Art and Science"))
	assert.Equal(t, history[0], messages[1])
	assert.Equal(t, history[1], messages[2])
	assert.Equal(t, Message{Role: "user", Content: "How much is an adult ticket?"}, messages[3])
}

func TestBuildMessages_GroundsInCatalog(t *testing.T) {
	messages := BuildMessages("adult ticket price", nil)

	require.NotEmpty(t, messages)
	assert.True(t, strings.Contains(messages[0].Content, "Ticket Type"), "system prompt should carry catalog context")
}
