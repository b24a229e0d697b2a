package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AlexYaroshuk/chat-CBD2/api"
)

func TestSanitizeHistory(t *testing.T) {
	t.Run("keeps length and roles, drops everything but role and content", func(t *testing.T) {
		messages := []api.Message{
			{Role: api.RoleSystem, Content: "be nice", Type: api.MessageTypeText},
			{Role: api.RoleUser, Content: "draw me a cat", Type: api.MessageTypeText},
			{Role: api.RoleAssistant, Content: "", Type: api.MessageTypeImage, Images: []string{"https://example.com/cat.png"}},
			{Role: api.RoleUser, Content: "now a dog"},
		}

		sanitized := SanitizeHistory(messages)

		assert.Len(t, sanitized, len(messages))
		for i, message := range messages {
			assert.Equal(t, message.Role, sanitized[i].Role)
		}
		assert.Equal(t, "be nice", sanitized[0].Content)
		assert.Equal(t, "draw me a cat", sanitized[1].Content)
		assert.Equal(t, "now a dog", sanitized[3].Content)
	})

	t.Run("replaces image message content with the placeholder", func(t *testing.T) {
		messages := []api.Message{
			{Role: api.RoleAssistant, Content: "https://example.com/a.png", Type: api.MessageTypeImage},
		}

		sanitized := SanitizeHistory(messages)

		assert.Equal(t, "generated image", sanitized[0].Content)
	})

	t.Run("handles empty and absent fields", func(t *testing.T) {
		sanitized := SanitizeHistory([]api.Message{{}})

		assert.Len(t, sanitized, 1)
		assert.Equal(t, "", sanitized[0].Role)
		assert.Equal(t, "", sanitized[0].Content)
	})

	t.Run("empty list stays empty", func(t *testing.T) {
		assert.Empty(t, SanitizeHistory(nil))
	})
}
