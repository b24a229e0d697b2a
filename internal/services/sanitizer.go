package services

import (
	"github.com/AlexYaroshuk/chat-CBD2/api"
)

const imagePlaceholder = "generated image"

// SanitizedMessage is the provider-facing shape of a message: role and
// content only.
type SanitizedMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SanitizeHistory trims a client-supplied message list down to role/content
// pairs. Image messages carry a url list instead of meaningful text, so
// their content is replaced with a placeholder the model can read.
func SanitizeHistory(messages []api.Message) []SanitizedMessage {
	sanitized := make([]SanitizedMessage, 0, len(messages))
	for _, message := range messages {
		content := message.Content
		if message.Type == api.MessageTypeImage {
			content = imagePlaceholder
		}
		sanitized = append(sanitized, SanitizedMessage{
			Role:    message.Role,
			Content: content,
		})
	}
	return sanitized
}
