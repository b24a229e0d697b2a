package api

const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"

	RoleUser      = "user"
	RoleSystem    = "system"
	RoleAssistant = "assistant"
)

// Message is both the wire shape sent by the client and the shape stored
// in the conversation document. Messages are append-only.
type Message struct {
	Role    string   `json:"role" firestore:"role"`
	Content string   `json:"content" firestore:"content"`
	Type    string   `json:"type,omitempty" firestore:"type,omitempty"`
	Images  []string `json:"images,omitempty" firestore:"images,omitempty"`
}

// Conversation is stored wholesale under users/{userId}/conversations/{id};
// every successful request replaces the full document.
type Conversation struct {
	Id       string    `json:"id" firestore:"id"`
	Messages []Message `json:"messages" firestore:"messages"`
}

type SendMessageRequest struct {
	Messages           []Message `json:"messages" validate:"required,min=1"`
	Type               string    `json:"type"`
	ActiveConversation string    `json:"activeConversation" validate:"required"`
	UserId             string    `json:"userId" validate:"required"`
}

type SendMessageResponse struct {
	Bot    string   `json:"bot"`
	Type   string   `json:"type"`
	Images []string `json:"images,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
