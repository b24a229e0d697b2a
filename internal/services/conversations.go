package services

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"

	"github.com/AlexYaroshuk/chat-CBD2/api"
)

const (
	usersCollection         = "users"
	conversationsCollection = "conversations"
)

// ConversationService persists conversation history. Save replaces the whole
// document; persistence is best effort and callers treat failures as
// non-fatal.
type ConversationService interface {
	Save(ctx context.Context, userId string, conversation api.Conversation) error
}

type firestoreConversationServiceImpl struct {
	client *firestore.Client
}

func NewFirestoreConversationServiceImpl(client *firestore.Client) *firestoreConversationServiceImpl {
	return &firestoreConversationServiceImpl{client: client}
}

// Save overwrites users/{userId}/conversations/{conversation.Id} with the
// given value. Writing the same conversation twice leaves the document
// unchanged.
func (s *firestoreConversationServiceImpl) Save(ctx context.Context, userId string, conversation api.Conversation) error {
	_, err := s.client.
		Collection(usersCollection).Doc(userId).
		Collection(conversationsCollection).Doc(conversation.Id).
		Set(ctx, conversation)
	return errors.Wrap(err, "writing conversation")
}
