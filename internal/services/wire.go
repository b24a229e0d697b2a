package services

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"github.com/AlexYaroshuk/chat-CBD2/internal/configuration"
)

// Services holds the process-wide singletons. Everything is constructed once
// here and injected into the controllers; nothing reaches for globals.
type Services struct {
	Chat          ChatService
	Uploads       UploadService
	Conversations ConversationService
	Detached      *DetachedRunner
}

func Wire(ctx context.Context, appConfig *configuration.AppConfig) (*Services, error) {
	firebaseApp, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     appConfig.GetProjectId(),
		StorageBucket: appConfig.GetStorageBucket(),
	}, option.WithCredentialsFile(configuration.ServiceAccountPath))
	if err != nil {
		return nil, errors.Wrap(err, "initializing firebase app")
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initializing firestore client")
	}

	storageClient, err := firebaseApp.Storage(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initializing storage client")
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		return nil, errors.Wrap(err, "resolving storage bucket")
	}

	return &Services{
		Chat:          NewOpenaiChatServiceImpl(appConfig.GetOpenAiToken()),
		Uploads:       NewUploadServiceImpl(NewBucketObjectStoreImpl(bucket)),
		Conversations: NewFirestoreConversationServiceImpl(firestoreClient),
		Detached:      NewDetachedRunner(nil),
	}, nil
}
