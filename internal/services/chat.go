package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

const CHATGPT_MODEL = openai.GPT3Dot5Turbo

// ChatService wraps the two generation providers: text completion over the
// sanitized history, and one-shot image generation from a prompt.
type ChatService interface {
	CompleteText(ctx context.Context, history []SanitizedMessage) (string, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

type openaiChatServiceImpl struct {
	client *openai.Client
}

func NewOpenaiChatServiceImpl(openAiToken string) *openaiChatServiceImpl {
	return &openaiChatServiceImpl{
		client: openai.NewClient(openAiToken),
	}
}

// CompleteText runs a chat completion over the whole history and returns the
// first choice's content with surrounding whitespace trimmed.
func (s *openaiChatServiceImpl) CompleteText(ctx context.Context, history []SanitizedMessage) (string, error) {
	chatMessages := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, message := range history {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    message.Role,
			Content: message.Content,
		})
	}

	response, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:            CHATGPT_MODEL,
		Messages:         chatMessages,
		Temperature:      0.5,
		MaxTokens:        10000,
		TopP:             1,
		FrequencyPenalty: 0.5,
		PresencePenalty:  0,
	})
	if err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

// GenerateImage asks for exactly one 256x256 image and returns the
// provider-hosted url. The url is short lived; callers are expected to copy
// the image somewhere durable.
func (s *openaiChatServiceImpl) GenerateImage(ctx context.Context, prompt string) (string, error) {
	response, err := s.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		N:              1,
		Size:           openai.CreateImageSize256x256,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", err
	}
	if len(response.Data) == 0 {
		return "", errors.New("image generation returned no data")
	}
	return response.Data[0].URL, nil
}
