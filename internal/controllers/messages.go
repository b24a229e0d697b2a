package controllers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/AlexYaroshuk/chat-CBD2/api"
	"github.com/AlexYaroshuk/chat-CBD2/internal/services"
)

type MessagesController struct {
	chatService         services.ChatService
	uploadService       services.UploadService
	conversationService services.ConversationService
	detached            *services.DetachedRunner
}

func wireMessages(e *echo.Echo, svc *services.Services) {
	controller := &MessagesController{
		chatService:         svc.Chat,
		uploadService:       svc.Uploads,
		conversationService: svc.Conversations,
		detached:            svc.Detached,
	}

	e.POST(api.ENDPOINT_SEND_MESSAGE, withValidJsonBody(controller.sendMessage))
}

/*
// @Summary Relay a conversation to the model and return its reply
// @Tags send-message
// @Router /send-message [POST]
// @Produce json
// @Success 200 {object} api.SendMessageResponse
// @Failure 400 {object} api.ErrorResponse "BadRequestError"
*/
func (s *MessagesController) sendMessage(ctx echo.Context, body *api.SendMessageRequest) error {
	requestContext := ctx.Request().Context()
	sanitized := services.SanitizeHistory(body.Messages)

	var reply api.Message
	var response api.SendMessageResponse
	if body.Type == api.MessageTypeImage {
		// the prompt is the last message as the user typed it, not the
		// sanitized version
		prompt := body.Messages[len(body.Messages)-1].Content
		imageUrl, err := s.chatService.GenerateImage(requestContext, prompt)
		if err != nil {
			return errors.Wrap(err, "image generation")
		}
		signedUrl, err := s.uploadService.Upload(requestContext, imageUrl)
		if err != nil {
			return errors.Wrap(err, "image upload")
		}
		reply = api.Message{Role: api.RoleAssistant, Content: "", Type: api.MessageTypeImage, Images: []string{signedUrl}}
		response = api.SendMessageResponse{Bot: "", Type: api.MessageTypeImage, Images: []string{signedUrl}}
	} else {
		content, err := s.chatService.CompleteText(requestContext, sanitized)
		if err != nil {
			return errors.Wrap(err, "completion")
		}
		reply = api.Message{Role: api.RoleAssistant, Content: content, Type: api.MessageTypeText}
		response = api.SendMessageResponse{Bot: content, Type: api.MessageTypeText}
	}

	if err := ctx.JSON(http.StatusOK, response); err != nil {
		return errors.Wrap(err, "json")
	}

	// the client has its answer; persistence runs detached and its failure
	// never reaches the response
	conversation := api.Conversation{
		Id:       body.ActiveConversation,
		Messages: append(body.Messages, reply),
	}
	userId := body.UserId
	s.detached.Go("persist conversation "+conversation.Id, func(taskContext context.Context) error {
		return s.conversationService.Save(taskContext, userId, conversation)
	})
	return nil
}
