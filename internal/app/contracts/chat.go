package contracts

import (
	"context"

	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/dto/responses"
)

type ChatUsecase interface {
	FindRooms(ctx context.Context, session *models.Session) ([]responses.ChatRoom, error)
	FindMessages(ctx context.Context, session *models.Session, roomID string) ([]responses.ChatMessage, error)
	SendMessage(ctx context.Context, session *models.Session, roomID string, request *requests.SendMessage) (*responses.ChatMessage, error)
	MarkRead(ctx context.Context, session *models.Session, roomID string) error
}

type ChatBackendClient interface {
	FindRooms(ctx context.Context, token string) ([]responses.ChatRoom, error)
	FindMessages(ctx context.Context, token, roomID string) ([]responses.ChatMessage, error)
	SendMessage(ctx context.Context, token, roomID, body string) (*responses.ChatMessage, error)
	MarkRead(ctx context.Context, token, roomID string) error
}
