package contracts

import (
	"context"

	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/dto/responses"
)

type NotificationUsecase interface {
	FindAll(ctx context.Context, session *models.Session) ([]responses.Notification, error)
	MarkRead(ctx context.Context, session *models.Session, notificationID string) error
}
