package notifications

import (
	"context"
	"fmt"
	"sync"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/responses"
	"doorspital-service/internal/pkg/exceptions"
	"doorspital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	BackendClient contracts.BackendClient
	Log           *zap.Logger
}

var (
	notificationUsecaseInstance *notificationUsecase
	onceNotificationUsecase     sync.Once
)

func NewNotificationUsecase(backendClient contracts.BackendClient, logger *zap.Logger) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		notificationUsecaseInstance = &notificationUsecase{
			BackendClient: backendClient,
			Log:           logger,
		}
	})
	return notificationUsecaseInstance
}

func (uc *notificationUsecase) FindAll(ctx context.Context, session *models.Session) ([]responses.Notification, error) {
	if session == nil || session.Token == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	payload, err := uc.BackendClient.Do(ctx, constvars.MethodGet, constvars.BackendPathNotifications, nil, &contracts.BackendOptions{Token: session.Token})
	if err != nil {
		return nil, err
	}

	items := utils.NormalizeList(utils.UnwrapData(payload), "notifications")
	notifications := make([]responses.Notification, 0, len(items))
	for _, item := range items {
		notifications = append(notifications, responses.Notification{
			ID:        utils.PickString(item, "_id", "id"),
			Title:     utils.PickString(item, "title", "heading"),
			Body:      utils.PickString(item, "body", "message", "text"),
			Read:      utils.PickBool(item, "read", "isRead"),
			CreatedAt: utils.PickString(item, "createdAt"),
		})
	}
	return notifications, nil
}

func (uc *notificationUsecase) MarkRead(ctx context.Context, session *models.Session, notificationID string) error {
	if session == nil || session.Token == "" {
		return exceptions.ErrSessionNotFound(nil)
	}

	path := fmt.Sprintf("%s/%s/read", constvars.BackendPathNotifications, notificationID)
	_, err := uc.BackendClient.Do(ctx, constvars.MethodPatch, path, nil, &contracts.BackendOptions{Token: session.Token})
	return err
}
