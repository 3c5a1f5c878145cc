package contracts

import (
	"context"

	"doorspital-service/internal/app/models"
)

type EventPublisher interface {
	Publish(ctx context.Context, event *models.Event) error
}
