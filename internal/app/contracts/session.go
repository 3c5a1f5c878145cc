package contracts

import (
	"context"

	"doorspital-service/internal/app/models"
)

// SessionRepository is one role's session store. Doctor and pharmacy stores
// are separate instances so clearing one never touches the other.
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Set(ctx context.Context, sessionID string, session *models.Session) error
	Clear(ctx context.Context, sessionID string) error
}
