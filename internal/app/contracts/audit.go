package contracts

import (
	"context"

	"doorspital-service/internal/app/models"
)

type AuditRepository interface {
	Record(ctx context.Context, call *models.BackendCall) error
}
