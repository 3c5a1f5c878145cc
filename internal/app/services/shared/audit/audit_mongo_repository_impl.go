package audit

import (
	"context"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
)

const collectionBackendCalls = "backend_calls"

type auditMongoRepository struct {
	Collection *mongo.Collection
}

func NewAuditMongoRepository(db *mongo.Database) contracts.AuditRepository {
	return &auditMongoRepository{
		Collection: db.Collection(collectionBackendCalls),
	}
}

func (repo *auditMongoRepository) Record(ctx context.Context, call *models.BackendCall) error {
	_, err := repo.Collection.InsertOne(ctx, call)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
