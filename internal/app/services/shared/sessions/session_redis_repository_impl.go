package sessions

import (
	"context"
	"fmt"
	"time"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type redisSessionRepository struct {
	prefix    string
	redisRepo contracts.RedisRepository
	expiry    time.Duration
}

// NewRedisSessionRepository builds one role's store. The prefix keeps doctor
// and pharmacy sessions in disjoint key spaces inside the same Redis.
func NewRedisSessionRepository(redisRepo contracts.RedisRepository, prefix string, expiry time.Duration) contracts.SessionRepository {
	return &redisSessionRepository{
		prefix:    prefix,
		redisRepo: redisRepo,
		expiry:    expiry,
	}
}

func (r *redisSessionRepository) buildKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", r.prefix, sessionID)
}

func (r *redisSessionRepository) Set(ctx context.Context, sessionID string, session *models.Session) error {
	if session == nil || session.Token == "" || session.User == nil {
		return exceptions.ErrSessionWithoutUser(nil)
	}
	return r.redisRepo.Set(ctx, r.buildKey(sessionID), session, r.expiry)
}

func (r *redisSessionRepository) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.redisRepo.Get(ctx, r.buildKey(sessionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		// A corrupt record is unusable; drop it so the caller sees a clean
		// logged-out state instead of a permanent failure.
		_ = r.redisRepo.Delete(ctx, r.buildKey(sessionID))
		return nil, nil
	}
	return session, nil
}

func (r *redisSessionRepository) Clear(ctx context.Context, sessionID string) error {
	return r.redisRepo.Delete(ctx, r.buildKey(sessionID))
}
