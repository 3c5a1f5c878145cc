package sessions

import (
	"context"
	"sync"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/exceptions"
)

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewMemorySessionRepository keeps sessions in process memory. Useful for
// tests and for running the gateway without a Redis at hand.
func NewMemorySessionRepository() contracts.SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]*models.Session),
	}
}

func (r *memorySessionRepository) Set(ctx context.Context, sessionID string, session *models.Session) error {
	if session == nil || session.Token == "" || session.User == nil {
		return exceptions.ErrSessionWithoutUser(nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = session
	return nil
}

func (r *memorySessionRepository) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[sessionID], nil
}

func (r *memorySessionRepository) Clear(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}
