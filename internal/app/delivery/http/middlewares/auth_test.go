package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessionRepository struct {
	sessions map[string]*models.Session
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: make(map[string]*models.Session)}
}

func (repo *fakeSessionRepository) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	return repo.sessions[sessionID], nil
}

func (repo *fakeSessionRepository) Set(ctx context.Context, sessionID string, session *models.Session) error {
	repo.sessions[sessionID] = session
	return nil
}

func (repo *fakeSessionRepository) Clear(ctx context.Context, sessionID string) error {
	delete(repo.sessions, sessionID)
	return nil
}

func TestRequireDoctorSession(t *testing.T) {
	secret := "test-secret"
	doctorSessions := newFakeSessionRepository()
	pharmacySessions := newFakeSessionRepository()

	middlewares := &Middlewares{
		Log:              zap.NewNop(),
		DoctorSessions:   doctorSessions,
		PharmacySessions: pharmacySessions,
		JWTSecret:        secret,
	}

	doctorSessions.sessions["sess-1"] = &models.Session{
		Token: "upstream-token",
		User:  &models.User{ID: "doc-1", Role: constvars.RoleDoctor},
	}

	var capturedContext context.Context
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedContext = r.Context()
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid doctor token reaches the handler with the session attached", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", constvars.RoleDoctor, secret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/doctor/dashboard", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.RequireDoctorSession(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		session, ok := capturedContext.Value(constvars.ContextSession).(*models.Session)
		assert.True(t, ok, "session should be set in context")
		assert.Equal(t, "upstream-token", session.Token)

		sessionID, ok := capturedContext.Value(constvars.ContextSessionID).(string)
		assert.True(t, ok, "session ID should be set in context")
		assert.Equal(t, "sess-1", sessionID)
	})

	t.Run("Missing Authorization header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/doctor/dashboard", nil)

		rr := httptest.NewRecorder()
		middlewares.RequireDoctorSession(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Header without the Bearer scheme", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/doctor/dashboard", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Basic abc123")

		rr := httptest.NewRecorder()
		middlewares.RequireDoctorSession(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/doctor/dashboard", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		middlewares.RequireDoctorSession(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Pharmacy token on a doctor route is forbidden", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", constvars.RolePharmacy, secret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/doctor/dashboard", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.RequireDoctorSession(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Token naming an evicted session", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-gone", constvars.RoleDoctor, secret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/doctor/dashboard", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.RequireDoctorSession(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequirePharmacySession_StoreIsolation(t *testing.T) {
	secret := "test-secret"
	doctorSessions := newFakeSessionRepository()
	pharmacySessions := newFakeSessionRepository()

	middlewares := &Middlewares{
		Log:              zap.NewNop(),
		DoctorSessions:   doctorSessions,
		PharmacySessions: pharmacySessions,
		JWTSecret:        secret,
	}

	// The same session ID exists only in the doctor store. A pharmacy token
	// naming it must not resolve through the wrong store.
	doctorSessions.sessions["sess-shared"] = &models.Session{
		Token: "doctor-upstream-token",
		User:  &models.User{ID: "doc-1", Role: constvars.RoleDoctor},
	}

	token, err := utils.GenerateSessionJWT("sess-shared", constvars.RolePharmacy, secret, 1)
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/pharmacy/orders", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

	rr := httptest.NewRecorder()
	middlewares.RequirePharmacySession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := &Middlewares{Log: zap.NewNop()}

	t.Run("Client-supplied request ID is kept and echoed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/status", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-req-1")

		var capturedContext context.Context
		rr := httptest.NewRecorder()
		middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedContext = r.Context()
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rr, req)

		assert.Equal(t, "client-req-1", rr.Header().Get(constvars.HeaderXRequestID))
		assert.Equal(t, "client-req-1", capturedContext.Value(constvars.ContextRequestID))
		assert.Equal(t, true, capturedContext.Value(constvars.ContextClientRequestID))
	})

	t.Run("Missing request ID gets generated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/status", nil)

		var capturedContext context.Context
		rr := httptest.NewRecorder()
		middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedContext = r.Context()
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rr, req)

		generated := rr.Header().Get(constvars.HeaderXRequestID)
		assert.NotEmpty(t, generated)
		assert.Equal(t, generated, capturedContext.Value(constvars.ContextRequestID))
		assert.Equal(t, false, capturedContext.Value(constvars.ContextClientRequestID))
	})
}
