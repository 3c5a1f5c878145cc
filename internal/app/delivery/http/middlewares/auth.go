package middlewares

import (
	"context"
	"net/http"
	"strings"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/exceptions"
	"doorspital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

func (m *Middlewares) RequireDoctorSession(next http.Handler) http.Handler {
	return m.requireSession(constvars.RoleDoctor, next)
}

func (m *Middlewares) RequirePharmacySession(next http.Handler) http.Handler {
	return m.requireSession(constvars.RolePharmacy, next)
}

// requireSession resolves the gateway bearer token into a stored session. The
// token only names a session ID and role; the upstream credential stays in
// redis and is attached to the request context here.
func (m *Middlewares) requireSession(role string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := bearerToken(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionID, tokenRole, err := utils.ParseSessionJWT(tokenString, m.JWTSecret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if tokenRole != role {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionRoleMismatch(nil))
			return
		}

		session, err := m.sessionStore(role).Get(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if session == nil {
			m.Log.Debug("Session token named an evicted session",
				zap.String(constvars.LoggingSessionIDKey, sessionID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionNotFound(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextSession, session)
		ctx = context.WithValue(ctx, constvars.ContextSessionID, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) sessionStore(role string) contracts.SessionRepository {
	if role == constvars.RolePharmacy {
		return m.PharmacySessions
	}
	return m.DoctorSessions
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if header == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header || tokenString == "" {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return tokenString, nil
}
