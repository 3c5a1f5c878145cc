package controllers

import (
	"net/http"

	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/exceptions"
)

func sessionFromContext(r *http.Request) (*models.Session, error) {
	session, ok := r.Context().Value(constvars.ContextSession).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return session, nil
}
