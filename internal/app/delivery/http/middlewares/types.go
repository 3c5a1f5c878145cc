package middlewares

import (
	"doorspital-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log              *zap.Logger
	DoctorSessions   contracts.SessionRepository
	PharmacySessions contracts.SessionRepository
	JWTSecret        string
}
