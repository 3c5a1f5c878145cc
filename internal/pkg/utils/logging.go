package utils

import (
	"doorspital-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

func LogBusinessEvent(logger *zap.Logger, event, requestID string, fields ...zap.Field) {
	all := append([]zap.Field{
		zap.String(constvars.LoggingEventKey, event),
		zap.String(constvars.LoggingRequestIDKey, requestID),
	}, fields...)
	logger.Info("Business event", all...)
}
