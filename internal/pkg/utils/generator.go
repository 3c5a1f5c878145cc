package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateDraftID() string {
	return uuid.NewString()
}

func GenerateEventID() string {
	return uuid.NewString()
}
