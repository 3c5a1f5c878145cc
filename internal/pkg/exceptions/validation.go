package exceptions

import (
	"strings"

	"doorspital-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validationMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"min":      "is below the minimum allowed value",
	"max":      "exceeds the maximum allowed value",
	"oneof":    "must be one of: %s",
	"datetime": "must match the expected date format",
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	first := validationErrors[0]
	fieldName := strings.ToLower(first.Field())
	message, ok := validationMessages[first.Tag()]
	if !ok {
		message = "is invalid"
	}
	if first.Tag() == "oneof" {
		message = strings.Replace(message, "%s", strings.Join(strings.Fields(first.Param()), ", "), 1)
	}
	return fieldName + " " + message
}
