package utils

import (
	"strings"

	"doorspital-service/internal/pkg/dto/requests"
)

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeSignupRequest(request *requests.Signup) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.UserName = strings.TrimSpace(request.UserName)
	request.PhoneNumber = strings.TrimSpace(request.PhoneNumber)
}

func SanitizeVerifyOTPRequest(request *requests.VerifyOTP) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Code = strings.TrimSpace(request.Code)
}

func SanitizeServiceNames(services []string) []string {
	out := make([]string, 0, len(services))
	seen := map[string]bool{}
	for _, service := range services {
		trimmed := strings.TrimSpace(service)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		out = append(out, trimmed)
	}
	return out
}
