package utils

import (
	"time"

	"doorspital-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateSessionJWT mints the gateway's own bearer token. It carries only the
// session ID and role; the upstream token never leaves the session store.
func GenerateSessionJWT(sessionID, role, secret string, expiryHours int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"role":       role,
		"exp":        time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return tokenString, nil
}

func ParseSessionJWT(tokenString, secret string) (sessionID, role string, err error) {
	token, parseErr := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.ErrTokenInvalidOrExpired(nil)
		}
		return []byte(secret), nil
	})
	if parseErr != nil {
		return "", "", exceptions.ErrTokenInvalidOrExpired(parseErr)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", exceptions.ErrTokenInvalidOrExpired(nil)
	}

	sessionID, _ = claims["session_id"].(string)
	role, _ = claims["role"].(string)
	if sessionID == "" || role == "" {
		return "", "", exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return sessionID, role, nil
}
