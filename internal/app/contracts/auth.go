package contracts

import (
	"context"

	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, role string, request *requests.Login) (*responses.Login, error)
	Signup(ctx context.Context, request *requests.Signup) (*responses.Signup, error)
	VerifyOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.Login, error)
	Logout(ctx context.Context, role, sessionID string) error
}
