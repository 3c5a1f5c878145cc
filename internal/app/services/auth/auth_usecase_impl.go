package auth

import (
	"context"
	"sync"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/dto/responses"
	"doorspital-service/internal/pkg/exceptions"
	"doorspital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	BackendClient    contracts.BackendClient
	DoctorSessions   contracts.SessionRepository
	PharmacySessions contracts.SessionRepository
	JWTSecret        string
	JWTExpTimeInHour int
	Log              *zap.Logger
}

var (
	authUsecaseInstance *authUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	backendClient contracts.BackendClient,
	doctorSessions contracts.SessionRepository,
	pharmacySessions contracts.SessionRepository,
	jwtSecret string,
	jwtExpTimeInHour int,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			BackendClient:    backendClient,
			DoctorSessions:   doctorSessions,
			PharmacySessions: pharmacySessions,
			JWTSecret:        jwtSecret,
			JWTExpTimeInHour: jwtExpTimeInHour,
			Log:              logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) sessionStore(role string) contracts.SessionRepository {
	if role == constvars.RolePharmacy {
		return uc.PharmacySessions
	}
	return uc.DoctorSessions
}

func (uc *authUsecase) Login(ctx context.Context, role string, request *requests.Login) (*responses.Login, error) {
	utils.SanitizeLoginRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	path := constvars.BackendPathLogin
	if role == constvars.RolePharmacy {
		path = constvars.BackendPathPharmacyLogin
	}

	payload, err := uc.BackendClient.Do(ctx, constvars.MethodPost, path, request, nil)
	if err != nil {
		return nil, err
	}

	return uc.buildSessionFromLoginPayload(ctx, role, payload)
}

func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.Signup, error) {
	utils.SanitizeSignupRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	_, err := uc.BackendClient.Do(ctx, constvars.MethodPost, constvars.BackendPathSignup, request, nil)
	if err != nil {
		return nil, err
	}

	return &responses.Signup{Email: request.Email}, nil
}

func (uc *authUsecase) VerifyOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.Login, error) {
	utils.SanitizeVerifyOTPRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	payload, err := uc.BackendClient.Do(ctx, constvars.MethodPost, constvars.BackendPathVerifyOTP, request, nil)
	if err != nil {
		return nil, err
	}

	// OTP verification only exists on the doctor signup path today.
	return uc.buildSessionFromLoginPayload(ctx, constvars.RoleDoctor, payload)
}

func (uc *authUsecase) Logout(ctx context.Context, role, sessionID string) error {
	requestID, _ := ctx.Value(constvars.ContextRequestID).(string)
	utils.LogBusinessEvent(uc.Log, "user_logged_out", requestID,
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return uc.sessionStore(role).Clear(ctx, sessionID)
}

func (uc *authUsecase) buildSessionFromLoginPayload(ctx context.Context, role string, payload interface{}) (*responses.Login, error) {
	data, _ := utils.UnwrapData(payload).(map[string]interface{})
	if data == nil {
		return nil, exceptions.ErrReadBackendResponse(nil)
	}

	token := utils.PickString(data, "token", "accessToken", "authToken")
	if token == "" {
		return nil, exceptions.ErrReadBackendResponse(nil)
	}

	userMap := utils.PickMap(data, "user", "doctor", "pharmacy", "profile")
	user := &models.User{
		ID:       utils.PickString(userMap, "_id", "id", "userId"),
		Role:     role,
		UserName: utils.PickString(userMap, "name", "fullName", "userName", "storeName"),
		Email:    utils.PickString(userMap, "email"),
	}

	session := &models.Session{Token: token, User: user}
	if role == constvars.RolePharmacy {
		session.Pharmacy = userMap
	}

	sessionID := utils.GenerateSessionID()
	if err := uc.sessionStore(role).Set(ctx, sessionID, session); err != nil {
		return nil, err
	}

	gatewayToken, err := utils.GenerateSessionJWT(sessionID, role, uc.JWTSecret, uc.JWTExpTimeInHour)
	if err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.ContextRequestID).(string)
	utils.LogBusinessEvent(uc.Log, "user_logged_in", requestID,
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	return &responses.Login{Token: gatewayToken, User: user}, nil
}
