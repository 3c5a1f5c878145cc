package controllers

import (
	"net/http"
	"strings"
	"sync"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/exceptions"
	"doorspital-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
	JWTSecret   string
}

var (
	authControllerInstance *AuthController
	onceAuthController     sync.Once
)

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, jwtSecret string) *AuthController {
	onceAuthController.Do(func() {
		authControllerInstance = &AuthController{
			Log:         logger,
			AuthUsecase: authUsecase,
			JWTSecret:   jwtSecret,
		}
	})
	return authControllerInstance
}

func (ctrl *AuthController) requestID(w http.ResponseWriter, r *http.Request) (string, bool) {
	requestID, ok := r.Context().Value(constvars.ContextRequestID).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	return requestID, true
}

func (ctrl *AuthController) login(role string, w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r)
	if !ok {
		return
	}

	request := new(requests.Login)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.AuthUsecase.Login(r.Context(), role, request)
	if err != nil {
		ctrl.Log.Error("Login failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

func (ctrl *AuthController) DoctorLogin(w http.ResponseWriter, r *http.Request) {
	ctrl.login(constvars.RoleDoctor, w, r)
}

func (ctrl *AuthController) PharmacyLogin(w http.ResponseWriter, r *http.Request) {
	ctrl.login(constvars.RolePharmacy, w, r)
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r)
	if !ok {
		return
	}

	request := new(requests.Signup)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.AuthUsecase.Signup(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("Signup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SignupSuccess, response)
}

func (ctrl *AuthController) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r)
	if !ok {
		return
	}

	request := new(requests.VerifyOTP)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.AuthUsecase.VerifyOTP(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("OTP verification failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OTPVerifySuccess, response)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	_, ok := ctrl.requestID(w, r)
	if !ok {
		return
	}

	bearer := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(bearer, "Bearer ") {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	sessionID, role, err := utils.ParseSessionJWT(strings.TrimPrefix(bearer, "Bearer "), ctrl.JWTSecret)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.AuthUsecase.Logout(r.Context(), role, sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}
