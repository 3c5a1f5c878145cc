package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"doorspital-service/internal/app/delivery/http/controllers"
	"doorspital-service/internal/app/delivery/http/middlewares"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/dto/responses"
	"doorspital-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, role string, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, role, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.Signup, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Signup), args.Error(1)
}

func (m *MockAuthUsecase) VerifyOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.Login, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, role, sessionID string) error {
	args := m.Called(ctx, role, sessionID)
	return args.Error(0)
}

func TestAuthRouter(t *testing.T) {
	logger := zap.NewNop()
	secret := "router-test-secret"

	mockAuthUsecase := new(MockAuthUsecase)

	authController := &controllers.AuthController{
		Log:         logger,
		AuthUsecase: mockAuthUsecase,
		JWTSecret:   secret,
	}

	middlewareInstance := &middlewares.Middlewares{
		Log:       logger,
		JWTSecret: secret,
	}

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	attachAuthRoutes(router, middlewareInstance, authController)

	t.Run("Doctor login reaches the usecase with the doctor role", func(t *testing.T) {
		mockAuthUsecase.On("Login", mock.Anything, constvars.RoleDoctor, mock.AnythingOfType("*requests.Login")).
			Return(&responses.Login{Token: "gateway-jwt"}, nil).Once()

		jsonBody, _ := json.Marshal(requests.Login{Email: "doc@example.com", Password: "secret123"})

		req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("Pharmacy login reaches the usecase with the pharmacy role", func(t *testing.T) {
		mockAuthUsecase.On("Login", mock.Anything, constvars.RolePharmacy, mock.AnythingOfType("*requests.Login")).
			Return(&responses.Login{Token: "gateway-jwt"}, nil).Once()

		jsonBody, _ := json.Marshal(requests.Login{Email: "store@example.com", Password: "secret123"})

		req := httptest.NewRequest("POST", "/pharmacy/login", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("Invalid JSON body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/login", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Logout resolves role and session from the gateway token", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-42", constvars.RolePharmacy, secret, 1)
		assert.NoError(t, err)

		mockAuthUsecase.On("Logout", mock.Anything, constvars.RolePharmacy, "sess-42").Return(nil).Once()

		req := httptest.NewRequest("POST", "/logout", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("Logout without a bearer token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/logout", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockAuthUsecase.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything, "")
	})
}
