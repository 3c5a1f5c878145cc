package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"doorspital-service/internal/app/delivery/http/controllers"
	"doorspital-service/internal/app/delivery/http/middlewares"
	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/dto/responses"
	"doorspital-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDoctorUsecase struct {
	mock.Mock
}

func (m *MockDoctorUsecase) Dashboard(ctx context.Context, session *models.Session) (*responses.DoctorDashboard, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DoctorDashboard), args.Error(1)
}

func (m *MockDoctorUsecase) FindAppointments(ctx context.Context, session *models.Session, query *requests.ListQuery) ([]responses.Appointment, error) {
	args := m.Called(ctx, session, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Appointment), args.Error(1)
}

func (m *MockDoctorUsecase) UpdateAppointmentStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.AppointmentStatus, error) {
	args := m.Called(ctx, session, appointmentID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AppointmentStatus), args.Error(1)
}

func (m *MockDoctorUsecase) FindPatients(ctx context.Context, session *models.Session, query *requests.ListQuery) ([]responses.Patient, error) {
	args := m.Called(ctx, session, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Patient), args.Error(1)
}

func (m *MockDoctorUsecase) Profile(ctx context.Context, session *models.Session) (*responses.DoctorProfile, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DoctorProfile), args.Error(1)
}

func (m *MockDoctorUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctorProfile) (*responses.DoctorProfile, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DoctorProfile), args.Error(1)
}

func (m *MockDoctorUsecase) UpdateServices(ctx context.Context, session *models.Session, request *requests.UpdateServices) (*responses.DoctorProfile, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DoctorProfile), args.Error(1)
}

func (m *MockDoctorUsecase) Availability(ctx context.Context, session *models.Session) ([]responses.AvailabilityWindow, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.AvailabilityWindow), args.Error(1)
}

func (m *MockDoctorUsecase) SetAvailability(ctx context.Context, session *models.Session, request *requests.SetAvailability) error {
	args := m.Called(ctx, session, request)
	return args.Error(0)
}

func (m *MockDoctorUsecase) Verification(ctx context.Context, session *models.Session, doctorID string) (*responses.Verification, error) {
	args := m.Called(ctx, session, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Verification), args.Error(1)
}

type fakeSessionRepository struct {
	sessions map[string]*models.Session
}

func (repo *fakeSessionRepository) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	return repo.sessions[sessionID], nil
}

func (repo *fakeSessionRepository) Set(ctx context.Context, sessionID string, session *models.Session) error {
	repo.sessions[sessionID] = session
	return nil
}

func (repo *fakeSessionRepository) Clear(ctx context.Context, sessionID string) error {
	delete(repo.sessions, sessionID)
	return nil
}

func TestDoctorRouter_SessionGate(t *testing.T) {
	logger := zap.NewNop()
	secret := "router-test-secret"

	doctorSessions := &fakeSessionRepository{sessions: map[string]*models.Session{
		"sess-doc": {
			Token: "upstream-token",
			User:  &models.User{ID: "doc-1", Role: constvars.RoleDoctor},
		},
	}}

	mockDoctorUsecase := new(MockDoctorUsecase)

	doctorController := &controllers.DoctorController{
		Log:           logger,
		DoctorUsecase: mockDoctorUsecase,
	}

	middlewareInstance := &middlewares.Middlewares{
		Log:              logger,
		DoctorSessions:   doctorSessions,
		PharmacySessions: &fakeSessionRepository{sessions: map[string]*models.Session{}},
		JWTSecret:        secret,
	}

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	router.Route("/doctors", func(r chi.Router) {
		attachDoctorRoutes(r, middlewareInstance, doctorController)
	})

	t.Run("Authenticated dashboard request carries the stored session", func(t *testing.T) {
		mockDoctorUsecase.On("Dashboard", mock.Anything, mock.MatchedBy(func(session *models.Session) bool {
			return session != nil && session.Token == "upstream-token"
		})).Return(&responses.DoctorDashboard{Overview: map[string]interface{}{"appointmentsToday": 3}}, nil).Once()

		token, err := utils.GenerateSessionJWT("sess-doc", constvars.RoleDoctor, secret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/doctors/dashboard", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockDoctorUsecase.AssertExpectations(t)
	})

	t.Run("Unauthenticated request never reaches the usecase", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/doctors/dashboard", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockDoctorUsecase.AssertNotCalled(t, "Dashboard", mock.Anything, mock.Anything)
	})

	t.Run("Pharmacy token cannot open doctor routes", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-doc", constvars.RolePharmacy, secret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/doctors/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockDoctorUsecase.AssertNotCalled(t, "FindAppointments", mock.Anything, mock.Anything, mock.Anything)
	})
}
