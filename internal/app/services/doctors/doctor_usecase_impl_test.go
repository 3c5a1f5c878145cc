package doctors

import (
	"context"
	"testing"

	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/dto/responses"
	"doorspital-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockDoctorBackendClient struct {
	mock.Mock
}

func (m *mockDoctorBackendClient) DashboardOverview(ctx context.Context, token string) (map[string]interface{}, error) {
	args := m.Called(ctx, token)
	overview, _ := args.Get(0).(map[string]interface{})
	return overview, args.Error(1)
}

func (m *mockDoctorBackendClient) FindAppointments(ctx context.Context, token string, query *requests.ListQuery) ([]responses.Appointment, error) {
	args := m.Called(ctx, token, query)
	appointments, _ := args.Get(0).([]responses.Appointment)
	return appointments, args.Error(1)
}

func (m *mockDoctorBackendClient) UpdateAppointmentStatus(ctx context.Context, token, appointmentID, status string) error {
	args := m.Called(ctx, token, appointmentID, status)
	return args.Error(0)
}

func (m *mockDoctorBackendClient) FindPatients(ctx context.Context, token string, query *requests.ListQuery) ([]responses.Patient, error) {
	args := m.Called(ctx, token, query)
	patients, _ := args.Get(0).([]responses.Patient)
	return patients, args.Error(1)
}

func (m *mockDoctorBackendClient) Profile(ctx context.Context, token string) (*responses.DoctorProfile, error) {
	args := m.Called(ctx, token)
	profile, _ := args.Get(0).(*responses.DoctorProfile)
	return profile, args.Error(1)
}

func (m *mockDoctorBackendClient) UpdateProfile(ctx context.Context, token string, request *requests.UpdateDoctorProfile) (*responses.DoctorProfile, error) {
	args := m.Called(ctx, token, request)
	profile, _ := args.Get(0).(*responses.DoctorProfile)
	return profile, args.Error(1)
}

func (m *mockDoctorBackendClient) UpdateServices(ctx context.Context, token string, services []string) (*responses.DoctorProfile, error) {
	args := m.Called(ctx, token, services)
	profile, _ := args.Get(0).(*responses.DoctorProfile)
	return profile, args.Error(1)
}

func (m *mockDoctorBackendClient) Availability(ctx context.Context, token, doctorID string) ([]responses.AvailabilityWindow, error) {
	args := m.Called(ctx, token, doctorID)
	windows, _ := args.Get(0).([]responses.AvailabilityWindow)
	return windows, args.Error(1)
}

func (m *mockDoctorBackendClient) SetAvailability(ctx context.Context, token, doctorID string, request *requests.SetAvailability) error {
	args := m.Called(ctx, token, doctorID, request)
	return args.Error(0)
}

func (m *mockDoctorBackendClient) Verification(ctx context.Context, token, doctorID string) (*responses.Verification, error) {
	args := m.Called(ctx, token, doctorID)
	verification, _ := args.Get(0).(*responses.Verification)
	return verification, args.Error(1)
}

func testDoctorSession() *models.Session {
	return &models.Session{
		Token: "upstream-token",
		User:  &models.User{ID: "doc-1", Role: constvars.RoleDoctor, UserName: "Dr. Anita Rao"},
	}
}

func TestDoctorUsecaseDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("returns overview and profile together", func(t *testing.T) {
		client := new(mockDoctorBackendClient)
		usecase := &doctorUsecase{DoctorClient: client, Log: zap.NewNop()}

		overview := map[string]interface{}{"todayAppointments": float64(4)}
		profile := &responses.DoctorProfile{ID: "doc-1", Name: "Dr. Anita Rao"}
		client.On("DashboardOverview", mock.Anything, "upstream-token").Return(overview, nil)
		client.On("Profile", mock.Anything, "upstream-token").Return(profile, nil)

		dashboard, err := usecase.Dashboard(ctx, testDoctorSession())
		assert.NoError(t, err)
		assert.False(t, dashboard.VerificationPending)
		assert.Equal(t, overview, dashboard.Overview)
		assert.Equal(t, profile, dashboard.Profile)
	})

	t.Run("a pending-verification rejection degrades instead of failing", func(t *testing.T) {
		client := new(mockDoctorBackendClient)
		usecase := &doctorUsecase{DoctorClient: client, Log: zap.NewNop()}

		pendingErr := exceptions.ErrBackendRejected(constvars.StatusForbidden,
			"Your verification is not approved yet, please wait for review")
		profile := &responses.DoctorProfile{ID: "doc-1", Name: "Dr. Anita Rao", Status: "pending"}
		client.On("DashboardOverview", mock.Anything, "upstream-token").Return(nil, pendingErr)
		client.On("Profile", mock.Anything, "upstream-token").Return(profile, nil)

		dashboard, err := usecase.Dashboard(ctx, testDoctorSession())
		assert.NoError(t, err)
		assert.True(t, dashboard.VerificationPending)
		assert.Nil(t, dashboard.Overview)
		assert.Equal(t, profile, dashboard.Profile)
	})

	t.Run("the pending view tolerates a missing profile", func(t *testing.T) {
		client := new(mockDoctorBackendClient)
		usecase := &doctorUsecase{DoctorClient: client, Log: zap.NewNop()}

		pendingErr := exceptions.ErrBackendRejected(constvars.StatusForbidden,
			"Verification is NOT approved")
		client.On("DashboardOverview", mock.Anything, "upstream-token").Return(nil, pendingErr)
		client.On("Profile", mock.Anything, "upstream-token").Return(nil, pendingErr)

		dashboard, err := usecase.Dashboard(ctx, testDoctorSession())
		assert.NoError(t, err)
		assert.True(t, dashboard.VerificationPending)
		assert.Nil(t, dashboard.Profile)
	})

	t.Run("any other rejection fails the dashboard", func(t *testing.T) {
		client := new(mockDoctorBackendClient)
		usecase := &doctorUsecase{DoctorClient: client, Log: zap.NewNop()}

		upstreamErr := exceptions.ErrBackendRejected(constvars.StatusInternalServerError, "upstream exploded")
		client.On("DashboardOverview", mock.Anything, "upstream-token").Return(nil, upstreamErr)
		client.On("Profile", mock.Anything, "upstream-token").Return(&responses.DoctorProfile{}, nil)

		_, err := usecase.Dashboard(ctx, testDoctorSession())
		assert.Error(t, err)
		assert.Equal(t, "upstream exploded", exceptions.ClientMessageOf(err))
	})

	t.Run("a missing session is rejected before any backend call", func(t *testing.T) {
		client := new(mockDoctorBackendClient)
		usecase := &doctorUsecase{DoctorClient: client, Log: zap.NewNop()}

		_, err := usecase.Dashboard(ctx, nil)
		assert.Error(t, err)
		client.AssertNotCalled(t, "DashboardOverview", mock.Anything, mock.Anything)
	})
}

func TestDoctorUsecaseMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("appointment status updates echo the applied status", func(t *testing.T) {
		client := new(mockDoctorBackendClient)
		usecase := &doctorUsecase{DoctorClient: client, Log: zap.NewNop()}

		client.On("UpdateAppointmentStatus", mock.Anything, "upstream-token", "appt-9", "confirmed").Return(nil)

		result, err := usecase.UpdateAppointmentStatus(ctx, testDoctorSession(), "appt-9",
			&requests.UpdateAppointmentStatus{Status: "confirmed"})
		assert.NoError(t, err)
		assert.Equal(t, "appt-9", result.ID)
		assert.Equal(t, "confirmed", result.Status)
	})

	t.Run("an unknown appointment status never reaches the backend", func(t *testing.T) {
		client := new(mockDoctorBackendClient)
		usecase := &doctorUsecase{DoctorClient: client, Log: zap.NewNop()}

		_, err := usecase.UpdateAppointmentStatus(ctx, testDoctorSession(), "appt-9",
			&requests.UpdateAppointmentStatus{Status: "postponed"})
		assert.Error(t, err)
		client.AssertNotCalled(t, "UpdateAppointmentStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("service names are trimmed and deduplicated before saving", func(t *testing.T) {
		client := new(mockDoctorBackendClient)
		usecase := &doctorUsecase{DoctorClient: client, Log: zap.NewNop()}

		client.On("UpdateServices", mock.Anything, "upstream-token", []string{"Consultation", "Follow-up"}).
			Return(&responses.DoctorProfile{Services: []string{"Consultation", "Follow-up"}}, nil)

		profile, err := usecase.UpdateServices(ctx, testDoctorSession(),
			&requests.UpdateServices{Services: []string{" Consultation ", "Consultation", "Follow-up", ""}})
		assert.NoError(t, err)
		assert.Equal(t, []string{"Consultation", "Follow-up"}, profile.Services)
	})

	t.Run("availability is saved against the session's doctor ID", func(t *testing.T) {
		client := new(mockDoctorBackendClient)
		usecase := &doctorUsecase{DoctorClient: client, Log: zap.NewNop()}

		request := &requests.SetAvailability{
			Availability: []requests.AvailabilityWindow{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "13:00", SlotDurationMinutes: 15},
			},
		}
		client.On("SetAvailability", mock.Anything, "upstream-token", "doc-1", request).Return(nil)

		assert.NoError(t, usecase.SetAvailability(ctx, testDoctorSession(), request))
		client.AssertExpectations(t)
	})
}
