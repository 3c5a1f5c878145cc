package contracts

import (
	"context"

	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	Dashboard(ctx context.Context, session *models.Session) (*responses.DoctorDashboard, error)
	FindAppointments(ctx context.Context, session *models.Session, query *requests.ListQuery) ([]responses.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.AppointmentStatus, error)
	FindPatients(ctx context.Context, session *models.Session, query *requests.ListQuery) ([]responses.Patient, error)
	Profile(ctx context.Context, session *models.Session) (*responses.DoctorProfile, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctorProfile) (*responses.DoctorProfile, error)
	UpdateServices(ctx context.Context, session *models.Session, request *requests.UpdateServices) (*responses.DoctorProfile, error)
	Availability(ctx context.Context, session *models.Session) ([]responses.AvailabilityWindow, error)
	SetAvailability(ctx context.Context, session *models.Session, request *requests.SetAvailability) error
	Verification(ctx context.Context, session *models.Session, doctorID string) (*responses.Verification, error)
}

// DoctorBackendClient wraps the raw backend endpoints for the doctor surface.
// It returns typed payloads already lifted out of the backend's envelopes.
type DoctorBackendClient interface {
	DashboardOverview(ctx context.Context, token string) (map[string]interface{}, error)
	FindAppointments(ctx context.Context, token string, query *requests.ListQuery) ([]responses.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, token, appointmentID, status string) error
	FindPatients(ctx context.Context, token string, query *requests.ListQuery) ([]responses.Patient, error)
	Profile(ctx context.Context, token string) (*responses.DoctorProfile, error)
	UpdateProfile(ctx context.Context, token string, request *requests.UpdateDoctorProfile) (*responses.DoctorProfile, error)
	UpdateServices(ctx context.Context, token string, services []string) (*responses.DoctorProfile, error)
	Availability(ctx context.Context, token, doctorID string) ([]responses.AvailabilityWindow, error)
	SetAvailability(ctx context.Context, token, doctorID string, request *requests.SetAvailability) error
	Verification(ctx context.Context, token, doctorID string) (*responses.Verification, error)
}
