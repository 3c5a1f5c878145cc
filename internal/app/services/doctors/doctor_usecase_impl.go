package doctors

import (
	"context"
	"strings"
	"sync"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/dto/responses"
	"doorspital-service/internal/pkg/exceptions"
	"doorspital-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type doctorUsecase struct {
	DoctorClient contracts.DoctorBackendClient
	Log          *zap.Logger
}

var (
	doctorUsecaseInstance *doctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(doctorClient contracts.DoctorBackendClient, logger *zap.Logger) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorClient: doctorClient,
			Log:          logger,
		}
	})
	return doctorUsecaseInstance
}

func sessionToken(session *models.Session) (string, error) {
	if session == nil || session.Token == "" {
		return "", exceptions.ErrSessionNotFound(nil)
	}
	return session.Token, nil
}

// isVerificationPending recognizes the backend's unverified-doctor rejection.
// The backend signals this state only through its error wording.
func isVerificationPending(err error) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(exceptions.ClientMessageOf(err))
	return strings.Contains(message, constvars.VerificationPendingMarker)
}

// Dashboard joins the overview snapshot and the profile. Both must succeed for
// a normal dashboard; if the backend is still reviewing the doctor's documents
// the overview call fails with the pending marker, and the dashboard degrades
// to the pending view with whatever profile data is reachable.
func (uc *doctorUsecase) Dashboard(ctx context.Context, session *models.Session) (*responses.DoctorDashboard, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}

	var (
		overview map[string]interface{}
		profile  *responses.DoctorProfile
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var overviewErr error
		overview, overviewErr = uc.DoctorClient.DashboardOverview(groupCtx, token)
		return overviewErr
	})
	group.Go(func() error {
		var profileErr error
		profile, profileErr = uc.DoctorClient.Profile(groupCtx, token)
		return profileErr
	})

	if err := group.Wait(); err != nil {
		if !isVerificationPending(err) {
			return nil, err
		}

		// The joined fetch was torn down as a unit, so the profile result
		// cannot be trusted. Refetch it alone and tolerate its absence; the
		// pending view renders without it.
		pendingProfile, profileErr := uc.DoctorClient.Profile(ctx, token)
		if profileErr != nil {
			requestID, _ := ctx.Value(constvars.ContextRequestID).(string)
			uc.Log.Warn("Profile unavailable while verification is pending",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(profileErr),
			)
			pendingProfile = nil
		}
		return &responses.DoctorDashboard{
			Profile:             pendingProfile,
			VerificationPending: true,
		}, nil
	}

	return &responses.DoctorDashboard{
		Overview: overview,
		Profile:  profile,
	}, nil
}

func (uc *doctorUsecase) FindAppointments(ctx context.Context, session *models.Session, query *requests.ListQuery) ([]responses.Appointment, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}
	return uc.DoctorClient.FindAppointments(ctx, token, query)
}

func (uc *doctorUsecase) UpdateAppointmentStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.AppointmentStatus, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	if err := uc.DoctorClient.UpdateAppointmentStatus(ctx, token, appointmentID, request.Status); err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.ContextRequestID).(string)
	utils.LogBusinessEvent(uc.Log, "appointment_status_updated", requestID,
		zap.String(constvars.LoggingOperationKey, request.Status),
	)
	return &responses.AppointmentStatus{ID: appointmentID, Status: request.Status}, nil
}

func (uc *doctorUsecase) FindPatients(ctx context.Context, session *models.Session, query *requests.ListQuery) ([]responses.Patient, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}
	return uc.DoctorClient.FindPatients(ctx, token, query)
}

func (uc *doctorUsecase) Profile(ctx context.Context, session *models.Session) (*responses.DoctorProfile, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}
	return uc.DoctorClient.Profile(ctx, token)
}

func (uc *doctorUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctorProfile) (*responses.DoctorProfile, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}
	return uc.DoctorClient.UpdateProfile(ctx, token, request)
}

func (uc *doctorUsecase) UpdateServices(ctx context.Context, session *models.Session, request *requests.UpdateServices) (*responses.DoctorProfile, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return uc.DoctorClient.UpdateServices(ctx, token, utils.SanitizeServiceNames(request.Services))
}

func (uc *doctorUsecase) Availability(ctx context.Context, session *models.Session) ([]responses.AvailabilityWindow, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}

	doctorID := ""
	if session.User != nil {
		doctorID = session.User.ID
	}
	return uc.DoctorClient.Availability(ctx, token, doctorID)
}

func (uc *doctorUsecase) SetAvailability(ctx context.Context, session *models.Session, request *requests.SetAvailability) error {
	token, err := sessionToken(session)
	if err != nil {
		return err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	doctorID := ""
	if session.User != nil {
		doctorID = session.User.ID
	}
	return uc.DoctorClient.SetAvailability(ctx, token, doctorID, request)
}

func (uc *doctorUsecase) Verification(ctx context.Context, session *models.Session, doctorID string) (*responses.Verification, error) {
	token, err := sessionToken(session)
	if err != nil {
		return nil, err
	}
	return uc.DoctorClient.Verification(ctx, token, doctorID)
}
