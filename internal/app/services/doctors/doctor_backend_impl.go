package doctors

import (
	"context"
	"fmt"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/dto/responses"
	"doorspital-service/internal/pkg/utils"
)

type doctorBackendClient struct {
	BackendClient contracts.BackendClient
}

func NewDoctorBackendClient(backendClient contracts.BackendClient) contracts.DoctorBackendClient {
	return &doctorBackendClient{
		BackendClient: backendClient,
	}
}

func (c *doctorBackendClient) tokenOpts(token string) *contracts.BackendOptions {
	return &contracts.BackendOptions{Token: token}
}

func (c *doctorBackendClient) DashboardOverview(ctx context.Context, token string) (map[string]interface{}, error) {
	payload, err := c.BackendClient.Do(ctx, constvars.MethodGet, constvars.BackendPathDashboardOverview, nil, c.tokenOpts(token))
	if err != nil {
		return nil, err
	}

	overview, _ := utils.UnwrapData(payload).(map[string]interface{})
	return overview, nil
}

func (c *doctorBackendClient) FindAppointments(ctx context.Context, token string, query *requests.ListQuery) ([]responses.Appointment, error) {
	path := constvars.BackendPathAppointments + utils.EncodeListQuery(query)
	payload, err := c.BackendClient.Do(ctx, constvars.MethodGet, path, nil, c.tokenOpts(token))
	if err != nil {
		return nil, err
	}

	items := utils.NormalizeList(utils.UnwrapData(payload), "appointments")
	appointments := make([]responses.Appointment, 0, len(items))
	for _, item := range items {
		appointments = append(appointments, mapAppointment(item))
	}
	return appointments, nil
}

func (c *doctorBackendClient) UpdateAppointmentStatus(ctx context.Context, token, appointmentID, status string) error {
	path := fmt.Sprintf("%s/%s/status", constvars.BackendPathDoctorAppointments, appointmentID)
	body := map[string]string{"status": status}
	_, err := c.BackendClient.Do(ctx, constvars.MethodPatch, path, body, c.tokenOpts(token))
	return err
}

func (c *doctorBackendClient) FindPatients(ctx context.Context, token string, query *requests.ListQuery) ([]responses.Patient, error) {
	path := constvars.BackendPathPatients + utils.EncodeListQuery(query)
	payload, err := c.BackendClient.Do(ctx, constvars.MethodGet, path, nil, c.tokenOpts(token))
	if err != nil {
		return nil, err
	}

	items := utils.NormalizeList(utils.UnwrapData(payload), "patients")
	patients := make([]responses.Patient, 0, len(items))
	for _, item := range items {
		patients = append(patients, responses.Patient{
			ID:        utils.PickString(item, "_id", "id"),
			Name:      utils.PickString(item, "name", "fullName", "userName", "patientName"),
			Email:     utils.PickString(item, "email"),
			Phone:     utils.PickString(item, "phone", "phoneNumber"),
			LastVisit: utils.PickString(item, "lastVisit", "lastVisitedAt"),
		})
	}
	return patients, nil
}

func (c *doctorBackendClient) Profile(ctx context.Context, token string) (*responses.DoctorProfile, error) {
	payload, err := c.BackendClient.Do(ctx, constvars.MethodGet, constvars.BackendPathProfileMe, nil, c.tokenOpts(token))
	if err != nil {
		return nil, err
	}
	return mapDoctorProfile(utils.UnwrapData(payload)), nil
}

func (c *doctorBackendClient) UpdateProfile(ctx context.Context, token string, request *requests.UpdateDoctorProfile) (*responses.DoctorProfile, error) {
	payload, err := c.BackendClient.Do(ctx, constvars.MethodPut, constvars.BackendPathDoctorProfile, request, c.tokenOpts(token))
	if err != nil {
		return nil, err
	}
	return mapDoctorProfile(utils.UnwrapData(payload)), nil
}

func (c *doctorBackendClient) UpdateServices(ctx context.Context, token string, services []string) (*responses.DoctorProfile, error) {
	body := map[string][]string{"services": services}
	payload, err := c.BackendClient.Do(ctx, constvars.MethodPut, constvars.BackendPathDoctorServices, body, c.tokenOpts(token))
	if err != nil {
		return nil, err
	}
	return mapDoctorProfile(utils.UnwrapData(payload)), nil
}

func (c *doctorBackendClient) Availability(ctx context.Context, token, doctorID string) ([]responses.AvailabilityWindow, error) {
	path := fmt.Sprintf("%s/%s/availability", constvars.BackendPathDoctors, doctorID)
	payload, err := c.BackendClient.Do(ctx, constvars.MethodGet, path, nil, c.tokenOpts(token))
	if err != nil {
		return nil, err
	}

	items := utils.NormalizeList(utils.UnwrapData(payload), "availability")
	windows := make([]responses.AvailabilityWindow, 0, len(items))
	for _, item := range items {
		windows = append(windows, responses.AvailabilityWindow{
			DayOfWeek:           utils.PickInt(item, "dayOfWeek", "day"),
			StartTime:           utils.PickString(item, "startTime", "start"),
			EndTime:             utils.PickString(item, "endTime", "end"),
			SlotDurationMinutes: utils.PickInt(item, "slotDurationMinutes", "slotDuration"),
		})
	}
	return windows, nil
}

func (c *doctorBackendClient) SetAvailability(ctx context.Context, token, doctorID string, request *requests.SetAvailability) error {
	path := fmt.Sprintf("%s/%s/availability/set", constvars.BackendPathDoctors, doctorID)
	_, err := c.BackendClient.Do(ctx, constvars.MethodPost, path, request, c.tokenOpts(token))
	return err
}

func (c *doctorBackendClient) Verification(ctx context.Context, token, doctorID string) (*responses.Verification, error) {
	path := fmt.Sprintf("%s/%s", constvars.BackendPathDoctorVerification, doctorID)
	payload, err := c.BackendClient.Do(ctx, constvars.MethodGet, path, nil, c.tokenOpts(token))
	if err != nil {
		return nil, err
	}

	data, _ := utils.UnwrapData(payload).(map[string]interface{})
	if data == nil {
		return &responses.Verification{Status: "unknown"}, nil
	}
	return &responses.Verification{
		Status:      utils.PickString(data, "status", "verificationStatus"),
		ReviewNotes: utils.PickString(data, "reviewNotes", "notes"),
		SubmittedAt: utils.PickString(data, "submittedAt", "createdAt"),
		Details:     utils.PickMap(data, "details"),
	}, nil
}

func mapDoctorProfile(payload interface{}) *responses.DoctorProfile {
	data, _ := payload.(map[string]interface{})
	if data == nil {
		return nil
	}
	// Some endpoints nest the doctor under a resource key instead of using the
	// data envelope.
	if nested := utils.PickMap(data, "doctor", "profile", "user"); nested != nil {
		data = nested
	}

	return &responses.DoctorProfile{
		ID:              utils.PickString(data, "_id", "id"),
		DoctorID:        utils.PickString(data, "doctorId"),
		Name:            utils.PickString(data, "name", "fullName", "userName"),
		Email:           utils.PickString(data, "email"),
		Phone:           utils.PickString(data, "phone", "phoneNumber"),
		Specialty:       utils.PickString(data, "specialty", "specialization", "medicalSpecialization"),
		ExperienceYears: utils.PickString(data, "experienceYears", "yearsOfExperience"),
		Qualification:   utils.PickString(data, "qualification"),
		ConsultationFee: utils.PickString(data, "consultationFee", "fee"),
		Languages:       utils.PickStringSlice(data, "languages"),
		About:           utils.PickString(data, "about", "bio"),
		Role:            utils.PickString(data, "role"),
		Status:          utils.PickString(data, "status", "verificationStatus"),
		Services:        utils.PickStringSlice(data, "services"),
	}
}

func mapAppointment(item map[string]interface{}) responses.Appointment {
	patientName := utils.PickString(item, "patientName")
	if patientName == "" {
		if patient := utils.PickMap(item, "patient"); patient != nil {
			patientName = utils.PickString(patient, "name", "fullName", "userName")
		}
	}

	return responses.Appointment{
		ID:          utils.PickString(item, "_id", "id"),
		PatientName: patientName,
		StartTime:   utils.PickString(item, "startTime", "start", "scheduledAt"),
		EndTime:     utils.PickString(item, "endTime", "end"),
		Status:      utils.PickString(item, "status"),
		Mode:        utils.PickString(item, "mode", "consultationType"),
	}
}
