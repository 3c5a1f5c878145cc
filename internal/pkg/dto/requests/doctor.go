package requests

type UpdateDoctorProfile struct {
	About           *string `json:"about,omitempty"`
	Qualification   *string `json:"qualification,omitempty"`
	ExperienceYears *string `json:"experienceYears,omitempty"`
	ConsultationFee *string `json:"consultationFee,omitempty"`
}

type UpdateServices struct {
	Services []string `json:"services" validate:"required"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
}

type AvailabilityWindow struct {
	DayOfWeek           int    `json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime           string `json:"startTime" validate:"required"`
	EndTime             string `json:"endTime" validate:"required"`
	SlotDurationMinutes int    `json:"slotDurationMinutes" validate:"required,min=5,max=240"`
}

type SetAvailability struct {
	Availability []AvailabilityWindow `json:"availability" validate:"required,min=1,dive"`
}
