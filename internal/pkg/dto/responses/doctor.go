package responses

type DoctorProfile struct {
	ID              string   `json:"id"`
	DoctorID        string   `json:"doctorId,omitempty"`
	Name            string   `json:"name"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Specialty       string   `json:"specialty,omitempty"`
	ExperienceYears string   `json:"experienceYears,omitempty"`
	Qualification   string   `json:"qualification,omitempty"`
	ConsultationFee string   `json:"consultationFee,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	About           string   `json:"about,omitempty"`
	Role            string   `json:"role,omitempty"`
	Status          string   `json:"status,omitempty"`
	Services        []string `json:"services,omitempty"`
}

// DoctorDashboard is the layout-shell payload: the overview snapshot plus the
// profile, fetched together. Overview stays an opaque map because the backend
// owns its shape and the sections pick what they need out of it.
type DoctorDashboard struct {
	Overview            map[string]interface{} `json:"overview,omitempty"`
	Profile             *DoctorProfile         `json:"profile,omitempty"`
	VerificationPending bool                   `json:"verificationPending"`
}

type Appointment struct {
	ID          string `json:"id"`
	PatientName string `json:"patientName"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	Status      string `json:"status,omitempty"`
	Mode        string `json:"mode,omitempty"`
}

type AppointmentStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type Patient struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LastVisit string `json:"lastVisit,omitempty"`
}

type Verification struct {
	Status      string                 `json:"status"`
	ReviewNotes string                 `json:"reviewNotes,omitempty"`
	SubmittedAt string                 `json:"submittedAt,omitempty"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

type AvailabilityWindow struct {
	DayOfWeek           int    `json:"dayOfWeek"`
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}
