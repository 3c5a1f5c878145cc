package requests

// Wizard step updates use pointer fields: only the keys the page actually
// submitted are merged into the draft, siblings stay untouched.

type SetDoctorID struct {
	DoctorID string `json:"doctorId" validate:"required"`
}

type UpdatePersonal struct {
	FullName              *string `json:"fullName,omitempty"`
	Email                 *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber           *string `json:"phoneNumber,omitempty"`
	MedicalSpecialization *string `json:"medicalSpecialization,omitempty"`
	YearsOfExperience     *string `json:"yearsOfExperience,omitempty"`
	ClinicHospitalName    *string `json:"clinicHospitalName,omitempty"`
	ClinicAddress         *string `json:"clinicAddress,omitempty"`
	State                 *string `json:"state,omitempty"`
	City                  *string `json:"city,omitempty"`
}

type UpdateRegistration struct {
	RegistrationNumber *string `json:"registrationNumber,omitempty"`
	CouncilName        *string `json:"councilName,omitempty"`
	CouncilDisplayName *string `json:"councilDisplayName,omitempty"`
	IssueDate          *string `json:"issueDate,omitempty"`
}

type UpdateIdentity struct {
	DocumentType *string `json:"documentType,omitempty"`
}

type ResetRegistration struct {
	PreserveDoctorID bool `json:"preserveDoctorId"`
}
