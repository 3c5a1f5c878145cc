package models

// RegistrationDraft accumulates the five-page doctor registration/KYC wizard.
// Everything except Files is persisted after every mutation; Files holds MinIO
// object names for this process only and is excluded from the stored snapshot
// (json:"-"), matching the rule that uploaded documents never serialize into
// the draft.
type RegistrationDraft struct {
	DoctorID     string              `json:"doctorId"`
	Personal     PersonalDetails     `json:"personal"`
	Registration CouncilRegistration `json:"registration"`
	Identity     IdentityDetails     `json:"identity"`
	Files        RegistrationFiles   `json:"-"`
}

type PersonalDetails struct {
	FullName              string `json:"fullName"`
	Email                 string `json:"email"`
	PhoneNumber           string `json:"phoneNumber"`
	MedicalSpecialization string `json:"medicalSpecialization"`
	YearsOfExperience     string `json:"yearsOfExperience"`
	ClinicHospitalName    string `json:"clinicHospitalName"`
	ClinicAddress         string `json:"clinicAddress"`
	State                 string `json:"state"`
	City                  string `json:"city"`
}

type CouncilRegistration struct {
	RegistrationNumber string `json:"registrationNumber"`
	CouncilName        string `json:"councilName"`
	CouncilDisplayName string `json:"councilDisplayName"`
	IssueDate          string `json:"issueDate"`
}

type IdentityDetails struct {
	DocumentType string `json:"documentType"`
}

// RegistrationFiles maps each upload slot to the stored object name.
type RegistrationFiles struct {
	MBBSCertificate         string `json:"mbbsCertificate,omitempty"`
	MDMSBDSCertificate      string `json:"mdMsBdsCertificate,omitempty"`
	RegistrationCertificate string `json:"registrationCertificate,omitempty"`
	GovernmentID            string `json:"governmentId,omitempty"`
	Selfie                  string `json:"selfie,omitempty"`
}

func NewRegistrationDraft() *RegistrationDraft {
	return &RegistrationDraft{}
}
