package responses

import "doorspital-service/internal/app/models"

type RegistrationDraft struct {
	DraftID       string                     `json:"draftId"`
	DoctorID      string                     `json:"doctorId,omitempty"`
	Personal      models.PersonalDetails     `json:"personal"`
	Registration  models.CouncilRegistration `json:"registration"`
	Identity      models.IdentityDetails     `json:"identity"`
	UploadedSlots []string                   `json:"uploadedSlots,omitempty"`
}

type DocumentUpload struct {
	Slot      string `json:"slot"`
	ObjectKey string `json:"objectKey"`
	Size      int64  `json:"size"`
}

type RegistrationSubmit struct {
	DoctorID string `json:"doctorId,omitempty"`
	Status   string `json:"status"`
}
