package contracts

import (
	"context"
	"io"
	"mime/multipart"

	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/dto/responses"
)

type RegistrationUsecase interface {
	GetDraft(ctx context.Context, draftID string) (*responses.RegistrationDraft, error)
	SetDoctorID(ctx context.Context, draftID string, request *requests.SetDoctorID) (*responses.RegistrationDraft, error)
	UpdatePersonal(ctx context.Context, draftID string, request *requests.UpdatePersonal) (*responses.RegistrationDraft, error)
	UpdateRegistration(ctx context.Context, draftID string, request *requests.UpdateRegistration) (*responses.RegistrationDraft, error)
	UpdateIdentity(ctx context.Context, draftID string, request *requests.UpdateIdentity) (*responses.RegistrationDraft, error)
	UploadDocument(ctx context.Context, draftID, slot string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.DocumentUpload, error)
	Reset(ctx context.Context, draftID string, preserveDoctorID bool) error
	Submit(ctx context.Context, draftID string) (*responses.RegistrationSubmit, error)
}
