package registrations

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"sync"
	"time"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/dto/responses"
	"doorspital-service/internal/pkg/exceptions"
	"doorspital-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type registrationUsecase struct {
	BackendClient  contracts.BackendClient
	RedisRepo      contracts.RedisRepository
	Storage        contracts.ObjectStorage
	EventPublisher contracts.EventPublisher
	Bucket         string
	DraftExp       time.Duration
	Log            *zap.Logger

	// Uploaded document object names live here only. They are keyed by draft
	// ID and never serialize into the persisted draft.
	filesMu sync.Mutex
	files   map[string]models.RegistrationFiles
}

var (
	registrationUsecaseInstance *registrationUsecase
	onceRegistrationUsecase     sync.Once
)

func NewRegistrationUsecase(
	backendClient contracts.BackendClient,
	redisRepo contracts.RedisRepository,
	objectStorage contracts.ObjectStorage,
	eventPublisher contracts.EventPublisher,
	bucket string,
	draftExp time.Duration,
	logger *zap.Logger,
) contracts.RegistrationUsecase {
	onceRegistrationUsecase.Do(func() {
		registrationUsecaseInstance = &registrationUsecase{
			BackendClient:  backendClient,
			RedisRepo:      redisRepo,
			Storage:        objectStorage,
			EventPublisher: eventPublisher,
			Bucket:         bucket,
			DraftExp:       draftExp,
			Log:            logger,
			files:          make(map[string]models.RegistrationFiles),
		}
	})
	return registrationUsecaseInstance
}

func draftKey(draftID string) string {
	return fmt.Sprintf("%s:%s", constvars.RedisKeyRegistrationDraft, draftID)
}

func (uc *registrationUsecase) loadDraft(ctx context.Context, draftID string) (*models.RegistrationDraft, error) {
	data, err := uc.RedisRepo.Get(ctx, draftKey(draftID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		// A fresh wizard starts from an empty draft rather than failing; the
		// first page the user fills creates the record.
		return models.NewRegistrationDraft(), nil
	}

	draft := new(models.RegistrationDraft)
	if err := json.Unmarshal([]byte(data), draft); err != nil {
		return models.NewRegistrationDraft(), nil
	}
	return draft, nil
}

func (uc *registrationUsecase) saveDraft(ctx context.Context, draftID string, draft *models.RegistrationDraft) error {
	return uc.RedisRepo.Set(ctx, draftKey(draftID), draft, uc.DraftExp)
}

func (uc *registrationUsecase) draftResponse(draftID string, draft *models.RegistrationDraft) *responses.RegistrationDraft {
	uc.filesMu.Lock()
	files := uc.files[draftID]
	uc.filesMu.Unlock()

	uploaded := []string{}
	for slot, objectName := range map[string]string{
		constvars.RegistrationFileMBBSCertificate:    files.MBBSCertificate,
		constvars.RegistrationFileMDMSBDSCertificate: files.MDMSBDSCertificate,
		constvars.RegistrationFileRegistrationCert:   files.RegistrationCertificate,
		constvars.RegistrationFileGovernmentID:       files.GovernmentID,
		constvars.RegistrationFileSelfie:             files.Selfie,
	} {
		if objectName != "" {
			uploaded = append(uploaded, slot)
		}
	}

	return &responses.RegistrationDraft{
		DraftID:       draftID,
		DoctorID:      draft.DoctorID,
		Personal:      draft.Personal,
		Registration:  draft.Registration,
		Identity:      draft.Identity,
		UploadedSlots: uploaded,
	}
}

func (uc *registrationUsecase) GetDraft(ctx context.Context, draftID string) (*responses.RegistrationDraft, error) {
	draft, err := uc.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return uc.draftResponse(draftID, draft), nil
}

func (uc *registrationUsecase) SetDoctorID(ctx context.Context, draftID string, request *requests.SetDoctorID) (*responses.RegistrationDraft, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	draft, err := uc.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	draft.DoctorID = request.DoctorID
	if err := uc.saveDraft(ctx, draftID, draft); err != nil {
		return nil, err
	}
	return uc.draftResponse(draftID, draft), nil
}

func (uc *registrationUsecase) UpdatePersonal(ctx context.Context, draftID string, request *requests.UpdatePersonal) (*responses.RegistrationDraft, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	draft, err := uc.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	applyString(request.FullName, &draft.Personal.FullName)
	applyString(request.Email, &draft.Personal.Email)
	applyString(request.PhoneNumber, &draft.Personal.PhoneNumber)
	applyString(request.MedicalSpecialization, &draft.Personal.MedicalSpecialization)
	applyString(request.YearsOfExperience, &draft.Personal.YearsOfExperience)
	applyString(request.ClinicHospitalName, &draft.Personal.ClinicHospitalName)
	applyString(request.ClinicAddress, &draft.Personal.ClinicAddress)
	applyString(request.State, &draft.Personal.State)
	applyString(request.City, &draft.Personal.City)

	if err := uc.saveDraft(ctx, draftID, draft); err != nil {
		return nil, err
	}
	return uc.draftResponse(draftID, draft), nil
}

func (uc *registrationUsecase) UpdateRegistration(ctx context.Context, draftID string, request *requests.UpdateRegistration) (*responses.RegistrationDraft, error) {
	draft, err := uc.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	applyString(request.RegistrationNumber, &draft.Registration.RegistrationNumber)
	applyString(request.CouncilName, &draft.Registration.CouncilName)
	applyString(request.CouncilDisplayName, &draft.Registration.CouncilDisplayName)
	applyString(request.IssueDate, &draft.Registration.IssueDate)

	if err := uc.saveDraft(ctx, draftID, draft); err != nil {
		return nil, err
	}
	return uc.draftResponse(draftID, draft), nil
}

func (uc *registrationUsecase) UpdateIdentity(ctx context.Context, draftID string, request *requests.UpdateIdentity) (*responses.RegistrationDraft, error) {
	draft, err := uc.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	applyString(request.DocumentType, &draft.Identity.DocumentType)

	if err := uc.saveDraft(ctx, draftID, draft); err != nil {
		return nil, err
	}
	return uc.draftResponse(draftID, draft), nil
}

func (uc *registrationUsecase) UploadDocument(ctx context.Context, draftID, slot string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.DocumentUpload, error) {
	objectName := fmt.Sprintf("%s/%s%s", draftID, slot, filepath.Ext(fileHeader.Filename))
	storedName, err := uc.Storage.UploadFile(ctx, file, fileHeader, uc.Bucket, objectName)
	if err != nil {
		return nil, err
	}

	uc.filesMu.Lock()
	files := uc.files[draftID]
	switch slot {
	case constvars.RegistrationFileMBBSCertificate:
		files.MBBSCertificate = storedName
	case constvars.RegistrationFileMDMSBDSCertificate:
		files.MDMSBDSCertificate = storedName
	case constvars.RegistrationFileRegistrationCert:
		files.RegistrationCertificate = storedName
	case constvars.RegistrationFileGovernmentID:
		files.GovernmentID = storedName
	case constvars.RegistrationFileSelfie:
		files.Selfie = storedName
	default:
		uc.filesMu.Unlock()
		return nil, exceptions.ErrUnknownDocumentSlot(nil)
	}
	uc.files[draftID] = files
	uc.filesMu.Unlock()

	requestID, _ := ctx.Value(constvars.ContextRequestID).(string)
	utils.LogBusinessEvent(uc.Log, "registration_document_uploaded", requestID,
		zap.String(constvars.LoggingDraftIDKey, draftID),
		zap.String(constvars.LoggingOperationKey, slot),
	)

	return &responses.DocumentUpload{
		Slot:      slot,
		ObjectKey: storedName,
		Size:      fileHeader.Size,
	}, nil
}

// Reset discards the wizard state. With preserveDoctorID the draft survives as
// a stub holding only the doctor ID; without it the record is removed
// entirely.
func (uc *registrationUsecase) Reset(ctx context.Context, draftID string, preserveDoctorID bool) error {
	uc.filesMu.Lock()
	delete(uc.files, draftID)
	uc.filesMu.Unlock()

	if !preserveDoctorID {
		return uc.RedisRepo.Delete(ctx, draftKey(draftID))
	}

	draft, err := uc.loadDraft(ctx, draftID)
	if err != nil {
		return err
	}
	stub := models.NewRegistrationDraft()
	stub.DoctorID = draft.DoctorID
	return uc.saveDraft(ctx, draftID, stub)
}

func (uc *registrationUsecase) Submit(ctx context.Context, draftID string) (*responses.RegistrationSubmit, error) {
	draft, err := uc.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.DoctorID == "" && draft.Personal.FullName == "" {
		return nil, exceptions.ErrDraftNotFound(nil)
	}

	uc.filesMu.Lock()
	files := uc.files[draftID]
	uc.filesMu.Unlock()

	submission := map[string]interface{}{
		"doctorId":     draft.DoctorID,
		"personal":     draft.Personal,
		"registration": draft.Registration,
		"identity":     draft.Identity,
		"documents":    files,
	}

	path := fmt.Sprintf("%s/%s", constvars.BackendPathDoctorVerification, draft.DoctorID)
	payload, err := uc.BackendClient.Do(ctx, constvars.MethodPost, path, submission, nil)
	if err != nil {
		return nil, err
	}

	uc.publishSubmitted(ctx, draftID, draft.DoctorID)

	// Submission consumes the draft; only the doctor ID survives for the
	// pending-verification screen.
	if err := uc.Reset(ctx, draftID, true); err != nil {
		uc.Log.Warn("Draft reset after submission failed",
			zap.String(constvars.LoggingDraftIDKey, draftID),
			zap.Error(err),
		)
	}

	status := "submitted"
	if data, ok := utils.UnwrapData(payload).(map[string]interface{}); ok {
		if backendStatus := utils.PickString(data, "status"); backendStatus != "" {
			status = backendStatus
		}
	}
	return &responses.RegistrationSubmit{DoctorID: draft.DoctorID, Status: status}, nil
}

func (uc *registrationUsecase) publishSubmitted(ctx context.Context, draftID, doctorID string) {
	if uc.EventPublisher == nil {
		return
	}

	event := &models.Event{
		ID:         utils.GenerateEventID(),
		Name:       constvars.EventRegistrationSubmitted,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		Payload: map[string]interface{}{
			"draft_id":  draftID,
			"doctor_id": doctorID,
		},
	}
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Warn("Event publish failed",
			zap.String(constvars.LoggingEventKey, constvars.EventRegistrationSubmitted),
			zap.Error(err),
		)
	}
}

func applyString(source *string, target *string) {
	if source != nil {
		*target = *source
	}
}
