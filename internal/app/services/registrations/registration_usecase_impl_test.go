package registrations

import (
	"context"
	"io"
	"mime/multipart"
	"strings"
	"sync"
	"testing"
	"time"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/app/models"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{data: make(map[string]string)}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = string(jsonValue)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

type mockBackendClient struct {
	mock.Mock
}

func (m *mockBackendClient) Do(ctx context.Context, method, path string, body interface{}, opts *contracts.BackendOptions) (interface{}, error) {
	args := m.Called(ctx, method, path, body, opts)
	return args.Get(0), args.Error(1)
}

type mockObjectStorage struct {
	mock.Mock
}

func (m *mockObjectStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName, objectName string) (string, error) {
	args := m.Called(ctx, fileHeader, bucketName, objectName)
	return args.String(0), args.Error(1)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, event *models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newRegistrationUsecaseUnderTest(redisRepo *fakeRedisRepository, backend *mockBackendClient, storage *mockObjectStorage, publisher *mockEventPublisher) *registrationUsecase {
	return &registrationUsecase{
		BackendClient:  backend,
		RedisRepo:      redisRepo,
		Storage:        storage,
		EventPublisher: publisher,
		Bucket:         constvars.MinioBucketKYCDocuments,
		DraftExp:       time.Hour,
		Log:            zap.NewNop(),
		files:          make(map[string]models.RegistrationFiles),
	}
}

func stringPtr(value string) *string {
	return &value
}

func TestRegistrationDraftMerging(t *testing.T) {
	ctx := context.Background()

	t.Run("a page update only touches the keys it submitted", func(t *testing.T) {
		usecase := newRegistrationUsecaseUnderTest(newFakeRedisRepository(), nil, nil, nil)

		_, err := usecase.UpdatePersonal(ctx, "draft-1", &requests.UpdatePersonal{
			FullName: stringPtr("Dr. Anita Rao"),
			City:     stringPtr("Bengaluru"),
		})
		assert.NoError(t, err)

		draft, err := usecase.UpdatePersonal(ctx, "draft-1", &requests.UpdatePersonal{
			MedicalSpecialization: stringPtr("Dermatology"),
		})
		assert.NoError(t, err)

		assert.Equal(t, "Dr. Anita Rao", draft.Personal.FullName)
		assert.Equal(t, "Bengaluru", draft.Personal.City)
		assert.Equal(t, "Dermatology", draft.Personal.MedicalSpecialization)
	})

	t.Run("steps accumulate independently across pages", func(t *testing.T) {
		usecase := newRegistrationUsecaseUnderTest(newFakeRedisRepository(), nil, nil, nil)

		_, err := usecase.SetDoctorID(ctx, "draft-1", &requests.SetDoctorID{DoctorID: "doc-77"})
		assert.NoError(t, err)
		_, err = usecase.UpdateRegistration(ctx, "draft-1", &requests.UpdateRegistration{
			RegistrationNumber: stringPtr("KMC-12345"),
			CouncilName:        stringPtr("kmc"),
		})
		assert.NoError(t, err)
		_, err = usecase.UpdateIdentity(ctx, "draft-1", &requests.UpdateIdentity{DocumentType: stringPtr("aadhaar")})
		assert.NoError(t, err)

		draft, err := usecase.GetDraft(ctx, "draft-1")
		assert.NoError(t, err)
		assert.Equal(t, "doc-77", draft.DoctorID)
		assert.Equal(t, "KMC-12345", draft.Registration.RegistrationNumber)
		assert.Equal(t, "aadhaar", draft.Identity.DocumentType)
	})
}

func TestRegistrationReset(t *testing.T) {
	ctx := context.Background()

	t.Run("a full reset removes the stored record", func(t *testing.T) {
		redisRepo := newFakeRedisRepository()
		usecase := newRegistrationUsecaseUnderTest(redisRepo, nil, nil, nil)

		_, err := usecase.SetDoctorID(ctx, "draft-1", &requests.SetDoctorID{DoctorID: "doc-77"})
		assert.NoError(t, err)

		assert.NoError(t, usecase.Reset(ctx, "draft-1", false))

		stored, _ := redisRepo.Get(ctx, draftKey("draft-1"))
		assert.Empty(t, stored)
	})

	t.Run("a preserving reset keeps only the doctor ID", func(t *testing.T) {
		usecase := newRegistrationUsecaseUnderTest(newFakeRedisRepository(), nil, nil, nil)

		_, err := usecase.SetDoctorID(ctx, "draft-1", &requests.SetDoctorID{DoctorID: "doc-77"})
		assert.NoError(t, err)
		_, err = usecase.UpdatePersonal(ctx, "draft-1", &requests.UpdatePersonal{FullName: stringPtr("Dr. Anita Rao")})
		assert.NoError(t, err)

		assert.NoError(t, usecase.Reset(ctx, "draft-1", true))

		draft, err := usecase.GetDraft(ctx, "draft-1")
		assert.NoError(t, err)
		assert.Equal(t, "doc-77", draft.DoctorID)
		assert.Empty(t, draft.Personal.FullName)
	})
}

func uploadHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: 2048}
}

func TestRegistrationDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads land in object storage, never in the stored draft", func(t *testing.T) {
		redisRepo := newFakeRedisRepository()
		storage := new(mockObjectStorage)
		usecase := newRegistrationUsecaseUnderTest(redisRepo, nil, storage, nil)

		_, err := usecase.SetDoctorID(ctx, "draft-1", &requests.SetDoctorID{DoctorID: "doc-77"})
		assert.NoError(t, err)

		storage.On("UploadFile", mock.Anything, mock.Anything, constvars.MinioBucketKYCDocuments, "draft-1/selfie.jpg").
			Return("draft-1/selfie.jpg", nil)

		upload, err := usecase.UploadDocument(ctx, "draft-1", constvars.RegistrationFileSelfie,
			strings.NewReader("jpeg-bytes"), uploadHeader("selfie.jpg"))
		assert.NoError(t, err)
		assert.Equal(t, "draft-1/selfie.jpg", upload.ObjectKey)

		draft, err := usecase.GetDraft(ctx, "draft-1")
		assert.NoError(t, err)
		assert.Equal(t, []string{constvars.RegistrationFileSelfie}, draft.UploadedSlots)

		stored, _ := redisRepo.Get(ctx, draftKey("draft-1"))
		assert.NotContains(t, stored, "selfie.jpg")
	})

	t.Run("an unknown slot is rejected", func(t *testing.T) {
		storage := new(mockObjectStorage)
		usecase := newRegistrationUsecaseUnderTest(newFakeRedisRepository(), nil, storage, nil)

		storage.On("UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("draft-1/resume.pdf", nil)

		_, err := usecase.UploadDocument(ctx, "draft-1", "resume",
			strings.NewReader("pdf-bytes"), uploadHeader("resume.pdf"))
		assert.Error(t, err)
	})
}

func TestRegistrationSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("a submission forwards the draft, announces it, and consumes it", func(t *testing.T) {
		redisRepo := newFakeRedisRepository()
		backend := new(mockBackendClient)
		publisher := new(mockEventPublisher)
		usecase := newRegistrationUsecaseUnderTest(redisRepo, backend, nil, publisher)

		_, err := usecase.SetDoctorID(ctx, "draft-1", &requests.SetDoctorID{DoctorID: "doc-77"})
		assert.NoError(t, err)
		_, err = usecase.UpdatePersonal(ctx, "draft-1", &requests.UpdatePersonal{FullName: stringPtr("Dr. Anita Rao")})
		assert.NoError(t, err)

		backend.On("Do", mock.Anything, constvars.MethodPost,
			constvars.BackendPathDoctorVerification+"/doc-77", mock.Anything, mock.Anything).
			Return(map[string]interface{}{"status": "under_review"}, nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event *models.Event) bool {
			return event.Name == constvars.EventRegistrationSubmitted && event.Payload["doctor_id"] == "doc-77"
		})).Return(nil)

		result, err := usecase.Submit(ctx, "draft-1")
		assert.NoError(t, err)
		assert.Equal(t, "doc-77", result.DoctorID)
		assert.Equal(t, "under_review", result.Status)
		publisher.AssertExpectations(t)

		draft, err := usecase.GetDraft(ctx, "draft-1")
		assert.NoError(t, err)
		assert.Equal(t, "doc-77", draft.DoctorID)
		assert.Empty(t, draft.Personal.FullName)
	})

	t.Run("an empty draft cannot be submitted", func(t *testing.T) {
		backend := new(mockBackendClient)
		usecase := newRegistrationUsecaseUnderTest(newFakeRedisRepository(), backend, nil, nil)

		_, err := usecase.Submit(ctx, "never-started")
		assert.Error(t, err)
		backend.AssertNotCalled(t, "Do", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("a rejected submission keeps the draft", func(t *testing.T) {
		backend := new(mockBackendClient)
		publisher := new(mockEventPublisher)
		usecase := newRegistrationUsecaseUnderTest(newFakeRedisRepository(), backend, nil, publisher)

		_, err := usecase.SetDoctorID(ctx, "draft-1", &requests.SetDoctorID{DoctorID: "doc-77"})
		assert.NoError(t, err)
		_, err = usecase.UpdatePersonal(ctx, "draft-1", &requests.UpdatePersonal{FullName: stringPtr("Dr. Anita Rao")})
		assert.NoError(t, err)

		backend.On("Do", mock.Anything, constvars.MethodPost, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, assert.AnError)

		_, err = usecase.Submit(ctx, "draft-1")
		assert.Error(t, err)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)

		draft, getErr := usecase.GetDraft(ctx, "draft-1")
		assert.NoError(t, getErr)
		assert.Equal(t, "Dr. Anita Rao", draft.Personal.FullName)
	})
}
