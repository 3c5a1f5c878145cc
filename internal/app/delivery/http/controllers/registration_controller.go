package controllers

import (
	"net/http"
	"sync"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/requests"
	"doorspital-service/internal/pkg/exceptions"
	"doorspital-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RegistrationController struct {
	Log                 *zap.Logger
	RegistrationUsecase contracts.RegistrationUsecase
	MaxUploadSizeInMB   int64
}

var (
	registrationControllerInstance *RegistrationController
	onceRegistrationController     sync.Once
)

func NewRegistrationController(logger *zap.Logger, registrationUsecase contracts.RegistrationUsecase, maxUploadSizeInMB int64) *RegistrationController {
	onceRegistrationController.Do(func() {
		registrationControllerInstance = &RegistrationController{
			Log:                 logger,
			RegistrationUsecase: registrationUsecase,
			MaxUploadSizeInMB:   maxUploadSizeInMB,
		}
	})
	return registrationControllerInstance
}

// draftID reads the wizard's draft handle. A client starting fresh has no
// handle yet; it gets one assigned and finds it in the response body.
func (ctrl *RegistrationController) draftID(r *http.Request) string {
	if draftID := r.Header.Get(constvars.HeaderXDraftID); draftID != "" {
		return draftID
	}
	return utils.GenerateDraftID()
}

func (ctrl *RegistrationController) GetDraft(w http.ResponseWriter, r *http.Request) {
	response, err := ctrl.RegistrationUsecase.GetDraft(r.Context(), ctrl.draftID(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DraftFetchSuccess, response)
}

func (ctrl *RegistrationController) SetDoctorID(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SetDoctorID)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.RegistrationUsecase.SetDoctorID(r.Context(), ctrl.draftID(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DraftUpdateSuccess, response)
}

func (ctrl *RegistrationController) UpdatePersonal(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdatePersonal)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.RegistrationUsecase.UpdatePersonal(r.Context(), ctrl.draftID(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DraftUpdateSuccess, response)
}

func (ctrl *RegistrationController) UpdateRegistration(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateRegistration)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.RegistrationUsecase.UpdateRegistration(r.Context(), ctrl.draftID(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DraftUpdateSuccess, response)
}

func (ctrl *RegistrationController) UpdateIdentity(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateIdentity)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.RegistrationUsecase.UpdateIdentity(r.Context(), ctrl.draftID(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DraftUpdateSuccess, response)
}

func (ctrl *RegistrationController) UploadDocument(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(ctrl.MaxUploadSizeInMB << 20); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	slot := chi.URLParam(r, "slot")
	response, err := ctrl.RegistrationUsecase.UploadDocument(r.Context(), ctrl.draftID(r), slot, file, fileHeader)
	if err != nil {
		ctrl.Log.Error("Document upload failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, slot),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DocumentUploadSuccess, response)
}

func (ctrl *RegistrationController) Reset(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ResetRegistration)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := ctrl.RegistrationUsecase.Reset(r.Context(), ctrl.draftID(r), request.PreserveDoctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DraftResetSuccess, nil)
}

func (ctrl *RegistrationController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r)
	if !ok {
		return
	}

	response, err := ctrl.RegistrationUsecase.Submit(r.Context(), ctrl.draftID(r))
	if err != nil {
		ctrl.Log.Error("Registration submission failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DraftSubmitSuccess, response)
}

func (ctrl *RegistrationController) requestID(w http.ResponseWriter, r *http.Request) (string, bool) {
	requestID, ok := r.Context().Value(constvars.ContextRequestID).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	return requestID, true
}
