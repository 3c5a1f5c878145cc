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

type ChatController struct {
	Log         *zap.Logger
	ChatUsecase contracts.ChatUsecase
}

var (
	chatControllerInstance *ChatController
	onceChatController     sync.Once
)

func NewChatController(logger *zap.Logger, chatUsecase contracts.ChatUsecase) *ChatController {
	onceChatController.Do(func() {
		chatControllerInstance = &ChatController{
			Log:         logger,
			ChatUsecase: chatUsecase,
		}
	})
	return chatControllerInstance
}

func (ctrl *ChatController) roomID(w http.ResponseWriter, r *http.Request) (string, bool) {
	roomID := chi.URLParam(r, constvars.URLParamRoomID)
	if roomID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingURLParam(nil, constvars.URLParamRoomID))
		return "", false
	}
	return roomID, true
}

func (ctrl *ChatController) FindRooms(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.ChatUsecase.FindRooms(r.Context(), session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatRoomsFetchSuccess, response)
}

func (ctrl *ChatController) FindMessages(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	roomID, ok := ctrl.roomID(w, r)
	if !ok {
		return
	}

	response, err := ctrl.ChatUsecase.FindMessages(r.Context(), session, roomID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatMessagesFetchSuccess, response)
}

func (ctrl *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	roomID, ok := ctrl.roomID(w, r)
	if !ok {
		return
	}

	request := new(requests.SendMessage)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.ChatUsecase.SendMessage(r.Context(), session, roomID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ChatMessageSendSuccess, response)
}

func (ctrl *ChatController) MarkRead(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	roomID, ok := ctrl.roomID(w, r)
	if !ok {
		return
	}

	if err := ctrl.ChatUsecase.MarkRead(r.Context(), session, roomID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatRoomReadSuccess, nil)
}
