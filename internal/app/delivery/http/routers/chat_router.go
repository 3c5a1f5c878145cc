package routers

import (
	"fmt"

	"doorspital-service/internal/app/delivery/http/controllers"
	"doorspital-service/internal/app/delivery/http/middlewares"
	"doorspital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachChatRoutes(router chi.Router, middlewares *middlewares.Middlewares, chatController *controllers.ChatController) {
	router.Use(middlewares.RequireDoctorSession)

	router.Get("/rooms", chatController.FindRooms)
	router.Get(fmt.Sprintf("/rooms/{%s}/messages", constvars.URLParamRoomID), chatController.FindMessages)
	router.Post(fmt.Sprintf("/rooms/{%s}/messages", constvars.URLParamRoomID), chatController.SendMessage)
	router.Patch(fmt.Sprintf("/rooms/{%s}/read", constvars.URLParamRoomID), chatController.MarkRead)
}
