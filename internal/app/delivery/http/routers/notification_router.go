package routers

import (
	"fmt"

	"doorspital-service/internal/app/delivery/http/controllers"
	"doorspital-service/internal/app/delivery/http/middlewares"
	"doorspital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *controllers.NotificationController) {
	router.Use(middlewares.RequireDoctorSession)

	router.Get("/", notificationController.FindAll)
	router.Patch(fmt.Sprintf("/{%s}/read", constvars.URLParamNotifID), notificationController.MarkRead)
}
