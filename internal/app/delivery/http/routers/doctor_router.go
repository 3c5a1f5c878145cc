package routers

import (
	"fmt"

	"doorspital-service/internal/app/delivery/http/controllers"
	"doorspital-service/internal/app/delivery/http/middlewares"
	"doorspital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Use(middlewares.RequireDoctorSession)

	router.Get("/dashboard", doctorController.Dashboard)
	router.Get("/appointments", doctorController.FindAppointments)
	router.Patch(fmt.Sprintf("/appointments/{%s}/status", constvars.URLParamAppointmentID), doctorController.UpdateAppointmentStatus)
	router.Get("/patients", doctorController.FindPatients)
	router.Get("/profile", doctorController.Profile)
	router.Put("/profile", doctorController.UpdateProfile)
	router.Put("/services", doctorController.UpdateServices)
	router.Get("/availability", doctorController.Availability)
	router.Post("/availability", doctorController.SetAvailability)
	router.Get(fmt.Sprintf("/verification/{%s}", constvars.URLParamDoctorID), doctorController.Verification)
}
