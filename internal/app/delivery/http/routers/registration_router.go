package routers

import (
	"doorspital-service/internal/app/delivery/http/controllers"
	"doorspital-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// Registration routes carry no session: the wizard runs before the doctor has
// an account worth logging into. Drafts are addressed by the X-Draft-Id header.
func attachRegistrationRoutes(router chi.Router, middlewares *middlewares.Middlewares, registrationController *controllers.RegistrationController) {
	router.Get("/draft", registrationController.GetDraft)
	router.Put("/draft/doctor-id", registrationController.SetDoctorID)
	router.Put("/draft/personal", registrationController.UpdatePersonal)
	router.Put("/draft/registration", registrationController.UpdateRegistration)
	router.Put("/draft/identity", registrationController.UpdateIdentity)
	router.Post("/draft/documents/{slot}", registrationController.UploadDocument)
	router.Post("/draft/reset", registrationController.Reset)
	router.Post("/submit", registrationController.Submit)
}
