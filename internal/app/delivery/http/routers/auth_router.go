package routers

import (
	"doorspital-service/internal/app/delivery/http/controllers"
	"doorspital-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/login", authController.DoctorLogin)
	router.Post("/pharmacy/login", authController.PharmacyLogin)
	router.Post("/signup", authController.Signup)
	router.Post("/otp/verify", authController.VerifyOTP)
	router.Post("/logout", authController.Logout)
}
