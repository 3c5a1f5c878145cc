package routers

import (
	"time"

	"doorspital-service/internal/app/config"
	"doorspital-service/internal/app/delivery/http/controllers"
	"doorspital-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	statusController *controllers.StatusController,
	authController *controllers.AuthController,
	registrationController *controllers.RegistrationController,
	doctorController *controllers.DoctorController,
	notificationController *controllers.NotificationController,
	chatController *controllers.ChatController,
	pharmacyController *controllers.PharmacyController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id", "X-Draft-Id"},
		ExposedHeaders:   []string{"X-Request-Id", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Get("/status", statusController.Status)

		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/register", func(r chi.Router) {
			attachRegistrationRoutes(r, middlewares, registrationController)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, doctorController)
		})

		r.Route("/notifications", func(r chi.Router) {
			attachNotificationRoutes(r, middlewares, notificationController)
		})

		r.Route("/chat", func(r chi.Router) {
			attachChatRoutes(r, middlewares, chatController)
		})

		r.Route("/pharmacy", func(r chi.Router) {
			attachPharmacyRoutes(r, middlewares, pharmacyController)
		})
	})
}
