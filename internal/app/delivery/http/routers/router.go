package routers

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	patientController *controllers.PatientController,
	appointmentController *controllers.AppointmentController,
	medicalRecordController *controllers.MedicalRecordController,
	dashboardController *controllers.DashboardController,
	healthController *controllers.HealthController,
) {
	allowedOrigins := internalConfig.App.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	corsOptions := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders: []string{constvars.HeaderXRequestID, constvars.HeaderContentDisposition},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.BodyLimit)

	router.Route(internalConfig.App.BasePath(), func(r chi.Router) {
		r.Get("/health", healthController.Check)

		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, middlewares, userController)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, patientController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})

		r.Route("/medical-records", func(r chi.Router) {
			attachMedicalRecordRoutes(r, middlewares, medicalRecordController)
		})

		r.Route("/dashboard", func(r chi.Router) {
			attachDashboardRoutes(r, middlewares, dashboardController)
		})
	})
}
