package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.Authenticate).Get("/", appointmentController.ListAppointments)
	router.With(middlewares.Authenticate).Post("/", appointmentController.CreateAppointment)
	router.With(middlewares.Authenticate).Get("/{appointment_id}", appointmentController.GetAppointment)
	router.With(middlewares.Authenticate).Put("/{appointment_id}", appointmentController.UpdateAppointment)
	router.With(middlewares.Authenticate).Delete("/{appointment_id}", appointmentController.DeleteAppointment)
}
