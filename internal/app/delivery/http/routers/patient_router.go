package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.With(middlewares.Authenticate).Get("/", patientController.ListPatients)
	router.With(middlewares.Authenticate).Post("/", patientController.CreatePatient)
	router.With(middlewares.Authenticate).Get("/{patient_id}", patientController.GetPatient)
	router.With(middlewares.Authenticate).Put("/{patient_id}", patientController.UpdatePatient)
	router.With(middlewares.Authenticate).Delete("/{patient_id}", patientController.DeletePatient)
}
