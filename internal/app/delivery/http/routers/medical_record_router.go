package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMedicalRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicalRecordController *controllers.MedicalRecordController) {
	router.With(middlewares.Authenticate).Get("/attachment/{filename}", medicalRecordController.DownloadAttachment)
	router.With(middlewares.Authenticate).Get("/patient/{patient_id}", medicalRecordController.ListMedicalRecords)
	router.With(middlewares.Authenticate).Post("/patient/{patient_id}", medicalRecordController.CreateMedicalRecord)
	router.With(middlewares.Authenticate).Get("/{record_id}", medicalRecordController.GetMedicalRecord)
	router.With(middlewares.Authenticate).Put("/{record_id}", medicalRecordController.UpdateMedicalRecord)
	router.With(middlewares.Authenticate).Delete("/{record_id}", medicalRecordController.DeleteMedicalRecord)
}
