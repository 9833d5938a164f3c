package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type PatientUsecase interface {
	ListPatients(ctx context.Context, caller *models.Caller, query *requests.PatientQuery) ([]*responses.Patient, int, error)
	GetPatient(ctx context.Context, caller *models.Caller, patientID string) (*responses.Patient, error)
	CreatePatient(ctx context.Context, caller *models.Caller, request *requests.CreatePatient) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, caller *models.Caller, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, caller *models.Caller, patientID string) error
}

// PatientRepository only ever sees the caller's own patients.
// Lookups of foreign or missing ids return nil without error.
type PatientRepository interface {
	Find(ctx context.Context, caller *models.Caller, search string, skip, limit int64) ([]models.Patient, error)
	Count(ctx context.Context, caller *models.Caller, search string) (int64, error)
	FindByID(ctx context.Context, caller *models.Caller, patientID string) (*models.Patient, error)
	FindByIDs(ctx context.Context, caller *models.Caller, patientIDs []string) ([]models.Patient, error)
	Create(ctx context.Context, caller *models.Caller, patient *models.Patient) (patientID string, err error)
	Update(ctx context.Context, caller *models.Caller, patient *models.Patient) error
	Delete(ctx context.Context, caller *models.Caller, patientID string) error
}
