package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type MedicalRecordUsecase interface {
	ListMedicalRecords(ctx context.Context, caller *models.Caller, patientID string) ([]*responses.MedicalRecord, error)
	GetMedicalRecord(ctx context.Context, caller *models.Caller, recordID string) (*responses.MedicalRecord, error)
	CreateMedicalRecord(ctx context.Context, caller *models.Caller, patientID string, request *requests.CreateMedicalRecord) (*responses.MedicalRecord, error)
	UpdateMedicalRecord(ctx context.Context, caller *models.Caller, recordID string, request *requests.UpdateMedicalRecord) (*responses.MedicalRecord, error)
	DeleteMedicalRecord(ctx context.Context, caller *models.Caller, recordID string) error
	DownloadAttachment(ctx context.Context, caller *models.Caller, storageName string) (*models.StoredObject, error)
}

type MedicalRecordRepository interface {
	// FindByPatientID returns records ordered by date, newest first.
	FindByPatientID(ctx context.Context, caller *models.Caller, patientID string) ([]models.MedicalRecord, error)
	FindByID(ctx context.Context, caller *models.Caller, recordID string) (*models.MedicalRecord, error)
	FindByAttachment(ctx context.Context, caller *models.Caller, storageName string) (*models.MedicalRecord, error)
	Create(ctx context.Context, caller *models.Caller, record *models.MedicalRecord) (recordID string, err error)
	// Update sets the text fields and appends newAttachments, never replacing existing ones.
	Update(ctx context.Context, caller *models.Caller, record *models.MedicalRecord, newAttachments []models.Attachment) error
	Delete(ctx context.Context, caller *models.Caller, recordID string) error
	Count(ctx context.Context, caller *models.Caller) (int64, error)
}
