package medicalRecords

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"
)

type medicalRecordUsecase struct {
	MedicalRecordRepository contracts.MedicalRecordRepository
	PatientRepository       contracts.PatientRepository
	AttachmentStore         contracts.AttachmentStore
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
}

func NewMedicalRecordUsecase(
	medicalRecordRepository contracts.MedicalRecordRepository,
	patientRepository contracts.PatientRepository,
	attachmentStore contracts.AttachmentStore,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.MedicalRecordUsecase {
	return &medicalRecordUsecase{
		MedicalRecordRepository: medicalRecordRepository,
		PatientRepository:       patientRepository,
		AttachmentStore:         attachmentStore,
		InternalConfig:          internalConfig,
		Log:                     logger,
	}
}

func (uc *medicalRecordUsecase) ListMedicalRecords(ctx context.Context, caller *models.Caller, patientID string) ([]*responses.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalRecordUsecase.ListMedicalRecords called",
		append(utils.CallerFields(requestID, caller), zap.String(constvars.LoggingPatientIDKey, patientID))...,
	)

	if _, err := uc.findOwnedPatient(ctx, caller, patientID); err != nil {
		return nil, err
	}

	records, err := uc.MedicalRecordRepository.FindByPatientID(ctx, caller, patientID)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.ListMedicalRecords error fetching records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("medicalRecordUsecase.ListMedicalRecords succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(records)),
	)
	return utils.MapMedicalRecordsToResponse(records, uc.attachmentBaseURL()), nil
}

func (uc *medicalRecordUsecase) GetMedicalRecord(ctx context.Context, caller *models.Caller, recordID string) (*responses.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalRecordUsecase.GetMedicalRecord called",
		append(utils.CallerFields(requestID, caller), zap.String(constvars.LoggingRecordIDKey, recordID))...,
	)

	record, err := uc.findOwned(ctx, caller, recordID)
	if err != nil {
		return nil, err
	}
	return utils.MapMedicalRecordToResponse(record, uc.attachmentBaseURL()), nil
}

func (uc *medicalRecordUsecase) CreateMedicalRecord(ctx context.Context, caller *models.Caller, patientID string, request *requests.CreateMedicalRecord) (*responses.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalRecordUsecase.CreateMedicalRecord called",
		append(utils.CallerFields(requestID, caller), zap.String(constvars.LoggingPatientIDKey, patientID))...,
	)

	utils.SanitizeCreateMedicalRecordRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if err := uc.checkAttachmentCount(request.Attachments); err != nil {
		return nil, err
	}

	patient, err := uc.findOwnedPatient(ctx, caller, patientID)
	if err != nil {
		return nil, err
	}

	attachments, err := uc.storeAttachments(ctx, request.Attachments)
	if err != nil {
		return nil, err
	}

	record := &models.MedicalRecord{
		PatientID:    patient.ID,
		Date:         request.Date,
		Diagnosis:    request.Diagnosis,
		Prescription: request.Prescription,
		Notes:        request.Notes,
		Attachments:  attachments,
	}
	record.SetCreatedAtUpdatedAt()

	record.ID, err = uc.MedicalRecordRepository.Create(ctx, caller, record)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.CreateMedicalRecord error inserting record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.discardAttachments(ctx, attachments)
		return nil, err
	}
	record.OwnerID = caller.UserID

	uc.Log.Info("medicalRecordUsecase.CreateMedicalRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, record.ID),
		zap.Int(constvars.LoggingCountKey, len(attachments)),
	)
	return utils.MapMedicalRecordToResponse(record, uc.attachmentBaseURL()), nil
}

func (uc *medicalRecordUsecase) UpdateMedicalRecord(ctx context.Context, caller *models.Caller, recordID string, request *requests.UpdateMedicalRecord) (*responses.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalRecordUsecase.UpdateMedicalRecord called",
		append(utils.CallerFields(requestID, caller), zap.String(constvars.LoggingRecordIDKey, recordID))...,
	)

	utils.SanitizeUpdateMedicalRecordRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if err := uc.checkAttachmentCount(request.Attachments); err != nil {
		return nil, err
	}

	record, err := uc.findOwned(ctx, caller, recordID)
	if err != nil {
		return nil, err
	}

	newAttachments, err := uc.storeAttachments(ctx, request.Attachments)
	if err != nil {
		return nil, err
	}

	utils.ApplyString(&record.Date, request.Date)
	utils.ApplyString(&record.Diagnosis, request.Diagnosis)
	utils.ApplyString(&record.Prescription, request.Prescription)
	utils.ApplyString(&record.Notes, request.Notes)
	record.SetUpdatedAt()

	if err := uc.MedicalRecordRepository.Update(ctx, caller, record, newAttachments); err != nil {
		uc.Log.Error("medicalRecordUsecase.UpdateMedicalRecord error updating record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.discardAttachments(ctx, newAttachments)
		return nil, err
	}
	record.Attachments = append(record.Attachments, newAttachments...)

	uc.Log.Info("medicalRecordUsecase.UpdateMedicalRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
		zap.Int(constvars.LoggingCountKey, len(newAttachments)),
	)
	return utils.MapMedicalRecordToResponse(record, uc.attachmentBaseURL()), nil
}

func (uc *medicalRecordUsecase) DeleteMedicalRecord(ctx context.Context, caller *models.Caller, recordID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalRecordUsecase.DeleteMedicalRecord called",
		append(utils.CallerFields(requestID, caller), zap.String(constvars.LoggingRecordIDKey, recordID))...,
	)

	record, err := uc.findOwned(ctx, caller, recordID)
	if err != nil {
		return err
	}

	if err := uc.MedicalRecordRepository.Delete(ctx, caller, recordID); err != nil {
		return err
	}
	uc.discardAttachments(ctx, record.Attachments)

	uc.Log.Info("medicalRecordUsecase.DeleteMedicalRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return nil
}

func (uc *medicalRecordUsecase) DownloadAttachment(ctx context.Context, caller *models.Caller, storageName string) (*models.StoredObject, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalRecordUsecase.DownloadAttachment called",
		append(utils.CallerFields(requestID, caller), zap.String(constvars.LoggingStorageNameKey, storageName))...,
	)

	record, err := uc.MedicalRecordRepository.FindByAttachment(ctx, caller, storageName)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.ResourceAttachment)
	}

	object, err := uc.AttachmentStore.Retrieve(ctx, storageName)
	if err != nil {
		return nil, err
	}

	// The original upload name is offered back to the client.
	for _, attachment := range record.Attachments {
		if attachment.StorageName == storageName && attachment.OriginalName != "" {
			object.Name = attachment.OriginalName
			break
		}
	}
	return object, nil
}

func (uc *medicalRecordUsecase) findOwned(ctx context.Context, caller *models.Caller, recordID string) (*models.MedicalRecord, error) {
	record, err := uc.MedicalRecordRepository.FindByID(ctx, caller, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.ResourceMedicalRecord)
	}
	return record, nil
}

func (uc *medicalRecordUsecase) findOwnedPatient(ctx context.Context, caller *models.Caller, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, caller, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.ResourcePatient)
	}
	return patient, nil
}

func (uc *medicalRecordUsecase) checkAttachmentCount(files []*multipart.FileHeader) error {
	limit := uc.InternalConfig.Storage.AttachmentMaxFilesPerReq
	if limit > 0 && len(files) > limit {
		return exceptions.ErrFieldValidation(constvars.MultipartFormAttachmentsKey, fmt.Sprintf(constvars.ErrClientTooManyAttachments, limit))
	}
	return nil
}

// storeAttachments persists every file or none: on the first failure the
// files already stored are removed.
func (uc *medicalRecordUsecase) storeAttachments(ctx context.Context, files []*multipart.FileHeader) ([]models.Attachment, error) {
	attachments := make([]models.Attachment, 0, len(files))
	for _, header := range files {
		attachment, err := uc.storeAttachment(ctx, header)
		if err != nil {
			uc.discardAttachments(ctx, attachments)
			return nil, err
		}
		attachments = append(attachments, *attachment)
	}
	return attachments, nil
}

func (uc *medicalRecordUsecase) storeAttachment(ctx context.Context, header *multipart.FileHeader) (*models.Attachment, error) {
	file, err := header.Open()
	if err != nil {
		return nil, exceptions.ErrStorageReadUpload(err)
	}
	defer file.Close()

	return uc.AttachmentStore.Store(ctx, header.Filename, header.Size, file)
}

// discardAttachments is best-effort; failures leave orphaned objects and are only logged.
func (uc *medicalRecordUsecase) discardAttachments(ctx context.Context, attachments []models.Attachment) {
	for _, attachment := range attachments {
		if err := uc.AttachmentStore.Delete(ctx, attachment.StorageName); err != nil {
			uc.Log.Warn("medicalRecordUsecase.discardAttachments failed to delete object",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingStorageNameKey, attachment.StorageName),
				zap.Error(err),
			)
		}
	}
}

func (uc *medicalRecordUsecase) attachmentBaseURL() string {
	return uc.InternalConfig.App.BasePath() + "/medical-records/attachment"
}
