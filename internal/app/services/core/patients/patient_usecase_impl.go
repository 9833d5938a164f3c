package patients

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"strings"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewPatientUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Log:               logger,
	}
}

func (uc *patientUsecase) ListPatients(ctx context.Context, caller *models.Caller, query *requests.PatientQuery) ([]*responses.Patient, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.ListPatients called", utils.CallerFields(requestID, caller)...)

	search := strings.TrimSpace(query.Search)
	total, err := uc.PatientRepository.Count(ctx, caller, search)
	if err != nil {
		uc.Log.Error("patientUsecase.ListPatients error counting patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	patients, err := uc.PatientRepository.Find(ctx, caller, search, query.Skip(), int64(query.PageSize))
	if err != nil {
		uc.Log.Error("patientUsecase.ListPatients error fetching patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	uc.Log.Info("patientUsecase.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(patients)),
	)
	return utils.MapPatientsToResponse(patients), int(total), nil
}

func (uc *patientUsecase) GetPatient(ctx context.Context, caller *models.Caller, patientID string) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.GetPatient called",
		append(utils.CallerFields(requestID, caller), zap.String(constvars.LoggingPatientIDKey, patientID))...,
	)

	patient, err := uc.findOwned(ctx, caller, patientID)
	if err != nil {
		return nil, err
	}
	return utils.MapPatientToResponse(patient), nil
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, caller *models.Caller, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.CreatePatient called", utils.CallerFields(requestID, caller)...)

	utils.SanitizeCreatePatientRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient := &models.Patient{
		FirstName:        request.FirstName,
		LastName:         request.LastName,
		BirthDate:        request.BirthDate,
		PhoneCountryCode: request.PhoneCountryCode,
		Phone:            request.Phone,
		Email:            request.Email,
	}
	patient.SetCreatedAtUpdatedAt()

	patientID, err := uc.PatientRepository.Create(ctx, caller, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.CreatePatient error inserting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	patient.ID = patientID

	uc.Log.Info("patientUsecase.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return utils.MapPatientToResponse(patient), nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, caller *models.Caller, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		append(utils.CallerFields(requestID, caller), zap.String(constvars.LoggingPatientIDKey, patientID))...,
	)

	utils.SanitizeUpdatePatientRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient, err := uc.findOwned(ctx, caller, patientID)
	if err != nil {
		return nil, err
	}

	utils.ApplyString(&patient.FirstName, request.FirstName)
	utils.ApplyString(&patient.LastName, request.LastName)
	utils.ApplyString(&patient.BirthDate, request.BirthDate)
	utils.ApplyString(&patient.PhoneCountryCode, request.PhoneCountryCode)
	utils.ApplyString(&patient.Phone, request.Phone)
	utils.ApplyString(&patient.Email, request.Email)
	patient.SetUpdatedAt()

	if err := uc.PatientRepository.Update(ctx, caller, patient); err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return utils.MapPatientToResponse(patient), nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, caller *models.Caller, patientID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.DeletePatient called",
		append(utils.CallerFields(requestID, caller), zap.String(constvars.LoggingPatientIDKey, patientID))...,
	)

	// Appointments and records of the patient are left in place.
	if err := uc.PatientRepository.Delete(ctx, caller, patientID); err != nil {
		return err
	}

	uc.Log.Info("patientUsecase.DeletePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

func (uc *patientUsecase) findOwned(ctx context.Context, caller *models.Caller, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, caller, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.ResourcePatient)
	}
	return patient, nil
}
