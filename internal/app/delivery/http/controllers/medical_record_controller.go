package controllers

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MedicalRecordController struct {
	Log                  *zap.Logger
	MedicalRecordUsecase contracts.MedicalRecordUsecase
	InternalConfig       *config.InternalConfig
}

func NewMedicalRecordController(logger *zap.Logger, medicalRecordUsecase contracts.MedicalRecordUsecase, internalConfig *config.InternalConfig) *MedicalRecordController {
	return &MedicalRecordController{
		Log:                  logger,
		MedicalRecordUsecase: medicalRecordUsecase,
		InternalConfig:       internalConfig,
	}
}

func (ctrl *MedicalRecordController) ListMedicalRecords(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	ctrl.Log.Info("MedicalRecordController.ListMedicalRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	caller, err := utils.GetCallerFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.MedicalRecordUsecase.ListMedicalRecords(ctx, caller, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalRecordsSuccessMessage, result)
}

func (ctrl *MedicalRecordController) GetMedicalRecord(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	recordID := chi.URLParam(r, constvars.URLParamRecordID)
	ctrl.Log.Info("MedicalRecordController.GetMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	caller, err := utils.GetCallerFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.MedicalRecordUsecase.GetMedicalRecord(ctx, caller, recordID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalRecordSuccessMessage, result)
}

func (ctrl *MedicalRecordController) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	ctrl.Log.Info("MedicalRecordController.CreateMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	caller, err := utils.GetCallerFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := parseMultipartForm(r, ctrl.InternalConfig.App.RequestBodyLimitInMegabyte); err != nil {
		ctrl.Log.Error("MedicalRecordController.CreateMedicalRecord error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	request := &requests.CreateMedicalRecord{
		Date:         r.FormValue("date"),
		Diagnosis:    r.FormValue("diagnosis"),
		Prescription: r.FormValue("prescription"),
		Notes:        r.FormValue("notes"),
		Attachments:  r.MultipartForm.File[constvars.MultipartFormAttachmentsKey],
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.MedicalRecordUsecase.CreateMedicalRecord(ctx, caller, patientID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MedicalRecordController.CreateMedicalRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, result.ID),
		zap.Int(constvars.LoggingCountKey, len(result.Attachments)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMedicalRecordSuccessMessage, result)
}

func (ctrl *MedicalRecordController) UpdateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	recordID := chi.URLParam(r, constvars.URLParamRecordID)
	ctrl.Log.Info("MedicalRecordController.UpdateMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	caller, err := utils.GetCallerFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := parseMultipartForm(r, ctrl.InternalConfig.App.RequestBodyLimitInMegabyte); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	request := &requests.UpdateMedicalRecord{
		Date:         utils.FormValuePtr(r, "date"),
		Diagnosis:    utils.FormValuePtr(r, "diagnosis"),
		Prescription: utils.FormValuePtr(r, "prescription"),
		Notes:        utils.FormValuePtr(r, "notes"),
		Attachments:  r.MultipartForm.File[constvars.MultipartFormAttachmentsKey],
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.MedicalRecordUsecase.UpdateMedicalRecord(ctx, caller, recordID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateMedicalRecordSuccessMessage, result)
}

func (ctrl *MedicalRecordController) DeleteMedicalRecord(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	recordID := chi.URLParam(r, constvars.URLParamRecordID)
	ctrl.Log.Info("MedicalRecordController.DeleteMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	caller, err := utils.GetCallerFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.MedicalRecordUsecase.DeleteMedicalRecord(ctx, caller, recordID); err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteMedicalRecordSuccessMessage, nil)
}

// DownloadAttachment streams the stored file back under its original upload name.
func (ctrl *MedicalRecordController) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	storageName := chi.URLParam(r, constvars.URLParamFilename)
	ctrl.Log.Info("MedicalRecordController.DownloadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStorageNameKey, storageName),
	)

	caller, err := utils.GetCallerFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	object, err := ctrl.MedicalRecordUsecase.DownloadAttachment(ctx, caller, storageName)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	defer object.Content.Close()

	if err := utils.BuildFileResponse(w, object.ContentType, object.Size, object.Name, object.Content); err != nil {
		// Headers are already sent, so the failure can only be logged.
		ctrl.Log.Error("MedicalRecordController.DownloadAttachment error streaming file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStorageNameKey, storageName),
			zap.Error(err),
		)
	}
}
