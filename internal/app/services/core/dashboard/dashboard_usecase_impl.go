package dashboard

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	PatientRepository       contracts.PatientRepository
	AppointmentRepository   contracts.AppointmentRepository
	MedicalRecordRepository contracts.MedicalRecordRepository
	Location                *time.Location
	Log                     *zap.Logger
}

func NewDashboardUsecase(
	patientRepository contracts.PatientRepository,
	appointmentRepository contracts.AppointmentRepository,
	medicalRecordRepository contracts.MedicalRecordRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logger.Warn("dashboardUsecase unknown timezone, falling back to UTC",
			zap.String("timezone", internalConfig.App.Timezone),
			zap.Error(err),
		)
		location = time.UTC
	}

	return &dashboardUsecase{
		PatientRepository:       patientRepository,
		AppointmentRepository:   appointmentRepository,
		MedicalRecordRepository: medicalRecordRepository,
		Location:                location,
		Log:                     logger,
	}
}

// GetStats counts only what the caller owns. Upcoming means dated today or later
// in the clinic timezone.
func (uc *dashboardUsecase) GetStats(ctx context.Context, caller *models.Caller) (*responses.DashboardStats, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("dashboardUsecase.GetStats called", utils.CallerFields(requestID, caller)...)

	stats := &models.DashboardStats{}
	today := utils.Today(uc.Location)

	err := utils.LogOperation(uc.Log, "dashboard.count_patients", requestID, func() (opErr error) {
		stats.Patients, opErr = uc.PatientRepository.Count(ctx, caller, "")
		return opErr
	})
	if err != nil {
		return nil, err
	}

	err = utils.LogOperation(uc.Log, "dashboard.count_appointments", requestID, func() (opErr error) {
		if stats.Appointments, opErr = uc.AppointmentRepository.Count(ctx, caller, ""); opErr != nil {
			return opErr
		}
		stats.UpcomingAppointments, opErr = uc.AppointmentRepository.Count(ctx, caller, today)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	err = utils.LogOperation(uc.Log, "dashboard.count_medical_records", requestID, func() (opErr error) {
		stats.MedicalRecords, opErr = uc.MedicalRecordRepository.Count(ctx, caller)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("dashboardUsecase.GetStats succeeded", zap.String(constvars.LoggingRequestIDKey, requestID))
	return utils.MapDashboardStatsToResponse(stats), nil
}
