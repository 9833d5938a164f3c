package appointments

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	EventPublisher        contracts.EventPublisher
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		PatientRepository:     patientRepository,
		EventPublisher:        eventPublisher,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, caller *models.Caller, query *requests.AppointmentQuery) ([]*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ListAppointments called", utils.CallerFields(requestID, caller)...)

	if err := utils.ValidateStruct(query); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointments, err := uc.AppointmentRepository.Find(ctx, caller, query.From, query.To)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ListAppointments error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.attachPatients(ctx, caller, appointments); err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.ListAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return utils.MapAppointmentsToResponse(appointments), nil
}

func (uc *appointmentUsecase) GetAppointment(ctx context.Context, caller *models.Caller, appointmentID string) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.GetAppointment called",
		append(utils.CallerFields(requestID, caller), zap.String(constvars.LoggingAppointmentKey, appointmentID))...,
	)

	appointment, err := uc.findOwned(ctx, caller, appointmentID)
	if err != nil {
		return nil, err
	}

	appointment.Patient, err = uc.PatientRepository.FindByID(ctx, caller, appointment.PatientID)
	if err != nil {
		return nil, err
	}
	return utils.MapAppointmentToResponse(appointment), nil
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, caller *models.Caller, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called", utils.CallerFields(requestID, caller)...)

	utils.SanitizeCreateAppointmentRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient, err := uc.findOwnedPatient(ctx, caller, request.PatientID)
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		PatientID: patient.ID,
		Date:      request.Date,
		Time:      request.Time,
		Reason:    request.Reason,
		Status:    constvars.AppointmentStatusPlanned,
	}
	appointment.SetCreatedAtUpdatedAt()

	appointment.ID, err = uc.AppointmentRepository.Create(ctx, caller, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.OwnerID = caller.UserID
	appointment.Patient = patient

	uc.publish(ctx, constvars.EventAppointmentBooked, appointment)

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointment.ID),
	)
	return utils.MapAppointmentToResponse(appointment), nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, caller *models.Caller, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		append(utils.CallerFields(requestID, caller), zap.String(constvars.LoggingAppointmentKey, appointmentID))...,
	)

	utils.SanitizeUpdateAppointmentRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment, err := uc.findOwned(ctx, caller, appointmentID)
	if err != nil {
		return nil, err
	}

	previousStatus := appointment.Status
	if appointment.IsTerminal() {
		next := previousStatus
		if request.Status != nil && *request.Status != "" {
			next = *request.Status
		}
		return nil, exceptions.ErrAppointmentStatusLocked(nil, previousStatus, next)
	}
	if request.Status != nil && *request.Status != "" && !appointment.CanTransitionTo(*request.Status) {
		return nil, exceptions.ErrAppointmentStatusLocked(nil, previousStatus, *request.Status)
	}

	if request.PatientID != nil && *request.PatientID != "" && *request.PatientID != appointment.PatientID {
		patient, err := uc.findOwnedPatient(ctx, caller, *request.PatientID)
		if err != nil {
			return nil, err
		}
		appointment.PatientID = patient.ID
		appointment.Patient = patient
	}

	utils.ApplyString(&appointment.Date, request.Date)
	utils.ApplyString(&appointment.Time, request.Time)
	utils.ApplyString(&appointment.Reason, request.Reason)
	utils.ApplyString(&appointment.Status, request.Status)
	appointment.SetUpdatedAt()

	if err := uc.AppointmentRepository.Update(ctx, caller, appointment); err != nil {
		return nil, err
	}

	if appointment.Patient == nil {
		appointment.Patient, err = uc.PatientRepository.FindByID(ctx, caller, appointment.PatientID)
		if err != nil {
			return nil, err
		}
	}

	event := constvars.EventAppointmentUpdated
	if appointment.Status == constvars.AppointmentStatusCancelled && previousStatus != constvars.AppointmentStatusCancelled {
		event = constvars.EventAppointmentCancelled
	}
	uc.publish(ctx, event, appointment)

	uc.Log.Info("appointmentUsecase.UpdateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointmentID),
	)
	return utils.MapAppointmentToResponse(appointment), nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, caller *models.Caller, appointmentID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.DeleteAppointment called",
		append(utils.CallerFields(requestID, caller), zap.String(constvars.LoggingAppointmentKey, appointmentID))...,
	)

	if err := uc.AppointmentRepository.Delete(ctx, caller, appointmentID); err != nil {
		return err
	}

	uc.Log.Info("appointmentUsecase.DeleteAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) findOwned(ctx context.Context, caller *models.Caller, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, caller, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.ResourceAppointment)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) findOwnedPatient(ctx context.Context, caller *models.Caller, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, caller, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.ResourcePatient)
	}
	return patient, nil
}

// attachPatients resolves all referenced patients with a single query.
// Appointments of deleted patients keep a nil Patient.
func (uc *appointmentUsecase) attachPatients(ctx context.Context, caller *models.Caller, appointments []models.Appointment) error {
	if len(appointments) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(appointments))
	patientIDs := make([]string, 0, len(appointments))
	for _, appointment := range appointments {
		if _, ok := seen[appointment.PatientID]; ok {
			continue
		}
		seen[appointment.PatientID] = struct{}{}
		patientIDs = append(patientIDs, appointment.PatientID)
	}

	patients, err := uc.PatientRepository.FindByIDs(ctx, caller, patientIDs)
	if err != nil {
		return err
	}

	byID := make(map[string]*models.Patient, len(patients))
	for i := range patients {
		byID[patients[i].ID] = &patients[i]
	}
	for i := range appointments {
		appointments[i].Patient = byID[appointments[i].PatientID]
	}
	return nil
}

// publish never fails the request; broker errors are only logged.
func (uc *appointmentUsecase) publish(ctx context.Context, event string, appointment *models.Appointment) {
	payload := models.AppointmentEvent{
		Event:         event,
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		OwnerID:       appointment.OwnerID,
		Date:          appointment.Date,
		Time:          appointment.Time,
		Status:        appointment.Status,
		OccurredAt:    time.Now().UTC(),
	}
	if err := uc.EventPublisher.Publish(ctx, event, payload); err != nil {
		uc.Log.Warn("appointmentUsecase.publish failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventKey, event),
			zap.String(constvars.LoggingAppointmentKey, appointment.ID),
			zap.Error(err),
		)
	}
}
