package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, caller *models.Caller, query *requests.AppointmentQuery) ([]*responses.Appointment, error)
	GetAppointment(ctx context.Context, caller *models.Caller, appointmentID string) (*responses.Appointment, error)
	CreateAppointment(ctx context.Context, caller *models.Caller, request *requests.CreateAppointment) (*responses.Appointment, error)
	UpdateAppointment(ctx context.Context, caller *models.Caller, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error)
	DeleteAppointment(ctx context.Context, caller *models.Caller, appointmentID string) error
}

type AppointmentRepository interface {
	// Find returns appointments ordered by date then time, optionally bounded by from/to dates.
	Find(ctx context.Context, caller *models.Caller, from, to string) ([]models.Appointment, error)
	FindByID(ctx context.Context, caller *models.Caller, appointmentID string) (*models.Appointment, error)
	Create(ctx context.Context, caller *models.Caller, appointment *models.Appointment) (appointmentID string, err error)
	Update(ctx context.Context, caller *models.Caller, appointment *models.Appointment) error
	Delete(ctx context.Context, caller *models.Caller, appointmentID string) error
	Count(ctx context.Context, caller *models.Caller, fromDate string) (int64, error)
}
