package dashboard

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/utils"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingRepository answers only the Count calls the dashboard makes.
type countingRepository struct {
	mock.Mock
}

func (m *countingRepository) Find(ctx context.Context, caller *models.Caller, search string, skip, limit int64) ([]models.Patient, error) {
	panic("not used")
}

func (m *countingRepository) Count(ctx context.Context, caller *models.Caller, search string) (int64, error) {
	args := m.Called(ctx, caller, search)
	return args.Get(0).(int64), args.Error(1)
}

func (m *countingRepository) FindByID(ctx context.Context, caller *models.Caller, patientID string) (*models.Patient, error) {
	panic("not used")
}

func (m *countingRepository) FindByIDs(ctx context.Context, caller *models.Caller, patientIDs []string) ([]models.Patient, error) {
	panic("not used")
}

func (m *countingRepository) Create(ctx context.Context, caller *models.Caller, patient *models.Patient) (string, error) {
	panic("not used")
}

func (m *countingRepository) Update(ctx context.Context, caller *models.Caller, patient *models.Patient) error {
	panic("not used")
}

func (m *countingRepository) Delete(ctx context.Context, caller *models.Caller, patientID string) error {
	panic("not used")
}

type appointmentCounter struct {
	mock.Mock
}

func (m *appointmentCounter) Find(ctx context.Context, caller *models.Caller, from, to string) ([]models.Appointment, error) {
	panic("not used")
}

func (m *appointmentCounter) FindByID(ctx context.Context, caller *models.Caller, appointmentID string) (*models.Appointment, error) {
	panic("not used")
}

func (m *appointmentCounter) Create(ctx context.Context, caller *models.Caller, appointment *models.Appointment) (string, error) {
	panic("not used")
}

func (m *appointmentCounter) Update(ctx context.Context, caller *models.Caller, appointment *models.Appointment) error {
	panic("not used")
}

func (m *appointmentCounter) Delete(ctx context.Context, caller *models.Caller, appointmentID string) error {
	panic("not used")
}

func (m *appointmentCounter) Count(ctx context.Context, caller *models.Caller, fromDate string) (int64, error) {
	args := m.Called(ctx, caller, fromDate)
	return args.Get(0).(int64), args.Error(1)
}

type recordCounter struct {
	mock.Mock
}

func (m *recordCounter) FindByPatientID(ctx context.Context, caller *models.Caller, patientID string) ([]models.MedicalRecord, error) {
	panic("not used")
}

func (m *recordCounter) FindByID(ctx context.Context, caller *models.Caller, recordID string) (*models.MedicalRecord, error) {
	panic("not used")
}

func (m *recordCounter) FindByAttachment(ctx context.Context, caller *models.Caller, storageName string) (*models.MedicalRecord, error) {
	panic("not used")
}

func (m *recordCounter) Create(ctx context.Context, caller *models.Caller, record *models.MedicalRecord) (string, error) {
	panic("not used")
}

func (m *recordCounter) Update(ctx context.Context, caller *models.Caller, record *models.MedicalRecord, newAttachments []models.Attachment) error {
	panic("not used")
}

func (m *recordCounter) Delete(ctx context.Context, caller *models.Caller, recordID string) error {
	panic("not used")
}

func (m *recordCounter) Count(ctx context.Context, caller *models.Caller) (int64, error) {
	args := m.Called(ctx, caller)
	return args.Get(0).(int64), args.Error(1)
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	caller := &models.Caller{UserID: "practitioner-a", Role: constvars.RolePractitioner}
	cfg := &config.InternalConfig{App: config.App{Timezone: "UTC"}}

	t.Run("counts the caller's data", func(t *testing.T) {
		patients, appointments, records := new(countingRepository), new(appointmentCounter), new(recordCounter)
		uc := NewDashboardUsecase(patients, appointments, records, cfg, zap.NewNop())

		patients.On("Count", ctx, caller, "").Return(int64(12), nil)
		appointments.On("Count", ctx, caller, "").Return(int64(30), nil)
		appointments.On("Count", ctx, caller, utils.Today(time.UTC)).Return(int64(4), nil)
		records.On("Count", ctx, caller).Return(int64(7), nil)

		stats, err := uc.GetStats(ctx, caller)

		require.NoError(t, err)
		assert.Equal(t, int64(12), stats.Patients)
		assert.Equal(t, int64(30), stats.Appointments)
		assert.Equal(t, int64(4), stats.UpcomingAppointments)
		assert.Equal(t, int64(7), stats.MedicalRecords)
	})

	t.Run("stops at the first failing count", func(t *testing.T) {
		patients, appointments, records := new(countingRepository), new(appointmentCounter), new(recordCounter)
		uc := NewDashboardUsecase(patients, appointments, records, cfg, zap.NewNop())

		patients.On("Count", ctx, caller, "").Return(int64(0), errors.New("mongo down"))

		_, err := uc.GetStats(ctx, caller)

		assert.Error(t, err)
		appointments.AssertNotCalled(t, "Count", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown timezone falls back to UTC", func(t *testing.T) {
		uc := NewDashboardUsecase(nil, nil, nil, &config.InternalConfig{App: config.App{Timezone: "Mars/Olympus"}}, zap.NewNop())
		assert.Equal(t, time.UTC, uc.(*dashboardUsecase).Location)
	})
}
