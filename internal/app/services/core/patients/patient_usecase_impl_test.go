package patients

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Find(ctx context.Context, caller *models.Caller, search string, skip, limit int64) ([]models.Patient, error) {
	args := m.Called(ctx, caller, search, skip, limit)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *MockPatientRepository) Count(ctx context.Context, caller *models.Caller, search string) (int64, error) {
	args := m.Called(ctx, caller, search)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, caller *models.Caller, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, caller, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientRepository) FindByIDs(ctx context.Context, caller *models.Caller, patientIDs []string) ([]models.Patient, error) {
	args := m.Called(ctx, caller, patientIDs)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *MockPatientRepository) Create(ctx context.Context, caller *models.Caller, patient *models.Patient) (string, error) {
	args := m.Called(ctx, caller, patient)
	if args.Error(1) == nil {
		patient.SetOwnerID(caller.UserID)
	}
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, caller *models.Caller, patient *models.Patient) error {
	return m.Called(ctx, caller, patient).Error(0)
}

func (m *MockPatientRepository) Delete(ctx context.Context, caller *models.Caller, patientID string) error {
	return m.Called(ctx, caller, patientID).Error(0)
}

func strPtr(value string) *string {
	return &value
}

func validCreatePatient() *requests.CreatePatient {
	return &requests.CreatePatient{
		FirstName:        "Jean-Luc",
		LastName:         "Picard",
		BirthDate:        "1960-07-13",
		PhoneCountryCode: "+33",
		Phone:            "612 345 678",
		Email:            "Picard@Enterprise.test",
	}
}

var (
	callerA = &models.Caller{UserID: "practitioner-a", Role: constvars.RolePractitioner}
	callerB = &models.Caller{UserID: "practitioner-b", Role: constvars.RolePractitioner}
)

func TestCreatePatient(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a sanitized patient owned by the caller", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := NewPatientUsecase(repo, zap.NewNop())

		repo.On("Create", ctx, callerA, mock.MatchedBy(func(p *models.Patient) bool {
			return p.Phone == "612345678" && p.Email == "picard@enterprise.test"
		})).Return("patient-1", nil)

		result, err := uc.CreatePatient(ctx, callerA, validCreatePatient())

		require.NoError(t, err)
		assert.Equal(t, "patient-1", result.ID)
		assert.Equal(t, callerA.UserID, result.OwnerID)
	})

	t.Run("rejects invalid fields before touching storage", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := NewPatientUsecase(repo, zap.NewNop())

		request := validCreatePatient()
		request.Phone = "12345"
		request.PhoneCountryCode = "+49"
		request.BirthDate = "2999-01-01"

		_, err := uc.CreatePatient(ctx, callerA, request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Len(t, customErr.Fields, 3)
		assert.Contains(t, customErr.Fields, "phone")
		assert.Contains(t, customErr.Fields, "phone_country_code")
		assert.Contains(t, customErr.Fields, "birth_date")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetPatientOfAnotherOwnerIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPatientRepository)
	uc := NewPatientUsecase(repo, zap.NewNop())

	repo.On("FindByID", ctx, callerB, "patient-1").Return(nil, nil)

	_, err := uc.GetPatient(ctx, callerB, "patient-1")
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
}

func TestUpdatePatientPreservesOmittedFields(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPatientRepository)
	uc := NewPatientUsecase(repo, zap.NewNop())

	existing := &models.Patient{
		ID:               "patient-1",
		OwnerID:          callerA.UserID,
		FirstName:        "Jean-Luc",
		LastName:         "Picard",
		BirthDate:        "1960-07-13",
		PhoneCountryCode: "+33",
		Phone:            "612345678",
		Email:            "picard@enterprise.test",
	}
	repo.On("FindByID", ctx, callerA, "patient-1").Return(existing, nil)
	repo.On("Update", ctx, callerA, mock.MatchedBy(func(p *models.Patient) bool {
		return p.Phone == "798765432" && p.FirstName == "Jean-Luc" && p.Email == "picard@enterprise.test"
	})).Return(nil)

	result, err := uc.UpdatePatient(ctx, callerA, "patient-1", &requests.UpdatePatient{
		Phone: strPtr("798 765 432"),
		Email: strPtr(""),
	})

	require.NoError(t, err)
	assert.Equal(t, "798765432", result.Phone)
	assert.Equal(t, "Picard", result.LastName)
	repo.AssertExpectations(t)
}

func TestUpdatePatientBlankFieldKeepsStoredValue(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPatientRepository)
	uc := NewPatientUsecase(repo, zap.NewNop())

	existing := &models.Patient{
		ID:               "patient-1",
		OwnerID:          callerA.UserID,
		FirstName:        "Jean-Luc",
		LastName:         "Picard",
		BirthDate:        "1960-07-13",
		PhoneCountryCode: "+33",
		Phone:            "612345678",
		Email:            "picard@enterprise.test",
	}
	repo.On("FindByID", ctx, callerA, "patient-1").Return(existing, nil)
	repo.On("Update", ctx, callerA, mock.MatchedBy(func(p *models.Patient) bool {
		return p.FirstName == "Jean-Luc" && p.BirthDate == "1960-07-13"
	})).Return(nil)

	result, err := uc.UpdatePatient(ctx, callerA, "patient-1", &requests.UpdatePatient{
		FirstName: strPtr(""),
		BirthDate: strPtr("  "),
	})

	require.NoError(t, err)
	assert.Equal(t, "Jean-Luc", result.FirstName)
	assert.Equal(t, "1960-07-13", result.BirthDate)
	repo.AssertExpectations(t)
}

func TestDeletePatient(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an owned patient", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := NewPatientUsecase(repo, zap.NewNop())
		repo.On("Delete", ctx, callerA, "patient-1").Return(nil)

		require.NoError(t, uc.DeletePatient(ctx, callerA, "patient-1"))
	})

	t.Run("propagates not found for a foreign patient", func(t *testing.T) {
		repo := new(MockPatientRepository)
		uc := NewPatientUsecase(repo, zap.NewNop())
		repo.On("Delete", ctx, callerB, "patient-1").Return(exceptions.ErrNotFound(nil, constvars.ResourcePatient))

		err := uc.DeletePatient(ctx, callerB, "patient-1")
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}

func TestListPatientsPaginates(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPatientRepository)
	uc := NewPatientUsecase(repo, zap.NewNop())

	repo.On("Count", ctx, callerA, "pic").Return(int64(25), nil)
	repo.On("Find", ctx, callerA, "pic", int64(10), int64(10)).Return([]models.Patient{{ID: "patient-11"}}, nil)

	patients, total, err := uc.ListPatients(ctx, callerA, &requests.PatientQuery{
		Search:     " pic ",
		Pagination: requests.Pagination{Page: 2, PageSize: 10},
	})

	require.NoError(t, err)
	assert.Equal(t, 25, total)
	require.Len(t, patients, 1)
	assert.Equal(t, "patient-11", patients[0].ID)
}
