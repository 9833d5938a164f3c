package controllers

import (
	"bytes"
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) ListPatients(ctx context.Context, caller *models.Caller, query *requests.PatientQuery) ([]*responses.Patient, int, error) {
	args := m.Called(ctx, caller, query)
	result, _ := args.Get(0).([]*responses.Patient)
	return result, args.Int(1), args.Error(2)
}

func (m *MockPatientUsecase) GetPatient(ctx context.Context, caller *models.Caller, patientID string) (*responses.Patient, error) {
	args := m.Called(ctx, caller, patientID)
	result, _ := args.Get(0).(*responses.Patient)
	return result, args.Error(1)
}

func (m *MockPatientUsecase) CreatePatient(ctx context.Context, caller *models.Caller, request *requests.CreatePatient) (*responses.Patient, error) {
	args := m.Called(ctx, caller, request)
	result, _ := args.Get(0).(*responses.Patient)
	return result, args.Error(1)
}

func (m *MockPatientUsecase) UpdatePatient(ctx context.Context, caller *models.Caller, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	args := m.Called(ctx, caller, patientID, request)
	result, _ := args.Get(0).(*responses.Patient)
	return result, args.Error(1)
}

func (m *MockPatientUsecase) DeletePatient(ctx context.Context, caller *models.Caller, patientID string) error {
	args := m.Called(ctx, caller, patientID)
	return args.Error(0)
}

type MockMedicalRecordUsecase struct {
	mock.Mock
}

func (m *MockMedicalRecordUsecase) ListMedicalRecords(ctx context.Context, caller *models.Caller, patientID string) ([]*responses.MedicalRecord, error) {
	args := m.Called(ctx, caller, patientID)
	result, _ := args.Get(0).([]*responses.MedicalRecord)
	return result, args.Error(1)
}

func (m *MockMedicalRecordUsecase) GetMedicalRecord(ctx context.Context, caller *models.Caller, recordID string) (*responses.MedicalRecord, error) {
	args := m.Called(ctx, caller, recordID)
	result, _ := args.Get(0).(*responses.MedicalRecord)
	return result, args.Error(1)
}

func (m *MockMedicalRecordUsecase) CreateMedicalRecord(ctx context.Context, caller *models.Caller, patientID string, request *requests.CreateMedicalRecord) (*responses.MedicalRecord, error) {
	args := m.Called(ctx, caller, patientID, request)
	result, _ := args.Get(0).(*responses.MedicalRecord)
	return result, args.Error(1)
}

func (m *MockMedicalRecordUsecase) UpdateMedicalRecord(ctx context.Context, caller *models.Caller, recordID string, request *requests.UpdateMedicalRecord) (*responses.MedicalRecord, error) {
	args := m.Called(ctx, caller, recordID, request)
	result, _ := args.Get(0).(*responses.MedicalRecord)
	return result, args.Error(1)
}

func (m *MockMedicalRecordUsecase) DeleteMedicalRecord(ctx context.Context, caller *models.Caller, recordID string) error {
	args := m.Called(ctx, caller, recordID)
	return args.Error(0)
}

func (m *MockMedicalRecordUsecase) DownloadAttachment(ctx context.Context, caller *models.Caller, storageName string) (*models.StoredObject, error) {
	args := m.Called(ctx, caller, storageName)
	result, _ := args.Get(0).(*models.StoredObject)
	return result, args.Error(1)
}

var testCaller = &models.Caller{UserID: "prac-1", Role: constvars.RolePractitioner, TokenID: "jti-1"}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			Version:                    "v1",
			EndpointPrefix:             "api",
			RequestBodyLimitInMegabyte: 1,
		},
	}
}

// serveAs routes the request through a chi mux so URL params resolve, with the caller already authenticated.
func serveAs(method, pattern string, handler http.HandlerFunc, req *http.Request, limitBody bool) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limitBody {
				r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
			}
			next.ServeHTTP(w, r.WithContext(utils.ContextWithCaller(r.Context(), testCaller)))
		})
	})
	router.Method(method, pattern, handler)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Bytes(), &envelope))
	return envelope
}

func TestListPatientsBuildsPaginationEnvelope(t *testing.T) {
	usecase := new(MockPatientUsecase)
	ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig())

	usecase.On("ListPatients", mock.Anything, testCaller, mock.MatchedBy(func(q *requests.PatientQuery) bool {
		return q.Search == "ann" && q.Page == 2 && q.PageSize == 10
	})).Return([]*responses.Patient{{ID: "p11"}}, 25, nil)

	req := httptest.NewRequest(http.MethodGet, "/patients?search=ann&page=2&page_size=10", nil)
	rr := serveAs(http.MethodGet, "/patients", ctrl.ListPatients, req, false)

	require.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr.Body)
	pagination := envelope["pagination"].(map[string]interface{})
	assert.EqualValues(t, 25, pagination["total"])
	assert.EqualValues(t, 2, pagination["page"])
	assert.Equal(t, "/api/v1/patients?page=3&page_size=10", pagination["next_url"])
	assert.Equal(t, "/api/v1/patients?page=1&page_size=10", pagination["prev_url"])
	usecase.AssertExpectations(t)
}

func TestCreatePatientMalformedJSON(t *testing.T) {
	usecase := new(MockPatientUsecase)
	ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig())

	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(`{"first_name":`))
	rr := serveAs(http.MethodPost, "/patients", ctrl.CreatePatient, req, false)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	usecase.AssertNotCalled(t, "CreatePatient", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePatientBodyTooLarge(t *testing.T) {
	usecase := new(MockPatientUsecase)
	ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig())

	oversized := `{"first_name":"` + strings.Repeat("a", 2<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(oversized))
	rr := serveAs(http.MethodPost, "/patients", ctrl.CreatePatient, req, true)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Contains(t, rr.Body.String(), "1 MB")
}

func TestCreatePatientReturns201(t *testing.T) {
	usecase := new(MockPatientUsecase)
	ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig())
	usecase.On("CreatePatient", mock.Anything, testCaller, mock.AnythingOfType("*requests.CreatePatient")).
		Return(&responses.Patient{ID: "p1", FirstName: "Ann"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(`{"first_name":"Ann"}`))
	rr := serveAs(http.MethodPost, "/patients", ctrl.CreatePatient, req, false)

	assert.Equal(t, http.StatusCreated, rr.Code)
	usecase.AssertExpectations(t)
}

func TestGetPatientPassesURLParamAndMapsNotFound(t *testing.T) {
	usecase := new(MockPatientUsecase)
	ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig())
	usecase.On("GetPatient", mock.Anything, testCaller, "foreign").
		Return(nil, exceptions.ErrNotFound(nil, constvars.ResourcePatient))

	req := httptest.NewRequest(http.MethodGet, "/patients/foreign", nil)
	rr := serveAs(http.MethodGet, "/patients/{patient_id}", ctrl.GetPatient, req, false)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	usecase.AssertExpectations(t)
}

func TestUsecaseDeadlineMapsTo504(t *testing.T) {
	usecase := new(MockPatientUsecase)
	ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig())
	usecase.On("DeletePatient", mock.Anything, testCaller, "p1").Return(context.DeadlineExceeded)

	req := httptest.NewRequest(http.MethodDelete, "/patients/p1", nil)
	rr := serveAs(http.MethodDelete, "/patients/{patient_id}", ctrl.DeletePatient, req, false)

	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, files map[string][]byte) *http.Request {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for name, content := range files {
		part, err := writer.CreateFormFile(constvars.MultipartFormAttachmentsKey, name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, body)
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestCreateMedicalRecordReadsMultipart(t *testing.T) {
	usecase := new(MockMedicalRecordUsecase)
	ctrl := NewMedicalRecordController(zap.NewNop(), usecase, testInternalConfig())

	usecase.On("CreateMedicalRecord", mock.Anything, testCaller, "p1", mock.MatchedBy(func(r *requests.CreateMedicalRecord) bool {
		return r.Date == "2024-03-01" && r.Diagnosis == "Flu" && r.Prescription == "Rest" &&
			len(r.Attachments) == 1 && r.Attachments[0].Filename == "scan.pdf"
	})).Return(&responses.MedicalRecord{ID: "r1", Attachments: []responses.Attachment{{Filename: "x.pdf"}}}, nil)

	req := multipartRequest(t, http.MethodPost, "/medical-records/patient/p1",
		map[string]string{"date": "2024-03-01", "diagnosis": "Flu", "prescription": "Rest"},
		map[string][]byte{"scan.pdf": []byte("%PDF-1.4\n")},
	)
	rr := serveAs(http.MethodPost, "/medical-records/patient/{patient_id}", ctrl.CreateMedicalRecord, req, false)

	assert.Equal(t, http.StatusCreated, rr.Code)
	usecase.AssertExpectations(t)
}

func TestUpdateMedicalRecordDistinguishesAbsentFields(t *testing.T) {
	usecase := new(MockMedicalRecordUsecase)
	ctrl := NewMedicalRecordController(zap.NewNop(), usecase, testInternalConfig())

	usecase.On("UpdateMedicalRecord", mock.Anything, testCaller, "r1", mock.MatchedBy(func(r *requests.UpdateMedicalRecord) bool {
		return r.Diagnosis != nil && *r.Diagnosis == "Cold" && r.Date == nil && r.Notes == nil && len(r.Attachments) == 0
	})).Return(&responses.MedicalRecord{ID: "r1"}, nil)

	req := multipartRequest(t, http.MethodPut, "/medical-records/r1", map[string]string{"diagnosis": "Cold"}, nil)
	rr := serveAs(http.MethodPut, "/medical-records/{record_id}", ctrl.UpdateMedicalRecord, req, false)

	assert.Equal(t, http.StatusOK, rr.Code)
	usecase.AssertExpectations(t)
}

func TestUpdateMedicalRecordReadsAttachments(t *testing.T) {
	usecase := new(MockMedicalRecordUsecase)
	ctrl := NewMedicalRecordController(zap.NewNop(), usecase, testInternalConfig())

	usecase.On("UpdateMedicalRecord", mock.Anything, testCaller, "r1", mock.MatchedBy(func(r *requests.UpdateMedicalRecord) bool {
		return len(r.Attachments) == 1 && r.Attachments[0].Filename == "followup.pdf"
	})).Return(&responses.MedicalRecord{ID: "r1"}, nil)

	req := multipartRequest(t, http.MethodPut, "/medical-records/r1", nil, map[string][]byte{"followup.pdf": []byte("%PDF-1.4\n")})
	rr := serveAs(http.MethodPut, "/medical-records/{record_id}", ctrl.UpdateMedicalRecord, req, false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "attachments", constvars.MultipartFormAttachmentsKey)
	usecase.AssertExpectations(t)
}

func TestCreateMedicalRecordRejectsNonMultipart(t *testing.T) {
	usecase := new(MockMedicalRecordUsecase)
	ctrl := NewMedicalRecordController(zap.NewNop(), usecase, testInternalConfig())

	req := httptest.NewRequest(http.MethodPost, "/medical-records/patient/p1", strings.NewReader(`{}`))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	rr := serveAs(http.MethodPost, "/medical-records/patient/{patient_id}", ctrl.CreateMedicalRecord, req, false)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

type trackingReadCloser struct {
	io.Reader
	closed bool
}

func (t *trackingReadCloser) Close() error {
	t.closed = true
	return nil
}

func TestDownloadAttachmentStreamsOriginalName(t *testing.T) {
	usecase := new(MockMedicalRecordUsecase)
	ctrl := NewMedicalRecordController(zap.NewNop(), usecase, testInternalConfig())

	content := &trackingReadCloser{Reader: strings.NewReader("%PDF-1.4\n")}
	usecase.On("DownloadAttachment", mock.Anything, testCaller, "abc.pdf").Return(&models.StoredObject{
		Name:        "lab results.pdf",
		ContentType: "application/pdf",
		Size:        9,
		Content:     content,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/medical-records/attachment/abc.pdf", nil)
	rr := serveAs(http.MethodGet, "/medical-records/attachment/{filename}", ctrl.DownloadAttachment, req, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get(constvars.HeaderContentType))
	assert.Contains(t, rr.Header().Get(constvars.HeaderContentDisposition), `filename="lab results.pdf"`)
	assert.Equal(t, "%PDF-1.4\n", rr.Body.String())
	assert.True(t, content.closed)
}

func TestDownloadAttachmentNotFound(t *testing.T) {
	usecase := new(MockMedicalRecordUsecase)
	ctrl := NewMedicalRecordController(zap.NewNop(), usecase, testInternalConfig())
	usecase.On("DownloadAttachment", mock.Anything, testCaller, "missing.pdf").
		Return(nil, exceptions.ErrNotFound(nil, constvars.ResourceAttachment))

	req := httptest.NewRequest(http.MethodGet, "/medical-records/attachment/missing.pdf", nil)
	rr := serveAs(http.MethodGet, "/medical-records/attachment/{filename}", ctrl.DownloadAttachment, req, false)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
