package routers

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Login)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *requests.Register) (*responses.User, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.User)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, caller *models.Caller) error {
	args := m.Called(ctx, caller)
	return args.Error(0)
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, token string) (*models.Caller, error) {
	args := m.Called(ctx, token)
	result, _ := args.Get(0).(*models.Caller)
	return result, args.Error(1)
}

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) ListUsers(ctx context.Context, caller *models.Caller) ([]responses.User, error) {
	args := m.Called(ctx, caller)
	result, _ := args.Get(0).([]responses.User)
	return result, args.Error(1)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, caller *models.Caller, userID string) (*responses.User, error) {
	args := m.Called(ctx, caller, userID)
	result, _ := args.Get(0).(*responses.User)
	return result, args.Error(1)
}

func (m *MockUserUsecase) CreateUser(ctx context.Context, caller *models.Caller, request *requests.CreateUser) (*responses.User, error) {
	args := m.Called(ctx, caller, request)
	result, _ := args.Get(0).(*responses.User)
	return result, args.Error(1)
}

func (m *MockUserUsecase) UpdateUser(ctx context.Context, caller *models.Caller, userID string, request *requests.UpdateUser) (*responses.User, error) {
	args := m.Called(ctx, caller, userID, request)
	result, _ := args.Get(0).(*responses.User)
	return result, args.Error(1)
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, caller *models.Caller, userID string) error {
	args := m.Called(ctx, caller, userID)
	return args.Error(0)
}

func (m *MockUserUsecase) GetProfile(ctx context.Context, caller *models.Caller) (*responses.User, error) {
	args := m.Called(ctx, caller)
	result, _ := args.Get(0).(*responses.User)
	return result, args.Error(1)
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, caller *models.Caller, request *requests.UpdateProfile) (*responses.User, error) {
	args := m.Called(ctx, caller, request)
	result, _ := args.Get(0).(*responses.User)
	return result, args.Error(1)
}

func (m *MockUserUsecase) ProvisionAdmin(ctx context.Context, request *requests.CreateUser) (*responses.User, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.User)
	return result, args.Error(1)
}

var (
	adminCaller        = &models.Caller{UserID: "admin-1", Email: "admin@clinic.test", Role: constvars.RoleAdmin, TokenID: "jti-admin"}
	practitionerCaller = &models.Caller{UserID: "prac-1", Email: "doc@clinic.test", Role: constvars.RolePractitioner, TokenID: "jti-prac"}
)

func testConfig(maxRequests int) *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			Env:                        "test",
			Version:                    "v1",
			EndpointPrefix:             "api",
			MaxRequests:                maxRequests,
			MaxTimeRequestsPerSeconds:  60,
			RequestBodyLimitInMegabyte: 1,
		},
	}
}

func newTestRouter(t *testing.T, cfg *config.InternalConfig, authUsecase *MockAuthUsecase, userUsecase *MockUserUsecase, checks ...controllers.DependencyCheck) *chi.Mux {
	t.Helper()
	logger := zap.NewNop()

	authUsecase.On("Authenticate", mock.Anything, "admin-token").Return(adminCaller, nil).Maybe()
	authUsecase.On("Authenticate", mock.Anything, "practitioner-token").Return(practitionerCaller, nil).Maybe()
	authUsecase.On("Authenticate", mock.Anything, "revoked-token").Return(nil, exceptions.ErrTokenRevoked(nil)).Maybe()

	router := chi.NewRouter()
	SetupRoutes(
		router,
		cfg,
		middlewares.NewMiddlewares(logger, authUsecase, cfg),
		controllers.NewAuthController(logger, authUsecase, cfg),
		controllers.NewUserController(logger, userUsecase, cfg),
		controllers.NewPatientController(logger, nil, cfg),
		controllers.NewAppointmentController(logger, nil, cfg),
		controllers.NewMedicalRecordController(logger, nil, cfg),
		controllers.NewDashboardController(logger, nil),
		controllers.NewHealthController(logger, checks...),
	)
	return router
}

func serve(router http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHealthIsPublic(t *testing.T) {
	router := newTestRouter(t, testConfig(100), new(MockAuthUsecase), new(MockUserUsecase),
		controllers.DependencyCheck{Name: "mongodb", Ping: func(ctx context.Context) error { return nil }},
	)

	rr := serve(router, http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"mongodb":"up"`)
}

func TestHealthReportsUnavailableDependency(t *testing.T) {
	router := newTestRouter(t, testConfig(100), new(MockAuthUsecase), new(MockUserUsecase),
		controllers.DependencyCheck{Name: "mongodb", Ping: func(ctx context.Context) error { return errors.New("connection refused") }},
	)

	rr := serve(router, http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t, testConfig(100), new(MockAuthUsecase), new(MockUserUsecase))

	paths := []string{
		"/api/v1/patients",
		"/api/v1/appointments",
		"/api/v1/medical-records/patient/p1",
		"/api/v1/medical-records/attachment/a.pdf",
		"/api/v1/dashboard/stats",
		"/api/v1/users/profile",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rr := serve(router, http.MethodGet, path, "")
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestRevokedTokenIsRejected(t *testing.T) {
	router := newTestRouter(t, testConfig(100), new(MockAuthUsecase), new(MockUserUsecase))

	rr := serve(router, http.MethodGet, "/api/v1/users/profile", "revoked-token")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminRoutesRejectPractitioner(t *testing.T) {
	userUsecase := new(MockUserUsecase)
	router := newTestRouter(t, testConfig(100), new(MockAuthUsecase), userUsecase)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rr := serve(router, method, "/api/v1/users", "practitioner-token")
		assert.Equal(t, http.StatusForbidden, rr.Code, method)
	}
	rr := serve(router, http.MethodDelete, "/api/v1/users/u1", "practitioner-token")
	assert.Equal(t, http.StatusForbidden, rr.Code)

	userUsecase.AssertNotCalled(t, "ListUsers", mock.Anything, mock.Anything)
	userUsecase.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminCanListUsers(t *testing.T) {
	userUsecase := new(MockUserUsecase)
	userUsecase.On("ListUsers", mock.Anything, adminCaller).Return([]responses.User{{ID: "u1", Email: "a@clinic.test"}}, nil)
	router := newTestRouter(t, testConfig(100), new(MockAuthUsecase), userUsecase)

	rr := serve(router, http.MethodGet, "/api/v1/users", "admin-token")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "a@clinic.test")
	userUsecase.AssertExpectations(t)
}

func TestProfileIsNotShadowedByUserID(t *testing.T) {
	userUsecase := new(MockUserUsecase)
	userUsecase.On("GetProfile", mock.Anything, practitionerCaller).Return(&responses.User{ID: "prac-1"}, nil)
	router := newTestRouter(t, testConfig(100), new(MockAuthUsecase), userUsecase)

	rr := serve(router, http.MethodGet, "/api/v1/users/profile", "practitioner-token")

	assert.Equal(t, http.StatusOK, rr.Code)
	userUsecase.AssertExpectations(t)
}

func TestRequestIDIsEchoed(t *testing.T) {
	router := newTestRouter(t, testConfig(100), new(MockAuthUsecase), new(MockUserUsecase))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-supplied-id")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "client-supplied-id", rr.Header().Get(constvars.HeaderXRequestID))

	generated := serve(router, http.MethodGet, "/api/v1/health", "")
	assert.NotEmpty(t, generated.Header().Get(constvars.HeaderXRequestID))
}

func TestRateLimitReturns429(t *testing.T) {
	router := newTestRouter(t, testConfig(2), new(MockAuthUsecase), new(MockUserUsecase))

	for i := 0; i < 2; i++ {
		rr := serve(router, http.MethodGet, "/api/v1/health", "")
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := serve(router, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}
