package auth

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
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

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) IssueToken(user *models.User) (string, *models.Caller, error) {
	args := m.Called(user)
	caller, _ := args.Get(1).(*models.Caller)
	return args.String(0), caller, args.Error(2)
}

func (m *MockTokenIssuer) ParseToken(token string) (*models.Caller, error) {
	args := m.Called(token)
	caller, _ := args.Get(0).(*models.Caller)
	return caller, args.Error(1)
}

type MockTokenDenylist struct {
	mock.Mock
}

func (m *MockTokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return m.Called(ctx, tokenID, ttl).Error(0)
}

func (m *MockTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

type authFixture struct {
	users    *MockUserRepository
	issuer   *MockTokenIssuer
	denylist *MockTokenDenylist
}

func newFixture() (*authFixture, *authUsecase) {
	f := &authFixture{
		users:    new(MockUserRepository),
		issuer:   new(MockTokenIssuer),
		denylist: new(MockTokenDenylist),
	}
	uc := NewAuthUsecase(f.users, f.issuer, f.denylist, zap.NewNop()).(*authUsecase)
	return f, uc
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := utils.HashPassword("Secret#123")
	require.NoError(t, err)
	stored := &models.User{ID: "user-1", Email: "a@clinic.test", Password: hash, Role: constvars.RolePractitioner}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		f, uc := newFixture()
		expiresAt := time.Now().Add(time.Hour)
		f.users.On("FindByEmail", ctx, "a@clinic.test").Return(stored, nil)
		f.issuer.On("IssueToken", stored).Return("signed", &models.Caller{UserID: "user-1", ExpiresAt: expiresAt}, nil)

		result, err := uc.Login(ctx, &requests.Login{Email: " A@Clinic.test", Password: "Secret#123"})

		require.NoError(t, err)
		assert.Equal(t, "signed", result.Token)
		assert.Equal(t, expiresAt, result.ExpiresAt)
		assert.Equal(t, "user-1", result.User.ID)
	})

	t.Run("missing fields are a bad request", func(t *testing.T) {
		_, uc := newFixture()

		_, err := uc.Login(ctx, &requests.Login{Email: "a@clinic.test"})
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		f, uc := newFixture()
		f.users.On("FindByEmail", ctx, "a@clinic.test").Return(stored, nil)
		f.users.On("FindByEmail", ctx, "nobody@clinic.test").Return(nil, nil)

		_, wrongPassword := uc.Login(ctx, &requests.Login{Email: "a@clinic.test", Password: "Wrong#123"})
		_, unknownEmail := uc.Login(ctx, &requests.Login{Email: "nobody@clinic.test", Password: "Secret#123"})

		var first, second *exceptions.CustomError
		require.ErrorAs(t, wrongPassword, &first)
		require.ErrorAs(t, unknownEmail, &second)
		assert.Equal(t, constvars.StatusUnauthorized, first.StatusCode)
		assert.Equal(t, first.StatusCode, second.StatusCode)
		assert.Equal(t, first.ClientMessage, second.ClientMessage)
		f.issuer.AssertNotCalled(t, "IssueToken", mock.Anything)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("always creates a practitioner", func(t *testing.T) {
		f, uc := newFixture()
		f.users.On("FindByEmail", ctx, "new@clinic.test").Return(nil, nil)
		f.users.On("CreateUser", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Role == constvars.RolePractitioner && u.Password != "Secret#123"
		})).Return("user-9", nil)

		result, err := uc.Register(ctx, &requests.Register{
			Email:     "New@clinic.test",
			Password:  "Secret#123",
			FirstName: "James",
			LastName:  "Wilson",
		})

		require.NoError(t, err)
		assert.Equal(t, "user-9", result.ID)
		assert.Equal(t, constvars.RolePractitioner, result.Role)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		f, uc := newFixture()
		f.users.On("FindByEmail", ctx, "new@clinic.test").Return(&models.User{ID: "user-1"}, nil)

		_, err := uc.Register(ctx, &requests.Register{
			Email:     "new@clinic.test",
			Password:  "Secret#123",
			FirstName: "James",
			LastName:  "Wilson",
		})
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
	})
}

func TestLogoutRevokesToken(t *testing.T) {
	ctx := context.Background()
	f, uc := newFixture()
	caller := &models.Caller{UserID: "user-1", TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}

	f.denylist.On("Revoke", ctx, "jti-1", mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 0 && ttl <= time.Hour
	})).Return(nil)

	require.NoError(t, uc.Logout(ctx, caller))
	f.denylist.AssertExpectations(t)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("uses the stored role", func(t *testing.T) {
		f, uc := newFixture()
		f.issuer.On("ParseToken", "token").Return(&models.Caller{UserID: "user-1", TokenID: "jti-1", Role: constvars.RoleAdmin}, nil)
		f.denylist.On("IsRevoked", ctx, "jti-1").Return(false, nil)
		f.users.On("FindByID", ctx, "user-1").Return(&models.User{ID: "user-1", Role: constvars.RolePractitioner}, nil)

		caller, err := uc.Authenticate(ctx, "token")

		require.NoError(t, err)
		assert.Equal(t, constvars.RolePractitioner, caller.Role)
	})

	t.Run("rejects a revoked token", func(t *testing.T) {
		f, uc := newFixture()
		f.issuer.On("ParseToken", "token").Return(&models.Caller{UserID: "user-1", TokenID: "jti-1"}, nil)
		f.denylist.On("IsRevoked", ctx, "jti-1").Return(true, nil)

		_, err := uc.Authenticate(ctx, "token")
		assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCodeOf(err))
		f.users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("rejects a token whose user was deleted", func(t *testing.T) {
		f, uc := newFixture()
		f.issuer.On("ParseToken", "token").Return(&models.Caller{UserID: "user-1", TokenID: "jti-1"}, nil)
		f.denylist.On("IsRevoked", ctx, "jti-1").Return(false, nil)
		f.users.On("FindByID", ctx, "user-1").Return(nil, nil)

		_, err := uc.Authenticate(ctx, "token")
		assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCodeOf(err))
	})

	t.Run("propagates parse failures", func(t *testing.T) {
		f, uc := newFixture()
		parseErr := exceptions.ErrTokenInvalidOrExpired(errors.New("bad signature"))
		f.issuer.On("ParseToken", "token").Return(nil, parseErr)

		_, err := uc.Authenticate(ctx, "token")
		assert.ErrorIs(t, err, parseErr)
	})
}
