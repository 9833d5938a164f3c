package jwtmanager

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *JWTManager {
	t.Helper()
	issuer, err := NewJWTManager(&config.InternalConfig{JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 24}})
	require.NoError(t, err)
	return issuer.(*JWTManager)
}

func TestIssueAndParseToken(t *testing.T) {
	manager := newTestManager(t)
	user := &models.User{ID: "665f1c2e8b3e4a0012345678", Email: "doc@example.com", Role: constvars.RolePractitioner}

	token, issued, err := manager.IssueToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.TokenID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), issued.ExpiresAt, time.Minute)

	caller, err := manager.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, caller.UserID)
	assert.Equal(t, constvars.RolePractitioner, caller.Role)
	assert.Equal(t, issued.TokenID, caller.TokenID)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	manager := newTestManager(t)
	manager.now = func() time.Time { return time.Now().Add(-25 * time.Hour) }

	token, _, err := manager.IssueToken(&models.User{ID: "u1", Role: constvars.RoleAdmin})
	require.NoError(t, err)

	_, err = manager.ParseToken(token)
	require.Error(t, err)
	assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCodeOf(err))
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	manager := newTestManager(t)
	other, err := NewJWTManager(&config.InternalConfig{JWT: config.JWT{Secret: "other-secret", ExpTimeInHour: 1}})
	require.NoError(t, err)

	token, _, err := other.IssueToken(&models.User{ID: "u1", Role: constvars.RoleAdmin})
	require.NoError(t, err)

	_, err = manager.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsOtherAlgorithms(t *testing.T) {
	manager := newTestManager(t)
	claims := jwt.RegisteredClaims{Subject: "u1", ID: "jti", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = manager.ParseToken(token)
	assert.Error(t, err, "only HS256 tokens are accepted")
}

func TestParseTokenMissing(t *testing.T) {
	manager := newTestManager(t)

	_, err := manager.ParseToken("")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCodeOf(err))
}

func TestNewJWTManagerRequiresSecret(t *testing.T) {
	_, err := NewJWTManager(&config.InternalConfig{})
	assert.Error(t, err)
}
