package jwtmanager

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// SessionClaims is the payload of a session token.
type SessionClaims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager issues and verifies HS256 session tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(cfg *config.InternalConfig) (contracts.TokenIssuer, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is empty")
	}
	ttl := time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTManager{
		secret: []byte(cfg.JWT.Secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// IssueToken signs a token for user with claims sub, role, jti, iat and exp.
func (j *JWTManager) IssueToken(user *models.User) (string, *models.Caller, error) {
	now := j.now().UTC()
	expiresAt := now.Add(j.ttl)
	tokenID := uuid.NewString()

	claims := SessionClaims{
		Role:  user.Role,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", nil, exceptions.ErrTokenGenerate(err)
	}

	caller := &models.Caller{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}
	return signed, caller, nil
}

// ParseToken verifies signature and expiry and returns the embedded identity.
func (j *JWTManager) ParseToken(tokenString string) (*models.Caller, error) {
	if tokenString == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	claims := new(SessionClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	if claims.Subject == "" || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(errors.New("missing required claims"))
	}

	return &models.Caller{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
