package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Register(ctx context.Context, request *requests.Register) (*responses.User, error)
	Logout(ctx context.Context, caller *models.Caller) error
	// Authenticate resolves a bearer token into the caller identity.
	Authenticate(ctx context.Context, token string) (*models.Caller, error)
}

type TokenIssuer interface {
	IssueToken(user *models.User) (token string, caller *models.Caller, err error)
	ParseToken(token string) (*models.Caller, error)
}

type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
