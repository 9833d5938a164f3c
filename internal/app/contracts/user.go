package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type UserUsecase interface {
	ListUsers(ctx context.Context, caller *models.Caller) ([]responses.User, error)
	GetUser(ctx context.Context, caller *models.Caller, userID string) (*responses.User, error)
	CreateUser(ctx context.Context, caller *models.Caller, request *requests.CreateUser) (*responses.User, error)
	UpdateUser(ctx context.Context, caller *models.Caller, userID string, request *requests.UpdateUser) (*responses.User, error)
	DeleteUser(ctx context.Context, caller *models.Caller, userID string) error
	GetProfile(ctx context.Context, caller *models.Caller) (*responses.User, error)
	UpdateProfile(ctx context.Context, caller *models.Caller, request *requests.UpdateProfile) (*responses.User, error)
	// ProvisionAdmin creates an administrator without a caller, for first-run bootstrap.
	ProvisionAdmin(ctx context.Context, request *requests.CreateUser) (*responses.User, error)
}

type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (userID string, err error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteByID(ctx context.Context, userID string) error
	CountByRole(ctx context.Context, role string) (int64, error)
}
