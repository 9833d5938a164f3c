package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type DashboardUsecase interface {
	GetStats(ctx context.Context, caller *models.Caller) (*responses.DashboardStats, error)
}
