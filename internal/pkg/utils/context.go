package utils

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
)

func ContextWithCaller(ctx context.Context, caller *models.Caller) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_CALLER_KEY, caller)
}

func GetCallerFromContext(ctx context.Context) (*models.Caller, error) {
	caller, ok := ctx.Value(constvars.CONTEXT_CALLER_KEY).(*models.Caller)
	if !ok || caller == nil {
		return nil, exceptions.ErrMissingCaller(nil)
	}
	return caller, nil
}
