package controllers

import (
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const healthCheckTimeout = 3 * time.Second

// DependencyCheck pings one backing service.
type DependencyCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

type HealthController struct {
	Log    *zap.Logger
	Checks []DependencyCheck
}

func NewHealthController(logger *zap.Logger, checks ...DependencyCheck) *HealthController {
	return &HealthController{
		Log:    logger,
		Checks: checks,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	status := make(map[string]string, len(ctrl.Checks))
	for _, check := range ctrl.Checks {
		if err := check.Ping(ctx); err != nil {
			ctrl.Log.Error("HealthController.Check dependency unreachable",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String("dependency", check.Name),
				zap.Error(err),
			)
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServiceUnavailable(err, check.Name))
			return
		}
		status[check.Name] = "up"
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, status)
}
