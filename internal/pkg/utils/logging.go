package utils

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"context"
	"time"

	"go.uber.org/zap"
)

func LogOperation(logger *zap.Logger, operation string, requestID string, fn func() error) error {
	start := time.Now()

	logger.Debug("Operation started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
	)

	err := fn()

	duration := time.Since(start)

	if err != nil {
		logger.Error("Operation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, operation),
			zap.Duration(constvars.LoggingDurationKey, duration),
			zap.Bool(constvars.LoggingSuccessKey, false),
			zap.Error(err),
		)
		return err
	}

	logger.Info("Operation completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.Duration(constvars.LoggingDurationKey, duration),
		zap.Bool(constvars.LoggingSuccessKey, true),
	)

	return nil
}

func LogSecurityEvent(logger *zap.Logger, event string, requestID string, fields ...zap.Field) {
	allFields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("security_event", event),
	}
	allFields = append(allFields, fields...)

	logger.Warn("Security event detected", allFields...)
}

// CallerFields returns the standard log fields identifying a request and its caller.
func CallerFields(requestID string, caller *models.Caller) []zap.Field {
	fields := []zap.Field{zap.String(constvars.LoggingRequestIDKey, requestID)}
	if caller != nil {
		fields = append(fields,
			zap.String(constvars.LoggingCallerIDKey, caller.UserID),
			zap.String(constvars.LoggingCallerRoleKey, caller.Role),
		)
	}
	return fields
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
