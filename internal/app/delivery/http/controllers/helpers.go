package controllers

import (
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// decodeJSON maps an oversized body to 413 and any other decode failure to 400.
func decodeJSON(r *http.Request, bodyLimitInMB int, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrRequestBodyTooLarge(err, bodyLimitInMB)
		}
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func parseMultipartForm(r *http.Request, bodyLimitInMB int) error {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrRequestBodyTooLarge(err, bodyLimitInMB)
		}
		return exceptions.ErrCannotParseMultipartForm(err)
	}
	return nil
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
