package utils

import (
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type errorResponse struct {
	StatusCode    int                  `json:"status_code"`
	Success       bool                 `json:"success"`
	ClientMessage string               `json:"message"`
	Fields        map[string]string    `json:"errors,omitempty"`
	DevMessage    string               `json:"dev_message,omitempty"`
	Location      *exceptions.Location `json:"location,omitempty"`
}

func BuildPaginationResponse(total, page, pageSize int, baseURL string) *responses.Pagination {
	pagination := &responses.Pagination{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	if page*pageSize < total {
		pagination.NextURL = fmt.Sprintf(constvars.AppPaginationUrlFormat, baseURL, page+1, pageSize)
	}
	if page > 1 {
		pagination.PrevURL = fmt.Sprintf(constvars.AppPaginationUrlFormat, baseURL, page-1, pageSize)
	}

	return pagination
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildSuccessResponseWithPagination(w http.ResponseWriter, code int, message string, pagination *responses.Pagination, data interface{}) {
	response := responses.ResponseDTO{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildFileResponse streams content inline with its stored content type.
func BuildFileResponse(w http.ResponseWriter, contentType string, size int64, filename string, content io.Reader) error {
	w.Header().Set(constvars.HeaderContentType, contentType)
	if size > 0 {
		w.Header().Set(constvars.HeaderContentLength, strconv.FormatInt(size, 10))
	}
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	w.WriteHeader(constvars.StatusOK)
	_, err := io.Copy(w, content)
	return err
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	response := errorResponse{
		StatusCode:    constvars.StatusInternalServerError,
		Success:       false,
		ClientMessage: constvars.ErrClientSomethingWrongWithApplication,
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		response.StatusCode = customErr.StatusCode
		response.ClientMessage = customErr.ClientMessage
		response.Fields = customErr.Fields

		location := map[string]interface{}{
			"file":          customErr.Location.File,
			"line":          customErr.Location.Line,
			"function_name": customErr.Location.FunctionName,
		}
		if response.StatusCode >= constvars.StatusInternalServerError {
			log.Error(customErr.DevMessage, zap.Any("location", location))
		} else {
			log.Warn(customErr.DevMessage, zap.Any("location", location))
		}

		if viper.GetString("APP_ENV") != "production" {
			response.DevMessage = customErr.DevMessage
			response.Location = &customErr.Location
		}
	} else if err != nil {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(response.StatusCode)
	json.NewEncoder(w).Encode(response)
}
