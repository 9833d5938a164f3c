package exceptions

import (
	"clinic-service/internal/pkg/constvars"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatAllValidationErrors maps each failing field to a readable message.
func FormatAllValidationErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldName := strings.ToLower(fieldErr.Field())
		if _, exists := fields[fieldName]; exists {
			continue
		}
		fields[fieldName] = formatFieldError(fieldErr)
	}
	return fields
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		return strings.ToLower(firstErr.Field()) + " " + formatFieldError(firstErr)
	}
	return constvars.ErrDevInvalidInput
}

func formatFieldError(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			return strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		}
		return strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
	}
	return customMessage
}
