package utils

import (
	"clinic-service/internal/pkg/dto/requests"
	"strings"
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// cleanPtr rewrites an optional field with clean and drops it when the
// result is blank, so a submitted "" means no change.
func cleanPtr(value **string, clean func(string) string) {
	if *value == nil {
		return
	}
	cleaned := clean(**value)
	if cleaned == "" {
		*value = nil
		return
	}
	**value = cleaned
}

func trimPtr(value **string) {
	cleanPtr(value, strings.TrimSpace)
}

func normalizeEmailPtr(value **string) {
	cleanPtr(value, NormalizeEmail)
}

func lowerPtr(value **string) {
	cleanPtr(value, func(v string) string { return strings.ToLower(strings.TrimSpace(v)) })
}

// Passwords are never trimmed; only an empty one is dropped.
func passwordPtr(value **string) {
	cleanPtr(value, func(v string) string { return v })
}

func removeSpaces(value string) string {
	return strings.ReplaceAll(strings.TrimSpace(value), " ", "")
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = NormalizeEmail(input.Email)
}

func SanitizeRegisterRequest(input *requests.Register) {
	input.Email = NormalizeEmail(input.Email)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
}

func SanitizeCreateUserRequest(input *requests.CreateUser) {
	input.Email = NormalizeEmail(input.Email)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeUpdateUserRequest(input *requests.UpdateUser) {
	normalizeEmailPtr(&input.Email)
	passwordPtr(&input.Password)
	trimPtr(&input.FirstName)
	trimPtr(&input.LastName)
	lowerPtr(&input.Role)
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	normalizeEmailPtr(&input.Email)
	passwordPtr(&input.Password)
	trimPtr(&input.FirstName)
	trimPtr(&input.LastName)
}

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	input.PhoneCountryCode = strings.TrimSpace(input.PhoneCountryCode)
	input.Phone = removeSpaces(input.Phone)
	input.Email = NormalizeEmail(input.Email)
}

func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	trimPtr(&input.FirstName)
	trimPtr(&input.LastName)
	trimPtr(&input.BirthDate)
	trimPtr(&input.PhoneCountryCode)
	cleanPtr(&input.Phone, removeSpaces)
	normalizeEmailPtr(&input.Email)
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.Reason = strings.TrimSpace(input.Reason)
}

func SanitizeUpdateAppointmentRequest(input *requests.UpdateAppointment) {
	trimPtr(&input.PatientID)
	trimPtr(&input.Date)
	trimPtr(&input.Time)
	trimPtr(&input.Reason)
	lowerPtr(&input.Status)
}

func SanitizeCreateMedicalRecordRequest(input *requests.CreateMedicalRecord) {
	input.Date = strings.TrimSpace(input.Date)
	input.Diagnosis = strings.TrimSpace(input.Diagnosis)
	input.Prescription = strings.TrimSpace(input.Prescription)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeUpdateMedicalRecordRequest(input *requests.UpdateMedicalRecord) {
	trimPtr(&input.Date)
	trimPtr(&input.Diagnosis)
	trimPtr(&input.Prescription)
	trimPtr(&input.Notes)
}

// ApplyString copies src into dst unless src is absent or blank.
func ApplyString(dst *string, src *string) bool {
	if src == nil || *src == "" {
		return false
	}
	*dst = *src
	return true
}
