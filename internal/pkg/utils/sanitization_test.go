package utils

import (
	"clinic-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLoginRequest(t *testing.T) {
	request := &requests.Login{Email: "  DOC@Example.COM ", Password: " keep spaces "}

	SanitizeLoginRequest(request)

	assert.Equal(t, "doc@example.com", request.Email, "email should be lowercase and trimmed")
	assert.Equal(t, " keep spaces ", request.Password, "password should be untouched")
}

func TestSanitizeCreatePatientRequest(t *testing.T) {
	request := &requests.CreatePatient{
		FirstName:        "  Jean ",
		LastName:         " Valjean  ",
		PhoneCountryCode: " +33 ",
		Phone:            " 612 345 678 ",
		Email:            " Jean@Example.com",
	}

	SanitizeCreatePatientRequest(request)

	assert.Equal(t, "Jean", request.FirstName)
	assert.Equal(t, "Valjean", request.LastName)
	assert.Equal(t, "+33", request.PhoneCountryCode)
	assert.Equal(t, "612345678", request.Phone, "phone should have spaces removed")
	assert.Equal(t, "jean@example.com", request.Email)
}

func TestSanitizeUpdateRequestsKeepNilFields(t *testing.T) {
	role := "  ADMIN "
	request := &requests.UpdateUser{Role: &role}

	SanitizeUpdateUserRequest(request)

	assert.Nil(t, request.Email, "absent fields should stay absent")
	assert.Equal(t, "admin", *request.Role)
}

func TestSanitizeUpdateRequestsDropBlankFields(t *testing.T) {
	blank, spaces, password := "", "   ", " secret pass 1 "
	patient := &requests.UpdatePatient{FirstName: &blank, Phone: &spaces, Email: &spaces}
	SanitizeUpdatePatientRequest(patient)
	assert.Nil(t, patient.FirstName, "blank first name should mean no change")
	assert.Nil(t, patient.Phone)
	assert.Nil(t, patient.Email)

	record := &requests.UpdateMedicalRecord{Date: &blank, Notes: &spaces}
	SanitizeUpdateMedicalRecordRequest(record)
	assert.Nil(t, record.Date, "blank date should mean no change")
	assert.Nil(t, record.Notes)

	emptyPassword := ""
	user := &requests.UpdateUser{Password: &emptyPassword, Role: &spaces}
	SanitizeUpdateUserRequest(user)
	assert.Nil(t, user.Password)
	assert.Nil(t, user.Role)

	profile := &requests.UpdateProfile{Password: &password}
	SanitizeUpdateProfileRequest(profile)
	assert.Equal(t, " secret pass 1 ", *profile.Password, "password should be untouched")
}

func TestApplyString(t *testing.T) {
	current := "original"

	assert.False(t, ApplyString(&current, nil))
	assert.Equal(t, "original", current, "absent value should keep the current one")

	empty := ""
	assert.False(t, ApplyString(&current, &empty))
	assert.Equal(t, "original", current, "blank value should keep the current one")

	next := "changed"
	assert.True(t, ApplyString(&current, &next))
	assert.Equal(t, "changed", current)
}
