package exceptions

import (
	"clinic-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildNewCustomErrorRecordsCallerLocation(t *testing.T) {
	err := ErrNotFound(nil, constvars.ResourcePatient)

	assert.Equal(t, constvars.StatusNotFound, err.StatusCode)
	assert.Equal(t, "patient not found", err.ClientMessage)
	assert.True(t, strings.HasSuffix(err.Location.File, "error_test.go"), "location should point at the constructor caller, got %s", err.Location.File)
	assert.Contains(t, err.Location.FunctionName, "TestBuildNewCustomErrorRecordsCallerLocation")
}

func TestCustomErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := ErrMongoDBFindDocument(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.DevMessage, "connection reset")
	assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, err.ClientMessage)
}

func TestStatusCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ErrLastAdmin(nil))

	assert.Equal(t, constvars.StatusConflict, StatusCodeOf(wrapped))
	assert.Equal(t, constvars.StatusInternalServerError, StatusCodeOf(errors.New("plain")))
}

func TestInvalidCredentialsIsIndistinguishable(t *testing.T) {
	unknownEmail := ErrInvalidCredentials(nil)
	wrongPassword := ErrInvalidCredentials(errors.New("hash mismatch"))

	assert.Equal(t, unknownEmail.StatusCode, wrongPassword.StatusCode)
	assert.Equal(t, unknownEmail.ClientMessage, wrongPassword.ClientMessage)
}

func TestPayloadTooLargeMessage(t *testing.T) {
	err := ErrPayloadTooLarge(nil, 6<<20, 5<<20)

	assert.Equal(t, constvars.StatusRequestEntityTooLarge, err.StatusCode)
	assert.Equal(t, "file exceeds the maximum size of 5 MB", err.ClientMessage)
}
