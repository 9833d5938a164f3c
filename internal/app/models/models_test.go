package models

import (
	"clinic-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		allowed bool
	}{
		{"planned to completed", constvars.AppointmentStatusPlanned, constvars.AppointmentStatusCompleted, true},
		{"planned to cancelled", constvars.AppointmentStatusPlanned, constvars.AppointmentStatusCancelled, true},
		{"planned stays planned", constvars.AppointmentStatusPlanned, constvars.AppointmentStatusPlanned, true},
		{"completed back to planned", constvars.AppointmentStatusCompleted, constvars.AppointmentStatusPlanned, false},
		{"cancelled to completed", constvars.AppointmentStatusCancelled, constvars.AppointmentStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointment := &Appointment{Status: tt.current}
			assert.Equal(t, tt.allowed, appointment.CanTransitionTo(tt.next))
		})
	}
}

func TestAppointmentIsTerminal(t *testing.T) {
	assert.False(t, (&Appointment{Status: constvars.AppointmentStatusPlanned}).IsTerminal())
	assert.True(t, (&Appointment{Status: constvars.AppointmentStatusCompleted}).IsTerminal())
	assert.True(t, (&Appointment{Status: constvars.AppointmentStatusCancelled}).IsTerminal())
}

func TestMedicalRecordStorageNames(t *testing.T) {
	record := &MedicalRecord{
		Attachments: []Attachment{
			{StorageName: "a.pdf"},
			{StorageName: "b.png"},
		},
	}
	assert.Equal(t, []string{"a.pdf", "b.png"}, record.StorageNames())
	assert.Empty(t, (&MedicalRecord{}).StorageNames())
}

func TestCallerIsAdmin(t *testing.T) {
	var nilCaller *Caller
	assert.False(t, nilCaller.IsAdmin())
	assert.True(t, (&Caller{Role: constvars.RoleAdmin}).IsAdmin())
	assert.False(t, (&Caller{Role: constvars.RolePractitioner}).IsAdmin())
}
