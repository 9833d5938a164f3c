package models

import "clinic-service/internal/pkg/constvars"

type Appointment struct {
	ID        string `bson:"_id,omitempty"`
	OwnerID   string `bson:"ownerId"`
	PatientID string `bson:"patientId"`
	Date      string `bson:"date"`
	Time      string `bson:"time"`
	Reason    string `bson:"reason"`
	Status    string `bson:"status"`
	TimeModel `bson:",inline"`

	Patient *Patient `bson:"-"`
}

var appointmentTransitions = map[string][]string{
	constvars.AppointmentStatusPlanned: {
		constvars.AppointmentStatusCompleted,
		constvars.AppointmentStatusCancelled,
	},
}

// CanTransitionTo reports whether status may move to next.
// Staying on the current status is always allowed.
func (a *Appointment) CanTransitionTo(next string) bool {
	if a.Status == next {
		return true
	}
	for _, allowed := range appointmentTransitions[a.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (a *Appointment) IsTerminal() bool {
	return len(appointmentTransitions[a.Status]) == 0
}

func (a *Appointment) SetOwnerID(ownerID string) {
	a.OwnerID = ownerID
}
