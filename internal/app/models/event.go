package models

import "time"

// AppointmentEvent is the message body published on appointment lifecycle changes.
type AppointmentEvent struct {
	Event         string    `json:"event"`
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	OwnerID       string    `json:"owner_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
