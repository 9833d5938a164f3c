package responses

import "time"

type Appointment struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	Patient   *Patient  `json:"patient,omitempty"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
