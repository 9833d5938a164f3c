package responses

import "time"

type MedicalRecord struct {
	ID           string       `json:"id"`
	PatientID    string       `json:"patient_id"`
	Date         string       `json:"date"`
	Diagnosis    string       `json:"diagnosis"`
	Prescription string       `json:"prescription"`
	Notes        string       `json:"notes,omitempty"`
	Attachments  []Attachment `json:"attachments"`
	OwnerID      string       `json:"owner_id"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type Attachment struct {
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
