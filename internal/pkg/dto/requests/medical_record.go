package requests

import "mime/multipart"

// Medical record payloads arrive as multipart forms, files under "attachments".
type CreateMedicalRecord struct {
	Date         string                  `json:"date" validate:"required,datetime=2006-01-02"`
	Diagnosis    string                  `json:"diagnosis" validate:"required,max=5000"`
	Prescription string                  `json:"prescription" validate:"required,max=5000"`
	Notes        string                  `json:"notes" validate:"omitempty,max=5000"`
	Attachments  []*multipart.FileHeader `json:"-"`
}

type UpdateMedicalRecord struct {
	Date         *string                 `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Diagnosis    *string                 `json:"diagnosis" validate:"omitempty,max=5000"`
	Prescription *string                 `json:"prescription" validate:"omitempty,max=5000"`
	Notes        *string                 `json:"notes" validate:"omitempty,max=5000"`
	Attachments  []*multipart.FileHeader `json:"-"`
}
