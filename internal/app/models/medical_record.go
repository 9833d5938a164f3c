package models

import "time"

type MedicalRecord struct {
	ID           string       `bson:"_id,omitempty"`
	OwnerID      string       `bson:"ownerId"`
	PatientID    string       `bson:"patientId"`
	Date         string       `bson:"date"`
	Diagnosis    string       `bson:"diagnosis"`
	Prescription string       `bson:"prescription"`
	Notes        string       `bson:"notes,omitempty"`
	Attachments  []Attachment `bson:"attachments"`
	TimeModel    `bson:",inline"`
}

type Attachment struct {
	StorageName  string    `bson:"storageName"`
	OriginalName string    `bson:"originalName"`
	ContentType  string    `bson:"contentType"`
	Size         int64     `bson:"size"`
	UploadedAt   time.Time `bson:"uploadedAt"`
}

// StorageNames lists the object names of every attachment on the record.
func (m *MedicalRecord) StorageNames() []string {
	names := make([]string, 0, len(m.Attachments))
	for _, attachment := range m.Attachments {
		names = append(names, attachment.StorageName)
	}
	return names
}

func (m *MedicalRecord) SetOwnerID(ownerID string) {
	m.OwnerID = ownerID
}
