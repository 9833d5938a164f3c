package utils

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/responses"
)

func MapUserToResponse(user *models.User) responses.User {
	return responses.User{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func MapUsersToResponse(users []models.User) []responses.User {
	result := make([]responses.User, 0, len(users))
	for i := range users {
		result = append(result, MapUserToResponse(&users[i]))
	}
	return result
}

func MapPatientToResponse(patient *models.Patient) *responses.Patient {
	if patient == nil {
		return nil
	}
	return &responses.Patient{
		ID:               patient.ID,
		FirstName:        patient.FirstName,
		LastName:         patient.LastName,
		BirthDate:        patient.BirthDate,
		PhoneCountryCode: patient.PhoneCountryCode,
		Phone:            patient.Phone,
		Email:            patient.Email,
		OwnerID:          patient.OwnerID,
		CreatedAt:        patient.CreatedAt,
		UpdatedAt:        patient.UpdatedAt,
	}
}

func MapPatientsToResponse(patients []models.Patient) []*responses.Patient {
	result := make([]*responses.Patient, 0, len(patients))
	for i := range patients {
		result = append(result, MapPatientToResponse(&patients[i]))
	}
	return result
}

func MapAppointmentToResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:        appointment.ID,
		PatientID: appointment.PatientID,
		Patient:   MapPatientToResponse(appointment.Patient),
		Date:      appointment.Date,
		Time:      appointment.Time,
		Reason:    appointment.Reason,
		Status:    appointment.Status,
		OwnerID:   appointment.OwnerID,
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}
}

func MapAppointmentsToResponse(appointments []models.Appointment) []*responses.Appointment {
	result := make([]*responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, MapAppointmentToResponse(&appointments[i]))
	}
	return result
}

// MapMedicalRecordToResponse builds attachment links under attachmentBaseURL.
func MapMedicalRecordToResponse(record *models.MedicalRecord, attachmentBaseURL string) *responses.MedicalRecord {
	attachments := make([]responses.Attachment, 0, len(record.Attachments))
	for _, attachment := range record.Attachments {
		attachments = append(attachments, responses.Attachment{
			Filename:     attachment.StorageName,
			OriginalName: attachment.OriginalName,
			ContentType:  attachment.ContentType,
			Size:         attachment.Size,
			URL:          attachmentBaseURL + "/" + attachment.StorageName,
			UploadedAt:   attachment.UploadedAt,
		})
	}

	return &responses.MedicalRecord{
		ID:           record.ID,
		PatientID:    record.PatientID,
		Date:         record.Date,
		Diagnosis:    record.Diagnosis,
		Prescription: record.Prescription,
		Notes:        record.Notes,
		Attachments:  attachments,
		OwnerID:      record.OwnerID,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}

func MapMedicalRecordsToResponse(records []models.MedicalRecord, attachmentBaseURL string) []*responses.MedicalRecord {
	result := make([]*responses.MedicalRecord, 0, len(records))
	for i := range records {
		result = append(result, MapMedicalRecordToResponse(&records[i], attachmentBaseURL))
	}
	return result
}

func MapDashboardStatsToResponse(stats *models.DashboardStats) *responses.DashboardStats {
	return &responses.DashboardStats{
		Patients:             stats.Patients,
		Appointments:         stats.Appointments,
		UpcomingAppointments: stats.UpcomingAppointments,
		MedicalRecords:       stats.MedicalRecords,
	}
}
