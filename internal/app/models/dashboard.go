package models

type DashboardStats struct {
	Patients             int64
	Appointments         int64
	UpcomingAppointments int64
	MedicalRecords       int64
}
