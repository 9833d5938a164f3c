package responses

type DashboardStats struct {
	Patients             int64 `json:"patients"`
	Appointments         int64 `json:"appointments"`
	UpcomingAppointments int64 `json:"upcoming_appointments"`
	MedicalRecords       int64 `json:"medical_records"`
}
