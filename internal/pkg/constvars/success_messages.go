package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	LoginSuccessMessage    = "successfully login"
	LogoutSuccessMessage   = "successfully logout"
	RegisterSuccessMessage = "account created successfully"

	// User messages
	GetUsersSuccessMessage      = "get users successfully"
	GetUserSuccessMessage       = "get user successfully"
	CreateUserSuccessMessage    = "user created successfully"
	UpdateUserSuccessMessage    = "user updated successfully"
	DeleteUserSuccessMessage    = "user deleted successfully"
	GetProfileSuccessMessage    = "get profile successfully"
	UpdateProfileSuccessMessage = "profile updated successfully"

	// Patient messages
	GetPatientsSuccessMessage   = "get patients successfully"
	GetPatientSuccessMessage    = "get patient successfully"
	CreatePatientSuccessMessage = "patient created successfully"
	UpdatePatientSuccessMessage = "patient updated successfully"
	DeletePatientSuccessMessage = "patient deleted successfully"

	// Appointment messages
	GetAppointmentsSuccessMessage   = "get appointments successfully"
	GetAppointmentSuccessMessage    = "get appointment successfully"
	CreateAppointmentSuccessMessage = "appointment created successfully"
	UpdateAppointmentSuccessMessage = "appointment updated successfully"
	DeleteAppointmentSuccessMessage = "appointment deleted successfully"

	// Medical record messages
	GetMedicalRecordsSuccessMessage   = "get medical records successfully"
	GetMedicalRecordSuccessMessage    = "get medical record successfully"
	CreateMedicalRecordSuccessMessage = "medical record created successfully"
	UpdateMedicalRecordSuccessMessage = "medical record updated successfully"
	DeleteMedicalRecordSuccessMessage = "medical record deleted successfully"

	GetDashboardStatsSuccessMessage = "get dashboard stats successfully"
	HealthCheckSuccessMessage       = "service is healthy"
)
