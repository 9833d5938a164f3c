package constvars

const (
	MongoCollectionUsers          = "users"
	MongoCollectionPatients       = "patients"
	MongoCollectionAppointments   = "appointments"
	MongoCollectionMedicalRecords = "medical_records"
)

const (
	ResourceUser          = "user"
	ResourcePatient       = "patient"
	ResourceAppointment   = "appointment"
	ResourceMedicalRecord = "medical record"
	ResourceAttachment    = "attachment"
)
