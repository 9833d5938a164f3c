package constvars

const (
	URLParamUserID        = "user_id"
	URLParamPatientID     = "patient_id"
	URLParamAppointmentID = "appointment_id"
	URLParamRecordID      = "record_id"
	URLParamFilename      = "filename"
)

const (
	URLQueryParamSearch   = "search"
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamFrom     = "from"
	URLQueryParamTo       = "to"
)
