package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_CALLER_KEY               ContextKey = "caller"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CLINIC_SVC_"
)

const (
	RoleAdmin        = "admin"
	RolePractitioner = "practitioner"
)

const (
	AppointmentStatusPlanned   = "planned"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	// Clinic operating window, upper bound exclusive.
	ClinicOpeningHour = 8
	ClinicClosingHour = 18
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	DefaultPageSize        = 20
	MaxPageSize            = 100
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

const (
	StorageDriverMinio = "minio"
	StorageDriverLocal = "local"
)

const (
	MultipartFormAttachmentsKey = "attachments"
)

const (
	EventAppointmentBooked    = "appointment.booked"
	EventAppointmentUpdated   = "appointment.updated"
	EventAppointmentCancelled = "appointment.cancelled"
)

const (
	RedisRevokedTokenKeyFormat = "revoked_token:%s"
)

// Supported phone country codes, offered as a select list by the front end
var PhoneCountryCodes = []string{"+33", "+32", "+41", "+352", "+1", "+44", "+212"}

var AttachmentAllowedMIMETypes = map[string]string{
	MIMEImageJPEG:      ".jpg",
	MIMEImagePNG:       ".png",
	MIMEApplicationPDF: ".pdf",
}
