package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingCallerIDKey     = "caller_id"
	LoggingCallerRoleKey   = "caller_role"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingOperationKey    = "operation"
	LoggingErrorTypeKey    = "error_type"
	LoggingErrorCodeKey    = "error_code"
	LoggingErrorMessageKey = "error_message"
	LoggingUserIDKey       = "user_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingAppointmentKey  = "appointment_id"
	LoggingRecordIDKey     = "medical_record_id"
	LoggingStorageNameKey  = "storage_name"
	LoggingEventKey        = "event"
	LoggingCountKey        = "count"
)
