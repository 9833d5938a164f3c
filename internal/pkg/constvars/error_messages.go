package constvars

// Validation messages, mapped by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required":          "is required",
	"email":             "must be a valid email",
	"min":               "must be at least %s characters long",
	"max":               "maximum at %s characters long",
	"oneof":             "must be one of %s",
	"datetime":          "must be a valid date in format YYYY-MM-DD",
	"password":          "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"person_name":       "may only contain letters, spaces and hyphens",
	"phone_digits":      "must be exactly 9 digits",
	"country_code":      "must be a supported country code",
	"not_future_date":   "cannot be in the future",
	"clinic_hours":      "must be a time between 08:00 and 17:59",
	"appointment_state": "must be one of planned, completed, cancelled",
	"role":              "must be one of admin, practitioner",
}

// Validation tags whose message embeds the tag parameter
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientServiceUnavailable            = "the service is temporarily unavailable"
	ErrClientRequestBodyTooLarge           = "request body exceeds the maximum size of %d MB"
	ErrClientInvalidInput                  = "some fields are invalid"
	ErrClientResourceNotFound              = "%s not found"
	ErrClientLastAdmin                     = "the last administrator account cannot be removed"
	ErrClientAppointmentStatusLocked       = "appointment status cannot change once %s"
	ErrClientUnsupportedMediaType          = "only JPEG, PNG and PDF files are accepted"
	ErrClientPayloadTooLarge               = "file exceeds the maximum size of %d MB"
	ErrClientTooManyAttachments            = "at most %d files can be uploaded at once"
	ErrClientCurrentPasswordInvalid        = "current password is incorrect"
	ErrClientMissingCredentials            = "email and password are required"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"
	ErrDevURLParamIDValidation     = "url param %s is not a valid object ID"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevMissingCredentials       = "missing email or password"
	ErrDevCurrentPasswordMismatch  = "current password mismatch"
	ErrDevEmailAlreadyExists       = "email already exists"
	ErrDevLastAdmin                = "refusing to remove or demote the last admin"
	ErrDevDocumentNotFound         = "%s document not found for caller"
	ErrDevStatusTransition         = "invalid appointment status transition %s -> %s"
	ErrDevServerDeadlineExceeded   = "deadline exceeded"
	ErrDevServerProcess            = "server process failed"
	ErrDevMissingCaller            = "caller identity missing from context"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevTooManyRequests          = "rate limit exceeded for %s"
	ErrDevDependencyUnavailable    = "dependency %s is unavailable"
	ErrDevRequestBodyTooLarge      = "request body larger than %d bytes"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenRevoked          = "token revoked"
	ErrDevAuthUserGone              = "token subject no longer exists"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevRoleTypeDoesntMatch       = "role type doesn't match"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBFailedToCountDocuments   = "failed to count documents"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisSetData = "failed to set data into redis"
	ErrDevRedisGetData = "failed to get data from redis"

	// Storage messages
	ErrDevStorageUnsupportedType = "unsupported attachment type %s"
	ErrDevStorageTooLarge        = "attachment size %d exceeds limit %d"
	ErrDevStoragePutObject       = "failed to store object %s"
	ErrDevStorageGetObject       = "failed to read object %s"
	ErrDevStorageObjectNotFound  = "object %s not found"
	ErrDevStorageReadUpload      = "failed to read uploaded file"

	// Messaging messages
	ErrDevPublishEvent = "failed to publish event to exchange %s"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrLineLocationUnknown = "line location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
