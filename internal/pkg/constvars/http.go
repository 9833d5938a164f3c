package constvars

const (
	MIMETextPlain            = "text/plain"
	MIMEApplicationJSON      = "application/json"
	MIMEApplicationPDF       = "application/pdf"
	MIMEImageJPEG            = "image/jpeg"
	MIMEImagePNG             = "image/png"
	MIMEOctetStream          = "application/octet-stream"
	MIMEMultipartForm        = "multipart/form-data"
	MIMEApplicationJSONUTF8  = "application/json; charset=utf-8"
	MIMETextPlainCharsetUTF8 = "text/plain; charset=utf-8"
)

const (
	StatusOK                    = 200
	StatusCreated               = 201
	StatusNoContent             = 204
	StatusBadRequest            = 400
	StatusUnauthorized          = 401
	StatusForbidden             = 403
	StatusNotFound              = 404
	StatusConflict              = 409
	StatusRequestEntityTooLarge = 413
	StatusUnsupportedMediaType  = 415
	StatusUnprocessableEntity   = 422
	StatusTooManyRequests       = 429
	StatusInternalServerError   = 500
	StatusServiceUnavailable    = 503
	StatusGatewayTimeout        = 504
)

const (
	HeaderAuthorization      = "Authorization"
	HeaderContentType        = "Content-Type"
	HeaderContentLength      = "Content-Length"
	HeaderContentDisposition = "Content-Disposition"
	HeaderXRequestID         = "X-Request-ID"
	HeaderAccept             = "Accept"
	HeaderXCSRFToken         = "X-CSRF-Token"
)

const (
	AuthorizationBearerPrefix = "Bearer "
)
