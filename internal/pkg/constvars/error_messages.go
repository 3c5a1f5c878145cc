package constvars

// Client-facing messages. Kept deliberately vague for anything that would leak
// internals; upstream business errors pass through verbatim instead.
const (
	ErrClientCannotProcessRequest          = "Cannot process the request"
	ErrClientSomethingWrongWithApplication = "Something is wrong with the application"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in"
	ErrClientServerLongRespond             = "Server took too long to respond"
	ErrClientInvalidCredentials            = "Invalid email or password"
	ErrClientDraftNotFound                 = "Registration draft not found"
	ErrClientUpstreamUnavailable           = "Doorspital backend is unreachable"
	ErrClientFileTooLarge                  = "Uploaded file exceeds the allowed size"
	ErrClientUnknownDocumentSlot           = "Unknown document type"
)

// Developer-facing messages, logged but only echoed outside production.
const (
	ErrDevCannotParseJSON           = "Failed to parse JSON body"
	ErrDevCannotMarshalJSON         = "Failed to marshal value to JSON"
	ErrDevCannotParseMultipartForm  = "Failed to parse multipart form"
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevCreateHTTPRequest         = "Failed to create HTTP request to backend"
	ErrDevSendHTTPRequest           = "Failed to send HTTP request to backend"
	ErrDevReadBackendResponse       = "Failed to read backend response body"
	ErrDevBackendRejected           = "Backend rejected the request"
	ErrDevServerDeadlineExceeded    = "Deadline exceeded while waiting for process to finish"
	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalid          = "Authorization token is invalid or expired"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevAuthGenerateToken         = "Failed to generate session JWT"
	ErrDevAuthInvalidSession        = "Session not found or expired"
	ErrDevAuthRoleMismatch          = "Session role does not match the requested resource"
	ErrDevSessionWithoutUser        = "Refusing to store a session token without a user record"
	ErrDevRedisSetData              = "Failed to set data to redis"
	ErrDevRedisGetData              = "Failed to get data from redis"
	ErrDevRedisDeleteData           = "Failed to delete data from redis"
	ErrDevMongoInsertDocument       = "Failed to insert document to mongo collection"
	ErrDevMinioCreateObject         = "Failed to store object in bucket %s"
	ErrDevRabbitMQPublish           = "Failed to publish message to queue %s"
	ErrDevMissingRequestID          = "Request ID missing from request context"
	ErrDevMissingSession            = "Session missing from request context"
	ErrDevDraftNotFound             = "Registration draft does not exist"
	ErrDevUnknownDocumentSlot       = "Document slot name is not one of the known upload slots"
	ErrDevInvoiceRender             = "Failed to render invoice PDF"
	ErrDevURLParamMissing           = "URL parameter %s is missing"
	ErrDevUpstreamShapeUnrecognized = "Backend response shape not recognized for %s"
)
