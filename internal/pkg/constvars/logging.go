package constvars

const (
	LoggingRequestIDKey    = "request_id"
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
	LoggingUpstreamPathKey = "upstream_path"
	LoggingSessionIDKey    = "session_id"
	LoggingDoctorIDKey     = "doctor_id"
	LoggingOrderIDKey      = "order_id"
	LoggingRoomIDKey       = "room_id"
	LoggingDraftIDKey      = "draft_id"
	LoggingEventKey        = "event"
)
