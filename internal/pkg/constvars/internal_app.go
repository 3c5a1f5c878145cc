package constvars

type ContextKey string

const (
	ContextRequestID       ContextKey = "requestID"
	ContextClientRequestID ContextKey = "isClientRequestID"
	ContextSession         ContextKey = "session"
	ContextSessionID       ContextKey = "sessionID"
	ContextUpstreamToken   ContextKey = "upstreamToken"
)

const (
	RoleDoctor   = "doctor"
	RolePharmacy = "pharmacy"
)

// Redis key prefixes. Doctor and pharmacy sessions are deliberately separate
// stores: the same browser profile may hold both identities at once, and
// clearing one must never invalidate the other.
const (
	RedisKeyDoctorSession     = "doctorSession"
	RedisKeyPharmacySession   = "pharmacySession"
	RedisKeyRegistrationDraft = "doctorRegistrationData"
	RedisKeyChatMessages      = "chatMessages"
)

const (
	URLParamDoctorID      = "doctorID"
	URLParamOrderID       = "orderID"
	URLParamProductID     = "productID"
	URLParamRoomID        = "roomID"
	URLParamAppointmentID = "appointmentID"
	URLParamNotifID       = "notificationID"
)

// Upstream paths consumed by the gateway. The backend owns these contracts;
// the gateway only normalizes their responses.
const (
	BackendPathLogin              = "/api/auth/login"
	BackendPathPharmacyLogin      = "/api/auth/pharmacy/login"
	BackendPathSignup             = "/api/auth/signup"
	BackendPathVerifyOTP          = "/api/auth/otp/verify"
	BackendPathDashboardOverview  = "/api/doctors/dashboard/overview"
	BackendPathProfileMe          = "/api/profile/me"
	BackendPathDoctorProfile      = "/api/doctors/profile"
	BackendPathDoctorServices     = "/api/doctors/services"
	BackendPathAppointments       = "/api/doctors/dashboard/appointments"
	BackendPathDoctorAppointments = "/api/doctors/appointments"
	BackendPathDoctors            = "/api/doctors"
	BackendPathPatients           = "/api/doctors/dashboard/patients"
	BackendPathNotifications      = "/api/notifications"
	BackendPathChatRooms          = "/api/chat/rooms"
	BackendPathPharmacyProducts   = "/api/pharmacy/products"
	BackendPathPharmacyOrders     = "/api/pharmacy/orders"
	BackendPathPharmacyOrdersMine = "/api/pharmacy/orders/me"
	BackendPathPharmacyProfile    = "/api/pharmacy/profile"
	BackendPathDoctorVerification = "/api/doctors/verification"
)

// VerificationPendingMarker is the substring (matched case-insensitively) the
// backend embeds in its error message while a doctor's KYC review is still
// open. There is no structured code for this state upstream; any wording
// change there breaks the pending branch, so the match lives in exactly one
// place.
const VerificationPendingMarker = "verification is not approved"

const (
	MinioBucketKYCDocuments = "kyc-documents"

	EventsQueueName = "doorspital_gateway_events"

	EventRegistrationSubmitted = "registration.submitted"
	EventOrderStatusChanged    = "order.status_changed"
)

const (
	RegistrationFileMBBSCertificate    = "mbbsCertificate"
	RegistrationFileMDMSBDSCertificate = "mdMsBdsCertificate"
	RegistrationFileRegistrationCert   = "registrationCertificate"
	RegistrationFileGovernmentID       = "governmentId"
	RegistrationFileSelfie             = "selfie"
)
