package constvars

const (
	LoginSuccess                = "Successfully logged in"
	SignupSuccess               = "Successfully signed up, please verify the OTP sent to your email"
	OTPVerifySuccess            = "Successfully verified OTP"
	LogoutSuccess               = "Successfully logged out"
	DraftFetchSuccess           = "Successfully fetched registration draft"
	DraftUpdateSuccess          = "Successfully updated registration draft"
	DraftResetSuccess           = "Successfully reset registration draft"
	DraftSubmitSuccess          = "Successfully submitted registration for verification"
	DocumentUploadSuccess       = "Successfully uploaded document"
	DashboardFetchSuccess       = "Successfully fetched dashboard"
	AppointmentsFetchSuccess    = "Successfully fetched appointments"
	AppointmentStatusSuccess    = "Successfully updated appointment status"
	PatientsFetchSuccess        = "Successfully fetched patients"
	ProfileFetchSuccess         = "Successfully fetched profile"
	ProfileUpdateSuccess        = "Successfully updated profile"
	ServicesUpdateSuccess       = "Successfully updated services"
	AvailabilityFetchSuccess    = "Successfully fetched availability"
	AvailabilitySetSuccess      = "Successfully saved availability schedule"
	VerificationFetchSuccess    = "Successfully fetched verification status"
	NotificationsFetchSuccess   = "Successfully fetched notifications"
	NotificationReadSuccess     = "Successfully marked notification as read"
	ChatRoomsFetchSuccess       = "Successfully fetched chat rooms"
	ChatMessagesFetchSuccess    = "Successfully fetched messages"
	ChatMessageSendSuccess      = "Successfully sent message"
	ChatRoomReadSuccess         = "Successfully marked room as read"
	ChatRoomClosedSuccess       = "Successfully closed room"
	ProductsFetchSuccess        = "Successfully fetched products"
	ProductCreateSuccess        = "Successfully added medicine"
	ProductUpdateSuccess        = "Successfully updated medicine"
	OrdersFetchSuccess          = "Successfully fetched orders"
	OrderFetchSuccess           = "Successfully fetched order"
	OrderStatusUpdateSuccess    = "Successfully updated order status"
	PharmacyProfileFetchSuccess = "Successfully fetched pharmacy profile"
	PharmacyProfileSaveSuccess  = "Successfully updated pharmacy profile"
	EarningsFetchSuccess        = "Successfully fetched earnings"
	SupportFetchSuccess         = "Successfully fetched support contacts"
	StatusFetchSuccess          = "Successfully fetched gateway status"
)
