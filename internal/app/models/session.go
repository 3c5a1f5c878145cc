package models

// Session is the client-held authenticated identity for one role. The token is
// the opaque bearer issued by the Doorspital backend; User is whatever user
// record came back with it. The two always travel together: a token without a
// user record is never stored.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`

	// Pharmacy sessions nest the store profile alongside the user record,
	// mirroring what the backend returns at pharmacy login. Nil for doctors.
	Pharmacy map[string]interface{} `json:"pharmacy,omitempty"`
}

type User struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
}
