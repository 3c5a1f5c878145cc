package responses

import "doorspital-service/internal/app/models"

type Login struct {
	// Token is the gateway-issued JWT, not the upstream bearer; the upstream
	// token stays inside the session store.
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type Signup struct {
	Email string `json:"email"`
}
