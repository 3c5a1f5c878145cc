package requests

type SendMessage struct {
	Body string `json:"body" validate:"required"`
}
