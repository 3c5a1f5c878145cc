package responses

type ChatRoom struct {
	ID          string `json:"id"`
	PeerName    string `json:"peerName"`
	LastMessage string `json:"lastMessage,omitempty"`
	UnreadCount int    `json:"unreadCount"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type ChatMessage struct {
	ID        string `json:"id"`
	RoomID    string `json:"roomId"`
	SenderID  string `json:"senderId,omitempty"`
	Body      string `json:"body"`
	Mine      bool   `json:"mine"`
	CreatedAt string `json:"createdAt,omitempty"`
	Pending   bool   `json:"pending,omitempty"`
}
