package models

type Event struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	OccurredAt string                 `json:"occurred_at"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
}
