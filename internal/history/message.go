package history

import "time"

// Message senders. Transcripts only ever contain these two roles.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message is one turn of a conversation. Messages are append-only: written
// once when the turn happens and never mutated or deleted.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Body      string    `json:"message"`
	Sender    string    `json:"sender"`
	UserType  string    `json:"user_type,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}

// StatusCheck is a health-check record created through the status endpoints.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
