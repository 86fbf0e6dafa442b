package model

import "time"

// Message roles used throughout the pipeline. RoleError is display-only
// and is never forwarded to the generation backend.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
	RoleError     = "error"
)

// Delivery status of a message. Only relevant to the presentation layer;
// the pipeline itself never inspects it.
const (
	StatusSending = "sending"
	StatusSent    = "sent"
	StatusError   = "error"
)

// ChatMessage is a single conversation turn.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status,omitempty"`
}

// ChatReply is the pipeline's answer for one turn.
type ChatReply struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
