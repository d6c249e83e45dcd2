package common

import "time"

type EventType string

const (
	EventRequestCreated  EventType = "request_created"
	EventRequestApproved EventType = "request_approved"
	EventRequestDeclined EventType = "request_declined"
	EventRequestRevoked  EventType = "request_revoked"
	EventMessageSent     EventType = "message_sent"
)

// Event is published on every request decision and message send so
// subscribers see changes without polling. The REST contract is unchanged;
// clients that only poll keep working.
type Event struct {
	Type       EventType
	StartupID  uint64
	MentorID   uint64
	RequestID  uint64
	MessageID  uint64
	ActorRole  Role
	Header     string
	Content    string
	OccurredAt time.Time
}
