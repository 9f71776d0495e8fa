package events

import (
	"time"

	"github.com/spec-kit/bloodbank-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffCreated EventType = "staff_created"
	EventStaffUpdated EventType = "staff_updated"
	EventStaffDeleted EventType = "staff_deleted"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Identity domain.Identity `json:"identity"`
	Role     domain.Role     `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	StaffID   int64       `json:"staff_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StaffCreatedPayload payload.
type StaffCreatedPayload struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	JobTitle string `json:"job_title"`
}

// StaffUpdatedPayload payload.
type StaffUpdatedPayload struct {
	ChangedFields []string `json:"changed_fields"`
}

// StaffDeletedPayload payload.
type StaffDeletedPayload struct {
	Name string `json:"name"`
}
