package domain

import (
	"context"
	"errors"
	"time"
)

// ErrAttendeeNotFound is returned when a user has no membership row for an event.
var ErrAttendeeNotFound = errors.New("attendee not found")

// Attendee is the membership row linking one user to one event.
// swagger:model Attendee
type Attendee struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	UserName string    `json:"user_name,omitempty"`
	EventID  string    `json:"event_id"`
	JoinedAt time.Time `json:"joined_at"`
}

// NewAttendee creates a new Attendee. ID is typically set by the repository on create.
func NewAttendee(eventID, userID string, joinedAt time.Time) *Attendee {
	return &Attendee{
		EventID:  eventID,
		UserID:   userID,
		JoinedAt: joinedAt,
	}
}

// AttendeeRepository defines storage operations for attendee rows.
type AttendeeRepository interface {
	// Join inserts the attendee row and appends the user to the event roster atomically.
	// Returns ErrAlreadyJoined if the (user, event) pair exists, ErrNotFound if the event is gone.
	Join(ctx context.Context, attendee *Attendee) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*Attendee, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Attendee, error)
}

// AttendeeService defines attendee-facing operations.
type AttendeeService interface {
	JoinEvent(ctx context.Context, eventID, userID string) (*Attendee, error)
	ListAttendees(ctx context.Context, eventID string) ([]*Attendee, error)
}
