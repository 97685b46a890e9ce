package domain

import (
	"context"
	"time"
)

// EventOwner is the creator of an event with the display name resolved from users.
type EventOwner struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Event represents an event users can join.
// swagger:model Event
type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	Category    string     `json:"category"`
	Location    string     `json:"location"`
	Attendees   []string   `json:"attendees"`
	CreatedBy   EventOwner `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewEvent returns a new Event owned by ownerID. ID is typically set by the repository on create.
func NewEvent(title, description string, date time.Time, category, location, ownerID string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Date:        date,
		Category:    category,
		Location:    location,
		Attendees:   []string{},
		CreatedBy:   EventOwner{ID: ownerID},
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// IsOwnedBy reports whether userID may mutate or delete the event.
func (e *Event) IsOwnedBy(userID string) bool {
	return userID != "" && e.CreatedBy.ID == userID
}

// EventPatch carries the owner-editable fields of an event. Zero values mean "keep".
type EventPatch struct {
	Title       string
	Description string
	Date        *time.Time
	Category    string
}

// Apply merges p into e: every non-empty field of p replaces the stored value.
// Location, attendees and owner are never touched.
func (e *Event) Apply(p EventPatch) {
	if p.Title != "" {
		e.Title = p.Title
	}
	if p.Description != "" {
		e.Description = p.Description
	}
	if p.Date != nil && !p.Date.IsZero() {
		e.Date = *p.Date
	}
	if p.Category != "" {
		e.Category = p.Category
	}
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context, page PaginationParams) ([]*Event, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	// Update persists the editable fields; it only matches rows owned by event.CreatedBy.ID.
	Update(ctx context.Context, event *Event) error
	// Delete removes the event and its attendee rows in one transaction.
	Delete(ctx context.Context, id, ownerID string) error
}

// EventService defines the business logic for events.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	ListEvents(ctx context.Context, page PaginationParams) (events []*Event, total int, err error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	UpdateEvent(ctx context.Context, id, callerID string, patch EventPatch) (*Event, error)
	DeleteEvent(ctx context.Context, id, callerID string) error
}
