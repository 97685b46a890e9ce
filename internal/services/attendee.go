package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventhub/internal/domain"
)

type attendeeService struct {
	eventRepo      domain.EventRepository
	attendeeRepo   domain.AttendeeRepository
	contextTimeout time.Duration
}

// NewAttendeeService creates an AttendeeService with the given repositories.
func NewAttendeeService(
	eventRepo domain.EventRepository,
	attendeeRepo domain.AttendeeRepository,
	timeout time.Duration,
) domain.AttendeeService {
	return &attendeeService{
		eventRepo:      eventRepo,
		attendeeRepo:   attendeeRepo,
		contextTimeout: timeout,
	}
}

// JoinEvent adds userID to the event. An existing membership short-circuits to ErrAlreadyJoined;
// the repository's unique (user, event) constraint still decides between concurrent joins.
func (s *attendeeService) JoinEvent(ctx context.Context, eventID, userID string) (*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.ensureEvent(ctx, eventID); err != nil {
		return nil, err
	}

	existing, err := s.attendeeRepo.GetByEventAndUser(ctx, eventID, userID)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrAlreadyJoined
	case err != nil && !errors.Is(err, domain.ErrAttendeeNotFound):
		return nil, fmt.Errorf("get attendee: %w", err)
	}

	attendee := domain.NewAttendee(eventID, userID, time.Now())
	if err := s.attendeeRepo.Join(ctx, attendee); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyJoined):
			return nil, domain.ErrAlreadyJoined
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrNotFound
		default:
			return nil, fmt.Errorf("join event: %w", err)
		}
	}
	return attendee, nil
}

func (s *attendeeService) ListAttendees(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.ensureEvent(ctx, eventID); err != nil {
		return nil, err
	}
	attendees, err := s.attendeeRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	return attendees, nil
}

func (s *attendeeService) ensureEvent(ctx context.Context, eventID string) error {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	return nil
}
