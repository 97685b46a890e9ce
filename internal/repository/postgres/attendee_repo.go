package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventhub/internal/domain"
)

type attendeeRepository struct {
	DB *sql.DB
}

func NewAttendeeRepository(db *sql.DB) domain.AttendeeRepository {
	return &attendeeRepository{DB: db}
}

// Join records the membership row and mirrors the user into events.attendees in one transaction.
// The UNIQUE (user_id, event_id) constraint makes concurrent duplicate joins resolve to exactly one row.
func (r *attendeeRepository) Join(ctx context.Context, a *domain.Attendee) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	insert := `
		INSERT INTO attendees (user_id, event_id, joined_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, event_id) DO NOTHING
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, insert, a.UserID, a.EventID, a.JoinedAt).Scan(&a.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return rollback(tx, domain.ErrAlreadyJoined)
		case pqCode(err) == foreignKeyViolation:
			return rollback(tx, domain.ErrNotFound)
		default:
			return rollback(tx, err)
		}
	}

	update := `
		UPDATE events
		SET attendees = array_append(attendees, $1::uuid)
		WHERE id = $2
	`
	result, err := tx.ExecContext(ctx, update, a.UserID, a.EventID)
	if err != nil {
		return rollback(tx, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return rollback(tx, err)
	}
	if rows == 0 {
		return rollback(tx, domain.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *attendeeRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Attendee, error) {
	query := `
		SELECT id, user_id, event_id, joined_at
		FROM attendees
		WHERE event_id = $1 AND user_id = $2
	`
	a := &domain.Attendee{}
	err := r.DB.QueryRowContext(ctx, query, eventID, userID).Scan(&a.ID, &a.UserID, &a.EventID, &a.JoinedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttendeeNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *attendeeRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	query := `
		SELECT a.id, a.user_id, COALESCE(u.name, ''), a.event_id, a.joined_at
		FROM attendees a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.event_id = $1
		ORDER BY a.joined_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	attendees := make([]*domain.Attendee, 0)
	for rows.Next() {
		a := &domain.Attendee{}
		if err := rows.Scan(&a.ID, &a.UserID, &a.UserName, &a.EventID, &a.JoinedAt); err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}
