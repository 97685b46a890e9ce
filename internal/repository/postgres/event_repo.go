package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventhub/internal/domain"
)

const eventColumns = `
	e.id, e.title, e.description, e.date, e.category, e.location, e.attendees,
	e.created_by, COALESCE(u.name, ''), e.created_at, e.updated_at
`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var attendees []string
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Category, &e.Location, pq.Array(&attendees),
		&e.CreatedBy.ID, &e.CreatedBy.Name, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if attendees == nil {
		attendees = []string{}
	}
	e.Attendees = attendees
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, date, category, location, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Date, e.Category, e.Location, e.CreatedBy.ID, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		if pqCode(err) == foreignKeyViolation {
			return domain.ErrUserNotFound
		}
		return err
	}
	if e.Attendees == nil {
		e.Attendees = []string{}
	}
	return nil
}

func (r *eventRepository) List(ctx context.Context, page domain.PaginationParams) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events e
		LEFT JOIN users u ON u.id = e.created_by
		ORDER BY e.date ASC, e.created_at ASC
	`
	var args []any
	if !page.Unbounded() {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, page.PageSize, page.Offset())
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events e
		LEFT JOIN users u ON u.id = e.created_by
		WHERE e.id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, date = $3, category = $4, updated_at = $5
		WHERE id = $6 AND created_by = $7
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Title, e.Description, e.Date, e.Category, e.UpdatedAt, e.ID, e.CreatedBy.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id, ownerID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM attendees WHERE event_id = $1`, id); err != nil {
		return rollback(tx, err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1 AND created_by = $2`, id, ownerID)
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
