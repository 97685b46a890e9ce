package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

func TestAttendeeRepository_Join(t *testing.T) {
	ctx := context.Background()
	joinedAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
		errIs   error
	}{
		{
			name: "first join inserts and appends",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO attendees \(user_id, event_id, joined_at\)\s+VALUES \(\$1, \$2, \$3\)\s+ON CONFLICT \(user_id, event_id\) DO NOTHING\s+RETURNING id`).
					WithArgs("user-uuid-2", "event-uuid-1", joinedAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("att-uuid-1"))
				mock.ExpectExec(`UPDATE events\s+SET attendees = array_append\(attendees, \$1::uuid\)\s+WHERE id = \$2`).
					WithArgs("user-uuid-2", "event-uuid-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantID: "att-uuid-1",
		},
		{
			name: "conflict returns ErrAlreadyJoined",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO attendees`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
			},
			wantErr: true,
			errIs:   domain.ErrAlreadyJoined,
		},
		{
			name: "missing event returns ErrNotFound",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO attendees`).
					WillReturnError(&pq.Error{Code: "23503"})
				mock.ExpectRollback()
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name: "event vanished before append",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO attendees`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("att-uuid-1"))
				mock.ExpectExec(`UPDATE events`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name: "append failure rolls back",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO attendees`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("att-uuid-1"))
				mock.ExpectExec(`UPDATE events`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			},
			wantErr: true,
			errIs:   sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			a := domain.NewAttendee("event-uuid-1", "user-uuid-2", joinedAt)
			err = NewAttendeeRepository(db).Join(ctx, a)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, a.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAttendeeRepository_ListByEventID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	joinedAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM attendees a\s+LEFT JOIN users u ON u.id = a.user_id\s+WHERE a.event_id = \$1`).
		WithArgs("event-uuid-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "event_id", "joined_at"}).
			AddRow("att-1", "user-uuid-2", "Bo", "event-uuid-1", joinedAt))

	got, err := NewAttendeeRepository(db).ListByEventID(context.Background(), "event-uuid-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, &domain.Attendee{ID: "att-1", UserID: "user-uuid-2", UserName: "Bo", EventID: "event-uuid-1", JoinedAt: joinedAt}, got[0])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendeeRepository_GetByEventAndUser(t *testing.T) {
	joinedAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	query := `SELECT id, user_id, event_id, joined_at\s+FROM attendees\s+WHERE event_id = \$1 AND user_id = \$2`

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(query).
			WithArgs("event-uuid-1", "user-uuid-2").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "event_id", "joined_at"}).
				AddRow("att-1", "user-uuid-2", "event-uuid-1", joinedAt))

		got, err := NewAttendeeRepository(db).GetByEventAndUser(context.Background(), "event-uuid-1", "user-uuid-2")
		require.NoError(t, err)
		assert.Equal(t, &domain.Attendee{ID: "att-1", UserID: "user-uuid-2", EventID: "event-uuid-1", JoinedAt: joinedAt}, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not joined", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(query).
			WithArgs("event-uuid-1", "user-uuid-2").
			WillReturnError(sql.ErrNoRows)

		_, err = NewAttendeeRepository(db).GetByEventAndUser(context.Background(), "event-uuid-1", "user-uuid-2")
		require.ErrorIs(t, err, domain.ErrAttendeeNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
