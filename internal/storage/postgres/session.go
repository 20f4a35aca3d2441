package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"schoolsync/internal/domain"
)

const sessionColumns = `
	id, external_id, session_number, youth_id, child_id, school_id, mentor_id,
	total_weekly_sessions, submitted_for_week, week, month, month_year,
	met_minimum, capture_date, remote_created_at, created_at, updated_at`

type SessionStore struct {
	db *sqlx.DB
}

func NewSessionStore(db *sqlx.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) GetByExternalID(ctx context.Context, externalID string) (*domain.Session, error) {
	return s.get(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE external_id = $1`, externalID)
}

func (s *SessionStore) GetBySessionNumber(ctx context.Context, sessionNumber int64) (*domain.Session, error) {
	return s.get(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE session_number = $1`, sessionNumber)
}

// ExistsByExternalID is the cheap lookup used by the incremental cutoff
// check, which runs for every fetched record.
func (s *SessionStore) ExistsByExternalID(ctx context.Context, externalID string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists,
		`SELECT EXISTS (SELECT 1 FROM sessions WHERE external_id = $1)`, externalID)
	return exists, err
}

func (s *SessionStore) Create(ctx context.Context, sess *domain.Session) (int64, error) {
	query := `
		INSERT INTO sessions (
			external_id, session_number, youth_id, child_id, school_id, mentor_id,
			total_weekly_sessions, submitted_for_week, week, month, month_year,
			met_minimum, capture_date, remote_created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		sess.ExternalID,
		sess.SessionNumber,
		sess.YouthID,
		sess.ChildID,
		sess.SchoolID,
		sess.MentorID,
		sess.TotalWeeklySessions,
		sess.SubmittedForWeek,
		sess.Week,
		sess.Month,
		sess.MonthYear,
		sess.MetMinimum,
		sess.CaptureDate,
		sess.RemoteCreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	sess.ID = id
	return id, nil
}

func (s *SessionStore) Update(ctx context.Context, sess *domain.Session) error {
	query := `
		UPDATE sessions SET
			external_id = $2,
			session_number = $3,
			youth_id = $4,
			child_id = $5,
			school_id = $6,
			mentor_id = $7,
			total_weekly_sessions = $8,
			submitted_for_week = $9,
			week = $10,
			month = $11,
			month_year = $12,
			met_minimum = $13,
			capture_date = $14,
			remote_created_at = $15,
			updated_at = now()
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		sess.ID,
		sess.ExternalID,
		sess.SessionNumber,
		sess.YouthID,
		sess.ChildID,
		sess.SchoolID,
		sess.MentorID,
		sess.TotalWeeklySessions,
		sess.SubmittedForWeek,
		sess.Week,
		sess.Month,
		sess.MonthYear,
		sess.MetMinimum,
		sess.CaptureDate,
		sess.RemoteCreatedAt,
	)
	return err
}

func (s *SessionStore) get(ctx context.Context, query string, args ...any) (*domain.Session, error) {
	var sess domain.Session
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &sess, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}
