package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"schoolsync/internal/domain"
)

type MentorStore struct {
	db *sqlx.DB
}

func NewMentorStore(db *sqlx.DB) *MentorStore {
	return &MentorStore{db: db}
}

// GetByName matches case-insensitively; ties break on lowest id. Mentors
// have no external id, name is all the remote store supplies.
func (s *MentorStore) GetByName(ctx context.Context, name string) (*domain.Mentor, error) {
	var m domain.Mentor
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &m,
		`SELECT id, name, account_id, is_active, created_at, updated_at
		 FROM mentors WHERE lower(name) = lower(trim($1)) ORDER BY id LIMIT 1`,
		name,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MentorStore) Create(ctx context.Context, m *domain.Mentor) (int64, error) {
	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx,
		`INSERT INTO mentors (name, account_id, is_active) VALUES ($1, $2, $3) RETURNING id`,
		m.Name, m.AccountID, m.IsActive,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	m.ID = id
	return id, nil
}
