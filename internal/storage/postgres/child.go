package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"schoolsync/internal/domain"
)

const childColumns = `
	id, external_id, full_name, mcode, grade, on_programme, school_id,
	created_at, updated_at`

type ChildStore struct {
	db *sqlx.DB
}

func NewChildStore(db *sqlx.DB) *ChildStore {
	return &ChildStore{db: db}
}

func (s *ChildStore) GetByExternalID(ctx context.Context, externalID string) (*domain.Child, error) {
	return s.get(ctx, `SELECT `+childColumns+` FROM children WHERE external_id = $1`, externalID)
}

func (s *ChildStore) GetByMcode(ctx context.Context, mcode string) (*domain.Child, error) {
	return s.get(ctx, `SELECT `+childColumns+` FROM children WHERE mcode = $1 ORDER BY id LIMIT 1`, mcode)
}

// GetByNameAndSchool scopes the name match to one school; two children at
// different schools may legitimately share a name.
func (s *ChildStore) GetByNameAndSchool(ctx context.Context, fullName string, schoolID int64) (*domain.Child, error) {
	return s.get(ctx,
		`SELECT `+childColumns+` FROM children
		 WHERE lower(full_name) = lower(trim($1)) AND school_id = $2
		 ORDER BY id LIMIT 1`,
		fullName, schoolID,
	)
}

func (s *ChildStore) Create(ctx context.Context, c *domain.Child) (int64, error) {
	query := `
		INSERT INTO children (external_id, full_name, mcode, grade, on_programme, school_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		c.ExternalID,
		c.FullName,
		c.Mcode,
		c.Grade,
		c.OnProgramme,
		c.SchoolID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

func (s *ChildStore) get(ctx context.Context, query string, args ...any) (*domain.Child, error) {
	var c domain.Child
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &c, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
