package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"schoolsync/internal/domain"
)

const schoolColumns = `
	id, external_id, name, category, site_type, address, city,
	latitude, longitude, contact_person, contact_phone, contact_email,
	principal, actively_working_in, is_active, created_at, updated_at`

type SchoolStore struct {
	db *sqlx.DB
}

func NewSchoolStore(db *sqlx.DB) *SchoolStore {
	return &SchoolStore{db: db}
}

func (s *SchoolStore) GetByExternalID(ctx context.Context, externalID string) (*domain.School, error) {
	return s.get(ctx, `SELECT `+schoolColumns+` FROM schools WHERE external_id = $1`, externalID)
}

// GetByName matches case-insensitively; ties break on lowest id.
func (s *SchoolStore) GetByName(ctx context.Context, name string) (*domain.School, error) {
	return s.get(ctx,
		`SELECT `+schoolColumns+` FROM schools WHERE lower(name) = lower(trim($1)) ORDER BY id LIMIT 1`,
		name,
	)
}

// GetUnlinkedByName is GetByName restricted to rows without an external id,
// for the link-existing reconciliation mode.
func (s *SchoolStore) GetUnlinkedByName(ctx context.Context, name string) (*domain.School, error) {
	return s.get(ctx,
		`SELECT `+schoolColumns+` FROM schools
		 WHERE lower(name) = lower(trim($1)) AND external_id IS NULL
		 ORDER BY id LIMIT 1`,
		name,
	)
}

func (s *SchoolStore) Create(ctx context.Context, school *domain.School) (int64, error) {
	query := `
		INSERT INTO schools (
			external_id, name, category, site_type, address, city,
			latitude, longitude, contact_person, contact_phone, contact_email,
			principal, actively_working_in, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		school.ExternalID,
		school.Name,
		school.Category,
		school.SiteType,
		school.Address,
		school.City,
		school.Latitude,
		school.Longitude,
		school.ContactPerson,
		school.ContactPhone,
		school.ContactEmail,
		school.Principal,
		school.ActivelyWorkingIn,
		school.IsActive,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	school.ID = id
	return id, nil
}

func (s *SchoolStore) Update(ctx context.Context, school *domain.School) error {
	query := `
		UPDATE schools SET
			external_id = $2,
			name = $3,
			category = $4,
			site_type = $5,
			address = $6,
			city = $7,
			latitude = $8,
			longitude = $9,
			contact_person = $10,
			contact_phone = $11,
			contact_email = $12,
			principal = $13,
			actively_working_in = $14,
			is_active = $15,
			updated_at = now()
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		school.ID,
		school.ExternalID,
		school.Name,
		school.Category,
		school.SiteType,
		school.Address,
		school.City,
		school.Latitude,
		school.Longitude,
		school.ContactPerson,
		school.ContactPhone,
		school.ContactEmail,
		school.Principal,
		school.ActivelyWorkingIn,
		school.IsActive,
	)
	return err
}

// LinkExternalID attaches a remote id to a pre-existing, manually entered
// row so later lookups match on it directly.
func (s *SchoolStore) LinkExternalID(ctx context.Context, id int64, externalID string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE schools SET external_id = $2, updated_at = now() WHERE id = $1`,
		id, externalID,
	)
	return err
}

// ListUnlinked returns rows without an external id, for the duplicate
// report.
func (s *SchoolStore) ListUnlinked(ctx context.Context) ([]domain.School, error) {
	var schools []domain.School
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &schools,
		`SELECT `+schoolColumns+` FROM schools WHERE external_id IS NULL ORDER BY id`,
	)
	return schools, err
}

func (s *SchoolStore) get(ctx context.Context, query string, args ...any) (*domain.School, error) {
	var school domain.School
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &school, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &school, nil
}
