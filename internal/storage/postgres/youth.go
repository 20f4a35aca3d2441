package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"schoolsync/internal/domain"
)

const youthColumns = `
	id, external_id, employee_id, first_names, last_name, full_name,
	gender, dob, job_title, employment_status, start_date, end_date,
	cell_phone, email, school_id, mentor_id, created_at, updated_at`

type YouthStore struct {
	db *sqlx.DB
}

func NewYouthStore(db *sqlx.DB) *YouthStore {
	return &YouthStore{db: db}
}

func (s *YouthStore) GetByExternalID(ctx context.Context, externalID string) (*domain.Youth, error) {
	return s.get(ctx, `SELECT `+youthColumns+` FROM youth WHERE external_id = $1`, externalID)
}

func (s *YouthStore) GetByEmployeeID(ctx context.Context, employeeID int64) (*domain.Youth, error) {
	return s.get(ctx, `SELECT `+youthColumns+` FROM youth WHERE employee_id = $1`, employeeID)
}

// GetByFullName is the last-resort match; ties break on lowest id.
func (s *YouthStore) GetByFullName(ctx context.Context, fullName string) (*domain.Youth, error) {
	return s.get(ctx,
		`SELECT `+youthColumns+` FROM youth WHERE lower(full_name) = lower(trim($1)) ORDER BY id LIMIT 1`,
		fullName,
	)
}

func (s *YouthStore) Create(ctx context.Context, y *domain.Youth) (int64, error) {
	query := `
		INSERT INTO youth (
			external_id, employee_id, first_names, last_name, full_name,
			gender, dob, job_title, employment_status, start_date, end_date,
			cell_phone, email, school_id, mentor_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		y.ExternalID,
		y.EmployeeID,
		y.FirstNames,
		y.LastName,
		y.FullName,
		y.Gender,
		y.DOB,
		y.JobTitle,
		y.EmploymentStatus,
		y.StartDate,
		y.EndDate,
		y.CellPhone,
		y.Email,
		y.SchoolID,
		y.MentorID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	y.ID = id
	return id, nil
}

func (s *YouthStore) Update(ctx context.Context, y *domain.Youth) error {
	query := `
		UPDATE youth SET
			external_id = $2,
			employee_id = $3,
			first_names = $4,
			last_name = $5,
			full_name = $6,
			gender = $7,
			dob = $8,
			job_title = $9,
			employment_status = $10,
			start_date = $11,
			end_date = $12,
			cell_phone = $13,
			email = $14,
			school_id = $15,
			mentor_id = $16,
			updated_at = now()
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		y.ID,
		y.ExternalID,
		y.EmployeeID,
		y.FirstNames,
		y.LastName,
		y.FullName,
		y.Gender,
		y.DOB,
		y.JobTitle,
		y.EmploymentStatus,
		y.StartDate,
		y.EndDate,
		y.CellPhone,
		y.Email,
		y.SchoolID,
		y.MentorID,
	)
	return err
}

func (s *YouthStore) get(ctx context.Context, query string, args ...any) (*domain.Youth, error) {
	var y domain.Youth
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &y, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &y, nil
}
