package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"schoolsync/internal/domain"
	"schoolsync/internal/source/airtable"
)

// Store lookups return (nil, nil) when no row matches.

type SchoolStore interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.School, error)
	GetByName(ctx context.Context, name string) (*domain.School, error)
	GetUnlinkedByName(ctx context.Context, name string) (*domain.School, error)
	Create(ctx context.Context, school *domain.School) (int64, error)
	Update(ctx context.Context, school *domain.School) error
	LinkExternalID(ctx context.Context, id int64, externalID string) error
	ListUnlinked(ctx context.Context) ([]domain.School, error)
}

type YouthStore interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.Youth, error)
	GetByEmployeeID(ctx context.Context, employeeID int64) (*domain.Youth, error)
	GetByFullName(ctx context.Context, fullName string) (*domain.Youth, error)
	Create(ctx context.Context, y *domain.Youth) (int64, error)
	Update(ctx context.Context, y *domain.Youth) error
}

type ChildStore interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.Child, error)
	GetByMcode(ctx context.Context, mcode string) (*domain.Child, error)
	GetByNameAndSchool(ctx context.Context, fullName string, schoolID int64) (*domain.Child, error)
	Create(ctx context.Context, c *domain.Child) (int64, error)
}

type MentorStore interface {
	GetByName(ctx context.Context, name string) (*domain.Mentor, error)
	Create(ctx context.Context, m *domain.Mentor) (int64, error)
}

type SessionStore interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.Session, error)
	GetBySessionNumber(ctx context.Context, sessionNumber int64) (*domain.Session, error)
	ExistsByExternalID(ctx context.Context, externalID string) (bool, error)
	Create(ctx context.Context, sess *domain.Session) (int64, error)
	Update(ctx context.Context, sess *domain.Session) error
}

type SyncRunStore interface {
	Create(ctx context.Context, syncType string) (*domain.SyncRun, error)
	SaveProgress(ctx context.Context, run *domain.SyncRun) error
	Complete(ctx context.Context, run *domain.SyncRun) error
	LastSuccessful(ctx context.Context, syncType string) (*domain.SyncRun, error)
}

// Fetcher retrieves every record of one remote table. Implemented by the
// airtable client and by the snapshot file reader.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]airtable.Record, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher emits a summary event when a run finishes, so downstream
// consumers (dashboards) know to refresh.
type Publisher interface {
	PublishRun(ctx context.Context, run *domain.SyncRun) error
	Close() error
}
