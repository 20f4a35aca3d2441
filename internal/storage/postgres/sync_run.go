package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"schoolsync/internal/domain"
)

const syncRunColumns = `
	id, sync_type, started_at, completed_at, processed, created, updated,
	skipped, success, error_message`

type SyncRunStore struct {
	db *sqlx.DB
}

func NewSyncRunStore(db *sqlx.DB) *SyncRunStore {
	return &SyncRunStore{db: db}
}

// Create opens a run in the running state (completed_at null).
func (s *SyncRunStore) Create(ctx context.Context, syncType string) (*domain.SyncRun, error) {
	run := &domain.SyncRun{SyncType: syncType}
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx,
		`INSERT INTO sync_runs (sync_type) VALUES ($1) RETURNING id, started_at`,
		syncType,
	).Scan(&run.ID, &run.StartedAt)
	if err != nil {
		return nil, err
	}
	return run, nil
}

// SaveProgress persists the counters mid-run.
func (s *SyncRunStore) SaveProgress(ctx context.Context, run *domain.SyncRun) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE sync_runs SET processed = $2, created = $3, updated = $4, skipped = $5
		 WHERE id = $1`,
		run.ID, run.Processed, run.Created, run.Updated, run.Skipped,
	)
	return err
}

// Complete finalizes the run. A run transitions to a terminal state exactly
// once; the caller guarantees single invocation.
func (s *SyncRunStore) Complete(ctx context.Context, run *domain.SyncRun) error {
	now := time.Now().UTC()
	run.CompletedAt = &now
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE sync_runs SET
			completed_at = $2, processed = $3, created = $4, updated = $5,
			skipped = $6, success = $7, error_message = $8
		 WHERE id = $1`,
		run.ID, run.CompletedAt, run.Processed, run.Created, run.Updated,
		run.Skipped, run.Success, run.ErrorMessage,
	)
	return err
}

// LastSuccessful returns the most recent completed successful run of the
// given type, or nil when none exists. Its start time is the incremental
// cutoff.
func (s *SyncRunStore) LastSuccessful(ctx context.Context, syncType string) (*domain.SyncRun, error) {
	var run domain.SyncRun
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &run,
		`SELECT `+syncRunColumns+` FROM sync_runs
		 WHERE sync_type = $1 AND success = true AND completed_at IS NOT NULL
		 ORDER BY completed_at DESC LIMIT 1`,
		syncType,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}
