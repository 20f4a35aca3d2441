package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"schoolsync/internal/domain"
	"schoolsync/internal/normalize"
	"schoolsync/internal/source/airtable"
)

// ErrNoRecords marks a fetch that returned an empty dataset; the run is
// recorded as failed rather than as a vacuous success.
var ErrNoRecords = errors.New("no records returned by source")

// Options control one sync invocation.
type Options struct {
	// Full processes every fetched record; the default incremental scope
	// skips records created before the last successful run of the same
	// type unless their external id already exists locally.
	Full bool
	// Limit truncates the fetched record list, for testing.
	Limit int
	// Verbose logs every skipped record with its identifier and reason.
	Verbose bool
}

// Action is the per-record outcome counter bucket.
type Action int

const (
	ActionCreated Action = iota
	ActionUpdated
	ActionSkipped
)

// Outcome is one record's reconciliation result.
type Outcome struct {
	Action Action
	Reason string
}

func skipped(reason string) Outcome {
	return Outcome{Action: ActionSkipped, Reason: reason}
}

// Processor reconciles one dataset's records into the local store.
type Processor interface {
	SyncType() string
	// ExistsLocally reports whether a record's external id is already
	// linked, keeping pre-cutoff records eligible for update in
	// incremental runs.
	ExistsLocally(ctx context.Context, externalID string) (bool, error)
	Process(ctx context.Context, rec airtable.Record) (Outcome, error)
}

const progressInterval = 100

// Engine owns the lifecycle of sync runs for one dataset: fetch, scope
// decision, the per-record loop, counters, and the terminal audit record.
type Engine struct {
	fetcher   Fetcher
	proc      Processor
	runs      SyncRunStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	opts      Options
}

func NewEngine(
	fetcher Fetcher,
	proc Processor,
	runs SyncRunStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	opts Options,
) *Engine {
	return &Engine{
		fetcher:   fetcher,
		proc:      proc,
		runs:      runs,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("sync_type", proc.SyncType()),
		opts:      opts,
	}
}

// Sync executes one run. Records are processed strictly in fetch order,
// each in its own transaction; a bad record is counted as skipped and never
// aborts the run. Fetch failures and loop-infrastructure failures mark the
// run failed with the causing message. The returned run is the persisted
// audit record (nil only when the run row itself could not be created).
func (e *Engine) Sync(ctx context.Context) (*domain.SyncRun, error) {
	start := time.Now()

	run, err := e.runs.Create(ctx, e.proc.SyncType())
	if err != nil {
		return nil, fmt.Errorf("create sync run: %w", err)
	}
	e.logger.Info("starting sync", "run_id", run.ID, "full", e.opts.Full)

	records, err := e.fetcher.FetchAll(ctx)
	if err != nil {
		return run, e.fail(ctx, run, fmt.Errorf("fetch records: %w", err))
	}
	if len(records) == 0 {
		return run, e.fail(ctx, run, ErrNoRecords)
	}
	if e.opts.Limit > 0 && len(records) > e.opts.Limit {
		records = records[:e.opts.Limit]
		e.logger.Info("limited records for testing", "limit", e.opts.Limit)
	}
	e.logger.Info("fetched records", "count", len(records))

	cutoff, err := e.incrementalCutoff(ctx)
	if err != nil {
		return run, e.fail(ctx, run, err)
	}

	stats := &domain.SyncStats{SyncType: run.SyncType, Fetched: len(records)}

	for i, rec := range records {
		run.Processed = i + 1

		if i > 0 && i%progressInterval == 0 {
			e.syncCounters(run, stats)
			if err := e.runs.SaveProgress(ctx, run); err != nil {
				return run, e.fail(ctx, run, fmt.Errorf("save progress: %w", err))
			}
			e.logger.Info("processing", "record", i+1, "of", len(records))
		}

		if cutoff != nil && createdBefore(rec, *cutoff) {
			exists, err := e.proc.ExistsLocally(ctx, rec.ID)
			if err != nil {
				e.syncCounters(run, stats)
				return run, e.fail(ctx, run, fmt.Errorf("cutoff lookup: %w", err))
			}
			if !exists {
				e.recordSkip(stats, rec.ID, domain.SkipBeforeCutoff)
				continue
			}
		}

		var out Outcome
		err := e.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			var perr error
			out, perr = e.proc.Process(txCtx, rec)
			return perr
		})
		if err != nil {
			// Recoverable: count, keep going.
			e.logger.Warn("record failed", "record", rec.ID, "error", err)
			e.recordSkip(stats, rec.ID, domain.SkipProcessingError)
			continue
		}

		switch out.Action {
		case ActionCreated:
			stats.Created++
		case ActionUpdated:
			stats.Updated++
		case ActionSkipped:
			e.recordSkip(stats, rec.ID, out.Reason)
		}
	}

	run.Processed = len(records)
	e.syncCounters(run, stats)
	run.Success = true
	if err := e.runs.Complete(ctx, run); err != nil {
		return run, fmt.Errorf("complete sync run: %w", err)
	}

	stats.Duration = time.Since(start)
	e.logger.Info("sync completed",
		"run_id", run.ID,
		"processed", run.Processed,
		"created", run.Created,
		"updated", run.Updated,
		"skipped", run.Skipped,
		"duration", stats.Duration,
	)
	for reason, count := range stats.SkipReasons {
		e.logger.Info("skip reason", "reason", reason, "count", count)
	}

	if e.publisher != nil {
		if err := e.publisher.PublishRun(ctx, run); err != nil {
			e.logger.Warn("failed to publish run event", "error", err)
		}
	}

	return run, nil
}

// incrementalCutoff returns the start time of the last successful run of
// this type, or nil for full scope or when no prior run exists.
func (e *Engine) incrementalCutoff(ctx context.Context) (*time.Time, error) {
	if e.opts.Full {
		return nil, nil
	}
	last, err := e.runs.LastSuccessful(ctx, e.proc.SyncType())
	if err != nil {
		return nil, fmt.Errorf("look up last successful run: %w", err)
	}
	if last == nil {
		return nil, nil
	}
	e.logger.Info("incremental sync", "last_successful", last.StartedAt)
	cutoff := last.StartedAt
	return &cutoff, nil
}

func (e *Engine) recordSkip(stats *domain.SyncStats, recordID, reason string) {
	stats.Skip(reason)
	if e.opts.Verbose {
		e.logger.Info("skipped record", "record", recordID, "reason", reason)
	}
}

func (e *Engine) syncCounters(run *domain.SyncRun, stats *domain.SyncStats) {
	run.Created = stats.Created
	run.Updated = stats.Updated
	run.Skipped = stats.Skipped
}

// fail finalizes the run as unsuccessful, keeping counters accumulated up
// to the abort point. Per-record transactions mean earlier upserts stay
// committed.
func (e *Engine) fail(ctx context.Context, run *domain.SyncRun, cause error) error {
	msg := cause.Error()
	run.Success = false
	run.ErrorMessage = &msg
	if err := e.runs.Complete(ctx, run); err != nil {
		e.logger.Error("failed to finalize run", "run_id", run.ID, "error", err)
	}
	e.logger.Error("sync failed", "run_id", run.ID, "error", cause)
	return cause
}

func createdBefore(rec airtable.Record, cutoff time.Time) bool {
	t := normalize.ParseTime(rec.CreatedTime)
	if t == nil {
		// Unparseable creation time: process rather than drop.
		return false
	}
	return t.Before(cutoff)
}
