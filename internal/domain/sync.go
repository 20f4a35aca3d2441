package domain

import "time"

// Sync type discriminators, one per dataset.
const (
	SyncTypeSchools          = "schools"
	SyncTypeYouth            = "youth"
	SyncTypeSessions         = "sessions"
	SyncTypeLiteracySessions = "literacy_sessions"
	SyncTypeNumeracySessions = "numeracy_sessions"
)

// Skip reasons recorded per record.
const (
	SkipMissingNaturalKey = "missing natural key"
	SkipDuplicateInBatch  = "duplicate in batch"
	SkipMissingSchool     = "missing school data"
	SkipMissingYouth      = "missing youth data"
	SkipMissingChild      = "missing child data"
	SkipBeforeCutoff      = "created before last sync"
	SkipAlreadyExists     = "already exists"
	SkipUnchanged         = "unchanged"
	SkipProcessingError   = "processing error"
)

// SyncRun is the audit record of one synchronization execution. It is
// created in a running state and finalized exactly once.
type SyncRun struct {
	ID           int64      `db:"id" json:"id"`
	SyncType     string     `db:"sync_type" json:"sync_type"`
	StartedAt    time.Time  `db:"started_at" json:"started_at"`
	CompletedAt  *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	Processed    int        `db:"processed" json:"processed"`
	Created      int        `db:"created" json:"created"`
	Updated      int        `db:"updated" json:"updated"`
	Skipped      int        `db:"skipped" json:"skipped"`
	Success      bool       `db:"success" json:"success"`
	ErrorMessage *string    `db:"error_message" json:"error_message,omitempty"`
}

// SyncStats accumulates per-run counters during execution. SkipReasons is a
// diagnostic breakdown that is logged, not persisted.
type SyncStats struct {
	SyncType    string
	Fetched     int
	Created     int
	Updated     int
	Skipped     int
	SkipReasons map[string]int
	Duration    time.Duration
}

// Skip tallies one skipped record under the given reason.
func (s *SyncStats) Skip(reason string) {
	s.Skipped++
	if s.SkipReasons == nil {
		s.SkipReasons = make(map[string]int)
	}
	s.SkipReasons[reason]++
}
