package service

import (
	"context"

	"schoolsync/internal/domain"
)

// batchGuard suppresses duplicate natural keys within one run. The remote
// store occasionally returns two records for the same key; only the first
// is applied.
type batchGuard struct {
	seen map[int64]struct{}
}

func newBatchGuard() *batchGuard {
	return &batchGuard{seen: make(map[int64]struct{})}
}

// seenBefore marks the key and reports whether it was already marked.
func (g *batchGuard) seenBefore(key int64) bool {
	if _, ok := g.seen[key]; ok {
		return true
	}
	g.seen[key] = struct{}{}
	return false
}

// upsertSession applies a fully resolved session. Lookup order: external id
// (overwrite), then session number — a hit there links a previously
// unlinked local row to the remote id — then create.
func upsertSession(ctx context.Context, store SessionStore, sess *domain.Session) (bool, error) {
	existing, err := store.GetByExternalID(ctx, sess.ExternalID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		existing, err = store.GetBySessionNumber(ctx, sess.SessionNumber)
		if err != nil {
			return false, err
		}
	}

	if existing != nil {
		sess.ID = existing.ID
		return false, store.Update(ctx, sess)
	}

	_, err = store.Create(ctx, sess)
	return true, err
}
