package service

import (
	"context"
	"fmt"
	"strings"
)

// SchoolDuplicate pairs a local school lacking an external id with a
// same-named remote record that would create a second row on sync.
type SchoolDuplicate struct {
	LocalID    int64
	LocalName  string
	RemoteID   string
	RemoteName string
}

// CheckSchoolDuplicates compares remote school records against local rows
// without an external id by case-folded name. It is an operator report for
// deciding whether to re-run the schools sync with link-existing; the
// engine itself never merges.
func CheckSchoolDuplicates(ctx context.Context, fetcher Fetcher, schools SchoolStore) ([]SchoolDuplicate, error) {
	records, err := fetcher.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch school records: %w", err)
	}

	remoteByName := make(map[string][]struct{ id, name string })
	for _, rec := range records {
		name := strings.TrimSpace(rec.Fields.Value("School").String())
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		remoteByName[key] = append(remoteByName[key], struct{ id, name string }{rec.ID, name})
	}

	unlinked, err := schools.ListUnlinked(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unlinked schools: %w", err)
	}

	var dups []SchoolDuplicate
	for _, local := range unlinked {
		for _, remote := range remoteByName[strings.ToLower(strings.TrimSpace(local.Name))] {
			dups = append(dups, SchoolDuplicate{
				LocalID:    local.ID,
				LocalName:  local.Name,
				RemoteID:   remote.id,
				RemoteName: remote.name,
			})
		}
	}
	return dups, nil
}
