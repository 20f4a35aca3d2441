package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot replays a previously captured export file instead of calling the
// remote API, for offline and repeatable runs. The file may be a bare array
// of records or an object with a records key; both are accepted.
type Snapshot struct {
	Path string
}

// FetchAll reads and decodes the snapshot file.
func (s Snapshot) FetchAll(_ context.Context) ([]Record, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var wrapped struct {
		Records []Record `json:"records"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", s.Path, err)
	}
	return wrapped.Records, nil
}
