package airtable

import "schoolsync/internal/normalize"

// Record is one row of a remote table.
type Record struct {
	ID          string           `json:"id"`
	Fields      normalize.Fields `json:"fields"`
	CreatedTime string           `json:"createdTime"`
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset"`
}
