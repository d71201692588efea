package models

import (
	"database/sql"
	"time"
)

// Usage is the database row shape for a usage (ledger) record. Rows are
// insert-only; there is no update path.
type Usage struct {
	UsageID         string         `db:"usage_id"`
	ClientID        string         `db:"client_id"`
	Type            string         `db:"type"`
	Amount          int64          `db:"amount"`
	Reason          sql.NullString `db:"reason"`
	CandidateName   sql.NullString `db:"candidate_name"`
	ProfileDetected sql.NullString `db:"profile_detected"`
	Timestamp       time.Time      `db:"timestamp"`
	Balance         int64          `db:"balance"`
}
