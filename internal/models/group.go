package models

import "time"

// Group is the database row shape for a candidate group record.
type Group struct {
	GroupID     string    `db:"group_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Tags        []string  `db:"tags"`
	CreatedAt   time.Time `db:"created_at"`
}
