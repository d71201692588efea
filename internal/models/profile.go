package models

import "time"

// Profile is the database row shape for a behavioral profile record.
type Profile struct {
	ProfileID   string    `db:"profile_id"`
	Name        string    `db:"name"`
	Category    string    `db:"category"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// Rule is the database row shape for a profile threshold rule.
type Rule struct {
	RuleID     string `db:"rule_id"`
	ProfileID  string `db:"profile_id"`
	Competency string `db:"competency"`
	Operator   string `db:"operator"`
	Threshold  int    `db:"threshold"`
}
