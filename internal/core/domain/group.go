package domain

import "time"

// Group is a named collection used to organize respondents.
type Group struct {
	GroupID     string    `json:"groupID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}
