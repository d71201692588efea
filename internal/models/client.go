package models

import "time"

// Client is the database row shape for a client record.
type Client struct {
	ClientID  string    `db:"client_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Credits   int64     `db:"credits"`
	APIKey    string    `db:"api_key"`
	BrandSlug string    `db:"brand_slug"`
	CustomURL string    `db:"custom_url"`
	CreatedAt time.Time `db:"created_at"`
}
