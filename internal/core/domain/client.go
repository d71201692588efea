package domain

import "time"

// CreditStatus bands a client's current balance for display purposes.
type CreditStatus string

const (
	StatusGood     CreditStatus = "GOOD"
	StatusLow      CreditStatus = "LOW"
	StatusCritical CreditStatus = "CRITICAL"
)

// StatusForCredits classifies a balance into its credit status band.
// The band is recomputed on every read and never stored.
func StatusForCredits(credits int64) CreditStatus {
	switch {
	case credits > 100:
		return StatusGood
	case credits > 20:
		return StatusLow
	default:
		return StatusCritical
	}
}

// Client represents a tenant account holding a credit balance.
// Usage holds the client's transaction history, newest first. The ledger
// mutates only Credits and appends to Usage; it never removes or reorders
// entries.
type Client struct {
	ClientID  string    `json:"clientID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Credits   int64     `json:"credits"`
	APIKey    string    `json:"apiKey"`
	BrandSlug string    `json:"brandSlug"`
	CustomURL string    `json:"customUrl"`
	CreatedAt time.Time `json:"createdAt"`
	Usage     []Usage   `json:"usage"`
}

// Status returns the client's current credit status band.
func (c *Client) Status() CreditStatus {
	return StatusForCredits(c.Credits)
}
