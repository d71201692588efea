package domain

import (
	"github.com/shopspring/decimal"
)

// ClientUsage is a usage record annotated with its owning client's identity,
// as rendered in the cross-client transaction feed.
type ClientUsage struct {
	Usage
	ClientName string `json:"clientName"`
}

// CreditSummary is the point-in-time roll-up shown on the credit dashboard.
// AverageBalance is fractional; it is zero when there are no clients.
type CreditSummary struct {
	TotalCredits   int64           `json:"totalCredits"`
	MonthlyUsage   int64           `json:"monthlyUsage"`
	ActiveClients  int             `json:"activeClients"`
	AverageBalance decimal.Decimal `json:"averageBalance"`
}

// DashboardStats composes the credit summary with entity counts for the
// landing dashboard.
type DashboardStats struct {
	ActiveQuestionnaires int           `json:"activeQuestionnaires"`
	TotalProfiles        int           `json:"totalProfiles"`
	Credits              CreditSummary `json:"credits"`
}
