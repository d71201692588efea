package dto

import (
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams defines query parameters for the cross-client
// transaction feed. The dashboard offers 7, 30, 90 and 365 day windows; any
// other positive value is honored literally.
type ListTransactionsParams struct {
	Days int `form:"days,default=30" binding:"omitempty,gt=0"`
}

// TransactionResponse is a feed entry: a usage record annotated with the
// owning client and a rendered description.
type TransactionResponse struct {
	UsageResponse
	ClientID    string `json:"clientID"`
	ClientName  string `json:"clientName"`
	Description string `json:"description"`
}

// ListTransactionsResponse wraps the transaction feed.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// CreditSummaryResponse mirrors domain.CreditSummary for the dashboard
// cards.
type CreditSummaryResponse struct {
	TotalCredits   int64           `json:"totalCredits"`
	MonthlyUsage   int64           `json:"monthlyUsage"`
	ActiveClients  int             `json:"activeClients"`
	AverageBalance decimal.Decimal `json:"averageBalance"`
}

// DashboardStatsResponse composes the credit summary with entity counts.
type DashboardStatsResponse struct {
	ActiveQuestionnaires int                   `json:"activeQuestionnaires"`
	TotalProfiles        int                   `json:"totalProfiles"`
	Credits              CreditSummaryResponse `json:"credits"`
}

// ToTransactionResponse converts an annotated usage record to its feed DTO.
func ToTransactionResponse(t domain.ClientUsage) TransactionResponse {
	return TransactionResponse{
		UsageResponse: ToUsageResponse(t.Usage),
		ClientID:      t.ClientID,
		ClientName:    t.ClientName,
		Description:   t.Description(),
	}
}

// ToListTransactionsResponse converts the annotated feed to its DTO.
func ToListTransactionsResponse(feed []domain.ClientUsage) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(feed))
	for i, t := range feed {
		responses[i] = ToTransactionResponse(t)
	}
	return ListTransactionsResponse{Transactions: responses}
}

// ToCreditSummaryResponse converts a domain.CreditSummary to its DTO.
func ToCreditSummaryResponse(s *domain.CreditSummary) CreditSummaryResponse {
	return CreditSummaryResponse{
		TotalCredits:   s.TotalCredits,
		MonthlyUsage:   s.MonthlyUsage,
		ActiveClients:  s.ActiveClients,
		AverageBalance: s.AverageBalance,
	}
}

// ToDashboardStatsResponse converts domain.DashboardStats to its DTO.
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		ActiveQuestionnaires: s.ActiveQuestionnaires,
		TotalProfiles:        s.TotalProfiles,
		Credits:              ToCreditSummaryResponse(&s.Credits),
	}
}
