package services

import (
	"context"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
)

// ReportingSvcFacade defines read-only, point-in-time summaries over the
// full set of clients' ledgers. None of these operations mutate state.
type ReportingSvcFacade interface {
	// CreditSummary computes the roll-up for the credit dashboard cards.
	CreditSummary(ctx context.Context) (*domain.CreditSummary, error)

	// AllTransactions returns every client's usage records annotated with
	// the owning client's identity, newest first.
	AllTransactions(ctx context.Context) ([]domain.ClientUsage, error)

	// FilteredTransactions restricts AllTransactions to records newer than
	// windowDays days ago.
	FilteredTransactions(ctx context.Context, windowDays int) ([]domain.ClientUsage, error)

	// DashboardStats composes the credit summary with entity counts.
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
