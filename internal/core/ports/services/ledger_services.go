package services

import (
	"context"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
)

// LedgerSvcFacade defines the balance-mutating operations of the credit
// ledger. Consumption records (questionnaire analysis billing) are produced
// by an external collaborator; credit addition is the only mutation the
// dashboard issues.
type LedgerSvcFacade interface {
	// AddCredits increases a client's balance by amount and appends the
	// paired usage record, returning the refreshed client view.
	AddCredits(ctx context.Context, clientID string, amount int64, reason string) (*domain.Client, error)
}
